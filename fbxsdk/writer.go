package fbxsdk

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mogaika/fbx"
	"github.com/mogaika/fbx/builders/bfbx73"
	"github.com/pkg/errors"
)

const FBX_CREATOR = "FBX SDK/FBX Plugins version 2013.3 build=20121223"

var FBX_FILE_ID []byte = []byte{
	0x28, 0xb3, 0x2a, 0xeb, 0xb6, 0x24, 0xcc, 0xc2,
	0xbf, 0xc8, 0xb0, 0x2a, 0xa9, 0x2b, 0xfc, 0xf1}

// ExpEmbedded is the IO settings key controlling media embedding.
const ExpEmbedded = "Export|IncludeGrp|EmbedTextureIfPossible"

type IOSettings struct {
	boolProps map[string]bool
}

func newIOSettings() *IOSettings {
	return &IOSettings{boolProps: make(map[string]bool)}
}

func (s *IOSettings) SetBoolProp(name string, v bool) { s.boolProps[name] = v }

func (s *IOSettings) BoolProp(name string, def bool) bool {
	if v, ok := s.boolProps[name]; ok {
		return v
	}
	return def
}

// Exporter serializes one Scene to one file. Create, Initialize,
// Export, Destroy - in that order.
type Exporter struct {
	manager    *Manager
	name       string
	path       string
	file       *os.File
	ascii      bool
	version    string
	status     string
	ioSettings *IOSettings
	destroyed  bool
}

func (m *Manager) NewExporter(name string) *Exporter {
	return &Exporter{manager: m, name: name, status: "Success", ioSettings: m.ioSettings}
}

// Initialize binds the exporter to an output path and writer format.
// A negative format index selects the first FBX binary writer, matching
// the SDK's auto behavior.
func (e *Exporter) Initialize(path string, fileFormat int, settings *IOSettings) bool {
	registry := e.manager.IORegistry()
	if fileFormat < 0 {
		for i := 0; i < registry.WriterFormatCount(); i++ {
			if registry.WriterIsFBX(i) && !strings.Contains(registry.WriterFormatDescription(i), "ascii") {
				fileFormat = i
				break
			}
		}
	}
	desc := registry.WriterFormatDescription(fileFormat)
	if desc == "" {
		e.status = "Unknown writer file format"
		return false
	}
	if strings.Contains(desc, "encrypted") {
		e.status = "Encrypted FBX output is not supported"
		return false
	}
	e.ascii = strings.Contains(desc, "ascii")

	f, err := os.Create(path)
	if err != nil {
		e.status = err.Error()
		return false
	}
	e.file = f
	e.path = path
	if settings != nil {
		e.ioSettings = settings
	}
	return true
}

func (e *Exporter) SetFileExportVersion(version string) { e.version = version }

func (e *Exporter) IOSettings() *IOSettings { return e.ioSettings }

// Status returns a human-readable result of the last operation.
func (e *Exporter) Status() string { return e.status }

func (e *Exporter) Export(s *Scene) bool {
	if e.file == nil {
		e.status = "Exporter was not initialized"
		return false
	}
	embed := e.ioSettings.BoolProp(ExpEmbedded, false)
	doc := buildDocument(s, e.path, embed)

	var err error
	if e.ascii {
		err = writeASCII(e.file, doc)
	} else {
		err = fbx.Write(e.file, doc)
	}
	if err != nil {
		e.status = err.Error()
		return false
	}
	e.status = "Success"
	return true
}

func (e *Exporter) Destroy() {
	if e.file != nil {
		e.file.Close()
		e.file = nil
	}
	e.destroyed = true
}

// newNode builds a raw fbx node for the object types bfbx73 has no
// dedicated builder for (animation and takes sections).
func newNode(name string, props ...interface{}) *fbx.Node {
	return &fbx.Node{Name: name, Properties: props}
}

func channelShortName(channel string) string {
	switch channel {
	case ChannelTranslation:
		return "T"
	case ChannelRotation:
		return "R"
	case ChannelScaling:
		return "S"
	}
	return channel
}

// buildDocument assembles the complete FBX 7.4 node tree for a scene.
func buildDocument(s *Scene, filename string, embedMedia bool) *fbx.FBX {
	f := fbx.NewFBX(7400)
	objects := bfbx73.Objects()
	connections := bfbx73.Connections()

	docId := s.GenerateId()

	info := s.SceneInfo()
	appVendor := info.LastSavedApplicationVendor
	appName := info.LastSavedApplicationName
	appVersion := info.LastSavedApplicationVersion
	now := time.Now().UTC()
	dateTime := now.Format("02/01/2006 15:04:05.000")

	sceneInfoProps := bfbx73.Properties70().AddNodes(
		bfbx73.P("DocumentUrl", "KString", "Url", "", filename),
		bfbx73.P("SrcDocumentUrl", "KString", "Url", "", filename),
		bfbx73.P("Original", "Compound", "", ""),
		bfbx73.P("Original|ApplicationVendor", "KString", "", "", info.OriginalApplicationVendor),
		bfbx73.P("Original|ApplicationName", "KString", "", "", info.OriginalApplicationName),
		bfbx73.P("Original|ApplicationVersion", "KString", "", "", info.OriginalApplicationVersion),
		bfbx73.P("Original|DateTime_GMT", "DateTime", "", "", dateTime),
		bfbx73.P("Original|FileName", "KString", "", "", filepath.Base(info.OriginalFileName)),
		bfbx73.P("LastSaved", "Compound", "", ""),
		bfbx73.P("LastSaved|ApplicationVendor", "KString", "", "", appVendor),
		bfbx73.P("LastSaved|ApplicationName", "KString", "", "", appName),
		bfbx73.P("LastSaved|ApplicationVersion", "KString", "", "", appVersion),
		bfbx73.P("LastSaved|DateTime_GMT", "DateTime", "", "", dateTime),
	)
	if info.ApplicationActiveProject != "" {
		sceneInfoProps.AddNode(
			bfbx73.P("Original|ApplicationActiveProject", "KString", "", "", info.ApplicationActiveProject))
	}
	if info.ApplicationNativeFile != "" {
		sceneInfoProps.AddNode(
			bfbx73.P("Original|ApplicationNativeFile", "KString", "", "", info.ApplicationNativeFile))
	}
	embedFlag := int32(0)
	if embedMedia {
		embedFlag = 1
	}
	sceneInfoProps.AddNode(bfbx73.P("EmbedMedia", "bool", "", "", embedFlag))

	activeStack := ""
	if len(s.stacks) > 0 {
		activeStack = s.stacks[0].name
	}

	f.Root.AddNodes(
		bfbx73.FBXHeaderExtension().AddNodes(
			bfbx73.FBXHeaderVersion(1003),
			bfbx73.FBXVersion(7400),
			bfbx73.EncryptionType(0),
			bfbx73.CreationTimeStamp().AddNodes(
				bfbx73.Version(1000),
				bfbx73.Year(int32(now.Year())),
				bfbx73.Month(int32(now.Month())),
				bfbx73.Day(int32(now.Day())),
				bfbx73.Hour(int32(now.Hour())),
				bfbx73.Minute(int32(now.Minute())),
				bfbx73.Second(int32(now.Second())),
				bfbx73.Millisecond(int32(now.Nanosecond()/1000000)),
			),
			bfbx73.Creator(FBX_CREATOR),
			bfbx73.SceneInfo("GlobalInfo\x00\x01SceneInfo", "UserData").AddNodes(
				bfbx73.Type("UserData"),
				bfbx73.Version(100),
				bfbx73.MetaData().AddNodes(
					bfbx73.Version(100),
					bfbx73.Title(""),
					bfbx73.Subject(""),
					bfbx73.Author(""),
					bfbx73.Keywords(""),
					bfbx73.Revision(""),
					bfbx73.Comment(""),
				),
				sceneInfoProps,
			),
		),
		bfbx73.FileId(FBX_FILE_ID),
		bfbx73.CreationTime(now.Format("2006-01-02 15:04:05:000")),
		bfbx73.Creator(FBX_CREATOR),
		buildGlobalSettings(s),
		bfbx73.Documents().AddNodes(
			bfbx73.Count(1),
			bfbx73.Document(docId, "Scene", "Scene").AddNodes(
				bfbx73.Properties70().AddNodes(
					bfbx73.P("SourceObject", "object", "", ""),
					bfbx73.P("ActiveAnimStackName", "KString", "", "", activeStack),
				),
				bfbx73.RootNode(0),
			),
		),
		bfbx73.References(),
		buildDefinitionTemplates(),
		objects,
		connections,
		buildTakes(s, activeStack),
	)

	serializeNodes(s, objects, connections)
	serializeAnimation(s, objects, connections)
	countDefinitions(&f.Root, objects)

	return f
}

func axisIndexes(a AxisSystem) (up, front, coord int32) {
	switch a.Up {
	case UpX:
		return 0, 2, 1
	case UpZ:
		return 2, 1, 0
	}
	return 1, 2, 0
}

func buildGlobalSettings(s *Scene) *fbx.Node {
	settings := s.GlobalSettings()

	up, front, coord := axisIndexes(settings.AxisSystem())
	coordSign := int32(1)
	if settings.AxisSystem().Coord == LeftHanded {
		coordSign = -1
	}
	originalUp := int32(-1)
	originalUpSign := int32(1)
	if orig := settings.OriginalUpAxis(); orig != nil {
		o, _, _ := axisIndexes(*orig)
		originalUp = o
	}

	ambient := s.GlobalLightSettings().AmbientColor()
	span := settings.TimelineDefaultTimeSpan()

	return bfbx73.GlobalSettings().AddNodes(
		bfbx73.Version(1000),
		bfbx73.Properties70().AddNodes(
			bfbx73.P("UpAxis", "int", "Integer", "", up),
			bfbx73.P("UpAxisSign", "int", "Integer", "", int32(1)),
			bfbx73.P("FrontAxis", "int", "Integer", "", front),
			bfbx73.P("FrontAxisSign", "int", "Integer", "", int32(1)),
			bfbx73.P("CoordAxis", "int", "Integer", "", coord),
			bfbx73.P("CoordAxisSign", "int", "Integer", "", coordSign),
			bfbx73.P("OriginalUpAxis", "int", "Integer", "", originalUp),
			bfbx73.P("OriginalUpAxisSign", "int", "Integer", "", originalUpSign),
			bfbx73.P("UnitScaleFactor", "double", "Number", "", settings.SystemUnit().ScaleFactor()),
			bfbx73.P("OriginalUnitScaleFactor", "double", "Number", "", settings.OriginalSystemUnit().ScaleFactor()),
			bfbx73.P("AmbientColor", "ColorRGB", "Color", "", ambient[0], ambient[1], ambient[2]),
			bfbx73.P("DefaultCamera", "KString", "", "", "Producer Perspective"),
			bfbx73.P("TimeMode", "enum", "", "", int32(settings.TimeMode())),
			bfbx73.P("TimeSpanStart", "KTime", "Time", "", int64(span.Start)),
			bfbx73.P("TimeSpanStop", "KTime", "Time", "", int64(span.Stop)),
			bfbx73.P("CustomFrameRate", "double", "Number", "", settings.CustomFrameRate()),
		),
	)
}

func buildDefinitionTemplates() *fbx.Node {
	return bfbx73.Definitions().AddNodes(
		bfbx73.Version(100),
		bfbx73.Count(1),
		bfbx73.ObjectType("GlobalSettings").AddNodes(
			bfbx73.Count(1),
		),
		bfbx73.ObjectType("Model").AddNodes(
			bfbx73.Count(0),
			bfbx73.PropertyTemplate("FbxNode").AddNodes(
				bfbx73.Properties70().AddNodes(
					bfbx73.P("QuaternionInterpolate", "enum", "", "", int32(0)),
					bfbx73.P("Show", "bool", "", "", int32(1)),
					bfbx73.P("Lcl Translation", "Lcl Translation", "", "A", float64(0), float64(0), float64(0)),
					bfbx73.P("Lcl Rotation", "Lcl Rotation", "", "A", float64(0), float64(0), float64(0)),
					bfbx73.P("Lcl Scaling", "Lcl Scaling", "", "A", float64(1), float64(1), float64(1)),
					bfbx73.P("Visibility", "Visibility", "", "A", float64(1)),
					bfbx73.P("Visibility Inheritance", "Visibility Inheritance", "", "", int32(1)),
				),
			),
		),
		bfbx73.ObjectType("Geometry").AddNodes(
			bfbx73.Count(0),
			bfbx73.PropertyTemplate("FbxMesh").AddNodes(
				bfbx73.Properties70().AddNodes(
					bfbx73.P("Color", "ColorRGB", "Color", "", float64(1), float64(1), float64(1)),
					bfbx73.P("Primary Visibility", "bool", "", "", int32(1)),
					bfbx73.P("Casts Shadows", "bool", "", "", int32(1)),
					bfbx73.P("Receive Shadows", "bool", "", "", int32(1)),
				),
			),
		),
		bfbx73.ObjectType("NodeAttribute").AddNodes(
			bfbx73.Count(0),
			bfbx73.PropertyTemplate("FbxNull").AddNodes(
				bfbx73.Properties70().AddNodes(
					bfbx73.P("Size", "double", "Number", "", float64(100)),
					bfbx73.P("Look", "enum", "", "", int32(1)),
				),
			),
		),
	)
}

func buildTakes(s *Scene, current string) *fbx.Node {
	takes := bfbx73.Takes().AddNodes(
		bfbx73.Current(current),
	)
	for _, st := range s.stacks {
		local := st.LocalTimeSpan()
		ref := st.ReferenceTimeSpan()
		takes.AddNode(newNode("Take", st.name).AddNodes(
			newNode("FileName", st.name+".tak"),
			newNode("LocalTime", int64(local.Start), int64(local.Stop)),
			newNode("ReferenceTime", int64(ref.Start), int64(ref.Stop)),
		))
	}
	return takes
}

func serializeNodes(s *Scene, objects, connections *fbx.Node) {
	meshIds := make(map[*Mesh]int64)

	var serialize func(n *Node, parentId int64)
	serialize = func(n *Node, parentId int64) {
		element := "Null"
		if n.attr != nil {
			element = n.attr.element()
		}

		model := bfbx73.Model(n.id, n.name+"\x00\x01Model", element).AddNodes(
			bfbx73.Version(232),
			bfbx73.Properties70().AddNodes(
				bfbx73.P("InheritType", "enum", "", "", int32(1)),
				bfbx73.P("DefaultAttributeIndex", "int", "Integer", "", int32(0)),
				bfbx73.P("Lcl Translation", "Lcl Translation", "", "A",
					n.LclTranslation[0], n.LclTranslation[1], n.LclTranslation[2]),
				bfbx73.P("Lcl Rotation", "Lcl Rotation", "", "A",
					n.LclRotation[0], n.LclRotation[1], n.LclRotation[2]),
				bfbx73.P("Lcl Scaling", "Lcl Scaling", "", "A",
					n.LclScaling[0], n.LclScaling[1], n.LclScaling[2]),
				bfbx73.P("Visibility", "Visibility", "", "A", n.Visibility),
			),
			bfbx73.Shading(true),
			bfbx73.Culling("CullingOff"),
		)
		objects.AddNode(model)
		connections.AddNode(bfbx73.C("OO", n.id, parentId))

		switch attr := n.attr.(type) {
		case *NullAttribute:
			attrId := s.GenerateId()
			objects.AddNode(bfbx73.NodeAttribute(attrId, attr.name+"\x00\x01NodeAttribute", "Null").AddNodes(
				bfbx73.Properties70().AddNodes(
					bfbx73.P("Look", "enum", "", "", int32(attr.Look)),
				),
				bfbx73.TypeFlags("Null"),
			))
			connections.AddNode(bfbx73.C("OO", attrId, n.id))
		case *LightAttribute:
			attrId := s.GenerateId()
			objects.AddNode(bfbx73.NodeAttribute(attrId, attr.name+"\x00\x01NodeAttribute", "Light").AddNodes(
				bfbx73.Properties70().AddNodes(
					bfbx73.P("Color", "Color", "", "A", attr.Color[0], attr.Color[1], attr.Color[2]),
					bfbx73.P("Intensity", "Number", "", "A", attr.Intensity),
					bfbx73.P("LightType", "enum", "", "", lightTypeEnum(attr.Type)),
				),
				bfbx73.TypeFlags("Light"),
			))
			connections.AddNode(bfbx73.C("OO", attrId, n.id))
		case *Mesh:
			geoId, done := meshIds[attr]
			if !done {
				geoId = s.GenerateId()
				meshIds[attr] = geoId
				objects.AddNode(serializeMesh(geoId, attr))
			}
			connections.AddNode(bfbx73.C("OO", geoId, n.id))
		}

		for _, child := range n.children {
			serialize(child, n.id)
		}
	}

	for _, child := range s.root.children {
		serialize(child, 0)
	}
}

func lightTypeEnum(t string) int32 {
	switch t {
	case "Point":
		return 0
	case "Directional":
		return 1
	case "Spot":
		return 2
	case "Ambient":
		return 3
	}
	return 0
}

func serializeMesh(id int64, m *Mesh) *fbx.Node {
	geometryLayer := bfbx73.Layer(0).AddNodes(
		bfbx73.Version(100),
	)

	geometry := bfbx73.Geometry(id, m.name+"\x00\x01Geometry", "Mesh").AddNodes(
		bfbx73.Properties70().AddNodes(
			bfbx73.P("Color", "ColorRGB", "Color", "", float64(1), float64(1), float64(1)),
		),
		bfbx73.GeometryVersion(124),
		bfbx73.Vertices(m.ControlPoints),
		bfbx73.PolygonVertexIndex(m.PolygonVertexIndex),
		geometryLayer,
	)

	if len(m.Normals) > 0 {
		geometry.AddNode(
			bfbx73.LayerElementNormal(0).AddNodes(
				bfbx73.Version(101),
				bfbx73.Name(""),
				bfbx73.MappingInformationType("ByVertice"),
				bfbx73.ReferenceInformationType("Direct"),
				bfbx73.Normals(m.Normals),
			),
		)
		geometryLayer.AddNode(
			bfbx73.LayerElement().AddNodes(
				bfbx73.Type("LayerElementNormal"),
				bfbx73.TypedIndex(0),
			),
		)
	}

	if len(m.UV) > 0 {
		geometry.AddNode(
			bfbx73.LayerElementUV(0).AddNodes(
				bfbx73.Version(101),
				bfbx73.Name(""),
				bfbx73.MappingInformationType("ByPolygonVertex"),
				bfbx73.ReferenceInformationType("IndexToDirect"),
				bfbx73.UV(m.UV),
				bfbx73.UVIndex(m.UVIndex),
			),
		)
		geometryLayer.AddNode(
			bfbx73.LayerElement().AddNodes(
				bfbx73.Type("LayerElementUV"),
				bfbx73.TypedIndex(0),
			),
		)
	}

	return geometry
}

func serializeAnimation(s *Scene, objects, connections *fbx.Node) {
	for _, st := range s.stacks {
		local := st.LocalTimeSpan()
		ref := st.ReferenceTimeSpan()
		objects.AddNode(newNode("AnimationStack", st.id, st.name+"\x00\x01AnimStack", "").AddNodes(
			bfbx73.Properties70().AddNodes(
				bfbx73.P("LocalStart", "KTime", "Time", "", int64(local.Start)),
				bfbx73.P("LocalStop", "KTime", "Time", "", int64(local.Stop)),
				bfbx73.P("ReferenceStart", "KTime", "Time", "", int64(ref.Start)),
				bfbx73.P("ReferenceStop", "KTime", "Time", "", int64(ref.Stop)),
			),
		))
		for _, l := range st.members {
			connections.AddNode(bfbx73.C("OO", l.id, st.id))
		}
	}

	for _, l := range s.layers {
		objects.AddNode(newNode("AnimationLayer", l.id, l.name+"\x00\x01AnimLayer", ""))
	}

	for _, cn := range s.curveNodes {
		short := channelShortName(cn.channel)
		objects.AddNode(newNode("AnimationCurveNode", cn.id, short+"\x00\x01AnimCurveNode", "").AddNodes(
			bfbx73.Properties70().AddNodes(
				bfbx73.P("d|X", "Number", "", "A", float64(0)),
				bfbx73.P("d|Y", "Number", "", "A", float64(0)),
				bfbx73.P("d|Z", "Number", "", "A", float64(0)),
			),
		))
		connections.AddNode(bfbx73.C("OO", cn.id, cn.layer.id))
		connections.AddNode(newNode("C", "OP", cn.id, cn.node.id, cn.channel))

		for component, curve := range cn.curves {
			if curve == nil {
				continue
			}
			keyTimes := make([]int64, len(curve.KeyTimes))
			for i, t := range curve.KeyTimes {
				keyTimes[i] = int64(t)
			}
			objects.AddNode(newNode("AnimationCurve", curve.id, "\x00\x01AnimCurve", "").AddNodes(
				newNode("Default", float64(0)),
				newNode("KeyVer", int32(4008)),
				newNode("KeyTime", keyTimes),
				newNode("KeyValueFloat", curve.KeyValues),
				newNode("KeyAttrFlags", []int32{24836}),
				newNode("KeyAttrDataFloat", []float32{0, 0, 0, 0}),
				newNode("KeyAttrRefCount", []int32{int32(len(curve.KeyTimes))}),
			))
			connections.AddNode(newNode("C", "OP", curve.id, cn.id, "d|"+[3]string{"X", "Y", "Z"}[component]))
		}
	}
}

func countDefinitions(root *fbx.Node, objects *fbx.Node) {
	counts := make(map[string]int32)
	for _, object := range objects.Nodes {
		if count, ex := counts[object.Name]; ex {
			counts[object.Name] = count + 1
		} else {
			counts[object.Name] = 1
		}
	}

	definitions := root.GetNode("Definitions")
	totalCount := int32(1) // 1 for GlobalSettings

	for name, count := range counts {
		totalCount += count

		var objectType *fbx.Node
		for _, ot := range definitions.GetNodes("ObjectType") {
			if ot.Properties[0].(string) == name {
				objectType = ot
			}
		}
		if objectType == nil {
			objectType = bfbx73.ObjectType(name)
			definitions.AddNode(objectType)
		}

		objectType.GetOrAddNode(bfbx73.Count(0)).Properties[0] = count
	}

	definitions.GetOrAddNode(bfbx73.Count(0)).Properties[0] = totalCount
}

// ---- ascii output ----

type asciiWriter struct {
	w    *bufio.Writer
	tabs int
}

func (a *asciiWriter) fillTabs() {
	for i := 0; i < a.tabs; i++ {
		a.w.WriteByte('\t')
	}
}

func asciiString(s string) string {
	if idx := strings.Index(s, "\x00\x01"); idx >= 0 {
		s = s[idx+2:] + "::" + s[:idx]
	}
	return "\"" + strings.ReplaceAll(s, "\"", "&quot;") + "\""
}

func asciiValue(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return asciiString(t), true
	case bool:
		if t {
			return "T", true
		}
		return "F", true
	case int:
		return strconv.Itoa(t), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), true
	}
	return "", false
}

func asciiArray(v interface{}) ([]string, bool) {
	var out []string
	switch t := v.(type) {
	case []int32:
		for _, e := range t {
			out = append(out, strconv.FormatInt(int64(e), 10))
		}
	case []int64:
		for _, e := range t {
			out = append(out, strconv.FormatInt(e, 10))
		}
	case []float32:
		for _, e := range t {
			out = append(out, strconv.FormatFloat(float64(e), 'g', -1, 32))
		}
	case []float64:
		for _, e := range t {
			out = append(out, strconv.FormatFloat(e, 'g', -1, 64))
		}
	default:
		return nil, false
	}
	return out, true
}

func (a *asciiWriter) writeNode(n *fbx.Node) error {
	// binary-only blobs have no ascii representation
	if n.Name == "FileId" {
		return nil
	}

	a.fillTabs()
	a.w.WriteString(n.Name)
	a.w.WriteString(": ")

	if len(n.Properties) == 1 {
		if elems, ok := asciiArray(n.Properties[0]); ok {
			fmt.Fprintf(a.w, "*%d {\n", len(elems))
			a.tabs++
			a.fillTabs()
			a.w.WriteString("a: ")
			a.w.WriteString(strings.Join(elems, ","))
			a.w.WriteByte('\n')
			a.tabs--
			a.fillTabs()
			a.w.WriteString("}\n")
			return nil
		}
	}

	var parts []string
	for _, p := range n.Properties {
		if s, ok := asciiValue(p); ok {
			parts = append(parts, s)
		} else if elems, ok := asciiArray(p); ok {
			parts = append(parts, elems...)
		} else {
			return errors.Errorf("unsupported ascii property %T in node %q", p, n.Name)
		}
	}
	a.w.WriteString(strings.Join(parts, ", "))

	if len(n.Nodes) > 0 || len(n.Properties) == 0 {
		if len(parts) > 0 {
			a.w.WriteByte(' ')
		}
		a.w.WriteString("{\n")
		a.tabs++
		for _, sub := range n.Nodes {
			if err := a.writeNode(sub); err != nil {
				return err
			}
		}
		a.tabs--
		a.fillTabs()
		a.w.WriteString("}\n")
	} else {
		a.w.WriteByte('\n')
	}
	return nil
}

func writeASCII(w *os.File, f *fbx.FBX) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("; FBX 7.4.0 project file\n")
	bw.WriteString("; ----------------------------------------------------\n\n")

	a := &asciiWriter{w: bw}
	for _, n := range f.Root.Nodes {
		if err := a.writeNode(n); err != nil {
			return err
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
