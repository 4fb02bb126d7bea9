package fbxsdk

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testScene(mgr *Manager) *Scene {
	s := mgr.NewScene("")

	box := s.NewNode("box")
	mesh := NewMesh("box")
	mesh.ControlPoints = []float64{
		-1, -1, 0,
		1, -1, 0,
		1, 1, 0,
		-1, 1, 0,
	}
	mesh.PolygonVertexIndex = []int32{0, 1, 2, ^int32(3)}
	mesh.Normals = []float64{
		0, 0, 1,
		0, 0, 1,
		0, 0, 1,
		0, 0, 1,
	}
	box.SetNodeAttribute(mesh)
	s.RootNode().AddChild(box)

	locator := s.NewNode("locator")
	locator.SetNodeAttribute(NewNull("locator"))
	box.AddChild(locator)

	return s
}

func findFormat(registry *IORegistry, substr string) int {
	for i := 0; i < registry.WriterFormatCount(); i++ {
		if strings.Contains(registry.WriterFormatDescription(i), substr) {
			return i
		}
	}
	return -1
}

func TestExportBinary(t *testing.T) {
	mgr := NewManager()
	defer mgr.Destroy()
	s := testScene(mgr)
	defer s.Destroy()

	path := filepath.Join(t.TempDir(), "out.fbx")
	e := mgr.NewExporter("")
	defer e.Destroy()

	if !e.Initialize(path, findFormat(mgr.IORegistry(), "FBX binary"), mgr.IOSettings()) {
		t.Fatalf("Initialize failed: %s", e.Status())
	}
	e.SetFileExportVersion("FBX201400")
	if !e.Export(s) {
		t.Fatalf("Export failed: %s", e.Status())
	}
	e.Destroy()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "Kaydara FBX Binary") {
		t.Errorf("output does not start with the binary fbx magic")
	}
}

func TestExportAscii(t *testing.T) {
	mgr := NewManager()
	defer mgr.Destroy()
	s := testScene(mgr)
	defer s.Destroy()

	path := filepath.Join(t.TempDir(), "out.fbx")
	e := mgr.NewExporter("")
	defer e.Destroy()

	if !e.Initialize(path, findFormat(mgr.IORegistry(), "FBX ascii"), mgr.IOSettings()) {
		t.Fatalf("Initialize failed: %s", e.Status())
	}
	if !e.Export(s) {
		t.Fatalf("Export failed: %s", e.Status())
	}
	e.Destroy()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "; FBX 7.4.0 project file") {
		t.Errorf("ascii output is missing the header comment")
	}
	for _, want := range []string{"GlobalSettings:", "Objects:", "Connections:", "\"box::Model\"", "\"locator::Model\""} {
		if !strings.Contains(text, want) {
			t.Errorf("ascii output is missing %q", want)
		}
	}
}

func TestEmbedMediaRecorded(t *testing.T) {
	for _, embed := range []bool{false, true} {
		mgr := NewManager()
		s := testScene(mgr)

		path := filepath.Join(t.TempDir(), "out.fbx")
		e := mgr.NewExporter("")

		settings := mgr.IOSettings()
		settings.SetBoolProp(ExpEmbedded, embed)
		if !e.Initialize(path, findFormat(mgr.IORegistry(), "FBX ascii"), settings) {
			t.Fatalf("Initialize failed: %s", e.Status())
		}
		if !e.Export(s) {
			t.Fatalf("Export failed: %s", e.Status())
		}
		e.Destroy()
		s.Destroy()
		mgr.Destroy()

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		want := `P: "EmbedMedia", "bool", "", "", 0`
		if embed {
			want = `P: "EmbedMedia", "bool", "", "", 1`
		}
		if !strings.Contains(string(data), want) {
			t.Errorf("embed=%v: output does not record %s", embed, want)
		}
	}
}

func TestExporterInitializeFailures(t *testing.T) {
	mgr := NewManager()
	defer mgr.Destroy()
	path := filepath.Join(t.TempDir(), "out.fbx")

	e := mgr.NewExporter("")
	defer e.Destroy()
	if e.Initialize(path, 100, mgr.IOSettings()) {
		t.Errorf("Initialize accepted an unknown format index")
	}
	if e.Initialize(path, findFormat(mgr.IORegistry(), "encrypted"), mgr.IOSettings()) {
		t.Errorf("Initialize accepted the encrypted format")
	}
	if e.Initialize(filepath.Join(path, "not", "a", "dir.fbx"), 0, mgr.IOSettings()) {
		t.Errorf("Initialize accepted an uncreatable path")
	}
	if e.Status() == "Success" {
		t.Errorf("failed Initialize left status %q", e.Status())
	}
}

func TestExportWithoutInitialize(t *testing.T) {
	mgr := NewManager()
	defer mgr.Destroy()
	s := mgr.NewScene("")
	defer s.Destroy()

	e := mgr.NewExporter("")
	defer e.Destroy()
	if e.Export(s) {
		t.Errorf("Export succeeded without Initialize")
	}
}

func TestDocumentDefinitionCounts(t *testing.T) {
	mgr := NewManager()
	defer mgr.Destroy()
	s := testScene(mgr)
	defer s.Destroy()

	doc := buildDocument(s, "out.fbx", false)

	defs := doc.Root.GetNode("Definitions")
	if defs == nil {
		t.Fatalf("document has no Definitions section")
	}
	for _, ot := range defs.GetNodes("ObjectType") {
		name := ot.Properties[0].(string)
		count := ot.GetNode("Count").Properties[0].(int32)
		switch name {
		case "Model":
			if count != 2 {
				t.Errorf("Model count %d; expected 2", count)
			}
		case "Geometry":
			if count != 1 {
				t.Errorf("Geometry count %d; expected 1", count)
			}
		case "NodeAttribute":
			if count != 1 {
				t.Errorf("NodeAttribute count %d; expected 1", count)
			}
		}
	}
}

func TestDocumentAnimationSections(t *testing.T) {
	mgr := NewManager()
	defer mgr.Destroy()
	s := testScene(mgr)
	defer s.Destroy()

	stack := s.NewAnimStack("clip1")
	span := TimeSpan{Start: 0, Stop: TimeFromSeconds(1)}
	stack.SetLocalTimeSpan(span)
	stack.SetReferenceTimeSpan(span)
	layer := s.NewAnimLayer("Layer0")
	stack.AddMember(layer)

	box := s.RootNode().Children()[0]
	curve := box.CurveNode(ChannelTranslation, layer).ComponentCurve(0)
	curve.AddKey(0, 0)
	curve.AddKey(TimeFromSeconds(1), 5)

	doc := buildDocument(s, "out.fbx", false)

	takes := doc.Root.GetNode("Takes")
	if takes == nil {
		t.Fatalf("document has no Takes section")
	}
	if cur := takes.GetNode("Current"); cur == nil || cur.Properties[0].(string) != "clip1" {
		t.Errorf("current take is not the first stack")
	}

	objects := doc.Root.GetNode("Objects")
	var stacks, layers, curveNodes, curves int
	for _, n := range objects.Nodes {
		switch n.Name {
		case "AnimationStack":
			stacks++
		case "AnimationLayer":
			layers++
		case "AnimationCurveNode":
			curveNodes++
		case "AnimationCurve":
			curves++
		}
	}
	if stacks != 1 || layers != 1 || curveNodes != 1 || curves != 1 {
		t.Errorf("animation objects stacks=%d layers=%d curveNodes=%d curves=%d; expected 1 of each",
			stacks, layers, curveNodes, curves)
	}
}
