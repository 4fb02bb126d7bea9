package rop

import (
	"log"
	"math"
	"strings"
	"time"

	"github.com/opforge/fbxexport/fbxsdk"
	"github.com/opforge/fbxexport/opnet"
)

const (
	appVendor  = "OpForge"
	appName    = "fbxexport"
	appVersion = "1.0"
)

// Exporter drives one export session over three calls:
// InitializeExport, DoExport, FinishExport. FinishExport always tears
// the session down, whatever the earlier calls returned.
type Exporter struct {
	director *opnet.Director
	opts     Options
	errors   ErrorManager
	boss     Interrupt
	timings  Timings
	clock    func() time.Time

	nm      *NodeManager
	actions *ActionManager

	sdkManager *fbxsdk.Manager
	scene      *fbxsdk.Scene
	exporter   *fbxsdk.Exporter

	outputPath  string
	startTime   float64
	endTime     float64
	initialized bool
	didCancel   bool

	prevTakeName string
	restoreTake  bool
}

func NewExporter(d *opnet.Director) *Exporter {
	return &Exporter{director: d, clock: time.Now}
}

func (e *Exporter) Errors() *ErrorManager { return &e.errors }
func (e *Exporter) Boss() *Interrupt      { return &e.boss }
func (e *Exporter) Timings() Timings      { return e.timings }
func (e *Exporter) DidCancel() bool       { return e.didCancel }

// Scene exposes the target scene being built, nil outside a session.
func (e *Exporter) Scene() *fbxsdk.Scene        { return e.scene }
func (e *Exporter) SdkManager() *fbxsdk.Manager { return e.sdkManager }
func (e *Exporter) NodeManager() *NodeManager   { return e.nm }

// ExportingAnimation reports whether the export range spans more than
// a single frame.
func (e *Exporter) ExportingAnimation() bool {
	return math.Abs(e.endTime-e.startTime) > 1e-6
}

// InitializeExport opens a session. A session that is already open
// must be finished first; a second initialize is rejected without
// disturbing the session in flight.
func (e *Exporter) InitializeExport(outputPath string, startTime, endTime float64, opts *Options) bool {
	if e.initialized {
		log.Printf("[rop] An export session is already in progress")
		return false
	}
	e.errors.Reset()
	e.timings = Timings{}
	e.boss.Reset()
	e.didCancel = false
	e.restoreTake = false

	if outputPath == "" {
		e.errors.AddFatalf("No output file specified")
		return false
	}
	if opts != nil {
		e.opts = *opts
	} else {
		e.opts.Reset()
	}

	e.outputPath = outputPath
	e.startTime = startTime
	e.endTime = endTime

	e.nm = NewNodeManager()
	e.actions = NewActionManager()
	e.sdkManager = fbxsdk.NewManager()
	e.exporter = e.sdkManager.NewExporter("")
	e.scene = e.sdkManager.NewScene("")

	e.initialized = true
	return true
}

// DoExport builds the target scene: node creation, animation baking,
// post actions and the axis/unit finalization.
func (e *Exporter) DoExport() bool {
	if !e.initialized {
		e.errors.AddFatalf("Export session was not initialized")
		return false
	}
	totalStart := e.clock()
	defer func() { e.timings.Total += e.clock().Sub(totalStart) }()

	d := e.director
	cm := d.ChannelManager()

	e.switchTake()

	scope, ok := e.resolveExportScope()
	if !ok {
		return false
	}

	if !e.ExportingAnimation() {
		// a single frame has nothing to bake into a vertex cache
		e.opts.ExportDeformsAsVC = false
	}

	e.stampSceneInfo()
	e.setupTimeSettings(cm.SamplesPerSec())

	buildStart := e.clock()
	parentFbx := e.scene.RootNode()
	if scope != d.ObjNode() {
		// exporting a subnet: a stand-in root carries the subnet's own
		// transform so its children keep their world placement
		dummy := e.scene.NewNode("world_root")
		dummy.SetNodeAttribute(fbxsdk.NewNull("world_root"))
		setStandardTransforms(scope, dummy, e.startTime, e.opts.ExportInvisibleObjects)
		e.scene.RootNode().AddChild(dummy)
		e.nm.AddNodePair(scope, dummy)
		parentFbx = dummy
	}

	mv := NewMainVisitor(e.scene, d, e.nm, &e.errors, e.actions, &e.boss, &e.opts, e.startTime)
	mv.VisitScene(scope, parentFbx)
	e.didCancel = mv.DidCancel()
	e.timings.SceneBuild = e.clock().Sub(buildStart)

	if ambient, ok := mv.AccumAmbientColor(); ok {
		e.scene.GlobalLightSettings().SetAmbientColor(
			float64(ambient[0]), float64(ambient[1]), float64(ambient[2]))
	}

	if e.ExportingAnimation() && !e.didCancel {
		e.exportAnimation(cm)
	}

	if e.didCancel {
		return false
	}
	e.actions.PerformPostActions()

	e.finalizeAxisSystem()
	e.finalizeUnits()

	return !e.errors.HasFatal()
}

// FinishExport writes the scene to disk and releases everything. The
// teardown runs even when writing fails or DoExport never ran.
func (e *Exporter) FinishExport() bool {
	if !e.initialized {
		e.errors.AddFatalf("Export session was not initialized")
		return false
	}
	defer func() {
		if e.exporter != nil {
			e.exporter.Destroy()
			e.exporter = nil
		}
		if e.scene != nil {
			e.scene.Destroy()
			e.scene = nil
		}
		if e.sdkManager != nil {
			e.sdkManager.Destroy()
			e.sdkManager = nil
		}
		if e.restoreTake {
			e.director.Takes().SetCurrent(e.prevTakeName)
			e.restoreTake = false
		}
		e.initialized = false
	}()

	if e.didCancel {
		e.errors.AddErrorf("Export was interrupted, no file written")
		return false
	}
	if e.errors.HasFatal() {
		return false
	}

	formatIndex, version := e.resolveFileFormat()
	if formatIndex < 0 {
		e.errors.AddFatalf("Could not resolve the output format [ %s ]", e.opts.Version)
		return false
	}

	if !e.exporter.Initialize(e.outputPath, formatIndex, e.sdkManager.IOSettings()) {
		e.errors.AddFatalf("%s", e.exporter.Status())
		return false
	}
	e.exporter.SetFileExportVersion(version)
	e.exporter.IOSettings().SetBoolProp(fbxsdk.ExpEmbedded, e.opts.EmbedMedia)

	writeStart := e.clock()
	ok := e.exporter.Export(e.scene)
	e.timings.Writing = e.clock().Sub(writeStart)
	if !ok {
		e.errors.AddFatalf("%s", e.exporter.Status())
		return false
	}
	return !e.errors.HasFatal()
}

func (e *Exporter) switchTake() {
	if e.opts.TakeName == "" {
		return
	}
	takes := e.director.Takes()
	cur := takes.Current()
	if cur != nil && cur.Name() == e.opts.TakeName {
		return
	}
	if err := takes.SetCurrent(e.opts.TakeName); err != nil {
		e.errors.AddErrorf("Could not find take [ %s ], exporting the current take instead", e.opts.TakeName)
		return
	}
	if cur != nil {
		e.prevTakeName = cur.Name()
		e.restoreTake = true
	}
}

// resolveExportScope decides which network the export walks. For
// bundle exports this is the lowest network containing every matched
// bundle member, /obj when the members do not share one.
func (e *Exporter) resolveExportScope() (*opnet.Node, bool) {
	d := e.director

	if !e.opts.ExportingBundles {
		path := e.opts.StartNodePath
		if path == "" {
			path = "/obj"
		}
		n := d.FindNode(path)
		if n == nil {
			e.errors.AddFatalf("Could not find the start node specified [ %s ]", path)
			return nil, false
		}
		return n, true
	}

	var members []*opnet.Node
	for _, b := range d.Bundles().Bundles() {
		if !opnet.MatchName(b.Name(), e.opts.BundlePattern) {
			continue
		}
		for _, n := range b.Nodes() {
			e.nm.AddBundledNode(n)
			members = append(members, n)
		}
	}
	if len(members) == 0 {
		e.errors.AddErrorf("No bundles matched [ %s ], exporting from /obj instead", e.opts.BundlePattern)
		return d.ObjNode(), true
	}

	for scope := members[0].Parent(); scope != nil && scope != d.Root(); scope = scope.Parent() {
		if scope.IsNetwork() && containsAllNodes(scope, members) {
			return scope, true
		}
	}
	return d.ObjNode(), true
}

func containsAllNodes(net *opnet.Node, nodes []*opnet.Node) bool {
	for _, n := range nodes {
		if n != net && !n.IsContainedBy(net) {
			return false
		}
	}
	return true
}

func (e *Exporter) stampSceneInfo() {
	info := e.scene.SceneInfo()
	info.OriginalApplicationVendor = appVendor
	info.OriginalApplicationName = appName
	info.OriginalApplicationVersion = appVersion
	info.OriginalFileName = e.outputPath
	info.LastSavedApplicationVendor = appVendor
	info.LastSavedApplicationName = appName
	info.LastSavedApplicationVersion = appVersion
	info.ApplicationNativeFile = e.outputPath
}

func (e *Exporter) setupTimeSettings(rate float64) {
	gs := e.scene.GlobalSettings()
	mode := fbxsdk.TimeModeFromRate(rate)
	gs.SetTimeMode(mode)
	if mode == fbxsdk.TimeModeCustom {
		gs.SetCustomFrameRate(rate)
	}
	gs.SetTimelineDefaultTimeSpan(fbxsdk.TimeSpan{
		Start: fbxsdk.TimeFromSeconds(e.startTime),
		Stop:  fbxsdk.TimeFromSeconds(e.endTime),
	})
}

func (e *Exporter) exportAnimation(cm *opnet.ChannelManager) {
	animStart := e.clock()
	defer func() { e.timings.Animation += e.clock().Sub(animStart) }()

	av := NewAnimVisitor(e.director, e.nm, &e.boss)

	clips := e.opts.ExportClips
	if len(clips) == 0 {
		name := "Take 001"
		if cur := e.director.Takes().Current(); cur != nil {
			name = cur.Name()
		}
		clips = []ExportClip{{
			Name:       name,
			StartFrame: cm.FrameFromTime(e.startTime),
			EndFrame:   cm.FrameFromTime(e.endTime),
		}}
	}

	for _, clip := range clips {
		start := cm.TimeFromFrame(clip.StartFrame)
		end := cm.TimeFromFrame(clip.EndFrame)
		if end < start {
			e.errors.AddErrorf("Skipping clip [ %s ] with an empty frame range", clip.Name)
			continue
		}

		span := fbxsdk.TimeSpan{
			Start: fbxsdk.TimeFromSeconds(start),
			Stop:  fbxsdk.TimeFromSeconds(end),
		}
		stack := e.scene.NewAnimStack(clip.Name)
		stack.SetLocalTimeSpan(span)
		stack.SetReferenceTimeSpan(span)
		layer := e.scene.NewAnimLayer("Layer0")
		stack.AddMember(layer)

		// the dummy root of a subnet export is a recorded pair like any
		// other, so the visitor bakes its animation too
		av.Reset(layer)
		av.VisitScene(start, end)
		if av.DidCancel() {
			e.didCancel = true
			return
		}
	}
}

func (e *Exporter) finalizeAxisSystem() {
	sceneAxis := fbxsdk.MayaYUp
	if e.director.OrientationMode() == opnet.OrientZUp {
		sceneAxis = fbxsdk.MayaZUp
	}
	gs := e.scene.GlobalSettings()
	gs.SetAxisSystem(sceneAxis)

	if !e.opts.ConvertAxisSystem {
		return
	}
	var target fbxsdk.AxisSystem
	switch e.opts.AxisSystem {
	case AxisCurrent:
		target = sceneAxis
	case AxisYUpRightHanded:
		target = fbxsdk.MayaYUp
	case AxisYUpLeftHanded:
		target = fbxsdk.DirectX
	case AxisZUpRightHanded:
		target = fbxsdk.MayaZUp
	default:
		e.errors.AddErrorf("Unknown axis system [ %s ]", e.opts.AxisSystem)
		return
	}
	if target == sceneAxis {
		return
	}
	target.ConvertScene(e.scene)
	gs.SetOriginalUpAxis(sceneAxis)
}

func (e *Exporter) finalizeUnits() {
	sceneUnit := fbxsdk.NewSystemUnit(e.director.ChannelManager().UnitLength() * 100)
	gs := e.scene.GlobalSettings()
	gs.SetSystemUnit(sceneUnit)
	gs.SetOriginalSystemUnit(sceneUnit)

	if !e.opts.ConvertUnits {
		return
	}
	target, ok := systemUnits[e.opts.ConvertUnitTo]
	if !ok {
		e.errors.AddErrorf("Unknown unit [ %s ]", e.opts.ConvertUnitTo)
		return
	}
	target.ConvertScene(e.scene)
	gs.SetOriginalSystemUnit(sceneUnit)
}

// resolveFileFormat splits the "NAME | VERSION" selector and matches
// NAME plus the ascii/binary suffix against the writer registry.
func (e *Exporter) resolveFileFormat() (int, string) {
	name, version := "FBX", "FBX201400"
	if parts := strings.SplitN(e.opts.Version, "|", 2); len(parts) == 2 {
		if n := strings.TrimSpace(parts[0]); n != "" {
			name = n
		}
		if v := strings.TrimSpace(parts[1]); v != "" {
			version = v
		}
	} else if v := strings.TrimSpace(e.opts.Version); v != "" {
		name = v
	}

	suffix := " binary"
	if e.opts.ExportInAscii {
		suffix = " ascii"
	}
	target := name + suffix

	registry := e.sdkManager.IORegistry()
	for i := 0; i < registry.WriterFormatCount(); i++ {
		if registry.WriterIsFBX(i) && strings.HasPrefix(registry.WriterFormatDescription(i), target) {
			return i, version
		}
	}
	return -1, version
}
