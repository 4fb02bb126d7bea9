package fbxsdk

// Manager owns SDK-side resources. Every Manager created by NewManager
// must be released with Destroy exactly once; Destroyed reports whether
// that happened, so resource-pairing can be asserted in tests.
type Manager struct {
	registry   *IORegistry
	ioSettings *IOSettings
	destroyed  bool
}

func NewManager() *Manager {
	return &Manager{
		registry:   newIORegistry(),
		ioSettings: newIOSettings(),
	}
}

func (m *Manager) IORegistry() *IORegistry { return m.registry }
func (m *Manager) IOSettings() *IOSettings { return m.ioSettings }

func (m *Manager) Destroy()        { m.destroyed = true }
func (m *Manager) Destroyed() bool { return m.destroyed }

type SceneInfo struct {
	OriginalApplicationVendor   string
	OriginalApplicationName     string
	OriginalApplicationVersion  string
	OriginalFileName            string
	LastSavedApplicationVendor  string
	LastSavedApplicationName    string
	LastSavedApplicationVersion string

	// extra Original properties some downstream tools expect
	ApplicationActiveProject string
	ApplicationNativeFile    string
}

type GlobalLightSettings struct {
	ambient [3]float64
}

func (g *GlobalLightSettings) SetAmbientColor(r, gr, b float64) {
	g.ambient = [3]float64{r, gr, b}
}

func (g *GlobalLightSettings) AmbientColor() [3]float64 { return g.ambient }

type GlobalSettings struct {
	timeMode        TimeMode
	customFrameRate float64
	timeSpan        TimeSpan

	axis         AxisSystem
	originalAxis *AxisSystem

	unit         SystemUnit
	originalUnit SystemUnit
}

func (g *GlobalSettings) TimeMode() TimeMode                     { return g.timeMode }
func (g *GlobalSettings) SetTimeMode(m TimeMode)                 { g.timeMode = m }
func (g *GlobalSettings) CustomFrameRate() float64               { return g.customFrameRate }
func (g *GlobalSettings) SetCustomFrameRate(r float64)           { g.customFrameRate = r }
func (g *GlobalSettings) TimelineDefaultTimeSpan() TimeSpan      { return g.timeSpan }
func (g *GlobalSettings) SetTimelineDefaultTimeSpan(ts TimeSpan) { g.timeSpan = ts }

func (g *GlobalSettings) AxisSystem() AxisSystem     { return g.axis }
func (g *GlobalSettings) SetAxisSystem(a AxisSystem) { g.axis = a }

// SetOriginalUpAxis records the axis system the scene was authored in,
// before a conversion was applied.
func (g *GlobalSettings) SetOriginalUpAxis(a AxisSystem) {
	copied := a
	g.originalAxis = &copied
}

// OriginalUpAxis returns the recorded pre-conversion axis system, nil
// when no conversion ever ran.
func (g *GlobalSettings) OriginalUpAxis() *AxisSystem { return g.originalAxis }

func (g *GlobalSettings) SystemUnit() SystemUnit             { return g.unit }
func (g *GlobalSettings) SetSystemUnit(u SystemUnit)         { g.unit = u }
func (g *GlobalSettings) OriginalSystemUnit() SystemUnit     { return g.originalUnit }
func (g *GlobalSettings) SetOriginalSystemUnit(u SystemUnit) { g.originalUnit = u }

// Scene is the target scene being built. It is owned by exactly one
// export session and must be destroyed when the session finishes.
type Scene struct {
	manager *Manager
	name    string
	root    *Node

	settings      GlobalSettings
	lightSettings GlobalLightSettings
	info          SceneInfo

	stacks     []*AnimStack
	layers     []*AnimLayer
	curveNodes []*AnimCurveNode
	curves     []*AnimCurve

	lastId    int64
	destroyed bool
}

func (m *Manager) NewScene(name string) *Scene {
	if m.destroyed {
		return nil
	}
	s := &Scene{
		manager: m,
		name:    name,
		lastId:  1000000,
		settings: GlobalSettings{
			timeMode:        TimeModeDefault,
			customFrameRate: -1,
			axis:            MayaYUp,
			unit:            UnitCM,
			originalUnit:    UnitCM,
		},
	}
	s.root = &Node{scene: s, id: 0, name: "RootNode", Visibility: 1, LclScaling: [3]float64{1, 1, 1}}
	return s
}

func (s *Scene) Manager() *Manager                         { return s.manager }
func (s *Scene) RootNode() *Node                           { return s.root }
func (s *Scene) GlobalSettings() *GlobalSettings           { return &s.settings }
func (s *Scene) GlobalLightSettings() *GlobalLightSettings { return &s.lightSettings }
func (s *Scene) SceneInfo() *SceneInfo                     { return &s.info }

func (s *Scene) AnimStacks() []*AnimStack         { return s.stacks }
func (s *Scene) AnimLayers() []*AnimLayer         { return s.layers }
func (s *Scene) AnimCurveNodes() []*AnimCurveNode { return s.curveNodes }
func (s *Scene) AnimCurves() []*AnimCurve         { return s.curves }

func (s *Scene) GenerateId() int64 {
	s.lastId++
	return s.lastId
}

// NewNode creates a detached node; attach it with AddChild.
func (s *Scene) NewNode(name string) *Node {
	return &Node{
		scene:      s,
		id:         s.GenerateId(),
		name:       name,
		Visibility: 1,
		LclScaling: [3]float64{1, 1, 1},
	}
}

func (s *Scene) Destroy()        { s.destroyed = true }
func (s *Scene) Destroyed() bool { return s.destroyed }

// allNodes returns every node reachable from the root, depth first.
func (s *Scene) allNodes() []*Node {
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		out = append(out, n)
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(s.root)
	return out
}
