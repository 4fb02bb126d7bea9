package fbxsdk

// NodeAttribute is the payload attached to a scene node.
type NodeAttribute interface {
	AttrName() string
	element() string
}

type NullLook int

const (
	NullLookNone NullLook = iota
	NullLookCross
)

type NullAttribute struct {
	name string
	Look NullLook
}

func NewNull(name string) *NullAttribute {
	return &NullAttribute{name: name, Look: NullLookCross}
}

func (a *NullAttribute) AttrName() string { return a.name }
func (a *NullAttribute) element() string  { return "Null" }

// Mesh stores geometry the way it is written: flat control points,
// negative-terminated polygon vertex indices, per-vertex normals and an
// optional indexed UV layer.
type Mesh struct {
	name               string
	ControlPoints      []float64
	PolygonVertexIndex []int32
	Normals            []float64
	UV                 []float64
	UVIndex            []int32
}

func NewMesh(name string) *Mesh {
	return &Mesh{name: name}
}

func (m *Mesh) AttrName() string { return m.name }
func (m *Mesh) element() string  { return "Mesh" }

type LightAttribute struct {
	name      string
	Type      string // "Point", "Directional", "Spot", "Ambient"
	Color     [3]float64
	Intensity float64
}

func NewLight(name string) *LightAttribute {
	return &LightAttribute{name: name, Type: "Point", Color: [3]float64{1, 1, 1}, Intensity: 100}
}

func (a *LightAttribute) AttrName() string { return a.name }
func (a *LightAttribute) element() string  { return "Light" }

// Node is a target-scene node. Lcl transforms follow FBX conventions:
// rotation in degrees, XYZ order.
type Node struct {
	scene    *Scene
	id       int64
	name     string
	attr     NodeAttribute
	parent   *Node
	children []*Node

	LclTranslation [3]float64
	LclRotation    [3]float64
	LclScaling     [3]float64
	Visibility     float64

	curveNodes map[curveNodeKey]*AnimCurveNode
}

func (n *Node) Id() int64     { return n.id }
func (n *Node) Name() string  { return n.name }
func (n *Node) Parent() *Node { return n.parent }
func (n *Node) Scene() *Scene { return n.scene }

func (n *Node) Children() []*Node { return n.children }

func (n *Node) AddChild(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) SetNodeAttribute(attr NodeAttribute) { n.attr = attr }
func (n *Node) NodeAttribute() NodeAttribute        { return n.attr }
