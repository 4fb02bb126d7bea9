package opnet

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

type Kind int

const (
	KindNetwork Kind = iota
	KindSubnet
	KindNull
	KindGeometry
	KindLight
	KindInstance
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindSubnet:
		return "subnet"
	case KindNull:
		return "null"
	case KindGeometry:
		return "geometry"
	case KindLight:
		return "light"
	case KindInstance:
		return "instance"
	}
	return "unknown"
}

// Transform is a sampled local transform. Rotate is in degrees.
type Transform struct {
	Translate mgl32.Vec3
	Rotate    mgl32.Vec3
	Scale     mgl32.Vec3
}

type Key struct {
	Time  float64
	Value mgl32.Vec3
}

// Channel is a piecewise-linear vector track. Default is returned when
// no keys are present; samples outside the key range clamp to the ends.
type Channel struct {
	Default mgl32.Vec3
	Keys    []Key
}

func (c *Channel) SampleAt(t float64) mgl32.Vec3 {
	if len(c.Keys) == 0 {
		return c.Default
	}
	if t <= c.Keys[0].Time {
		return c.Keys[0].Value
	}
	last := len(c.Keys) - 1
	if t >= c.Keys[last].Time {
		return c.Keys[last].Value
	}
	for i := 1; i <= last; i++ {
		if t <= c.Keys[i].Time {
			prev, next := c.Keys[i-1], c.Keys[i]
			span := next.Time - prev.Time
			if span <= 0 {
				return next.Value
			}
			f := float32((t - prev.Time) / span)
			return prev.Value.Add(next.Value.Sub(prev.Value).Mul(f))
		}
	}
	return c.Keys[last].Value
}

type Channels struct {
	Translate Channel
	Rotate    Channel
	Scale     Channel
}

func NewChannels() *Channels {
	return &Channels{
		Scale: Channel{Default: mgl32.Vec3{1, 1, 1}},
	}
}

func (ch *Channels) SampleAt(t float64) Transform {
	return Transform{
		Translate: ch.Translate.SampleAt(t),
		Rotate:    ch.Rotate.SampleAt(t),
		Scale:     ch.Scale.SampleAt(t),
	}
}

type Geometry struct {
	Points   []mgl32.Vec3
	Polygons [][]int32
	Normals  []mgl32.Vec3
	UVs      []mgl32.Vec2
	UVIndex  []int32
}

type Light struct {
	Color     mgl32.Vec3
	Intensity float32
	Ambient   bool
}

type Node struct {
	name     string
	kind     Kind
	parent   *Node
	children []*Node
	director *Director

	Visible      bool
	Geometry     *Geometry
	Light        *Light
	InstancePath string

	// channel sets keyed by take name, "" is the base take
	channels map[string]*Channels
}

func (n *Node) Name() string      { return n.name }
func (n *Node) Kind() Kind        { return n.kind }
func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return n.children }

func (n *Node) IsNetwork() bool {
	return n.kind == KindNetwork || n.kind == KindSubnet
}

func (n *Node) FullPath() string {
	if n.parent == nil {
		return "/"
	}
	var names []string
	for cur := n; cur.parent != nil; cur = cur.parent {
		names = append(names, cur.name)
	}
	var sb strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		sb.WriteByte('/')
		sb.WriteString(names[i])
	}
	return sb.String()
}

func (n *Node) IsContainedBy(ancestor *Node) bool {
	for cur := n.parent; cur != nil; cur = cur.parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

func (n *Node) CreateChild(name string, kind Kind) *Node {
	child := &Node{
		name:     name,
		kind:     kind,
		parent:   n,
		director: n.director,
		Visible:  true,
		channels: make(map[string]*Channels),
	}
	n.children = append(n.children, child)
	return child
}

func (n *Node) Child(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (n *Node) SetChannels(take string, ch *Channels) {
	n.channels[take] = ch
}

func (n *Node) BaseChannels() *Channels {
	ch, ok := n.channels[""]
	if !ok {
		ch = NewChannels()
		n.channels[""] = ch
	}
	return ch
}

// activeChannels resolves the channel set for the currently active
// take, falling back to the base take.
func (n *Node) activeChannels() *Channels {
	if n.director != nil {
		if take := n.director.Takes().Current(); take != nil {
			if ch, ok := n.channels[take.Name()]; ok {
				return ch
			}
		}
	}
	if ch, ok := n.channels[""]; ok {
		return ch
	}
	return nil
}

// TransformAt samples the local transform at time t, preferring the
// channel set of the currently active take over the base take.
func (n *Node) TransformAt(t float64) Transform {
	if ch := n.activeChannels(); ch != nil {
		return ch.SampleAt(t)
	}
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// IsTimeDependent reports whether the node's transform actually varies
// over time in the active take.
func (n *Node) IsTimeDependent() bool {
	ch := n.activeChannels()
	if ch == nil {
		return false
	}
	return len(ch.Translate.Keys) > 0 || len(ch.Rotate.Keys) > 0 || len(ch.Scale.Keys) > 0
}
