package fbxsdk

// Animatable node channels.
const (
	ChannelTranslation = "Lcl Translation"
	ChannelRotation    = "Lcl Rotation"
	ChannelScaling     = "Lcl Scaling"
)

// AnimStack is a named, time-span-bounded animation clip.
type AnimStack struct {
	id        int64
	name      string
	local     TimeSpan
	reference TimeSpan
	members   []*AnimLayer
}

func (s *Scene) NewAnimStack(name string) *AnimStack {
	st := &AnimStack{id: s.GenerateId(), name: name}
	s.stacks = append(s.stacks, st)
	return st
}

func (st *AnimStack) Name() string                     { return st.name }
func (st *AnimStack) AddMember(l *AnimLayer)           { st.members = append(st.members, l) }
func (st *AnimStack) Members() []*AnimLayer            { return st.members }
func (st *AnimStack) SetLocalTimeSpan(ts TimeSpan)     { st.local = ts }
func (st *AnimStack) LocalTimeSpan() TimeSpan          { return st.local }
func (st *AnimStack) SetReferenceTimeSpan(ts TimeSpan) { st.reference = ts }
func (st *AnimStack) ReferenceTimeSpan() TimeSpan      { return st.reference }

type AnimLayer struct {
	id   int64
	name string
}

func (s *Scene) NewAnimLayer(name string) *AnimLayer {
	l := &AnimLayer{id: s.GenerateId(), name: name}
	s.layers = append(s.layers, l)
	return l
}

func (l *AnimLayer) Name() string { return l.name }

// AnimCurve holds baked keys for one scalar component.
type AnimCurve struct {
	id        int64
	KeyTimes  []Time
	KeyValues []float32
}

func (s *Scene) NewAnimCurve() *AnimCurve {
	c := &AnimCurve{id: s.GenerateId()}
	s.curves = append(s.curves, c)
	return c
}

func (c *AnimCurve) AddKey(t Time, v float32) {
	c.KeyTimes = append(c.KeyTimes, t)
	c.KeyValues = append(c.KeyValues, v)
}

// AnimCurveNode binds up to three component curves to a node channel on
// an animation layer.
type AnimCurveNode struct {
	id      int64
	channel string
	node    *Node
	layer   *AnimLayer
	curves  [3]*AnimCurve
}

type curveNodeKey struct {
	channel string
	layer   *AnimLayer
}

// CurveNode returns the curve node for the given channel on the given
// layer, creating and registering it on first use. Repeated calls
// resolve the identical object, so every pass over the same layer bakes
// into the same curves, while separate clips keep separate ones.
func (n *Node) CurveNode(channel string, layer *AnimLayer) *AnimCurveNode {
	if n.curveNodes == nil {
		n.curveNodes = make(map[curveNodeKey]*AnimCurveNode)
	}
	if cn, ok := n.curveNodes[curveNodeKey{channel, layer}]; ok {
		return cn
	}
	cn := &AnimCurveNode{
		id:      n.scene.GenerateId(),
		channel: channel,
		node:    n,
		layer:   layer,
	}
	n.curveNodes[curveNodeKey{channel, layer}] = cn
	n.scene.curveNodes = append(n.scene.curveNodes, cn)
	return cn
}

// ComponentCurve returns the X/Y/Z component curve (0..2), creating it
// on first use.
func (cn *AnimCurveNode) ComponentCurve(component int) *AnimCurve {
	if cn.curves[component] == nil {
		cn.curves[component] = cn.node.scene.NewAnimCurve()
	}
	return cn.curves[component]
}
