package opnet

import (
	"strings"
)

type OrientationMode int

const (
	OrientYUp OrientationMode = iota
	OrientZUp
)

// ChannelManager holds the global animation evaluation settings:
// playback rate and the world unit length in meters.
type ChannelManager struct {
	samplesPerSec float64
	unitLength    float64
}

func (cm *ChannelManager) SamplesPerSec() float64      { return cm.samplesPerSec }
func (cm *ChannelManager) SetSamplesPerSec(sp float64) { cm.samplesPerSec = sp }
func (cm *ChannelManager) UnitLength() float64         { return cm.unitLength }
func (cm *ChannelManager) SetUnitLength(ul float64)    { cm.unitLength = ul }

// FrameFromTime converts seconds to a frame number (frame 1 at t=0).
func (cm *ChannelManager) FrameFromTime(t float64) float64 {
	return t*cm.samplesPerSec + 1
}

// TimeFromFrame converts a frame number back to seconds.
func (cm *ChannelManager) TimeFromFrame(frame float64) float64 {
	return (frame - 1) / cm.samplesPerSec
}

// Director owns the operator network: the root network, the object
// network under /obj, bundles, takes and the channel manager.
type Director struct {
	root        *Node
	obj         *Node
	bundles     *BundleList
	takes       *TakeManager
	channels    *ChannelManager
	orientation OrientationMode
}

func NewDirector() *Director {
	d := &Director{
		bundles:  &BundleList{},
		takes:    NewTakeManager(),
		channels: &ChannelManager{samplesPerSec: 24, unitLength: 1},
	}
	d.root = &Node{
		name:     "",
		kind:     KindNetwork,
		director: d,
		Visible:  true,
		channels: make(map[string]*Channels),
	}
	d.obj = d.root.CreateChild("obj", KindNetwork)
	return d
}

func (d *Director) Root() *Node                          { return d.root }
func (d *Director) ObjNode() *Node                       { return d.obj }
func (d *Director) Bundles() *BundleList                 { return d.bundles }
func (d *Director) Takes() *TakeManager                  { return d.takes }
func (d *Director) ChannelManager() *ChannelManager      { return d.channels }
func (d *Director) OrientationMode() OrientationMode     { return d.orientation }
func (d *Director) SetOrientationMode(m OrientationMode) { d.orientation = m }

func (d *Director) FindNode(path string) *Node {
	if path == "" {
		return nil
	}
	if path == "/" {
		return d.root
	}
	cur := d.root
	for _, part := range strings.Split(strings.Trim(path, "/"), "/") {
		if part == "" {
			continue
		}
		cur = cur.Child(part)
		if cur == nil {
			return nil
		}
	}
	return cur
}
