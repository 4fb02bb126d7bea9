package rop

import (
	"strconv"

	"github.com/opforge/fbxexport/fbxsdk"
	"github.com/opforge/fbxexport/opnet"
	"github.com/opforge/fbxexport/utils"
)

// NodePair binds a source network node to the target node created for
// it, in creation order.
type NodePair struct {
	Op  *opnet.Node
	Fbx *fbxsdk.Node
}

// NodeManager tracks source-to-target node pairs, bundle membership
// and name uniqueness for one export session.
type NodeManager struct {
	pairs   []NodePair
	byOp    map[*opnet.Node]*fbxsdk.Node
	bundled map[*opnet.Node]bool

	nameCounts map[string]int
	rng        *utils.RandomNameGenerator
}

func NewNodeManager() *NodeManager {
	return &NodeManager{
		byOp:       make(map[*opnet.Node]*fbxsdk.Node),
		bundled:    make(map[*opnet.Node]bool),
		nameCounts: make(map[string]int),
		rng:        utils.NewRandomNameGenerator(0),
	}
}

func (nm *NodeManager) AddBundledNode(n *opnet.Node) { nm.bundled[n] = true }
func (nm *NodeManager) IsBundled(n *opnet.Node) bool { return nm.bundled[n] }

func (nm *NodeManager) BundledNodes() []*opnet.Node {
	out := make([]*opnet.Node, 0, len(nm.bundled))
	for n := range nm.bundled {
		out = append(out, n)
	}
	return out
}

func (nm *NodeManager) AddNodePair(op *opnet.Node, fbx *fbxsdk.Node) {
	nm.pairs = append(nm.pairs, NodePair{Op: op, Fbx: fbx})
	nm.byOp[op] = fbx
}

func (nm *NodeManager) Pairs() []NodePair { return nm.pairs }

func (nm *NodeManager) FindFbxNode(op *opnet.Node) *fbxsdk.Node {
	return nm.byOp[op]
}

// MakeNameUnique returns name as-is on first use and with a numeric
// suffix afterwards. Empty names get a generated one.
func (nm *NodeManager) MakeNameUnique(name string) string {
	if name == "" {
		name = nm.rng.RandomName()
	}
	count := nm.nameCounts[name]
	nm.nameCounts[name] = count + 1
	if count == 0 {
		return name
	}
	return name + strconv.Itoa(count)
}
