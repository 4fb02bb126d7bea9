package rop

import (
	"math"

	"github.com/opforge/fbxexport/fbxsdk"
	"github.com/opforge/fbxexport/opnet"
)

// AnimVisitor bakes node transforms into animation curves by sampling
// every frame of the export range. It walks the pairs recorded by the
// main pass, so only exported nodes get curves.
type AnimVisitor struct {
	nm       *NodeManager
	boss     *Interrupt
	director *opnet.Director

	layer     *fbxsdk.AnimLayer
	didCancel bool
}

func NewAnimVisitor(d *opnet.Director, nm *NodeManager, boss *Interrupt) *AnimVisitor {
	return &AnimVisitor{nm: nm, boss: boss, director: d}
}

// Reset points the visitor at the layer the next pass writes into.
func (v *AnimVisitor) Reset(layer *fbxsdk.AnimLayer) {
	v.layer = layer
}

func (v *AnimVisitor) DidCancel() bool { return v.didCancel }

func (v *AnimVisitor) VisitScene(startTime, endTime float64) {
	for _, pair := range v.nm.Pairs() {
		if v.boss.Interrupted() {
			v.didCancel = true
			return
		}
		if !pair.Op.IsTimeDependent() {
			continue
		}
		v.ExportTRSAnimation(pair.Op, pair.Fbx, startTime, endTime)
	}
}

// ExportTRSAnimation bakes one node's translate, rotate and scale
// channels over [startTime, endTime] at the network's sample rate.
func (v *AnimVisitor) ExportTRSAnimation(op *opnet.Node, fbxNode *fbxsdk.Node, startTime, endTime float64) {
	rate := v.director.ChannelManager().SamplesPerSec()
	if rate <= 0 {
		return
	}
	numSamples := int(math.Floor((endTime-startTime)*rate+0.5)) + 1

	tcn := fbxNode.CurveNode(fbxsdk.ChannelTranslation, v.layer)
	rcn := fbxNode.CurveNode(fbxsdk.ChannelRotation, v.layer)
	scn := fbxNode.CurveNode(fbxsdk.ChannelScaling, v.layer)

	for i := 0; i < numSamples; i++ {
		t := startTime + float64(i)/rate
		if t > endTime {
			t = endTime
		}
		tr := op.TransformAt(t)
		key := fbxsdk.TimeFromSeconds(t)
		for comp := 0; comp < 3; comp++ {
			tcn.ComponentCurve(comp).AddKey(key, tr.Translate[comp])
			rcn.ComponentCurve(comp).AddKey(key, tr.Rotate[comp])
			scn.ComponentCurve(comp).AddKey(key, tr.Scale[comp])
		}
	}
}
