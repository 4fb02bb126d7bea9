package rop

import (
	"github.com/opforge/fbxexport/fbxsdk"
	"github.com/opforge/fbxexport/opnet"
	"github.com/opforge/fbxexport/utils"
)

// MainVisitor walks the operator network once and creates the target
// node for every exported object, with transforms sampled at the
// export start time. Animation is layered on afterwards by AnimVisitor.
type MainVisitor struct {
	scene    *fbxsdk.Scene
	nm       *NodeManager
	errors   *ErrorManager
	actions  *ActionManager
	boss     *Interrupt
	director *opnet.Director
	opts     *Options

	startTime float64

	ambientSum   utils.ColorFloat
	ambientCount int

	instances *CreateInstancesAction
	didCancel bool
}

func NewMainVisitor(scene *fbxsdk.Scene, d *opnet.Director, nm *NodeManager,
	em *ErrorManager, am *ActionManager, boss *Interrupt,
	opts *Options, startTime float64) *MainVisitor {
	return &MainVisitor{
		scene:     scene,
		nm:        nm,
		errors:    em,
		actions:   am,
		boss:      boss,
		director:  d,
		opts:      opts,
		startTime: startTime,
	}
}

func (v *MainVisitor) DidCancel() bool { return v.didCancel }

// AccumAmbientColor averages the color of every ambient light seen
// during the walk; ok is false when there were none.
func (v *MainVisitor) AccumAmbientColor() (c utils.ColorFloat, ok bool) {
	if v.ambientCount == 0 {
		return utils.ColorFloat{}, false
	}
	return v.ambientSum.Scale(1 / float32(v.ambientCount)), true
}

// VisitScene exports the children of root under parentFbx. When the
// session exports bundles, only bundle members (and everything below
// them) produce nodes; intermediate networks are walked through
// without creating one.
func (v *MainVisitor) VisitScene(root *opnet.Node, parentFbx *fbxsdk.Node) {
	v.visitChildren(root, parentFbx, !v.opts.ExportingBundles)
}

func (v *MainVisitor) visitChildren(n *opnet.Node, parentFbx *fbxsdk.Node, included bool) {
	for _, child := range n.Children() {
		if v.boss.Interrupted() {
			v.didCancel = true
			return
		}
		if !child.Visible && !v.opts.ExportInvisibleObjects {
			continue
		}

		childIncluded := included || v.nm.IsBundled(child)
		if !childIncluded {
			if child.IsNetwork() {
				v.visitChildren(child, parentFbx, false)
			}
			continue
		}

		fbxNode := v.exportNode(child)
		parentFbx.AddChild(fbxNode)
		v.visitChildren(child, fbxNode, true)
	}
}

func (v *MainVisitor) exportNode(op *opnet.Node) *fbxsdk.Node {
	name := v.nm.MakeNameUnique(op.Name())
	fbxNode := v.scene.NewNode(name)
	setStandardTransforms(op, fbxNode, v.startTime, v.opts.ExportInvisibleObjects)

	switch op.Kind() {
	case opnet.KindGeometry:
		if op.Geometry != nil {
			fbxNode.SetNodeAttribute(meshFromGeometry(name, op.Geometry))
		} else {
			fbxNode.SetNodeAttribute(fbxsdk.NewNull(name))
		}
	case opnet.KindLight:
		if op.Light != nil && op.Light.Ambient {
			// ambient lights only feed the global ambient color
			v.ambientSum = v.ambientSum.Add(
				utils.NewColorFloat(op.Light.Color[:]).Scale(op.Light.Intensity))
			v.ambientCount++
			fbxNode.SetNodeAttribute(fbxsdk.NewNull(name))
		} else if op.Light != nil {
			light := fbxsdk.NewLight(name)
			light.Color = [3]float64{
				float64(op.Light.Color[0]),
				float64(op.Light.Color[1]),
				float64(op.Light.Color[2]),
			}
			light.Intensity = float64(op.Light.Intensity)
			fbxNode.SetNodeAttribute(light)
		}
	case opnet.KindInstance:
		fbxNode.SetNodeAttribute(fbxsdk.NewNull(name))
		if v.instances == nil {
			v.instances = NewCreateInstancesAction(v.director, v.nm, v.errors)
			v.actions.QueuePostAction(v.instances)
		}
		v.instances.AddInstance(op, fbxNode)
	default:
		fbxNode.SetNodeAttribute(fbxsdk.NewNull(name))
	}

	v.nm.AddNodePair(op, fbxNode)
	return fbxNode
}

func setStandardTransforms(op *opnet.Node, fbxNode *fbxsdk.Node, t float64, exportInvisible bool) {
	tr := op.TransformAt(t)
	fbxNode.LclTranslation = vec3to64(tr.Translate)
	fbxNode.LclRotation = vec3to64(tr.Rotate)
	fbxNode.LclScaling = vec3to64(tr.Scale)
	if !op.Visible && exportInvisible {
		fbxNode.Visibility = 0
	}
}

func vec3to64(v [3]float32) [3]float64 {
	return [3]float64{float64(v[0]), float64(v[1]), float64(v[2])}
}

// meshFromGeometry flattens the polygon soup into the layout the
// writer expects: the last index of every polygon is bitwise-negated.
func meshFromGeometry(name string, g *opnet.Geometry) *fbxsdk.Mesh {
	mesh := fbxsdk.NewMesh(name)
	mesh.ControlPoints = utils.Vec3Array32to64(g.Points)

	for _, polygon := range g.Polygons {
		for i, idx := range polygon {
			if i == len(polygon)-1 {
				idx = ^idx
			}
			mesh.PolygonVertexIndex = append(mesh.PolygonVertexIndex, idx)
		}
	}

	mesh.Normals = utils.Vec3Array32to64(g.Normals)

	if len(g.UVs) > 0 {
		mesh.UV = make([]float64, 0, len(g.UVs)*2)
		for _, uv := range g.UVs {
			mesh.UV = append(mesh.UV, float64(uv[0]), float64(uv[1]))
		}
		mesh.UVIndex = append(mesh.UVIndex[:0], g.UVIndex...)
	}

	return mesh
}
