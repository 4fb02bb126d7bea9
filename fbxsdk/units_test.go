package fbxsdk

import (
	"math"
	"testing"
)

var unitScaleTests = []struct {
	unit  SystemUnit
	scale float64
}{
	{UnitMM, 0.1},
	{UnitCM, 1},
	{UnitDM, 10},
	{UnitM, 100},
	{UnitKM, 100000},
	{UnitInch, 2.54},
	{UnitFoot, 30.48},
	{UnitYard, 91.44},
	{UnitMile, 160934.4},
}

func TestSystemUnitScaleFactors(t *testing.T) {
	for _, test := range unitScaleTests {
		if got := test.unit.ScaleFactor(); got != test.scale {
			t.Errorf("scale factor %v; expected %v", got, test.scale)
		}
	}
}

func TestUnitConvertSceneNoop(t *testing.T) {
	mgr := NewManager()
	defer mgr.Destroy()
	s := mgr.NewScene("")
	defer s.Destroy()

	n := s.NewNode("box")
	n.LclTranslation = [3]float64{1, 2, 3}
	s.RootNode().AddChild(n)

	UnitCM.ConvertScene(s)

	if n.LclTranslation != [3]float64{1, 2, 3} {
		t.Errorf("no-op conversion rescaled the node to %v", n.LclTranslation)
	}
}

func TestUnitConvertSceneRescales(t *testing.T) {
	mgr := NewManager()
	defer mgr.Destroy()
	s := mgr.NewScene("")
	defer s.Destroy()
	s.GlobalSettings().SetSystemUnit(UnitM)

	n := s.NewNode("box")
	n.LclTranslation = [3]float64{1, 0, 0}
	mesh := NewMesh("box")
	mesh.ControlPoints = []float64{0.5, 0, 0}
	n.SetNodeAttribute(mesh)
	s.RootNode().AddChild(n)

	layer := s.NewAnimLayer("Layer0")
	curve := n.CurveNode(ChannelTranslation, layer).ComponentCurve(0)
	curve.AddKey(0, 2)

	UnitMM.ConvertScene(s)

	if math.Abs(n.LclTranslation[0]-1000) > 1e-9 {
		t.Errorf("translation %v; expected 1000mm", n.LclTranslation[0])
	}
	if math.Abs(mesh.ControlPoints[0]-500) > 1e-9 {
		t.Errorf("control point %v; expected 500mm", mesh.ControlPoints[0])
	}
	if math.Abs(float64(curve.KeyValues[0])-2000) > 1e-3 {
		t.Errorf("curve key %v; expected 2000mm", curve.KeyValues[0])
	}
	if s.GlobalSettings().SystemUnit() != UnitMM {
		t.Errorf("system unit not updated after conversion")
	}
}

func TestUnitConvertSharedMeshOnce(t *testing.T) {
	mgr := NewManager()
	defer mgr.Destroy()
	s := mgr.NewScene("")
	defer s.Destroy()
	s.GlobalSettings().SetSystemUnit(UnitM)

	mesh := NewMesh("shared")
	mesh.ControlPoints = []float64{1}
	a := s.NewNode("a")
	a.SetNodeAttribute(mesh)
	b := s.NewNode("b")
	b.SetNodeAttribute(mesh)
	s.RootNode().AddChild(a)
	s.RootNode().AddChild(b)

	UnitCM.ConvertScene(s)

	if math.Abs(mesh.ControlPoints[0]-100) > 1e-9 {
		t.Errorf("shared mesh scaled to %v; expected a single 100x rescale", mesh.ControlPoints[0])
	}
}
