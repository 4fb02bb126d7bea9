package fbxsdk

import (
	"math"
	"testing"
)

func TestAxisSystemEquivalenceClasses(t *testing.T) {
	if MayaYUp != MotionBuilder || MayaYUp != OpenGL {
		t.Errorf("MayaYUp, MotionBuilder and OpenGL must compare equal")
	}
	if DirectX != Lightwave {
		t.Errorf("DirectX and Lightwave must compare equal")
	}
	if MayaZUp != Max {
		t.Errorf("MayaZUp and Max must compare equal")
	}
	if MayaYUp == MayaZUp || MayaYUp == DirectX || MayaZUp == DirectX {
		t.Errorf("distinct axis systems must not compare equal")
	}
}

func TestConvertSceneNoop(t *testing.T) {
	mgr := NewManager()
	defer mgr.Destroy()
	s := mgr.NewScene("")
	defer s.Destroy()

	n := s.NewNode("box")
	n.LclTranslation = [3]float64{1, 2, 3}
	n.LclRotation = [3]float64{10, 20, 30}
	s.RootNode().AddChild(n)

	// the scene starts out in MayaYUp
	MotionBuilder.ConvertScene(s)

	if n.LclTranslation != [3]float64{1, 2, 3} {
		t.Errorf("no-op conversion moved the node to %v", n.LclTranslation)
	}
	if n.LclRotation != [3]float64{10, 20, 30} {
		t.Errorf("no-op conversion rotated the node to %v", n.LclRotation)
	}
	if s.GlobalSettings().AxisSystem() != MayaYUp {
		t.Errorf("no-op conversion changed the axis system")
	}
}

func TestConvertSceneZUpToYUp(t *testing.T) {
	mgr := NewManager()
	defer mgr.Destroy()
	s := mgr.NewScene("")
	defer s.Destroy()
	s.GlobalSettings().SetAxisSystem(MayaZUp)

	n := s.NewNode("box")
	n.LclTranslation = [3]float64{1, 2, 3}
	s.RootNode().AddChild(n)

	MayaYUp.ConvertScene(s)

	want := [3]float64{1, 3, -2}
	for i := range want {
		if math.Abs(n.LclTranslation[i]-want[i]) > 1e-9 {
			t.Fatalf("converted translation %v; expected %v", n.LclTranslation, want)
		}
	}
	if s.GlobalSettings().AxisSystem() != MayaYUp {
		t.Errorf("axis system not updated after conversion")
	}
}

func TestConvertSceneOnlyRootLevelNodes(t *testing.T) {
	mgr := NewManager()
	defer mgr.Destroy()
	s := mgr.NewScene("")
	defer s.Destroy()
	s.GlobalSettings().SetAxisSystem(MayaZUp)

	parent := s.NewNode("parent")
	parent.LclTranslation = [3]float64{0, 0, 1}
	s.RootNode().AddChild(parent)
	child := s.NewNode("child")
	child.LclTranslation = [3]float64{4, 5, 6}
	parent.AddChild(child)

	MayaYUp.ConvertScene(s)

	// local transforms below the root level stay untouched
	if child.LclTranslation != [3]float64{4, 5, 6} {
		t.Errorf("child local translation changed to %v", child.LclTranslation)
	}
}
