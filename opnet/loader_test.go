package opnet

import (
	"strings"
	"testing"
)

const testSceneDoc = `
settings:
  fps: 30
  unitlength: 1
  orientation: zup
takes:
  - flying
currenttake: flying
bundles:
  chars:
    - /obj/n1/box
nodes:
  - path: /obj/n1
    kind: network
  - path: /obj/n1/box
    kind: geometry
    geometry:
      points: [[-1, -1, 0], [1, -1, 0], [1, 1, 0]]
      polygons: [[0, 1, 2]]
      normals: [[0, 0, 1], [0, 0, 1], [0, 0, 1]]
    channels:
      - take: ""
        translate:
          default: [1, 2, 3]
          keys:
            - {time: 1, value: [5, 0, 0]}
            - {time: 0, value: [0, 0, 0]}
  - path: /obj/lamp
    kind: light
    visible: false
    light:
      color: [1, 0.5, 0.25]
      intensity: 2
      ambient: true
  - path: /obj/copy
    kind: instance
    instance: /obj/n1/box
`

func TestLoadScene(t *testing.T) {
	d, err := LoadScene(strings.NewReader(testSceneDoc))
	if err != nil {
		t.Fatal(err)
	}

	if got := d.ChannelManager().SamplesPerSec(); got != 30 {
		t.Errorf("fps %v; expected 30", got)
	}
	if d.OrientationMode() != OrientZUp {
		t.Errorf("orientation not zup")
	}
	if d.Takes().Current().Name() != "flying" {
		t.Errorf("current take %q; expected flying", d.Takes().Current().Name())
	}

	box := d.FindNode("/obj/n1/box")
	if box == nil {
		t.Fatal("box not loaded")
	}
	if box.Kind() != KindGeometry || box.Geometry == nil {
		t.Fatalf("box has no geometry payload")
	}
	if len(box.Geometry.Points) != 3 || len(box.Geometry.Polygons) != 1 {
		t.Errorf("geometry has %d points, %d polygons", len(box.Geometry.Points), len(box.Geometry.Polygons))
	}

	// keys are sorted by time on load
	if got := box.BaseChannels().Translate.Keys[0].Time; got != 0 {
		t.Errorf("first key at t=%v; expected 0", got)
	}

	lamp := d.FindNode("/obj/lamp")
	if lamp == nil || lamp.Light == nil || !lamp.Light.Ambient {
		t.Fatalf("lamp not loaded as an ambient light")
	}
	if lamp.Visible {
		t.Errorf("lamp visibility flag not applied")
	}

	copyNode := d.FindNode("/obj/copy")
	if copyNode == nil || copyNode.InstancePath != "/obj/n1/box" {
		t.Errorf("instance path not loaded")
	}

	b := d.Bundles().Bundle("chars")
	if b == nil || len(b.Nodes()) != 1 || b.Nodes()[0] != box {
		t.Errorf("bundle chars not resolved to the box node")
	}
}

func TestLoadSceneQuaternionRotation(t *testing.T) {
	const doc = `
nodes:
  - path: /obj/box
    kind: geometry
    channels:
      - take: ""
        rotate:
          keys:
            - {time: 0, quat: [0, 0, 0, 1]}
            - {time: 1, quat: [0, 0, 0.7071068, 0.7071068]}
`
	d, err := LoadScene(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	box := d.FindNode("/obj/box")
	if box == nil {
		t.Fatal("box not loaded")
	}

	if got := box.TransformAt(0).Rotate; got.Len() > 1e-4 {
		t.Errorf("identity quaternion gave rotation %v", got)
	}
	got := box.TransformAt(1).Rotate
	if got.X() > 1e-3 || got.Y() > 1e-3 || got.Z() < 89.99 || got.Z() > 90.01 {
		t.Errorf("z-axis quarter turn gave rotation %v; expected (0, 0, 90)", got)
	}
}

var loadSceneErrorTests = []struct {
	name string
	doc  string
}{
	{"unknown kind", "nodes:\n  - path: /obj/a\n    kind: camera\n"},
	{"unknown orientation", "settings:\n  orientation: xup\n"},
	{"missing bundle node", "bundles:\n  b:\n    - /obj/missing\n"},
	{"unknown take", "currenttake: nowhere\n"},
	{"root path node", "nodes:\n  - path: /\n"},
}

func TestLoadSceneErrors(t *testing.T) {
	for _, test := range loadSceneErrorTests {
		if _, err := LoadScene(strings.NewReader(test.doc)); err == nil {
			t.Errorf("%s: expected an error", test.name)
		}
	}
}
