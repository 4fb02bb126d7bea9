package utils

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var quatToEulerTests = []struct {
	name string
	q    mgl32.Quat
	want mgl32.Vec3 // degrees
}{
	{"identity", mgl32.Quat{W: 1}, mgl32.Vec3{0, 0, 0}},
	{"quarter turn z", mgl32.Quat{W: 0.7071068, V: mgl32.Vec3{0, 0, 0.7071068}}, mgl32.Vec3{0, 0, 90}},
	{"quarter turn x", mgl32.Quat{W: 0.7071068, V: mgl32.Vec3{0.7071068, 0, 0}}, mgl32.Vec3{90, 0, 0}},
	{"thirty degrees y", mgl32.Quat{W: 0.9659258, V: mgl32.Vec3{0, 0.2588190, 0}}, mgl32.Vec3{0, 30, 0}},
}

func TestQuatToEulerDegrees(t *testing.T) {
	for _, tc := range quatToEulerTests {
		got := RadiansToDegreesV3(QuatToEuler(tc.q.Normalize()))
		for i := 0; i < 3; i++ {
			d := got[i] - tc.want[i]
			if d < 0 {
				d = -d
			}
			if d > 1e-2 {
				t.Errorf("%s: got %v, expected %v", tc.name, got, tc.want)
				break
			}
		}
	}
}
