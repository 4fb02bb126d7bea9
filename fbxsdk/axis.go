package fbxsdk

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type UpVector int

const (
	UpX UpVector = iota
	UpY
	UpZ
)

type FrontVector int

const (
	FrontParityEven FrontVector = iota
	FrontParityOdd
)

type CoordSystem int

const (
	RightHanded CoordSystem = iota
	LeftHanded
)

// AxisSystem declares the scene's up direction and handedness.
// Predefined systems that are numerically identical compare equal,
// e.g. MayaYUp == MotionBuilder == OpenGL.
type AxisSystem struct {
	Up    UpVector
	Front FrontVector
	Coord CoordSystem
}

var (
	MayaYUp       = AxisSystem{UpY, FrontParityOdd, RightHanded}
	MotionBuilder = MayaYUp
	OpenGL        = MayaYUp

	DirectX   = AxisSystem{UpY, FrontParityOdd, LeftHanded}
	Lightwave = DirectX

	MayaZUp = AxisSystem{UpZ, FrontParityEven, RightHanded}
	Max     = MayaZUp
)

// basis returns the matrix mapping this system's coordinates into the
// canonical Y-up right-handed frame.
func (a AxisSystem) basis() mgl64.Mat3 {
	m := mgl64.Ident3()
	switch a.Up {
	case UpZ:
		// (x, y, z) with z up -> (x, z, -y)
		m = mgl64.Mat3FromCols(
			mgl64.Vec3{1, 0, 0},
			mgl64.Vec3{0, 0, -1},
			mgl64.Vec3{0, 1, 0},
		)
	case UpX:
		// (x, y, z) with x up -> (y, x, -z)
		m = mgl64.Mat3FromCols(
			mgl64.Vec3{0, 1, 0},
			mgl64.Vec3{1, 0, 0},
			mgl64.Vec3{0, 0, -1},
		)
	}
	if a.Coord == LeftHanded {
		m = m.Mul3(mgl64.Mat3FromCols(
			mgl64.Vec3{1, 0, 0},
			mgl64.Vec3{0, 1, 0},
			mgl64.Vec3{0, 0, -1},
		))
	}
	return m
}

func eulerXYZToMat(deg mgl64.Vec3) mgl64.Mat3 {
	rx := mgl64.DegToRad(deg[0])
	ry := mgl64.DegToRad(deg[1])
	rz := mgl64.DegToRad(deg[2])
	return mgl64.Rotate3DZ(rz).Mul3(mgl64.Rotate3DY(ry)).Mul3(mgl64.Rotate3DX(rx))
}

func matToEulerXYZ(m mgl64.Mat3) mgl64.Vec3 {
	var x, y, z float64
	sy := -m.At(2, 0)
	if sy >= 1 {
		y = math.Pi / 2
	} else if sy <= -1 {
		y = -math.Pi / 2
	} else {
		y = math.Asin(sy)
	}
	if math.Abs(sy) < 0.9999999 {
		x = math.Atan2(m.At(2, 1), m.At(2, 2))
		z = math.Atan2(m.At(1, 0), m.At(0, 0))
	} else {
		x = math.Atan2(-m.At(1, 2), m.At(1, 1))
		z = 0
	}
	return mgl64.Vec3{mgl64.RadToDeg(x), mgl64.RadToDeg(y), mgl64.RadToDeg(z)}
}

// ConvertScene re-expresses the scene in this axis system by adjusting
// the transforms of the root-level nodes. Converting a scene that is
// already in this system is a no-op.
func (a AxisSystem) ConvertScene(s *Scene) {
	cur := s.settings.axis
	if a == cur {
		return
	}

	conv := a.basis().Inv().Mul3(cur.basis())
	mirrored := conv.Det() < 0

	for _, child := range s.root.children {
		t := conv.Mul3x1(mgl64.Vec3{
			child.LclTranslation[0],
			child.LclTranslation[1],
			child.LclTranslation[2],
		})
		child.LclTranslation = [3]float64{t[0], t[1], t[2]}

		if mirrored {
			// handedness flip: rotations invert around X and Y
			child.LclRotation[0] = -child.LclRotation[0]
			child.LclRotation[1] = -child.LclRotation[1]
		} else {
			r := conv.Mul3(eulerXYZToMat(mgl64.Vec3{
				child.LclRotation[0],
				child.LclRotation[1],
				child.LclRotation[2],
			}))
			e := matToEulerXYZ(r)
			child.LclRotation = [3]float64{e[0], e[1], e[2]}
		}
	}

	s.settings.axis = a
}
