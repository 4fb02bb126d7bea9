package fbxsdk

// SystemUnit is a linear unit expressed as its size in centimeters.
type SystemUnit struct {
	scaleFactor float64
}

var (
	UnitMM   = SystemUnit{0.1}
	UnitCM   = SystemUnit{1}
	UnitDM   = SystemUnit{10}
	UnitM    = SystemUnit{100}
	UnitKM   = SystemUnit{100000}
	UnitInch = SystemUnit{2.54}
	UnitFoot = SystemUnit{30.48}
	UnitYard = SystemUnit{91.44}
	UnitMile = SystemUnit{160934.4}
)

func NewSystemUnit(scaleToCentimeters float64) SystemUnit {
	return SystemUnit{scaleFactor: scaleToCentimeters}
}

func (u SystemUnit) ScaleFactor() float64 { return u.scaleFactor }

// ConvertScene rescales the scene into this unit: node translations,
// mesh control points and baked translation curves. A scene already in
// this unit is left untouched.
func (u SystemUnit) ConvertScene(s *Scene) {
	cur := s.settings.unit
	if sysIsEqual(cur.scaleFactor, u.scaleFactor) {
		return
	}
	ratio := cur.scaleFactor / u.scaleFactor

	seenMesh := make(map[*Mesh]struct{})
	for _, n := range s.allNodes() {
		for i := range n.LclTranslation {
			n.LclTranslation[i] *= ratio
		}
		if mesh, ok := n.attr.(*Mesh); ok {
			if _, done := seenMesh[mesh]; !done {
				seenMesh[mesh] = struct{}{}
				for i := range mesh.ControlPoints {
					mesh.ControlPoints[i] *= ratio
				}
			}
		}
		for key, cn := range n.curveNodes {
			if key.channel != ChannelTranslation {
				continue
			}
			for _, curve := range cn.curves {
				if curve == nil {
					continue
				}
				for i := range curve.KeyValues {
					curve.KeyValues[i] *= float32(ratio)
				}
			}
		}
	}

	s.settings.unit = u
}
