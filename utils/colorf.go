package utils

type ColorFloat [4]float32

func (c *ColorFloat) RGBA() (r, g, b, a uint32) {
	const mf = float32(256*256 - 1)
	r = uint32(c[0] * mf)
	g = uint32(c[1] * mf)
	b = uint32(c[2] * mf)
	a = uint32(c[3] * mf)
	return
}

func NewColorFloat(c []float32) ColorFloat {
	return ColorFloat{c[0], c[1], c[2], 1.0}
}

func (c ColorFloat) Add(o ColorFloat) ColorFloat {
	return ColorFloat{c[0] + o[0], c[1] + o[1], c[2] + o[2], c[3] + o[3]}
}

func (c ColorFloat) Scale(f float32) ColorFloat {
	return ColorFloat{c[0] * f, c[1] * f, c[2] * f, c[3] * f}
}
