package debugdraw

// Colorb is an RGBA color, 8 bits per channel. A byte value of 255 maps
// to 1.0 at the drawing backend.
type Colorb [4]uint8

func (c Colorb) R() uint8 { return c[0] }
func (c Colorb) G() uint8 { return c[1] }
func (c Colorb) B() uint8 { return c[2] }
func (c Colorb) A() uint8 { return c[3] }

// Vec4 returns the color as normalized floats.
func (c Colorb) Vec4() [4]float32 {
	return [4]float32{
		float32(c[0]) / 255,
		float32(c[1]) / 255,
		float32(c[2]) / 255,
		float32(c[3]) / 255,
	}
}

// RGBA builds a color from channel values in [0,255].
func RGBA(r, g, b, a int) Colorb {
	return Colorb{uint8(r), uint8(g), uint8(b), uint8(a)}
}

// RGBAf builds a color from channel values in [0,1].
func RGBAf(r, g, b, a float32) Colorb {
	return RGBA(int(r*255), int(g*255), int(b*255), int(a*255))
}

// LerpCol blends ca toward cb by u/255.
func LerpCol(ca, cb Colorb, u int) Colorb {
	blend := func(a, b uint8) int {
		return (int(a)*(255-u) + int(b)*u) / 255
	}
	return RGBA(blend(ca[0], cb[0]), blend(ca[1], cb[1]), blend(ca[2], cb[2]), blend(ca[3], cb[3]))
}

// TransCol replaces the alpha channel.
func TransCol(c Colorb, a uint8) Colorb {
	return Colorb{c[0], c[1], c[2], a}
}

// MultCol scales the color channels by d/255, leaving alpha alone.
func MultCol(c Colorb, d int) Colorb {
	return RGBA(int(c[0])*d>>8, int(c[1])*d>>8, int(c[2])*d>>8, int(c[3]))
}

// DarkenCol halves the color channels.
func DarkenCol(c Colorb) Colorb {
	return Colorb{c[0] >> 1, c[1] >> 1, c[2] >> 1, c[3]}
}

func bit(a, b int) int {
	return (a & (1 << b)) >> b
}

// IntToCol hashes a small integer to a stable, distinguishable color.
func IntToCol(i, a int) Colorb {
	r := bit(i, 1) + bit(i, 3)*2 + 1
	g := bit(i, 2) + bit(i, 4)*2 + 1
	b := bit(i, 0) + bit(i, 5)*2 + 1
	return RGBA(r*63, g*63, b*63, a)
}
