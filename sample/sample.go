// Package sample holds a single color in its sRGB, CIE XYZ and CIE L*a*b*
// representations. All three are computed when a Sample is built, so a
// Sample never exposes a partially converted state.
package sample

import (
	"fmt"
	"math"

	"github.com/jkl1337/go-chromath"
	"gonum.org/v1/gonum/mat"
)

// D65 reference white, 2° observer, Y normalized to 100.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883

	epsilon = 0.008856
	kappa   = 903.3
)

var (
	// sRGB (linear) to XYZ, D65
	rgbToXYZ = mat.NewDense(3, 3, []float64{
		0.4124, 0.3576, 0.1805,
		0.2126, 0.7152, 0.0722,
		0.0193, 0.1192, 0.9505,
	})
	// XYZ to sRGB (linear), D65
	xyzToRGB = mat.NewDense(3, 3, []float64{
		3.2406, -1.5372, -0.4986,
		-0.9689, 1.8758, 0.0415,
		0.0557, -0.2040, 1.0570,
	})
)

// RGB is an 8-bit sRGB triple.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color. The color is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// String formats the triple the way it is shown as a label: "R G B".
func (c RGB) String() string {
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}

// Hex returns the #rrggbb form of c.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Sample is an immutable color value. The zero value is black.
type Sample struct {
	name string
	rgb  RGB
	xyz  chromath.XYZ
	lab  chromath.Lab
}

// FromRGB builds an unnamed sample from an sRGB triple.
func FromRGB(c RGB) Sample {
	return Named("", c)
}

// Named builds a sample carrying a catalog name.
func Named(name string, c RGB) Sample {
	xyz := rgb2Xyz(c)
	return Sample{
		name: name,
		rgb:  c,
		xyz:  xyz,
		lab:  xyz2Lab(xyz),
	}
}

// FromLab builds a sample from an L*a*b* triple. The RGB representation is
// rounded and clamped to [0,255], so it may not reproduce lab exactly.
func FromLab(lab chromath.Lab) Sample {
	xyz := lab2Xyz(lab)
	return Sample{
		rgb: xyz2Rgb(xyz),
		xyz: xyz,
		lab: lab,
	}
}

// Name returns the catalog name, or "" for a query sample.
func (s Sample) Name() string { return s.name }

// RGB returns the sRGB triple.
func (s Sample) RGB() RGB { return s.rgb }

// XYZ returns the tristimulus values, Y in [0,100].
func (s Sample) XYZ() chromath.XYZ { return s.xyz }

// Lab returns the L*a*b* values.
func (s Sample) Lab() chromath.Lab { return s.lab }

// Hex returns the #rrggbb form of the sample's RGB.
func (s Sample) Hex() string { return s.rgb.Hex() }

func (s Sample) String() string {
	if s.name != "" {
		return fmt.Sprintf("%s (%s)", s.name, s.Hex())
	}
	return s.Hex()
}

//**conversions**//

func rgb2Xyz(c RGB) chromath.XYZ {
	lin := [3]float64{
		expand(float64(c.R) / 255),
		expand(float64(c.G) / 255),
		expand(float64(c.B) / 255),
	}
	v := mulVec(rgbToXYZ, lin)
	return chromath.XYZ{100 * v[0], 100 * v[1], 100 * v[2]}
}

func xyz2Lab(xyz chromath.XYZ) chromath.Lab {
	x := pivot(xyz[0] / whiteX)
	y := pivot(xyz[1] / whiteY)
	z := pivot(xyz[2] / whiteZ)
	return chromath.Lab{
		math.Max(0, 116*y-16),
		500 * (x - y),
		200 * (y - z),
	}
}

func lab2Xyz(lab chromath.Lab) chromath.XYZ {
	l := lab[0]
	fy := (l + 16) / 116
	fx := lab[1]/500 + fy
	fz := fy - lab[2]/200

	// the Y branch is chosen on L itself
	var yr float64
	if l > kappa*epsilon {
		yr = math.Pow(fy, 3)
	} else {
		yr = l / kappa
	}

	return chromath.XYZ{
		unpivot(fx) * whiteX,
		yr * whiteY,
		unpivot(fz) * whiteZ,
	}
}

func xyz2Rgb(xyz chromath.XYZ) RGB {
	v := mulVec(xyzToRGB, [3]float64{xyz[0] / 100, xyz[1] / 100, xyz[2] / 100})
	return RGB{
		R: quantize(compress(v[0])),
		G: quantize(compress(v[1])),
		B: quantize(compress(v[2])),
	}
}

// expand applies the inverse sRGB transfer function.
func expand(c float64) float64 {
	if c < 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// compress applies the sRGB transfer function.
func compress(v float64) float64 {
	if v > 0.0031308 {
		return 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return 12.92 * v
}

func pivot(t float64) float64 {
	if t > epsilon {
		return math.Cbrt(t)
	}
	return (kappa*t + 16) / 116
}

func unpivot(f float64) float64 {
	if c := f * f * f; c > epsilon {
		return c
	}
	return (116*f - 16) / kappa
}

func quantize(v float64) uint8 {
	v = math.Round(v * 255)
	switch {
	case v > 255:
		return 255
	case v < 0 || math.IsNaN(v):
		return 0
	}
	return uint8(v)
}

func mulVec(m *mat.Dense, v [3]float64) [3]float64 {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, v[:]))
	return [3]float64{out.AtVec(0), out.AtVec(1), out.AtVec(2)}
}
