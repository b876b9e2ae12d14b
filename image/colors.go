// Package image loads pictures and extracts their dominant colors.
package image

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/esimov/colorquant"

	"github.com/mmuldo/colorvisor/sample"
)

// ColorCount is a color and the number of sampled pixels that have it.
type ColorCount struct {
	Color sample.RGB
	Count int
}

type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return ccl[i].Color.Hex() < ccl[j].Color.Hex()
}
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

// GetColors counts the opaque colors of img, reading every step'th pixel
// in both directions.
func GetColors(img image.Image, step int) map[sample.RGB]int {
	if step < 1 {
		step = 1
	}
	m := make(map[sample.RGB]int)

	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x += step {
		for y := b.Min.Y; y < b.Max.Y; y += step {
			r, g, bl, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			m[sample.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)}]++
		}
	}

	return m
}

// RankColors orders the counted colors by prevalence, most common first.
func RankColors(m map[sample.RGB]int) ColorCountList {
	cc := make(ColorCountList, 0, len(m))
	for k, v := range m {
		cc = append(cc, ColorCount{k, v})
	}

	sort.Sort(cc)
	return cc
}

// Dominant quantizes img to at most num colors and returns them ranked by
// how many sampled pixels each covers.
func Dominant(img image.Image, num, step int) (ColorCountList, error) {
	if num < 1 {
		return nil, fmt.Errorf("need at least one color, got %d", num)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("image is empty")
	}
	o := image.NewNRGBA(b)
	colorquant.NoDither.Quantize(img, o, num, false, true)

	return RankColors(GetColors(opaque{o}, step)), nil
}

// opaque drops alpha so quantized pixels count even when the source had
// translucent areas.
type opaque struct {
	*image.NRGBA
}

func (o opaque) At(x, y int) color.Color {
	c := o.NRGBAAt(x, y)
	if c.A == 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{c.R, c.G, c.B, 255}
}
