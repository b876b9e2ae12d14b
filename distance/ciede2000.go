// Package distance implements the CIEDE2000 color difference between two
// CIE L*a*b* colors (kL = kC = kH = 1).
package distance

import (
	"errors"
	"math"

	"github.com/jkl1337/go-chromath"
)

// Undefined is returned by CIEDE2000 when the hue case split falls through.
// That only happens for non-finite input.
const Undefined = -1.0

// tolerance under which a', b* and C1'·C2' count as zero.
const tolerance = 1e-7

// 25^7
const pow25to7 = 6103515625.0

// ErrUndefined is returned by Diff in place of the Undefined sentinel.
var ErrUndefined = errors.New("distance: hue difference is undefined")

// Diff is CIEDE2000 with the sentinel turned into ErrUndefined.
func Diff(std, smp chromath.Lab) (float64, error) {
	d := CIEDE2000(std, smp)
	if d == Undefined {
		return 0, ErrUndefined
	}
	return d, nil
}

// CIEDE2000 returns the perceptual difference between std and smp. The
// result is 0 for identical colors and non-negative otherwise, except for
// Undefined.
func CIEDE2000(std, smp chromath.Lab) float64 {
	l1, a1, b1 := std[0], std[1], std[2]
	l2, a2, b2 := smp[0], smp[1], smp[2]

	// chroma correction
	cAvg := (math.Hypot(a1, b1) + math.Hypot(a2, b2)) / 2
	cAvg7 := math.Pow(cAvg, 7)
	g := (1 - math.Sqrt(cAvg7/(cAvg7+pow25to7))) / 2

	ap1 := (1 + g) * a1
	ap2 := (1 + g) * a2
	cp1 := math.Hypot(ap1, b1)
	cp2 := math.Hypot(ap2, b2)
	hp1 := hueAngle(b1, ap1)
	hp2 := hueAngle(b2, ap2)

	// differences
	dLp := l2 - l1
	dCp := cp2 - cp1

	cp1cp2 := cp1 * cp2
	achromatic := math.Abs(cp1cp2) < tolerance

	var dhp float64
	switch diff := hp2 - hp1; {
	case achromatic:
		dhp = 0
	case math.Abs(diff) <= 180:
		dhp = diff
	case diff > 180:
		dhp = diff - 360
	case diff < -180:
		dhp = diff + 360
	default:
		return Undefined
	}
	dHp := 2 * math.Sqrt(cp1cp2) * math.Sin(rad(dhp/2))

	// averages
	lpAvg := (l1 + l2) / 2
	cpAvg := (cp1 + cp2) / 2

	var hpAvg float64
	switch diff := math.Abs(hp1 - hp2); {
	case achromatic:
		hpAvg = hp1 + hp2
	case diff <= 180:
		hpAvg = (hp1 + hp2) / 2
	case diff > 180 && hp1+hp2 < 360:
		hpAvg = (hp1 + hp2 + 360) / 2
	case diff > 180 && hp1+hp2 >= 360:
		hpAvg = (hp1 + hp2 - 360) / 2
	default:
		return Undefined
	}

	// weighting functions
	t := 1 -
		0.17*math.Cos(rad(hpAvg-30)) +
		0.24*math.Cos(rad(2*hpAvg)) +
		0.32*math.Cos(rad(3*hpAvg+6)) -
		0.20*math.Cos(rad(4*hpAvg-63))

	dTheta := 30 * math.Exp(-math.Pow((hpAvg-275)/25, 2))

	cpAvg7 := math.Pow(cpAvg, 7)
	rc := 2 * math.Sqrt(cpAvg7/(cpAvg7+pow25to7))

	lp50 := (lpAvg - 50) * (lpAvg - 50)
	sl := 1 + 0.015*lp50/math.Sqrt(20+lp50)
	sc := 1 + 0.045*cpAvg
	sh := 1 + 0.015*cpAvg*t
	rt := -math.Sin(rad(2*dTheta)) * rc

	l := dLp / sl
	c := dCp / sc
	h := dHp / sh

	return math.Sqrt(l*l + c*c + h*h + rt*c*h)
}

// hueAngle is atan2(b, a) in degrees on [0,360), or 0 when both are zero.
func hueAngle(b, a float64) float64 {
	if math.Abs(b) < tolerance && math.Abs(a) < tolerance {
		return 0
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}
