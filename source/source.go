// Package source provides pixel sources for the sampling loop.
package source

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/mmuldo/colorvisor/sample"
)

// Image walks a pointer over an image in row-major order, advancing Step
// pixels per read and wrapping at the end.
type Image struct {
	img  image.Image
	step int
	x, y int
	once bool
	done bool
}

// NewImage returns a source that starts at the top-left pixel. If once is
// set the source reports io.EOF after the last row instead of wrapping.
func NewImage(img image.Image, step int, once bool) *Image {
	if step < 1 {
		step = 1
	}
	b := img.Bounds()
	return &Image{img: img, step: step, x: b.Min.X, y: b.Min.Y, once: once}
}

// Position returns the pixel the next read will sample.
func (s *Image) Position() image.Point {
	return image.Pt(s.x, s.y)
}

// Pixel samples the image at the pointer and then moves it.
func (s *Image) Pixel() (sample.RGB, error) {
	b := s.img.Bounds()
	if s.done || b.Empty() {
		return sample.RGB{}, io.EOF
	}

	r, g, bl, _ := s.img.At(s.x, s.y).RGBA()
	c := sample.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)}

	s.x += s.step
	for s.x >= b.Max.X {
		s.x = b.Min.X + (s.x - b.Max.X)
		s.y++
	}
	if s.y >= b.Max.Y {
		s.y = b.Min.Y
		s.done = s.once
	}

	return c, nil
}

// Lines reads one color per line: hex ("#rrggbb") or decimal channels
// ("r g b", "r,g,b"). Blank lines and lines starting with '#' followed by a
// space are skipped.
type Lines struct {
	s *bufio.Scanner
	n int
}

// NewLines returns a source reading from r.
func NewLines(r io.Reader) *Lines {
	return &Lines{s: bufio.NewScanner(r)}
}

// Pixel returns the next color, or io.EOF once r is exhausted.
func (l *Lines) Pixel() (sample.RGB, error) {
	for l.s.Scan() {
		l.n++
		line := strings.TrimSpace(l.s.Text())
		if line == "" || strings.HasPrefix(line, "# ") {
			continue
		}
		c, err := sample.ParseColor(line)
		if err != nil {
			return sample.RGB{}, fmt.Errorf("line %d: %w", l.n, err)
		}
		return c, nil
	}
	if err := l.s.Err(); err != nil {
		return sample.RGB{}, err
	}
	return sample.RGB{}, io.EOF
}
