// Package match finds the catalog colors closest to a sampled color.
package match

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mmuldo/colorvisor/distance"
	"github.com/mmuldo/colorvisor/palette"
	"github.com/mmuldo/colorvisor/sample"
)

// ErrEmptyCatalog is returned when matching against a palette with no
// entries.
var ErrEmptyCatalog = errors.New("match: catalog is empty")

// Result is a catalog entry and its distance from the query.
type Result struct {
	Entry    sample.Sample
	Distance float64
}

// Matcher performs a linear scan of a loaded palette. It holds no mutable
// state and is safe for concurrent use once the palette is loaded.
type Matcher struct {
	palette *palette.Palette
	metric  Metric
}

// New returns a matcher over p. A nil metric means CIEDE2000.
func New(p *palette.Palette, m Metric) *Matcher {
	if m == nil {
		m = CIEDE2000
	}
	return &Matcher{palette: p, metric: m}
}

// Nearest returns the entry with the smallest distance to q. Only a
// strictly smaller distance replaces the current best, so the earliest
// entry wins ties.
func (m *Matcher) Nearest(q sample.Sample) (Result, error) {
	n := m.palette.Len()
	if n == 0 {
		return Result{}, ErrEmptyCatalog
	}

	var best Result
	for i := 0; i < n; i++ {
		e := m.palette.At(i)
		d, err := m.distance(e, q)
		if err != nil {
			return Result{}, err
		}
		if i == 0 || d < best.Distance {
			best = Result{Entry: e, Distance: d}
		}
	}

	return best, nil
}

// Ranked returns up to n entries ordered by distance to q, catalog order
// breaking ties. n <= 0 returns every entry.
func (m *Matcher) Ranked(q sample.Sample, n int) ([]Result, error) {
	size := m.palette.Len()
	if size == 0 {
		return nil, ErrEmptyCatalog
	}

	results := make([]Result, size)
	for i := range results {
		e := m.palette.At(i)
		d, err := m.distance(e, q)
		if err != nil {
			return nil, err
		}
		results[i] = Result{Entry: e, Distance: d}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	if n > 0 && n < len(results) {
		results = results[:n]
	}

	return results, nil
}

func (m *Matcher) distance(e, q sample.Sample) (float64, error) {
	d := m.metric(e.Lab(), q.Lab())
	if d == distance.Undefined {
		return 0, fmt.Errorf("match: comparing %v with %v: %w", e, q, distance.ErrUndefined)
	}
	return d, nil
}
