package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"

	"github.com/mmuldo/colorvisor/distance"
)

// Metric computes the perceptual difference between a catalog color and a
// query color.
type Metric func(entry, query chromath.Lab) float64

var klch = &deltae.KLChDefault

var (
	// CIEDE2000 is the package's own CIEDE2000, which reports
	// distance.Undefined instead of a value for degenerate input.
	CIEDE2000 Metric = distance.CIEDE2000

	// Chromath is go-chromath's CIEDE2000 with unit weights.
	Chromath Metric = func(entry, query chromath.Lab) float64 {
		return deltae.CIE2000(entry, query, klch)
	}
)

var metrics = map[string]Metric{
	"ciede2000": CIEDE2000,
	"chromath":  Chromath,
}

// MetricNames lists the names accepted by MetricByName.
func MetricNames() []string {
	names := make([]string, 0, len(metrics))
	for k := range metrics {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// MetricByName returns a metric by its case-insensitive name.
func MetricByName(name string) (Metric, error) {
	m, ok := metrics[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown metric %q (want one of %s)", name, strings.Join(MetricNames(), ", "))
	}
	return m, nil
}
