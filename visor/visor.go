// Package visor runs the sampling loop: on every tick it reads a pixel,
// names it against the catalog and hands the result to a display.
package visor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mmuldo/colorvisor/distance"
	"github.com/mmuldo/colorvisor/match"
	"github.com/mmuldo/colorvisor/sample"
)

// DefaultThreshold is the distance from black under which a background
// counts as dark and gets white text.
const DefaultThreshold = 30

// DefaultInterval is the sampling period.
const DefaultInterval = 100 * time.Millisecond

var (
	black = sample.FromRGB(sample.RGB{R: 0, G: 0, B: 0})
	white = sample.RGB{R: 255, G: 255, B: 255}
)

// Source supplies the color under the pointer. Returning io.EOF ends Run
// without error.
type Source interface {
	Pixel() (sample.RGB, error)
}

// Sink displays the result of a tick. The loop calls SetLabel before
// SetColors.
type Sink interface {
	SetLabel(label string)
	SetColors(background, foreground sample.RGB) error
}

// LabelMode selects what the label shows.
type LabelMode int

const (
	// LabelName shows the name of the nearest catalog color.
	LabelName LabelMode = iota
	// LabelRGB shows the sampled channels as "R G B".
	LabelRGB
)

// ParseLabelMode accepts "name" or "rgb".
func ParseLabelMode(s string) (LabelMode, error) {
	switch s {
	case "name", "":
		return LabelName, nil
	case "rgb":
		return LabelRGB, nil
	}
	return 0, fmt.Errorf("unknown label mode %q (want name or rgb)", s)
}

// Loop ties a Source, a Matcher and a Sink together. A Loop is driven
// from a single goroutine; ticks never overlap.
type Loop struct {
	source  Source
	sink    Sink
	matcher *match.Matcher

	// Metric decides the text contrast; nil uses the matcher's default.
	Metric    match.Metric
	Threshold float64
	Label     LabelMode
	Logger    *slog.Logger

	current sample.Sample
}

// NewLoop returns a loop with the default threshold and name labels.
func NewLoop(src Source, m *match.Matcher, sink Sink) *Loop {
	return &Loop{
		source:    src,
		sink:      sink,
		matcher:   m,
		Threshold: DefaultThreshold,
		Label:     LabelName,
		Logger:    slog.Default(),
	}
}

// Current returns the sample read by the last tick.
func (l *Loop) Current() sample.Sample {
	return l.current
}

// Tick reads one pixel, matches it and updates the sink.
func (l *Loop) Tick() error {
	c, err := l.source.Pixel()
	if err != nil {
		return err
	}
	l.current = sample.FromRGB(c)

	best, err := l.matcher.Nearest(l.current)
	if err != nil {
		return err
	}

	switch l.Label {
	case LabelRGB:
		l.sink.SetLabel(c.String())
	default:
		l.sink.SetLabel(best.Entry.Name())
	}

	fg, err := l.Contrast(l.current)
	if err != nil {
		return err
	}

	l.Logger.Debug("tick",
		"rgb", c.Hex(),
		"match", best.Entry.Name(),
		"distance", best.Distance,
	)

	return l.sink.SetColors(c, fg)
}

// Contrast returns white for backgrounds closer to black than the
// threshold and black otherwise.
func (l *Loop) Contrast(bg sample.Sample) (sample.RGB, error) {
	metric := l.Metric
	if metric == nil {
		metric = match.CIEDE2000
	}

	d := metric(bg.Lab(), black.Lab())
	if d == distance.Undefined {
		return sample.RGB{}, fmt.Errorf("visor: contrast for %v: %w", bg, distance.ErrUndefined)
	}
	if d < l.Threshold {
		return white, nil
	}
	return sample.RGB{}, nil
}

// Run ticks every interval until ctx is done or the source is exhausted.
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := l.Tick(); err != nil {
				if errors.Is(err, io.EOF) {
					l.Logger.Debug("source exhausted")
					return nil
				}
				return err
			}
		}
	}
}
