// Package palette holds the reference catalog of named colors that
// pixel samples are matched against.
package palette

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/mmuldo/colorvisor/sample"
)

//go:embed colors.csv
var defaultCatalog []byte

// ErrAlreadyLoaded is returned when Load is called on a palette that
// already holds entries.
var ErrAlreadyLoaded = errors.New("palette: already loaded")

// ErrNoRecords is returned when Load is given nothing to load.
var ErrNoRecords = errors.New("palette: no records")

// Record is one unparsed catalog entry.
type Record struct {
	Name string
	Hex  string
	Line int // source line, 0 if unknown
}

// FormatError reports a catalog record that could not be decoded.
type FormatError struct {
	Line  int // 1-based; 0 when the record did not come from a file
	Name  string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("palette: line %d (%q): %v", e.Line, e.Name, e.Err)
	}
	return fmt.Sprintf("palette: record %q: %v", e.Name, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Palette is an ordered list of named colors. Entry order is the order the
// records were loaded in and decides ties when matching. Names need not be
// unique.
//
// A Palette is loaded once. After that it is read-only and may be shared
// between goroutines; Load itself must not race with readers.
type Palette struct {
	entries []sample.Sample
}

// New returns an empty palette.
func New() *Palette {
	return &Palette{}
}

// Load decodes records and stores them in order. Nothing is stored if any
// record is malformed.
func (p *Palette) Load(records []Record) error {
	if len(p.entries) > 0 {
		return ErrAlreadyLoaded
	}
	if len(records) == 0 {
		return ErrNoRecords
	}

	entries := make([]sample.Sample, 0, len(records))
	for _, r := range records {
		c, err := sample.DecodeHex(r.Hex)
		if err != nil {
			return &FormatError{Line: r.Line, Name: r.Name, Value: r.Hex, Err: err}
		}
		entries = append(entries, sample.Named(r.Name, c))
	}

	p.entries = entries
	return nil
}

// Entries returns a copy of the loaded colors in catalog order.
func (p *Palette) Entries() []sample.Sample {
	out := make([]sample.Sample, len(p.entries))
	copy(out, p.entries)
	return out
}

// Len returns the number of loaded colors.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// At returns the i'th entry. It panics if i is out of range.
func (p *Palette) At(i int) sample.Sample {
	return p.entries[i]
}

// Open reads and loads the catalog file at path.
func Open(path string) (*Palette, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer f.Close()

	records, e := ReadRecords(f)
	if e != nil {
		return nil, fmt.Errorf("%s: %w", path, e)
	}

	p := New()
	if e := p.Load(records); e != nil {
		return nil, fmt.Errorf("%s: %w", path, e)
	}
	return p, nil
}

// Default returns the built-in catalog of CSS/X11 color names.
func Default() *Palette {
	records, err := ReadRecords(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(err)
	}
	p := New()
	if err := p.Load(records); err != nil {
		panic(err)
	}
	return p
}
