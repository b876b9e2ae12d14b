package palette

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmuldo/colorvisor/sample"
)

func TestLoad(t *testing.T) {
	p := New()
	err := p.Load([]Record{
		{Name: "Red", Hex: "#FF0000"},
		{Name: "Black", Hex: "#000000"},
		{Name: "Red", Hex: "#FE0000"},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	want := []struct {
		name string
		rgb  sample.RGB
	}{
		{"Red", sample.RGB{R: 255, G: 0, B: 0}},
		{"Black", sample.RGB{R: 0, G: 0, B: 0}},
		{"Red", sample.RGB{R: 254, G: 0, B: 0}},
	}
	for i, e := range p.Entries() {
		if e.Name() != want[i].name || e.RGB() != want[i].rgb {
			t.Errorf("entry %d = %v, want %s %v", i, e, want[i].name, want[i].rgb)
		}
		if e != p.At(i) {
			t.Errorf("At(%d) = %v, want %v", i, p.At(i), e)
		}
	}
}

func TestLoadFormatError(t *testing.T) {
	for _, hex := range []string{"#F00", "#FF00", "#GG0000", "#FF00000", ""} {
		p := New()
		err := p.Load([]Record{
			{Name: "Red", Hex: "#FF0000"},
			{Name: "Bad", Hex: hex, Line: 2},
		})

		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("Load(%q) error = %v, want *FormatError", hex, err)
			continue
		}
		if fe.Name != "Bad" || fe.Line != 2 || fe.Value != hex {
			t.Errorf("FormatError = %+v", fe)
		}
		var he *sample.HexError
		if !errors.As(err, &he) {
			t.Errorf("FormatError does not wrap *sample.HexError: %v", err)
		}
		if p.Len() != 0 {
			t.Errorf("Load(%q) kept %d entries after failure", hex, p.Len())
		}
	}
}

func TestLoadTwice(t *testing.T) {
	p := New()
	if err := p.Load([]Record{{Name: "Red", Hex: "#FF0000"}}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	err := p.Load([]Record{{Name: "Blue", Hex: "#0000FF"}})
	if !errors.Is(err, ErrAlreadyLoaded) {
		t.Fatalf("second Load error = %v, want ErrAlreadyLoaded", err)
	}
	if p.Len() != 1 || p.At(0).Name() != "Red" {
		t.Errorf("entries changed by second Load: %v", p.Entries())
	}
}

func TestLoadEmpty(t *testing.T) {
	p := New()
	if err := p.Load(nil); !errors.Is(err, ErrNoRecords) {
		t.Errorf("Load(nil) error = %v, want ErrNoRecords", err)
	}
	// a failed load does not count as loaded
	if err := p.Load([]Record{{Name: "Red", Hex: "#FF0000"}}); err != nil {
		t.Errorf("Load after failure: %v", err)
	}
}

func TestEntriesIsCopy(t *testing.T) {
	p := New()
	if err := p.Load([]Record{{Name: "Red", Hex: "#FF0000"}}); err != nil {
		t.Fatal(err)
	}
	e := p.Entries()
	e[0] = sample.Named("Blue", sample.RGB{R: 0, G: 0, B: 255})
	if p.At(0).Name() != "Red" {
		t.Error("modifying Entries() changed the palette")
	}
}

func TestReadRecords(t *testing.T) {
	in := "Red,#FF0000\r\n\nBlack,#000000\nOff, White,#FAFAFA\n"
	records, err := ReadRecords(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}

	want := []Record{
		{Name: "Red", Hex: "#FF0000", Line: 1},
		{Name: "Black", Hex: "#000000", Line: 3},
		{Name: "Off", Hex: "White,#FAFAFA", Line: 4},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d: %v", len(records), len(want), records)
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, records[i], want[i])
		}
	}

	// the comma in the name leaves a malformed color
	var fe *FormatError
	if err := New().Load(records); !errors.As(err, &fe) || fe.Line != 4 {
		t.Errorf("Load error = %v, want FormatError on line 4", err)
	}
}

func TestReadRecordsMissingComma(t *testing.T) {
	_, err := ReadRecords(strings.NewReader("Red,#FF0000\nBlack #000000\n"))
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *FormatError", err)
	}
	if fe.Line != 2 {
		t.Errorf("Line = %d, want 2", fe.Line)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.csv")
	if err := os.WriteFile(good, []byte("Red,#FF0000\nBlack,#000000\n"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Open(good)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}

	bad := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(bad, []byte("Red,#FF0000\nBad,#F00\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var fe *FormatError
	if _, err := Open(bad); !errors.As(err, &fe) {
		t.Errorf("Open(bad) error = %v, want *FormatError", err)
	}

	if _, err := Open(filepath.Join(dir, "missing.csv")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open(missing) error = %v", err)
	}
}

func TestDefault(t *testing.T) {
	p := Default()
	if p.Len() < 100 {
		t.Fatalf("Default() has %d entries", p.Len())
	}
	first := p.At(0)
	if first.Name() != "Alice Blue" || first.RGB() != (sample.RGB{R: 0xF0, G: 0xF8, B: 0xFF}) {
		t.Errorf("first entry = %v", first)
	}
}
