package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmuldo/colorvisor/match"
	"github.com/mmuldo/colorvisor/sample"
)

func TestColor(t *testing.T) {
	tpl, err := FromString("{{ name }} {{ hex }} {{ rgb }} {{ r }}/{{ g }}/{{ b }} {{ lab_l|floatformat:1 }}")
	if err != nil {
		t.Fatal(err)
	}
	got, err := tpl.Execute(Color(sample.Named("White", sample.RGB{R: 255, G: 255, B: 255})))
	if err != nil {
		t.Fatal(err)
	}
	if want := "White #ffffff 255 255 255 255/255/255 100.0"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	tpl, err := FromString(DefaultReport)
	if err != nil {
		t.Fatal(err)
	}

	red := sample.Named("Red", sample.RGB{R: 255, G: 0, B: 0})
	matches := []Match{
		{
			Query:  sample.FromRGB(sample.RGB{R: 250, G: 5, B: 5}),
			Result: match.Result{Entry: red, Distance: 1.0535},
		},
		{
			Query:  red,
			Result: match.Result{Entry: red},
			Count:  3,
		},
	}

	var buf bytes.Buffer
	if err := tpl.Report(&buf, matches); err != nil {
		t.Fatal(err)
	}
	want := "#fa0505 Red (1.05)\n#ff0000 Red (0.00) x3\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.tpl")
	if err := os.WriteFile(path, []byte("[{{ label }}]"), 0644); err != nil {
		t.Fatal(err)
	}
	tpl, err := FromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got, err := tpl.Execute(map[string]interface{}{"label": "Red"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "[Red]" {
		t.Errorf("got %q", got)
	}

	if _, err := FromFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("FromFile(missing) did not fail")
	}
}

func TestFromStringInvalid(t *testing.T) {
	if _, err := FromString("{% for %}"); err == nil {
		t.Error("invalid template compiled")
	}
}
