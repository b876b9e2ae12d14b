// Package render formats color results through pongo2 templates.
package render

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/flosch/pongo2"

	"github.com/mmuldo/colorvisor/match"
	"github.com/mmuldo/colorvisor/sample"
)

// DefaultLine renders one label per line.
const DefaultLine = "{{ label }}"

// DefaultReport lists matches one per line.
const DefaultReport = `{% for m in matches %}{{ m.hex }} {{ m.name }} ({{ m.distance|floatformat:2 }}){% if m.count %} x{{ m.count }}{% endif %}
{% endfor %}`

func init() {
	// output is text, not HTML
	pongo2.SetAutoescape(false)
}

// Template wraps a compiled pongo2 template.
type Template struct {
	tpl *pongo2.Template
}

// FromString compiles src.
func FromString(src string) (*Template, error) {
	tpl, e := pongo2.FromString(src)
	if e != nil {
		return nil, fmt.Errorf("render: %w", e)
	}
	return &Template{tpl}, nil
}

// FromFile compiles the template stored at path.
func FromFile(path string) (*Template, error) {
	src, e := ioutil.ReadFile(path)
	if e != nil {
		return nil, e
	}
	return FromString(string(src))
}

// Execute renders the template with ctx.
func (t *Template) Execute(ctx map[string]interface{}) (string, error) {
	return t.tpl.Execute(pongo2.Context(ctx))
}

// Color is the template context for a single color: hex, r, g, b, rgb,
// lab_l, lab_a, lab_b and name.
func Color(s sample.Sample) map[string]interface{} {
	c, lab := s.RGB(), s.Lab()
	return map[string]interface{}{
		"name":  s.Name(),
		"hex":   c.Hex(),
		"rgb":   c.String(),
		"r":     int(c.R),
		"g":     int(c.G),
		"b":     int(c.B),
		"lab_l": lab[0],
		"lab_a": lab[1],
		"lab_b": lab[2],
	}
}

// Match describes a query color, its nearest catalog entry and how many
// pixels it covers (0 if unknown).
type Match struct {
	Query  sample.Sample
	Result match.Result
	Count  int
}

func (m Match) context() map[string]interface{} {
	ctx := Color(m.Query)
	ctx["name"] = m.Result.Entry.Name()
	ctx["entry"] = Color(m.Result.Entry)
	ctx["distance"] = m.Result.Distance
	ctx["count"] = m.Count
	return ctx
}

// Report renders matches to w. The template sees them as "matches".
func (t *Template) Report(w io.Writer, matches []Match) error {
	list := make([]map[string]interface{}, len(matches))
	for i, m := range matches {
		list[i] = m.context()
	}

	o, e := t.Execute(map[string]interface{}{"matches": list})
	if e != nil {
		return e
	}
	_, e = io.WriteString(w, o)
	return e
}
