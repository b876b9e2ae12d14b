// Package display implements sinks for the sampling loop.
package display

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/mmuldo/colorvisor/render"
	"github.com/mmuldo/colorvisor/sample"
)

// Terminal prints one frame per tick. With ANSI enabled the line is drawn
// on the sampled background in the contrasting foreground; with Live set
// each frame overwrites the previous line.
type Terminal struct {
	w     io.Writer
	tpl   *render.Template
	label string

	ANSI bool
	Live bool
}

// NewTerminal returns a sink writing to w. ANSI colors and live redraw are
// enabled when w is a terminal.
func NewTerminal(w io.Writer, tpl *render.Template) (*Terminal, error) {
	if tpl == nil {
		var err error
		if tpl, err = render.FromString(render.DefaultLine); err != nil {
			return nil, err
		}
	}

	t := &Terminal{w: w, tpl: tpl}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.ANSI = true
		t.Live = true
	}
	return t, nil
}

// SetLabel stores the text for the next frame.
func (t *Terminal) SetLabel(label string) {
	t.label = label
}

// SetColors renders the frame.
func (t *Terminal) SetColors(bg, fg sample.RGB) error {
	ctx := render.Color(sample.FromRGB(bg))
	ctx["label"] = t.label
	ctx["foreground"] = fg.Hex()

	text, err := t.tpl.Execute(ctx)
	if err != nil {
		return err
	}

	switch {
	case t.ANSI && t.Live:
		_, err = fmt.Fprintf(t.w, "\r\033[K%s %s \033[0m", escape(bg, fg), text)
	case t.ANSI:
		_, err = fmt.Fprintf(t.w, "%s %s \033[0m\n", escape(bg, fg), text)
	default:
		_, err = fmt.Fprintln(t.w, text)
	}
	return err
}

// Close ends a live line.
func (t *Terminal) Close() error {
	if t.Live {
		_, err := io.WriteString(t.w, "\n")
		return err
	}
	return nil
}

func escape(bg, fg sample.RGB) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm\033[38;2;%d;%d;%dm", bg.R, bg.G, bg.B, fg.R, fg.G, fg.B)
}
