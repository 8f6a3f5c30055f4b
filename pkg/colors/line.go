package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Line is one line of demo output. Styling starts at Styled and runs to the
// end of the line, the same convention as a console "%c" marker.
type Line struct {
	Plain  string `json:"plain,omitempty"`
	Styled string `json:"styled,omitempty"`
	Color  Color  `json:"color,omitempty"`
}

// Text builds an unstyled line.
func Text(s string) Line {
	return Line{Plain: s}
}

// Styled builds a line whose tail, starting at styled, is painted with c.
func Styled(plain, styled string, c Color) Line {
	return Line{Plain: plain, Styled: styled, Color: c}
}

// Textf is Text with fmt formatting.
func Textf(format string, args ...any) Line {
	return Text(fmt.Sprintf(format, args...))
}

// String returns the line without any styling.
func (l Line) String() string {
	return l.Plain + l.Styled
}

// Strings converts lines to plain text.
func Strings(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return out
}

// Join renders lines as plain text separated by newlines.
func Join(lines []Line) string {
	return strings.Join(Strings(lines), "\n")
}

// Printer writes lines to an output through a palette.
type Printer struct {
	w       io.Writer
	palette *Palette
}

// NewPrinter creates a printer. Options are forwarded to the palette.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w, palette: NewPalette(w, opts...)}
}

// Print writes each line followed by a newline.
func (p *Printer) Print(lines ...Line) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(p.w, p.palette.Render(l)); err != nil {
			return err
		}
	}
	return nil
}

// Blank writes an empty line.
func (p *Printer) Blank() error {
	_, err := fmt.Fprintln(p.w)
	return err
}

// Palette returns the palette used by the printer.
func (p *Printer) Palette() *Palette {
	return p.palette
}
