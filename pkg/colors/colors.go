// Package colors is the console color lookup table shared by every pattern demo.
//
// Products never write escape codes themselves. They return Lines, and a
// Palette decides how (and whether) to style them for the current terminal.
package colors

import (
	"io"
	"os"
	"sort"

	"github.com/muesli/termenv"
)

// Color is a named console color.
type Color string

const (
	Black  Color = "black"
	Red    Color = "red"
	Green  Color = "green"
	Yellow Color = "yellow"
	Blue   Color = "blue"
	Purple Color = "purple"
	Cyan   Color = "cyan"
	White  Color = "white"
	Orange Color = "orange"
	Pink   Color = "pink"
	Gray   Color = "gray"
	Brown  Color = "brown"
)

// table maps every named color to the hex value used on truecolor terminals.
// termenv degrades it to the nearest ANSI color on smaller profiles.
var table = map[Color]string{
	Black:  "#000000",
	Red:    "#ef4444",
	Green:  "#22c55e",
	Yellow: "#eab308",
	Blue:   "#3b82f6",
	Purple: "#a855f7",
	Cyan:   "#06b6d4",
	White:  "#ffffff",
	Orange: "#f97316",
	Pink:   "#ec4899",
	Gray:   "#6b7280",
	Brown:  "#a16207",
}

// Hex returns the hex value of c and whether c is a known color.
func Hex(c Color) (string, bool) {
	hex, ok := table[c]
	return hex, ok
}

// Names returns all known colors, sorted.
func Names() []Color {
	names := make([]Color, 0, len(table))
	for c := range table {
		names = append(names, c)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Palette renders Lines for a specific output.
type Palette struct {
	out *termenv.Output
}

// Option configures a Palette.
type Option func(*paletteConfig)

type paletteConfig struct {
	profile *termenv.Profile
}

// WithProfile forces a color profile instead of detecting it from the output.
func WithProfile(p termenv.Profile) Option {
	return func(c *paletteConfig) {
		c.profile = &p
	}
}

// WithoutColor is shorthand for WithProfile(termenv.Ascii).
func WithoutColor() Option {
	return WithProfile(termenv.Ascii)
}

// NewPalette creates a palette for w. A nil writer means os.Stdout.
func NewPalette(w io.Writer, opts ...Option) *Palette {
	if w == nil {
		w = os.Stdout
	}
	cfg := &paletteConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var outOpts []termenv.OutputOption
	if cfg.profile != nil {
		outOpts = append(outOpts, termenv.WithProfile(*cfg.profile))
	}
	return &Palette{out: termenv.NewOutput(w, outOpts...)}
}

// Paint styles s with color c. Unknown colors leave s untouched.
func (p *Palette) Paint(c Color, s string) string {
	hex, ok := table[c]
	if !ok || s == "" || p.out.Profile == termenv.Ascii {
		return s
	}
	return p.out.String(s).Foreground(p.out.Color(hex)).String()
}

// Render returns the styled text of l.
func (p *Palette) Render(l Line) string {
	if l.Color == "" {
		return l.Plain + l.Styled
	}
	return l.Plain + p.Paint(l.Color, l.Styled)
}

// Colored reports whether the palette emits escape sequences.
func (p *Palette) Colored() bool {
	return p.out.Profile != termenv.Ascii
}
