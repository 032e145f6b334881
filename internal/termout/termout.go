/*
Package termout helps dumping trees to a console. Output to an interactive
terminal is colored, output to anything else is plain.
*/
package termout

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Palette holds the colors used to display parts of a tree.
type Palette struct {
	Inner  *color.Color // nodes with children
	Leaf   *color.Color // nodes without children
	Absent *color.Color // placeholders for missing children
	Edge   *color.Color // indentation and branch marks
}

// DefaultPalette creates the palette used by tree dumps.
func DefaultPalette() *Palette {
	return &Palette{
		Inner:  color.New(color.FgBlue, color.Bold),
		Leaf:   color.New(color.FgGreen),
		Absent: color.New(color.FgHiBlack),
		Edge:   color.New(color.FgHiBlack),
	}
}

// IsTerminal checks whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ForWriter returns a default palette with colors enabled if and only if w
// is a terminal.
func ForWriter(w io.Writer) *Palette {
	p := DefaultPalette()
	if IsTerminal(w) {
		p.each((*color.Color).EnableColor)
	} else {
		p.each((*color.Color).DisableColor)
	}
	return p
}

func (p *Palette) each(f func(*color.Color)) {
	for _, c := range []*color.Color{p.Inner, p.Leaf, p.Absent, p.Edge} {
		f(c)
	}
}

// Line writes a single tree line at a given depth.
// branch is a short mark like "L" or "R", possibly empty.
func (p *Palette) Line(w io.Writer, depth int, branch string, label string, c *color.Color) {
	indent := strings.Repeat("│  ", depth)
	if branch != "" {
		branch += ": "
	}
	p.Edge.Fprint(w, indent+"├─ ")
	if branch != "" {
		p.Edge.Fprint(w, branch)
	}
	c.Fprint(w, label)
	fmt.Fprintln(w)
}
