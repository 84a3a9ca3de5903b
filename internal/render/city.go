package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/zombicity/internal/city"
	"github.com/vinser/zombicity/internal/state"
	"github.com/vinser/zombicity/internal/style"
)

// Door marks
const (
	wallV   = "#"
	closedV = "|"
	openV   = " "
	wallH   = "==="
	closedH = "---"
	openH   = "   "
	corner  = "+"
)

// CursorGlyph marks the cell under the scout in plain output.
const CursorGlyph = '@'

// Options control how a grid is drawn.
type Options struct {
	Size   string         // glyph size: state.GlyphSmall, GlyphMedium or GlyphLarge
	Styled bool           // paint with lipgloss, otherwise plain text
	Shade  float64        // palette brightness factor, used when Styled
	Cursor *city.Position // optional scout position
	Mark   string         // pre-styled cursor mark, one cell wide
	Window *city.Rect     // optional visible cells, the whole map when nil
}

// bounds clips the window of opt to a width x height map.
func (opt Options) bounds(width, height int) city.Rect {
	r := city.Rect{Max: city.Position{X: width - 1, Y: height - 1}}
	if opt.Window == nil {
		return r
	}
	w := *opt.Window
	r.Min.X = max(r.Min.X, w.Min.X)
	r.Min.Y = max(r.Min.Y, w.Min.Y)
	r.Max.X = min(r.Max.X, w.Max.X)
	r.Max.Y = min(r.Max.Y, w.Max.Y)
	return r
}

// Plain returns options for uncolored output of the given size.
func Plain(size string) Options {
	return Options{Size: size, Shade: 1}
}

// cellColor names the palette entry of a cell.
func cellColor(c *city.Cell) string {
	switch c.Kind() {
	case city.SpecialRoom:
		if c.CanFight() {
			return "green"
		}
		return "cyan"
	case city.Street:
		return "asphalt"
	case city.Manhole:
		return "sewage"
	case city.Spawn:
		return "red"
	}
	return "brown"
}

type painter struct {
	opt    Options
	styles map[string]lipgloss.Style
}

func newPainter(opt Options) *painter {
	return &painter{opt: opt, styles: make(map[string]lipgloss.Style)}
}

func (p *painter) paint(color, s string) string {
	if !p.opt.Styled {
		return s
	}
	st, ok := p.styles[color]
	if !ok {
		st = style.Foreground(color, p.opt.Shade)
		p.styles[color] = st
	}
	return st.Render(s)
}

func (p *painter) glyph(c *city.Cell) string {
	if p.opt.Cursor != nil && *p.opt.Cursor == c.Pos() {
		if p.opt.Styled && p.opt.Mark != "" {
			return p.opt.Mark
		}
		return p.paint("yellow", string(CursorGlyph))
	}
	return p.paint(cellColor(c), string(c.Glyph()))
}

// doorMark picks the mark for side d of c.
func doorMark(g *city.Grid, c *city.Cell, d city.Direction, wall, closed, open string) string {
	door, ok := g.Door(c, d)
	switch {
	case !ok:
		return wall
	case door.IsOpen():
		return open
	default:
		return closed
	}
}

// City draws g. Small output shows one glyph per cell, medium adds the
// left door of every cell and large boxes every cell with all its doors.
func City(g *city.Grid, opt Options) string {
	p := newPainter(opt)
	switch opt.Size {
	case state.GlyphSmall:
		return citySmall(g, p)
	case state.GlyphLarge:
		return cityLarge(g, p)
	default:
		return cityMedium(g, p)
	}
}

func citySmall(g *city.Grid, p *painter) string {
	r := p.opt.bounds(g.Width(), g.Height())
	lines := make([]string, 0, r.Height())
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		var b strings.Builder
		for x := r.Min.X; x <= r.Max.X; x++ {
			b.WriteString(p.glyph(g.CellAt(city.Position{X: x, Y: y})))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func cityMedium(g *city.Grid, p *painter) string {
	r := p.opt.bounds(g.Width(), g.Height())
	lines := make([]string, 0, r.Height())
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		var b strings.Builder
		for x := r.Min.X; x <= r.Max.X; x++ {
			c := g.CellAt(city.Position{X: x, Y: y})
			b.WriteString(p.paint("grey", doorMark(g, c, city.Left, wallV, closedV, openV)))
			b.WriteString(p.glyph(c))
		}
		last := g.CellAt(city.Position{X: r.Max.X, Y: y})
		b.WriteString(p.paint("grey", doorMark(g, last, city.Right, wallV, closedV, openV)))
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func cityLarge(g *city.Grid, p *painter) string {
	r := p.opt.bounds(g.Width(), g.Height())
	lines := make([]string, 0, 2*r.Height()+1)
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		var top, mid strings.Builder
		for x := r.Min.X; x <= r.Max.X; x++ {
			c := g.CellAt(city.Position{X: x, Y: y})
			top.WriteString(p.paint("grey", corner+doorMark(g, c, city.Up, wallH, closedH, openH)))
			mid.WriteString(p.paint("grey", doorMark(g, c, city.Left, wallV, closedV, openV)))
			mid.WriteString(" " + p.glyph(c) + " ")
		}
		last := g.CellAt(city.Position{X: r.Max.X, Y: y})
		top.WriteString(p.paint("grey", corner))
		mid.WriteString(p.paint("grey", doorMark(g, last, city.Right, wallV, closedV, openV)))
		lines = append(lines, top.String(), mid.String())
	}
	var bottom strings.Builder
	for x := r.Min.X; x <= r.Max.X; x++ {
		c := g.CellAt(city.Position{X: x, Y: r.Max.Y})
		bottom.WriteString(p.paint("grey", corner+doorMark(g, c, city.Down, wallH, closedH, openH)))
	}
	bottom.WriteString(p.paint("grey", corner))
	lines = append(lines, bottom.String())
	return strings.Join(lines, "\n")
}

// Legend lists the glyphs that can appear on a map.
func Legend() [][2]string {
	var rows [][2]string
	for _, k := range []city.Kind{city.Room, city.Street, city.Manhole, city.Spawn} {
		rows = append(rows, [2]string{string(k.Glyph()), k.String()})
	}
	for _, s := range city.Specials {
		rows = append(rows, [2]string{string(s.Glyph), s.Name})
	}
	return append(rows, [2]string{string(CursorGlyph), "scout"})
}
