package render

import (
	"strings"

	"github.com/vinser/zombicity/internal/sewer"
	"github.com/vinser/zombicity/internal/state"
)

// sewerColor names the palette entry of a tile.
func sewerColor(t sewer.Tile) string {
	switch t {
	case sewer.Wall:
		return "grey"
	case sewer.Drain, sewer.Cistern:
		return "sewage"
	case sewer.Hatch:
		return "yellow"
	case sewer.Inlet:
		return "red"
	case sewer.Outfall:
		return "green"
	}
	return "white"
}

// sewerSprite returns the lines drawn for one tile.
func sewerSprite(size string, t sewer.Tile) []string {
	switch size {
	case state.GlyphSmall:
		switch t {
		case sewer.Wall:
			return []string{"░"}
		case sewer.Drain:
			return []string{"⋅"}
		case sewer.Cistern:
			return []string{"≈"}
		case sewer.Hatch:
			return []string{"◘"}
		case sewer.Inlet:
			return []string{"▾"}
		case sewer.Outfall:
			return []string{"▴"}
		default:
			return []string{" "}
		}
	case state.GlyphLarge:
		switch t {
		case sewer.Wall:
			return []string{"░░░░", "░░░░"}
		case sewer.Drain:
			return []string{" ▗▖ ", " ▝▘ "}
		case sewer.Cistern:
			return []string{"≈≈≈≈", "≈≈≈≈"}
		case sewer.Hatch:
			return []string{"▛▀▀▜", "▙▄▄▟"}
		case sewer.Inlet:
			return []string{" ◥◤ ", " ◥◤ "}
		case sewer.Outfall:
			return []string{" ◢◣ ", " ◢◣ "}
		default:
			return []string{"    ", "    "}
		}
	default:
		switch t {
		case sewer.Wall:
			return []string{"▒▒"}
		case sewer.Drain:
			return []string{"╺╸"}
		case sewer.Cistern:
			return []string{"≈≈"}
		case sewer.Hatch:
			return []string{"◘◘"}
		case sewer.Inlet:
			return []string{"◥◤"}
		case sewer.Outfall:
			return []string{"◢◣"}
		default:
			return []string{"  "}
		}
	}
}

// Sewer draws the level. Options.Window is in tiles, Options.Cursor is ignored.
func Sewer(l *sewer.Level, opt Options) string {
	p := newPainter(opt)
	r := opt.bounds(l.Width(), l.Height())
	var lines []string
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		var row []strings.Builder
		for x := r.Min.X; x <= r.Max.X; x++ {
			t, _ := l.TileAt(x, y)
			sprite := sewerSprite(opt.Size, t)
			if row == nil {
				row = make([]strings.Builder, len(sprite))
			}
			for i, s := range sprite {
				row[i].WriteString(p.paint(sewerColor(t), s))
			}
		}
		for i := range row {
			lines = append(lines, row[i].String())
		}
	}
	return strings.Join(lines, "\n")
}
