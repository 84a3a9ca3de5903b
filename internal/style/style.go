package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// General UI
	SplashStreet  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // Grey
	SplashTitle   = lipgloss.NewStyle().Foreground(lipgloss.Color("226")) // Bright yellow
	SplashZombies = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")),  // Bright green
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // Green
		lipgloss.NewStyle().Foreground(lipgloss.Color("100")), // Olive
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")),   // Bright red
	}

	SetupTitle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	SetupItem         = lipgloss.NewStyle()
	SetupItemSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true) // Pinkish-reddish purple
	InspectHeader     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))  // Green
	PanelLabel        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	PanelValue        = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	PanelBox          = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("241")).Padding(0, 1)

	Seed = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // Bright red
	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Content    = lipgloss.NewStyle()
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type RGB struct {
	R int
	G int
	B int
}

var RGBColor = map[string]RGB{
	"black":   {0, 0, 0},
	"red":     {255, 0, 0},
	"green":   {0, 255, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"magenta": {255, 0, 255},
	"cyan":    {0, 255, 255},
	"white":   {255, 255, 255},
	"grey":    {128, 128, 128},
	"brown":   {165, 42, 42},
	"sewage":  {96, 128, 48},
	"asphalt": {160, 160, 170},
}

// GenerateHexColor generates hexadcimal string for a given RGB values. r, g, b sould be in the range 0-255
// Format: #RRGGBB
func GenerateHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func (c RGB) Hex() string {
	return GenerateHexColor(c.R, c.G, c.B)
}

// Shade scales every channel of c by factor, clamped to 0-255.
func Shade(c RGB, factor float64) RGB {
	ch := func(v int) int {
		s := int(float64(v)*factor + 0.5)
		if s > 255 {
			return 255
		}
		if s < 0 {
			return 0
		}
		return s
	}
	return RGB{R: ch(c.R), G: ch(c.G), B: ch(c.B)}
}

// Foreground returns a style painting text in the named color dimmed by factor.
// Unknown names fall back to white.
func Foreground(name string, factor float64) lipgloss.Style {
	c, ok := RGBColor[name]
	if !ok {
		c = RGBColor["white"]
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(Shade(c, factor).Hex()))
}
