package flags

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/vinser/zombicity/internal/city"
	"github.com/vinser/zombicity/internal/state"
)

// Flags stores the parsed command-line options
type Flags struct {
	Width  int    // 0 keeps the saved width
	Height int    // 0 keeps the saved height
	Seed   int64  // valid when SeedSet
	Glyph  string // empty keeps the saved glyph size
	Mute   bool
	Reset  bool
	Dump   bool

	SeedSet bool
	MuteSet bool
	Custom  bool // any flag differs from its default
}

var (
	ErrWidth  = errors.New("flags: invalid width")
	ErrHeight = errors.New("flags: invalid height")
	ErrGlyph  = errors.New("flags: invalid glyph size")
)

// NewFlagSet registers every option of the program on a fresh flag set.
func NewFlagSet(name string, handling flag.ErrorHandling, f *Flags) *FlagSetWithVisit {
	fs := NewFlagSetWithVisit(name, handling)
	fs.IntVar(&f.Width, "width", "w", 0, fmt.Sprintf("City width in cells (%d-%d)", city.MinSize, state.MaxWidth))
	fs.IntVar(&f.Height, "height", "h", 0, fmt.Sprintf("City height in cells (%d-%d)", city.MinSize, state.MaxHeight))
	fs.Int64Var(&f.Seed, "seed", "s", 0, "Seed of the city, a random one when omitted")
	fs.StringVar(&f.Glyph, "glyph", "g", "", "Glyph size: small, medium or large")
	fs.BoolVar(&f.Mute, "mute", "m", false, "Mute all sounds")
	fs.BoolVar(&f.Reset, "reset", "r", false, "Reset saved settings and seed history")
	fs.BoolVar(&f.Dump, "dump", "d", false, "Print the city as plain text and exit")
	return fs
}

// Parse parses command-line arguments (without the program name).
// Errors carry the usage hint; flag.ErrHelp is returned for -help.
func Parse(name string, args []string) (*Flags, error) {
	f := &Flags{}
	fs := NewFlagSet(name, flag.ContinueOnError, f)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	f.SeedSet = fs.IsCustom("seed")
	f.MuteSet = fs.IsCustom("mute")
	f.Custom = fs.HasCustom()

	if fs.IsCustom("width") && (f.Width < city.MinSize || f.Width > state.MaxWidth) {
		return nil, fmt.Errorf("%w: %d. Use %d-%d", ErrWidth, f.Width, city.MinSize, state.MaxWidth)
	}
	if fs.IsCustom("height") && (f.Height < city.MinSize || f.Height > state.MaxHeight) {
		return nil, fmt.Errorf("%w: %d. Use %d-%d", ErrHeight, f.Height, city.MinSize, state.MaxHeight)
	}

	// Normalize glyph size value
	f.Glyph = strings.ToLower(f.Glyph)
	if f.Glyph != "" && !state.ValidGlyphSize(f.Glyph) {
		return nil, fmt.Errorf("%w: %s. Use 'small', 'medium' or 'large'", ErrGlyph, f.Glyph)
	}
	return f, nil
}

// Apply copies the options that were given onto the saved settings.
func (f *Flags) Apply(s *state.State) {
	w, h := s.Width, s.Height
	if f.Width != 0 {
		w = f.Width
	}
	if f.Height != 0 {
		h = f.Height
	}
	s.SetSize(w, h)
	if f.Glyph != "" {
		s.GlyphSize = f.Glyph
	}
	if f.MuteSet {
		s.SetMute(f.Mute)
	}
}

// Usage prints the option list of the program to stderr.
func Usage(name string) {
	NewFlagSet(name, flag.ContinueOnError, &Flags{}).Usage()
}

// IsInvalid reports whether err rejects an option value rather than the command line syntax.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrWidth) || errors.Is(err, ErrHeight) || errors.Is(err, ErrGlyph)
}
