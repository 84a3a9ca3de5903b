package flags

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/vinser/zombicity/internal/state"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Flags
	}{
		{"defaults", nil, Flags{}},
		{"long", []string{"-width", "30", "-height=12", "-seed", "77", "-glyph", "LARGE"},
			Flags{Width: 30, Height: 12, Seed: 77, Glyph: "large", SeedSet: true, Custom: true}},
		{"short", []string{"-w=9", "-h", "7", "-s", "0", "-m", "-d"},
			Flags{Width: 9, Height: 7, Mute: true, Dump: true, SeedSet: true, MuteSet: true, Custom: true}},
		{"reset", []string{"-r"}, Flags{Reset: true, Custom: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse("zombicity", tt.args)
			if err != nil {
				t.Fatal(err)
			}
			if *got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"narrow", []string{"-w", "4"}, ErrWidth},
		{"wide", []string{"-width=500"}, ErrWidth},
		{"flat", []string{"-h", "0"}, ErrHeight},
		{"glyph", []string{"-g", "huge"}, ErrGlyph},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("zombicity", tt.args)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%v) error = %v, want %v", tt.args, err, tt.want)
			}
			if !IsInvalid(err) {
				t.Errorf("IsInvalid(%v) = false", err)
			}
		})
	}
}

func TestUsageListsAliases(t *testing.T) {
	var out bytes.Buffer
	fs := NewFlagSet("zombicity", flag.ContinueOnError, &Flags{})
	fs.SetOutput(&out)
	if err := fs.Parse([]string{"-help"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("Parse(-help) error = %v, want %v", err, flag.ErrHelp)
	}
	usage := out.String()
	for _, want := range []string{"-w, -width", "-s, -seed", "-d, -dump"} {
		if !strings.Contains(usage, want) {
			t.Errorf("usage does not mention %q:\n%s", want, usage)
		}
	}
}

func TestApply(t *testing.T) {
	s := &state.State{Width: 20, Height: 12, GlyphSize: state.GlyphMedium}
	f, err := Parse("zombicity", []string{"-w", "8", "-g", "small"})
	if err != nil {
		t.Fatal(err)
	}
	f.Apply(s)
	if s.Width != 8 || s.Height != 12 || s.GlyphSize != state.GlyphSmall {
		t.Errorf("Apply() = %dx%d %s", s.Width, s.Height, s.GlyphSize)
	}
}
