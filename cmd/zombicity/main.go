package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/zombicity/internal/app"
	"github.com/vinser/zombicity/internal/flags"
	"github.com/vinser/zombicity/internal/render"
	"github.com/vinser/zombicity/internal/state"
)

var version = "dev"

func main() {
	name := filepath.Base(os.Args[0])
	fl, err := flags.Parse(name, os.Args[1:])
	switch {
	case errors.Is(err, flag.ErrHelp):
		return
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		if flags.IsInvalid(err) {
			flags.Usage(name)
		}
		os.Exit(2)
	}

	if fl.Dump {
		if err := dump(fl); err != nil {
			log.Fatal(err)
		}
		return
	}

	st := state.Load()
	if fl.Reset {
		st.Reset()
	}
	fl.Apply(st)
	seed := st.LastSeed
	if fl.SeedSet {
		seed = fl.Seed
	}

	p := tea.NewProgram(app.New(st, seed), tea.WithAltScreen())
	_, err = p.Run()
	if sm := st.SoundManager; sm != nil {
		sm.Close()
	}
	if err != nil {
		log.Fatalf("%s %s: %v", name, version, err)
	}
}

// dump prints one city as plain text without touching saved settings or audio.
func dump(fl *flags.Flags) error {
	st := &state.State{GlyphSize: state.GlyphSmall}
	st.SetSize(state.DefaultWidth, state.DefaultHeight)
	fl.Apply(st)
	seed := time.Now().UnixNano()
	if fl.SeedSet {
		seed = fl.Seed
	}

	g, _, err := app.Generate(st, seed)
	if err != nil {
		return err
	}
	if err := g.Audit(); err != nil {
		return err
	}
	fmt.Println(render.City(g, render.Plain(st.GlyphSize)))
	fmt.Printf("seed %d, %dx%d, %d rooms\n", seed, g.Width(), g.Height(), len(g.Rooms()))
	return nil
}
