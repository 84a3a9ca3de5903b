package city

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vinser/zombicity/internal/item"
)

var sizes = []struct{ w, h int }{
	{5, 5},
	{5, 12},
	{6, 9},
	{12, 8},
	{20, 20},
	{31, 17},
}

// mustGrid is a helper to panic on generation error (used for fixtures)
func mustGrid(w, h int, seed int64) *Grid {
	g, err := NewFromSeed(w, h, seed)
	if err != nil {
		panic(err)
	}
	return g
}

func TestNewRejectsSmallGrids(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"4x4", 4, 4},
		{"narrow", 4, 10},
		{"flat", 10, 4},
		{"empty", 0, 0},
		{"negative", -3, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewFromSeed(tt.w, tt.h, 1)
			if !errors.Is(err, ErrTooSmall) {
				t.Fatalf("NewFromSeed(%d, %d) error = %v, want %v", tt.w, tt.h, err, ErrTooSmall)
			}
			if g != nil {
				t.Error("expected no grid on error")
			}
		})
	}
}

func TestGeneratedGridsPassAudit(t *testing.T) {
	for _, sz := range sizes {
		for seed := int64(1); seed <= 20; seed++ {
			t.Run(fmt.Sprintf("%dx%d/seed%d", sz.w, sz.h, seed), func(t *testing.T) {
				g := mustGrid(sz.w, sz.h, seed)
				if err := g.Audit(); err != nil {
					t.Fatal(err)
				}
				if len(g.Manholes()) != 4 {
					t.Errorf("got %d manholes, want 4", len(g.Manholes()))
				}
				if g.Spawn() == nil || g.Spawn().Kind() != Spawn {
					t.Error("spawn is missing")
				}
			})
		}
	}
}

func TestEveryCellIsPopulated(t *testing.T) {
	g := mustGrid(17, 13, 42)
	n := 0
	g.Each(func(c *Cell) {
		if c == nil {
			t.Fatal("nil cell")
		}
		n++
	})
	if n != 17*13 {
		t.Errorf("visited %d cells, want %d", n, 17*13)
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := Position{X: x, Y: y}
			if c := g.CellAt(p); c == nil || c.Pos() != p {
				t.Errorf("CellAt(%v) = %v", p, c)
			}
		}
	}
	if g.CellAt(Position{X: -1, Y: 0}) != nil || g.CellAt(Position{X: 17, Y: 0}) != nil {
		t.Error("CellAt outside the grid should be nil")
	}
}

func TestRoomDoorsAreClosed(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := mustGrid(15, 11, seed)
		for _, r := range g.Rooms() {
			for _, d := range Directions {
				if door, ok := g.Door(r, d); ok && door.IsOpen() {
					t.Errorf("seed %d: %s door of room at %v is open", seed, d, r.Pos())
				}
			}
		}
		for x := 0; x < g.Width(); x++ {
			if _, ok := g.Door(g.CellAt(Position{X: x, Y: 0}), Up); ok {
				t.Errorf("seed %d: top boundary cell %d has an Up door", seed, x)
			}
		}
		for y := 0; y < g.Height(); y++ {
			if _, ok := g.Door(g.CellAt(Position{X: 0, Y: y}), Left); ok {
				t.Errorf("seed %d: left boundary cell %d has a Left door", seed, y)
			}
		}
	}
}

func TestFiveByFiveDegeneratesToOneSplit(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := mustGrid(5, 5, seed)

		if got := g.Spawn().Pos(); got != (Position{X: 2, Y: 2}) {
			t.Fatalf("seed %d: spawn at %v, want (2,2)", seed, got)
		}
		want := map[Position]bool{
			{X: 2, Y: 0}: true,
			{X: 4, Y: 2}: true,
			{X: 2, Y: 4}: true,
			{X: 0, Y: 2}: true,
		}
		for _, m := range g.Manholes() {
			if !want[m.Pos()] {
				t.Errorf("seed %d: unexpected manhole at %v", seed, m.Pos())
			}
			delete(want, m.Pos())
		}
		if len(want) != 0 {
			t.Errorf("seed %d: missing manholes %v", seed, want)
		}
		for _, p := range []Position{{X: 2, Y: 1}, {X: 2, Y: 3}, {X: 1, Y: 2}, {X: 3, Y: 2}} {
			if k := g.CellAt(p).Kind(); k != Street {
				t.Errorf("seed %d: %v is %s, want street", seed, p, k)
			}
		}
		if n := len(g.Rooms()); n != 16 {
			t.Errorf("seed %d: %d rooms, want 16", seed, n)
		}
		if n := g.count(SpecialRoom); n != 2 {
			t.Errorf("seed %d: %d special rooms, want 2", seed, n)
		}
		layout := g.Layout()
		if len(layout.Splits) != 1 || len(layout.Leaves) != 4 {
			t.Errorf("seed %d: %d splits and %d leaves, want 1 and 4", seed, len(layout.Splits), len(layout.Leaves))
		}
	}
}

func TestSameSeedSameCity(t *testing.T) {
	for _, sz := range sizes {
		a := mustGrid(sz.w, sz.h, 7)
		b := mustGrid(sz.w, sz.h, 7)
		for y := 0; y < sz.h; y++ {
			for x := 0; x < sz.w; x++ {
				p := Position{X: x, Y: y}
				ca, cb := a.CellAt(p), b.CellAt(p)
				if ca.Kind() != cb.Kind() || ca.Name() != cb.Name() {
					t.Fatalf("%dx%d: cell %v differs: %s vs %s", sz.w, sz.h, p, ca.Name(), cb.Name())
				}
				for _, d := range Directions {
					if ca.DoorID(d) != cb.DoorID(d) {
						t.Fatalf("%dx%d: door %s at %v differs", sz.w, sz.h, d, p)
					}
				}
				ia, ib := ca.Items(), cb.Items()
				if len(ia) != len(ib) {
					t.Fatalf("%dx%d: %v holds %d vs %d items", sz.w, sz.h, p, len(ia), len(ib))
				}
				for i := range ia {
					if ia[i] != ib[i] {
						t.Fatalf("%dx%d: item %d at %v differs", sz.w, sz.h, i, p)
					}
				}
			}
		}
	}
}

func TestSpecialRooms(t *testing.T) {
	g := mustGrid(9, 9, 3)
	continental := g.Special("The Continental")
	pharmacy := g.Special("The Pharmacy")
	if continental == nil || pharmacy == nil {
		t.Fatal("special rooms are missing")
	}
	if continental == pharmacy {
		t.Fatal("special rooms share a cell")
	}
	tests := []struct {
		cell  *Cell
		glyph rune
		fight bool
	}{
		{continental, 'C', false},
		{pharmacy, 'P', true},
	}
	for _, tt := range tests {
		t.Run(tt.cell.Name(), func(t *testing.T) {
			if tt.cell.Kind() != SpecialRoom || !tt.cell.IsRoom() {
				t.Errorf("kind = %s, want special room", tt.cell.Kind())
			}
			if tt.cell.Glyph() != tt.glyph {
				t.Errorf("Glyph() = %q, want %q", tt.cell.Glyph(), tt.glyph)
			}
			if tt.cell.CanFight() != tt.fight {
				t.Errorf("CanFight() = %v, want %v", tt.cell.CanFight(), tt.fight)
			}
		})
	}
}

func TestLootIsDispatched(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := mustGrid(14, 10, seed)
		inRooms := make(map[item.Kind]int)
		for _, r := range g.Rooms() {
			for _, it := range r.Items() {
				inRooms[it.Kind]++
			}
		}
		for _, kind := range item.Catalogue() {
			drawn := g.LootDrawn(kind)
			if drawn < MinItems || drawn > MaxItems {
				t.Errorf("seed %d: drew %d %s, want [%d, %d]", seed, drawn, kind, MinItems, MaxItems)
			}
			if inRooms[kind] != drawn {
				t.Errorf("seed %d: %d %s in rooms, %d drawn", seed, inRooms[kind], kind, drawn)
			}
		}
	}
}

func TestNeighborAndDoorBetween(t *testing.T) {
	g := mustGrid(8, 8, 11)
	p := Position{X: 3, Y: 3}
	for _, d := range Directions {
		n := g.Neighbor(p, d)
		if n == nil || n.Pos() != p.Move(d) {
			t.Fatalf("Neighbor(%v, %s) = %v", p, d, n)
		}
		door, ok := g.DoorBetween(p, n.Pos())
		if !ok {
			t.Fatalf("no door between %v and %v", p, n.Pos())
		}
		back, _ := g.DoorBetween(n.Pos(), p)
		if door != back {
			t.Errorf("door between %v and %v is not shared", p, n.Pos())
		}
	}
	if _, ok := g.DoorBetween(p, Position{X: 5, Y: 5}); ok {
		t.Error("non adjacent cells should not share a door")
	}
	if g.Neighbor(Position{X: 0, Y: 0}, Up) != nil {
		t.Error("neighbor beyond the boundary should be nil")
	}
}
