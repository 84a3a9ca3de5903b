package city

import (
	"math/rand"
	"testing"
)

func TestCrossroadStaysInside(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
	}{
		{"minimal", Rect{Max: Position{X: 4, Y: 4}}},
		{"offset", Rect{Min: Position{X: 3, Y: 7}, Max: Position{X: 9, Y: 15}}},
		{"wide", Rect{Max: Position{X: 40, Y: 5}}},
		{"tall", Rect{Min: Position{X: 2, Y: 2}, Max: Position{X: 6, Y: 30}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt := &partitioner{rng: rand.New(rand.NewSource(1))}
			for i := 0; i < 1000; i++ {
				p := pt.crossroad(tt.r)
				if p.X < tt.r.Min.X+2 || p.X > tt.r.Max.X-2 || p.Y < tt.r.Min.Y+2 || p.Y > tt.r.Max.Y-2 {
					t.Fatalf("crossroad %v too close to the border of %v", p, tt.r)
				}
			}
		})
	}
}

func TestQuadrants(t *testing.T) {
	r := Rect{Max: Position{X: 8, Y: 9}}
	got := quadrants(Position{X: 3, Y: 4}, r)
	want := [4]Rect{
		{Min: Position{X: 0, Y: 0}, Max: Position{X: 2, Y: 3}},
		{Min: Position{X: 4, Y: 0}, Max: Position{X: 8, Y: 3}},
		{Min: Position{X: 0, Y: 5}, Max: Position{X: 2, Y: 9}},
		{Min: Position{X: 4, Y: 5}, Max: Position{X: 8, Y: 9}},
	}
	if got != want {
		t.Errorf("quadrants() = %v, want %v", got, want)
	}
}

func TestRecursionSplitsExactlyTheLargeRectangles(t *testing.T) {
	for _, sz := range sizes {
		for seed := int64(1); seed <= 20; seed++ {
			g := mustGrid(sz.w, sz.h, seed)
			layout := g.Layout()
			if len(layout.Splits) == 0 {
				t.Fatalf("%dx%d seed %d: nothing was split", sz.w, sz.h, seed)
			}
			if first := layout.Splits[0]; first.Width() != sz.w || first.Height() != sz.h {
				t.Errorf("%dx%d seed %d: first split is %v", sz.w, sz.h, seed, first)
			}
			for _, r := range layout.Splits {
				if !r.Splittable() {
					t.Errorf("%dx%d seed %d: split %v is smaller than %dx%d", sz.w, sz.h, seed, r, MinSize, MinSize)
				}
			}
			area := 0
			for _, r := range layout.Leaves {
				if r.Splittable() {
					t.Errorf("%dx%d seed %d: leaf %v was left unsplit", sz.w, sz.h, seed, r)
				}
				area += r.Width() * r.Height()
			}
			// Leaves are exactly the cells no street reached.
			if rooms := len(g.Rooms()); rooms != area {
				t.Errorf("%dx%d seed %d: %d rooms, leaves cover %d cells", sz.w, sz.h, seed, rooms, area)
			}
		}
	}
}

func TestStreetsKeepSpawnAndManholes(t *testing.T) {
	g := &Grid{width: 7, height: 7, cells: make([]*Cell, 49)}
	pt := &partitioner{grid: g, rng: rand.New(rand.NewSource(5))}
	r := Rect{Max: Position{X: 6, Y: 6}}
	cross := pt.crossroad(r)
	pt.placeSpawn(cross, r)
	pt.layStreets(cross, r)

	if k := g.CellAt(cross).Kind(); k != Spawn {
		t.Errorf("crossroad is %s, want spawn", k)
	}
	for _, p := range []Position{{X: cross.X, Y: 0}, {X: 6, Y: cross.Y}, {X: cross.X, Y: 6}, {X: 0, Y: cross.Y}} {
		if k := g.CellAt(p).Kind(); k != Manhole {
			t.Errorf("%v is %s, want manhole", p, k)
		}
	}
	if n := g.count(Street); n != 13-5 {
		t.Errorf("%d streets, want 8", n)
	}
}

func TestSplitIsIdempotentOnOccupiedCells(t *testing.T) {
	g := &Grid{width: 9, height: 9, cells: make([]*Cell, 81)}
	pt := &partitioner{grid: g, rng: rand.New(rand.NewSource(9))}
	r := Rect{Max: Position{X: 8, Y: 8}}
	cross := pt.crossroad(r)
	pt.layStreets(cross, r)
	first := g.CellAt(cross)
	pt.layStreets(cross, r)
	if g.CellAt(cross) != first {
		t.Error("laying the same streets twice replaced a cell")
	}
}

func TestRect(t *testing.T) {
	tests := []struct {
		name       string
		r          Rect
		w, h       int
		splittable bool
	}{
		{"5x5", Rect{Max: Position{X: 4, Y: 4}}, 5, 5, true},
		{"4x9", Rect{Min: Position{X: 1, Y: 0}, Max: Position{X: 4, Y: 8}}, 4, 9, false},
		{"9x4", Rect{Min: Position{X: 0, Y: 5}, Max: Position{X: 8, Y: 8}}, 9, 4, false},
		{"2x2", Rect{Min: Position{X: 3, Y: 3}, Max: Position{X: 4, Y: 4}}, 2, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.r.Width() != tt.w || tt.r.Height() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", tt.r.Width(), tt.r.Height(), tt.w, tt.h)
			}
			if tt.r.Splittable() != tt.splittable {
				t.Errorf("Splittable() = %v, want %v", tt.r.Splittable(), tt.splittable)
			}
			if !tt.r.Contains(tt.r.Min) || !tt.r.Contains(tt.r.Max) {
				t.Error("rectangle should contain its corners")
			}
		})
	}
}
