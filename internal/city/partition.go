package city

import (
	"math/rand"
)

// Layout records how the partitioner carved the grid.
type Layout struct {
	Splits []Rect // rectangles that received a street cross, in visiting order
	Leaves []Rect // sub-rectangles too small to split, later filled with rooms
}

// partitioner carries the state of one recursive street layout.
type partitioner struct {
	grid    *Grid
	rng     *rand.Rand
	spawned bool
	layout  Layout
}

// split lays a street cross inside r and recurses into the four quadrants
// left around it.
func (pt *partitioner) split(r Rect) {
	if !r.Splittable() {
		panic("city: split called on a rectangle smaller than the minimum")
	}
	cross := pt.crossroad(r)
	if !pt.spawned {
		pt.placeSpawn(cross, r)
		pt.spawned = true
	}
	pt.layStreets(cross, r)
	pt.layout.Splits = append(pt.layout.Splits, r)

	for _, sub := range quadrants(cross, r) {
		if sub.Splittable() {
			pt.split(sub)
		} else {
			pt.layout.Leaves = append(pt.layout.Leaves, sub)
		}
	}
}

// crossroad picks a position two cells away from every border of r.
func (pt *partitioner) crossroad(r Rect) Position {
	x := r.Min.X + 2 + pt.rng.Intn(r.Width()-4)
	y := r.Min.Y + 2 + pt.rng.Intn(r.Height()-4)
	return Position{X: x, Y: y}
}

// placeSpawn puts the spawn on the first crossroad and the sewer exits where
// its streets meet the map border.
func (pt *partitioner) placeSpawn(cross Position, r Rect) {
	g := pt.grid
	g.put(newCell(cross, Spawn))
	for _, p := range []Position{
		{X: cross.X, Y: 0},
		{X: r.Max.X, Y: cross.Y},
		{X: cross.X, Y: r.Max.Y},
		{X: 0, Y: cross.Y},
	} {
		g.put(newCell(p, Manhole))
	}
}

// layStreets fills the crossroad row and column inside r, keeping any cell
// that is already taken.
func (pt *partitioner) layStreets(cross Position, r Rect) {
	g := pt.grid
	for x := r.Min.X; x <= r.Max.X; x++ {
		if g.cellAt(x, cross.Y) == nil {
			g.put(newCell(Position{X: x, Y: cross.Y}, Street))
		}
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		if g.cellAt(cross.X, y) == nil {
			g.put(newCell(Position{X: cross.X, Y: y}, Street))
		}
	}
}

// quadrants returns the four blocks of r that the street cross leaves free:
// top-left, top-right, bottom-left, bottom-right.
func quadrants(cross Position, r Rect) [4]Rect {
	return [4]Rect{
		{Min: r.Min, Max: Position{X: cross.X - 1, Y: cross.Y - 1}},
		{Min: Position{X: cross.X + 1, Y: r.Min.Y}, Max: Position{X: r.Max.X, Y: cross.Y - 1}},
		{Min: Position{X: r.Min.X, Y: cross.Y + 1}, Max: Position{X: cross.X - 1, Y: r.Max.Y}},
		{Min: Position{X: cross.X + 1, Y: cross.Y + 1}, Max: r.Max},
	}
}
