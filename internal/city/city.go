// Package city generates the map of a zombie survival game: a street network
// carved by recursive crossroads, rooms in the blocks between the streets, a
// spawn with four sewer exits, one shared door per pair of adjacent cells and
// loot scattered over the rooms.
//
// A Grid is built once and never changes shape afterwards. Gameplay may open
// and close doors, raise noise and move items, nothing else.
package city

import (
	"errors"
	"math/rand"

	"github.com/vinser/zombicity/internal/item"
)

// MinSize is the smallest width and height that can hold a street cross.
const MinSize = 5

var (
	ErrTooSmall         = errors.New("city: grid is smaller than 5x5")
	ErrNoRoomForSpecial = errors.New("city: no plain room left for a special room")
	ErrNoRooms          = errors.New("city: no rooms to dispatch items to")
	ErrNotRoom          = errors.New("city: cell is not a room")
)

// Grid owns every cell and door of a generated city.
type Grid struct {
	width    int
	height   int
	cells    []*Cell
	doors    []Door
	rooms    []*Cell
	spawn    *Cell
	manholes []*Cell
	layout   Layout
	loot     map[item.Kind]int
}

// New generates a width x height city drawing every random choice from rng.
// It returns either a complete grid or an error, never a partial grid.
func New(width, height int, rng *rand.Rand) (*Grid, error) {
	if width < MinSize || height < MinSize {
		return nil, ErrTooSmall
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]*Cell, width*height),
	}

	pt := &partitioner{grid: g, rng: rng}
	pt.split(Rect{Max: Position{X: width - 1, Y: height - 1}})
	g.layout = pt.layout

	g.fillRooms()
	if err := g.placeSpecials(rng); err != nil {
		return nil, err
	}
	g.buildDoors()
	g.closeDoors()
	g.collectRooms()
	g.indexStreets()

	pool, counts := drawLoot(rng)
	if err := dispatchItems(rng, pool, g.rooms); err != nil {
		return nil, err
	}
	g.loot = counts
	return g, nil
}

// NewFromSeed generates a city from a seed. Equal seeds and sizes give
// structurally identical cities.
func NewFromSeed(width, height int, seed int64) (*Grid, error) {
	return New(width, height, rand.New(rand.NewSource(seed)))
}

func (g *Grid) indexStreets() {
	g.manholes = g.manholes[:0]
	for _, c := range g.cells {
		switch c.kind {
		case Spawn:
			g.spawn = c
		case Manhole:
			g.manholes = append(g.manholes, c)
		}
	}
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

// Contains reports whether p lies on the grid.
func (g *Grid) Contains(p Position) bool {
	return p.In(g.width, g.height)
}

// CellAt returns the cell at p, or nil when p is off the grid.
func (g *Grid) CellAt(p Position) *Cell {
	if !g.Contains(p) {
		return nil
	}
	return g.cellAt(p.X, p.Y)
}

// Neighbor returns the cell next to p in direction d, or nil at the boundary.
func (g *Grid) Neighbor(p Position, d Direction) *Cell {
	return g.CellAt(p.Move(d))
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for _, c := range g.cells {
		fn(c)
	}
}

// Rooms returns all plain and special rooms in row-major order.
func (g *Grid) Rooms() []*Cell {
	out := make([]*Cell, len(g.rooms))
	copy(out, g.rooms)
	return out
}

// Spawn returns the spawn street.
func (g *Grid) Spawn() *Cell {
	return g.spawn
}

// Manholes returns the four sewer exits in row-major order.
func (g *Grid) Manholes() []*Cell {
	out := make([]*Cell, len(g.manholes))
	copy(out, g.manholes)
	return out
}

// Layout returns the rectangles the partitioner split and left.
func (g *Grid) Layout() Layout {
	return g.layout
}

// LootDrawn returns how many items of kind were generated.
func (g *Grid) LootDrawn(kind item.Kind) int {
	return g.loot[kind]
}

// Special returns the room carrying the given special name.
func (g *Grid) Special(name string) *Cell {
	for _, c := range g.rooms {
		if c.special != nil && c.special.Name == name {
			return c
		}
	}
	return nil
}

func (g *Grid) cellAt(x, y int) *Cell {
	return g.cells[y*g.width+x]
}

func (g *Grid) posOf(i int) Position {
	return Position{X: i % g.width, Y: i / g.width}
}

func (g *Grid) put(c *Cell) {
	g.cells[c.pos.Y*g.width+c.pos.X] = c
}
