// Package sewer lays a maze of tunnels under a city. Every manhole of the
// city opens onto a hatch in the tunnels and the maze solution is kept as
// the main drain.
package sewer

import (
	"errors"
	"fmt"

	"github.com/vinser/maze"
	"github.com/vinser/zombicity/internal/city"
)

// Tile represents a type of square in the sewer.
type Tile int

const (
	Wall Tile = iota
	Tunnel
	Drain
	Cistern
	Hatch
	Inlet
	Outfall
)

func (t Tile) String() string {
	switch t {
	case Wall:
		return "wall"
	case Tunnel:
		return "tunnel"
	case Drain:
		return "drain"
	case Cistern:
		return "cistern"
	case Hatch:
		return "hatch"
	case Inlet:
		return "inlet"
	case Outfall:
		return "outfall"
	}
	return "unknown"
}

const (
	// Cistern size in the middle of the sewer
	DenWidth  = 5
	DenHeight = 3
	// Maze generation Bias defines tunnel complexity
	Bias = 0.2
	// Smallest sewer dug, small cities get a sewer wider than themselves
	MinWidth  = 21
	MinHeight = 15
)

var (
	ErrUnsolvable  = errors.New("sewer: no drain between inlet and outfall")
	ErrOutOfBounds = errors.New("sewer: out of bounds")
	ErrNoTunnel    = errors.New("sewer: no tunnel to put a hatch on")
)

// Level is the sewer under one city.
type Level struct {
	Seed    int64
	Maze    *maze.Maze
	tiles   [][]Tile
	drain   []maze.Point
	hatches map[city.Position]maze.Point
}

// Size returns the maze dimensions used under a width x height city.
// Every city cell gets a tunnel square and a wall square on each axis.
func Size(width, height int) (int, int) {
	return max(MinWidth, 2*width+1), max(MinHeight, 2*height+1)
}

// New digs the sewer under g. The seed is usually the one the city was
// generated from, so a seed reproduces both levels.
func New(g *city.Grid, seed int64) (*Level, error) {
	w, h := Size(g.Width(), g.Height())
	m, err := maze.New(w, h, DenWidth, DenHeight)
	if err != nil {
		return nil, fmt.Errorf("sewer: %w", err)
	}
	m.Generate(seed, nil, nil, nil, "top", Bias)

	solution, ok := m.Solve()
	if !ok {
		return nil, fmt.Errorf("%w: width=%d, height=%d, seed=%d", ErrUnsolvable, w, h, seed)
	}

	l := &Level{
		Seed:    seed,
		Maze:    m,
		tiles:   newTiles(m),
		drain:   solution,
		hatches: make(map[city.Position]maze.Point),
	}
	l.markDrain()
	for _, mh := range g.Manholes() {
		p, err := l.nearestTunnel(Under(mh.Pos()))
		if err != nil {
			return nil, err
		}
		l.tiles[p.Y][p.X] = Hatch
		l.hatches[mh.Pos()] = p
	}
	return l, nil
}

// Under returns the maze point right below a city position.
func Under(p city.Position) maze.Point {
	return maze.Point{X: 2*p.X + 1, Y: 2*p.Y + 1}
}

// newTiles converts the maze cells into sewer tiles.
func newTiles(m *maze.Maze) [][]Tile {
	tiles := make([][]Tile, m.Height())
	for y := 0; y < m.Height(); y++ {
		tiles[y] = make([]Tile, m.Width())
		for x := 0; x < m.Width(); x++ {
			cell, ok := m.Cell(x, y)
			if !ok {
				continue
			}
			switch cell {
			case maze.Path:
				if m.IsInsideDen(maze.Point{X: x, Y: y}) {
					tiles[y][x] = Cistern
				} else {
					tiles[y][x] = Tunnel
				}
			case maze.Start:
				tiles[y][x] = Inlet
			case maze.End:
				tiles[y][x] = Outfall
			default:
				tiles[y][x] = Wall
			}
		}
	}
	return tiles
}

// markDrain turns the plain tunnels of the solution into drain tiles.
func (l *Level) markDrain() {
	for _, p := range l.drain {
		if l.tiles[p.Y][p.X] == Tunnel {
			l.tiles[p.Y][p.X] = Drain
		}
	}
}

// nearestTunnel finds the walkable tile closest to p, scanning row-major so
// ties always resolve the same way. Inlet, outfall and hatches are skipped.
func (l *Level) nearestTunnel(p maze.Point) (maze.Point, error) {
	best := maze.Point{}
	bestDist := -1
	for y := range l.tiles {
		for x, t := range l.tiles[y] {
			if t != Tunnel && t != Drain && t != Cistern {
				continue
			}
			d := manhattan(x, y, p.X, p.Y)
			if bestDist < 0 || d < bestDist {
				best, bestDist = maze.Point{X: x, Y: y}, d
			}
		}
	}
	if bestDist < 0 {
		return maze.Point{}, ErrNoTunnel
	}
	return best, nil
}

func (l *Level) Width() int {
	return l.Maze.Width()
}

func (l *Level) Height() int {
	return l.Maze.Height()
}

// TileAt returns the tile at the specified coordinates.
func (l *Level) TileAt(x, y int) (Tile, error) {
	if x < 0 || x >= l.Width() || y < 0 || y >= l.Height() {
		return Wall, ErrOutOfBounds
	}
	return l.tiles[y][x], nil
}

// Drain returns the route from inlet to outfall, both included.
func (l *Level) Drain() []maze.Point {
	out := make([]maze.Point, len(l.drain))
	copy(out, l.drain)
	return out
}

// HatchUnder returns the hatch a manhole at p opens onto.
func (l *Level) HatchUnder(p city.Position) (maze.Point, bool) {
	h, ok := l.hatches[p]
	return h, ok
}

// Hatches returns the number of hatches in the sewer.
func (l *Level) Hatches() int {
	return len(l.hatches)
}

// Manhattan distance between two points.
func manhattan(x1, y1, x2, y2 int) int {
	return abs(x1-x2) + abs(y1-y2)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
