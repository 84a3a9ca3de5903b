package city

// Position represents coordinates on the grid.
type Position struct {
	X, Y int
}

// Move returns the position one step away in direction d.
func (p Position) Move(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// In reports whether p lies inside a width x height grid.
func (p Position) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Direction represents one of the four sides of a cell.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in door-map order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the coordinate offset of one step in direction d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Rect is an inclusive rectangle of cells.
type Rect struct {
	Min, Max Position
}

func (r Rect) Width() int {
	return r.Max.X - r.Min.X + 1
}

func (r Rect) Height() int {
	return r.Max.Y - r.Min.Y + 1
}

// Splittable reports whether the partitioner may lay a crossroad in r.
func (r Rect) Splittable() bool {
	return r.Width() >= MinSize && r.Height() >= MinSize
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
