package city

// DoorID is a handle into the door arena of a grid.
type DoorID int

// NoDoor marks a cell side that faces the outer boundary.
const NoDoor DoorID = -1

// Door sits on the edge between two orthogonally adjacent cells.
// Both cells hold the same DoorID under opposite directions.
type Door struct {
	open bool
}

// IsOpen reports whether the door is open. A missing door is never open.
func (d *Door) IsOpen() bool {
	return d != nil && d.open
}

func (d *Door) Open() {
	d.open = true
}

func (d *Door) Close() {
	d.open = false
}

// edgeCount returns the number of internal edges of a width x height grid.
func edgeCount(width, height int) int {
	return (height-1)*width + (width-1)*height
}

func (g *Grid) newDoor() DoorID {
	if len(g.doors) == cap(g.doors) {
		panic("city: door arena overflow")
	}
	g.doors = append(g.doors, Door{})
	return DoorID(len(g.doors) - 1)
}

// buildDoors links every pair of adjacent cells with one shared door.
// Walking row-major, each cell allocates the door above it and the door to
// its left, so every internal edge is visited exactly once.
func (g *Grid) buildDoors() {
	g.doors = make([]Door, 0, edgeCount(g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.cellAt(x, y)
			if y > 0 {
				id := g.newDoor()
				c.doors[Up] = id
				g.cellAt(x, y-1).doors[Down] = id
			}
			if x > 0 {
				id := g.newDoor()
				c.doors[Left] = id
				g.cellAt(x-1, y).doors[Right] = id
			}
		}
	}
}

// closeDoors applies the closing rule: plain rooms are sealed and the
// outer Up and Left sides are shut.
func (g *Grid) closeDoors() {
	for _, c := range g.cells {
		if c.kind != Room {
			continue
		}
		for _, id := range c.doors {
			if id != NoDoor {
				g.doors[id].Close()
			}
		}
	}
	for x := 0; x < g.width; x++ {
		if id := g.cellAt(x, 0).doors[Up]; id != NoDoor {
			g.doors[id].Close()
		}
	}
	for y := 0; y < g.height; y++ {
		if id := g.cellAt(0, y).doors[Left]; id != NoDoor {
			g.doors[id].Close()
		}
	}
}

// Door returns the door on side d of c. The second result is false on the boundary.
func (g *Grid) Door(c *Cell, d Direction) (*Door, bool) {
	id := c.doors[d]
	if id == NoDoor {
		return nil, false
	}
	return &g.doors[id], true
}

// DoorByID returns the door behind a handle.
func (g *Grid) DoorByID(id DoorID) (*Door, bool) {
	if id < 0 || int(id) >= len(g.doors) {
		return nil, false
	}
	return &g.doors[id], true
}

// DoorBetween returns the door shared by two adjacent positions.
func (g *Grid) DoorBetween(a, b Position) (*Door, bool) {
	c := g.CellAt(a)
	if c == nil {
		return nil, false
	}
	for _, d := range Directions {
		if a.Move(d) == b {
			return g.Door(c, d)
		}
	}
	return nil, false
}

// DoorCount returns the number of doors in the arena.
func (g *Grid) DoorCount() int {
	return len(g.doors)
}
