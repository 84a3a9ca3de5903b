package city

import (
	"fmt"
	"math/rand"
)

// fillRooms turns every cell the partitioner left empty into a plain room.
func (g *Grid) fillRooms() {
	for i, c := range g.cells {
		if c == nil {
			g.cells[i] = newCell(g.posOf(i), Room)
		}
	}
}

// placeSpecials converts one random plain room per entry of Specials.
func (g *Grid) placeSpecials(rng *rand.Rand) error {
	for i := range Specials {
		if g.count(Room) == 0 {
			return fmt.Errorf("%w: %s", ErrNoRoomForSpecial, Specials[i].Name)
		}
		c := g.randomPlainRoom(rng)
		c.kind = SpecialRoom
		c.special = &Specials[i]
	}
	return nil
}

// randomPlainRoom samples positions until one holds a plain room.
// The caller guarantees at least one exists.
func (g *Grid) randomPlainRoom(rng *rand.Rand) *Cell {
	for {
		c := g.cellAt(rng.Intn(g.width), rng.Intn(g.height))
		if c.kind == Room {
			return c
		}
	}
}

// collectRooms lists every room in row-major order.
func (g *Grid) collectRooms() {
	g.rooms = g.rooms[:0]
	for _, c := range g.cells {
		if c.IsRoom() {
			g.rooms = append(g.rooms, c)
		}
	}
}

func (g *Grid) count(k Kind) int {
	n := 0
	for _, c := range g.cells {
		if c != nil && c.kind == k {
			n++
		}
	}
	return n
}
