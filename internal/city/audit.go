package city

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
)

// Audit re-checks the structure of a generated grid: every slot filled, one
// shared door per internal edge and none on the boundary, a single spawn,
// four manholes, both special rooms, and every item held by exactly one room.
// Door states are not checked since gameplay owns them.
func (g *Grid) Audit() error {
	for i, c := range g.cells {
		if c == nil {
			return fmt.Errorf("city: empty cell at %v", g.posOf(i))
		}
		if c.pos != g.posOf(i) {
			return fmt.Errorf("city: cell at %v claims position %v", g.posOf(i), c.pos)
		}
	}

	doors := mapset.New[DoorID]()
	for _, c := range g.cells {
		for _, d := range Directions {
			id := c.doors[d]
			next := g.Neighbor(c.pos, d)
			if next == nil {
				if id != NoDoor {
					return fmt.Errorf("city: boundary door %s at %v", d, c.pos)
				}
				continue
			}
			if id == NoDoor {
				return fmt.Errorf("city: missing door %s at %v", d, c.pos)
			}
			if back := next.doors[d.Reverse()]; back != id {
				return fmt.Errorf("city: door %s at %v is %d, %v sees %d", d, c.pos, id, next.pos, back)
			}
			doors.Put(id)
		}
	}
	if doors.Size() != edgeCount(g.width, g.height) || len(g.doors) != doors.Size() {
		return fmt.Errorf("city: %d doors in use, %d allocated, %d edges", doors.Size(), len(g.doors), edgeCount(g.width, g.height))
	}

	if n := g.count(Spawn); n != 1 {
		return fmt.Errorf("city: %d spawns", n)
	}
	if n := g.count(Manhole); n != 4 {
		return fmt.Errorf("city: %d manholes", n)
	}
	if n := g.count(SpecialRoom); n != len(Specials) {
		return fmt.Errorf("city: %d special rooms", n)
	}
	for _, s := range Specials {
		if g.Special(s.Name) == nil {
			return fmt.Errorf("city: %s is missing", s.Name)
		}
	}

	held := mapset.New[uuid.UUID]()
	for _, c := range g.cells {
		if !c.IsRoom() && len(c.items) > 0 {
			return fmt.Errorf("city: %s at %v holds items", c.kind, c.pos)
		}
		for _, it := range c.items {
			if held.Has(it.ID) {
				return fmt.Errorf("city: item %s held twice", it.ID)
			}
			held.Put(it.ID)
		}
	}
	return nil
}
