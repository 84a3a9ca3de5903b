package city

import (
	"github.com/vinser/zombicity/internal/item"
)

// Kind represents the type of a cell on the grid.
type Kind int

const (
	Room Kind = iota
	SpecialRoom
	Street
	Manhole
	Spawn
)

// Special describes a uniquely named room.
type Special struct {
	Name     string
	Glyph    rune
	CanFight bool
}

// Specials are placed exactly once on every grid, in this order.
var Specials = [...]Special{
	{Name: "The Continental", Glyph: 'C', CanFight: false},
	{Name: "The Pharmacy", Glyph: 'P', CanFight: true},
}

type kindTraits struct {
	name     string
	glyph    rune
	room     bool
	canFight bool
}

var traits = map[Kind]kindTraits{
	Room:        {name: "room", glyph: '.', room: true, canFight: true},
	SpecialRoom: {name: "special room", glyph: '?', room: true, canFight: true},
	Street:      {name: "street", glyph: 'S', canFight: true},
	Manhole:     {name: "manhole", glyph: 'M', canFight: true},
	Spawn:       {name: "spawn", glyph: 'X', canFight: true},
}

func (k Kind) String() string {
	if t, ok := traits[k]; ok {
		return t.name
	}
	return "unknown"
}

// Glyph returns the symbol drawn for plain cells of kind k.
func (k Kind) Glyph() rune {
	return traits[k].glyph
}

// IsRoom reports whether cells of kind k hold items and get closed doors.
func (k Kind) IsRoom() bool {
	return traits[k].room
}

// Cell is one square of the city.
type Cell struct {
	pos     Position
	kind    Kind
	special *Special
	doors   [4]DoorID
	noise   int
	items   []item.Item
}

func newCell(p Position, k Kind) *Cell {
	c := &Cell{pos: p, kind: k}
	for i := range c.doors {
		c.doors[i] = NoDoor
	}
	return c
}

// Pos returns the cell position.
func (c *Cell) Pos() Position {
	return c.pos
}

// Kind returns the cell kind.
func (c *Cell) Kind() Kind {
	return c.kind
}

// Name returns the display name of the cell.
func (c *Cell) Name() string {
	if c.special != nil {
		return c.special.Name
	}
	return c.kind.String()
}

// Glyph returns the one-rune symbol of the cell.
func (c *Cell) Glyph() rune {
	if c.special != nil {
		return c.special.Glyph
	}
	return traits[c.kind].glyph
}

// CanFight reports whether a fight may take place in the cell.
func (c *Cell) CanFight() bool {
	if c.special != nil {
		return c.special.CanFight
	}
	return traits[c.kind].canFight
}

// IsRoom reports whether the cell is a plain or a special room.
func (c *Cell) IsRoom() bool {
	return c.kind.IsRoom()
}

// DoorID returns the handle of the door on side d, or NoDoor on the boundary.
func (c *Cell) DoorID(d Direction) DoorID {
	return c.doors[d]
}

// Noise returns the current noise level.
func (c *Cell) Noise() int {
	return c.noise
}

// IncreaseNoise raises the noise level by amount.
func (c *Cell) IncreaseNoise(amount int) {
	c.noise += amount
}

// Items returns a copy of the items lying in the cell.
func (c *Cell) Items() []item.Item {
	out := make([]item.Item, len(c.items))
	copy(out, c.items)
	return out
}

// AddItem puts it into the room.
func (c *Cell) AddItem(it item.Item) error {
	if !c.IsRoom() {
		return ErrNotRoom
	}
	c.items = append(c.items, it)
	return nil
}

// RemoveItem takes it out of the room and reports whether it was there.
func (c *Cell) RemoveItem(it item.Item) bool {
	for i, held := range c.items {
		if held == it {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}
