// Package scout is the cursor used to walk a generated city. It moves freely
// over the grid and drives the collaborator surface of the city: doors,
// noise and items.
package scout

import (
	"errors"
	"time"

	"github.com/vinser/zombicity/internal/city"
	"github.com/vinser/zombicity/internal/item"
	"github.com/vinser/zombicity/internal/style"
)

const (
	// NoiseStep is how loud one shout is.
	NoiseStep = 1
	// Mark is the one-cell cursor glyph.
	Mark = "@"
)

var (
	ErrNoDoor = errors.New("scout: no door on this side")
	ErrEmpty  = errors.New("scout: nothing to pick up")
	ErrNoLoot = errors.New("scout: backpack is empty")
)

// Scout is the inspection cursor.
type Scout struct {
	home         city.Position
	position     city.Position
	facing       city.Direction
	backpack     []item.Item
	brightSprite string
	dimSprite    string
}

// New returns a scout standing on home, facing up.
func New(home city.Position) *Scout {
	return &Scout{
		home:     home,
		position: home,
		facing:   city.Up,
	}
}

// Place puts a new scout on the spawn of g.
func Place(g *city.Grid) *Scout {
	s := New(g.Spawn().Pos())
	s.SetSprites()
	return s
}

// Home returns the spawn position.
func (s *Scout) Home() city.Position {
	return s.home
}

// Pos returns the current position.
func (s *Scout) Pos() city.Position {
	return s.position
}

// Facing returns the side the scout looks at.
func (s *Scout) Facing() city.Direction {
	return s.facing
}

// Backpack returns a copy of the carried items.
func (s *Scout) Backpack() []item.Item {
	out := make([]item.Item, len(s.backpack))
	copy(out, s.backpack)
	return out
}

// HandleInput turns the scout for an arrow key and reports whether the key was one.
func (s *Scout) HandleInput(key string) bool {
	switch key {
	case "up":
		s.facing = city.Up
	case "down":
		s.facing = city.Down
	case "left":
		s.facing = city.Left
	case "right":
		s.facing = city.Right
	default:
		return false
	}
	return true
}

// Step moves one cell in the facing direction. It reports false at the boundary.
func (s *Scout) Step(g *city.Grid) bool {
	next := s.position.Move(s.facing)
	if !g.Contains(next) {
		return false
	}
	s.position = next
	return true
}

// ReturnHome walks back to the spawn.
func (s *Scout) ReturnHome() {
	s.position = s.home
	s.facing = city.Up
}

// ToggleDoor opens or closes the door the scout faces and returns its new state.
func (s *Scout) ToggleDoor(g *city.Grid) (bool, error) {
	door, ok := g.Door(g.CellAt(s.position), s.facing)
	if !ok {
		return false, ErrNoDoor
	}
	if door.IsOpen() {
		door.Close()
	} else {
		door.Open()
	}
	return door.IsOpen(), nil
}

// Shout raises the noise of the current cell and returns the new level.
func (s *Scout) Shout(g *city.Grid) int {
	c := g.CellAt(s.position)
	c.IncreaseNoise(NoiseStep)
	return c.Noise()
}

// PickUp moves the first item of the current room into the backpack.
func (s *Scout) PickUp(g *city.Grid) (item.Item, error) {
	c := g.CellAt(s.position)
	items := c.Items()
	if len(items) == 0 {
		return item.Item{}, ErrEmpty
	}
	it := items[0]
	c.RemoveItem(it)
	s.backpack = append(s.backpack, it)
	return it, nil
}

// Drop puts the last picked item into the current room.
func (s *Scout) Drop(g *city.Grid) (item.Item, error) {
	if len(s.backpack) == 0 {
		return item.Item{}, ErrNoLoot
	}
	it := s.backpack[len(s.backpack)-1]
	if err := g.CellAt(s.position).AddItem(it); err != nil {
		return item.Item{}, err
	}
	s.backpack = s.backpack[:len(s.backpack)-1]
	return it, nil
}

// Render returns the cursor mark, blinking twice a second.
func (s *Scout) Render() string {
	isBright := (time.Now().UnixNano()/int64(time.Millisecond)/500)%2 == 0
	if isBright {
		return s.brightSprite
	}
	return s.dimSprite
}

func (s *Scout) SetSprites() {
	s.brightSprite = style.Foreground("yellow", 1).Render(Mark)
	s.dimSprite = style.Foreground("yellow", 0.6).Render(Mark)
}
