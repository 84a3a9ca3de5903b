package city

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/vinser/zombicity/internal/item"
)

const (
	// Every item kind appears between MinItems and MaxItems times per city.
	MinItems = 1
	MaxItems = 5
)

// drawLoot rolls a count for every catalogue kind and creates the items.
// Item ids are read from rng so a seed reproduces them.
func drawLoot(rng *rand.Rand) ([]item.Item, map[item.Kind]int) {
	var pool []item.Item
	counts := make(map[item.Kind]int)
	for _, kind := range item.Catalogue() {
		n := rollDice(rng, MinItems, MaxItems)
		counts[kind] = n
		for i := 0; i < n; i++ {
			id, err := uuid.NewRandomFromReader(rng)
			if err != nil {
				panic(err) // math/rand never fails to read
			}
			pool = append(pool, item.New(kind, id))
		}
	}
	return pool, counts
}

// dispatchItems drops every item into a random room, with replacement.
func dispatchItems(rng *rand.Rand, pool []item.Item, rooms []*Cell) error {
	if len(rooms) == 0 {
		return ErrNoRooms
	}
	for _, it := range pool {
		room := rooms[rng.Intn(len(rooms))]
		if err := room.AddItem(it); err != nil {
			return err
		}
	}
	return nil
}

// rollDice returns a uniform integer in [lo, hi].
func rollDice(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
