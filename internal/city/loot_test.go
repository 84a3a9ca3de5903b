package city

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/vinser/zombicity/internal/item"
)

func TestRollDice(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		n := rollDice(rng, MinItems, MaxItems)
		if n < MinItems || n > MaxItems {
			t.Fatalf("rollDice() = %d, want [%d, %d]", n, MinItems, MaxItems)
		}
		seen[n] = true
	}
	if len(seen) != MaxItems-MinItems+1 {
		t.Errorf("only %d distinct values rolled", len(seen))
	}
}

func TestDrawLoot(t *testing.T) {
	pool, counts := drawLoot(rand.New(rand.NewSource(8)))
	total := 0
	for _, kind := range item.Catalogue() {
		n := counts[kind]
		if n < MinItems || n > MaxItems {
			t.Errorf("%s: %d items", kind, n)
		}
		total += n
	}
	if len(pool) != total {
		t.Errorf("pool holds %d items, counts add up to %d", len(pool), total)
	}
	ids := make(map[uuid.UUID]bool)
	for _, it := range pool {
		if ids[it.ID] {
			t.Fatalf("duplicate item id %s", it.ID)
		}
		ids[it.ID] = true
	}
}

func TestDrawLootIsReproducible(t *testing.T) {
	a, _ := drawLoot(rand.New(rand.NewSource(21)))
	b, _ := drawLoot(rand.New(rand.NewSource(21)))
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("item %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestDispatchItems(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool, _ := drawLoot(rng)

	t.Run("no rooms", func(t *testing.T) {
		if err := dispatchItems(rng, pool, nil); !errors.Is(err, ErrNoRooms) {
			t.Errorf("dispatchItems() error = %v, want %v", err, ErrNoRooms)
		}
	})

	t.Run("street in room list", func(t *testing.T) {
		rooms := []*Cell{newCell(Position{}, Street)}
		if err := dispatchItems(rng, pool, rooms); !errors.Is(err, ErrNotRoom) {
			t.Errorf("dispatchItems() error = %v, want %v", err, ErrNotRoom)
		}
	})

	t.Run("single room takes everything", func(t *testing.T) {
		room := newCell(Position{X: 1, Y: 1}, Room)
		if err := dispatchItems(rng, pool, []*Cell{room}); err != nil {
			t.Fatal(err)
		}
		if got := len(room.Items()); got != len(pool) {
			t.Errorf("room holds %d items, want %d", got, len(pool))
		}
	})
}
