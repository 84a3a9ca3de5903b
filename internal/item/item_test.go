package item

import (
	"testing"

	"github.com/google/uuid"
)

func TestCatalogue(t *testing.T) {
	cat := Catalogue()
	if len(cat) != 10 {
		t.Fatalf("Catalogue() has %d kinds, want 10", len(cat))
	}
	seen := make(map[Kind]bool)
	for _, k := range cat {
		if seen[k] {
			t.Errorf("kind %v listed twice", k)
		}
		seen[k] = true
		if k.String() == "unknown" {
			t.Errorf("kind %d has no name", k)
		}
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		kind Kind
		want Category
	}{
		{Axe, Weapon},
		{Rifle, Weapon},
		{FirstAidKit, Care},
		{HealingFlask, Care},
		{Map, Utility},
		{MasterKey, Utility},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Category(); got != tt.want {
				t.Errorf("%v.Category() = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestItemsCompareByIdentity(t *testing.T) {
	id := uuid.New()
	a := New(Pistol, id)
	b := New(Pistol, id)
	c := New(Pistol, uuid.New())
	if a != b {
		t.Error("items with the same id and kind should be equal")
	}
	if a == c {
		t.Error("items with different ids should differ")
	}
}
