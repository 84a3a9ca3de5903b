// Package item defines the loot that the city generator scatters over rooms.
// Items are opaque to the generator: it only counts them by kind and hands
// them out. What an item does in a fight or a backpack belongs to gameplay.
package item

import (
	"github.com/google/uuid"
)

// Kind identifies an item type.
type Kind int

const (
	Axe Kind = iota
	Chainsaw
	Crowbar
	Pistol
	Rifle
	FirstAidKit
	HealingFlask
	InfraredGlasses
	Map
	MasterKey
)

// Category groups kinds by what they are used for.
type Category int

const (
	Weapon Category = iota
	Care
	Utility
)

type kindInfo struct {
	name     string
	category Category
}

var kinds = map[Kind]kindInfo{
	Axe:             {"axe", Weapon},
	Chainsaw:        {"chainsaw", Weapon},
	Crowbar:         {"crowbar", Weapon},
	Pistol:          {"pistol", Weapon},
	Rifle:           {"rifle", Weapon},
	FirstAidKit:     {"first aid kit", Care},
	HealingFlask:    {"healing flask", Care},
	InfraredGlasses: {"infrared glasses", Utility},
	Map:             {"map", Utility},
	MasterKey:       {"master key", Utility},
}

// Catalogue returns every kind the loot placer draws, in a fixed order.
func Catalogue() []Kind {
	return []Kind{Axe, Chainsaw, Crowbar, Pistol, Rifle, FirstAidKit, HealingFlask, InfraredGlasses, Map, MasterKey}
}

func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return "unknown"
}

// Category returns the category of the kind.
func (k Kind) Category() Category {
	return kinds[k].category
}

func (c Category) String() string {
	switch c {
	case Weapon:
		return "weapon"
	case Care:
		return "care"
	case Utility:
		return "utility"
	}
	return "unknown"
}

// Item is a single piece of loot.
type Item struct {
	ID   uuid.UUID
	Kind Kind
}

// New returns an item of the given kind with the given identity.
func New(kind Kind, id uuid.UUID) Item {
	return Item{ID: id, Kind: kind}
}

func (it Item) String() string {
	return it.Kind.String()
}
