package frame

import "strings"

// TypeFlags are the structural facts read off a card's type line.
// Several may hold at once, e.g. an artifact creature.
type TypeFlags struct {
	Land         bool
	Creature     bool
	Artifact     bool
	Vehicle      bool
	Planeswalker bool
	Enchantment  bool
	// Nyx is set for enchantment creatures and enchantment artifacts.
	Nyx bool
}

// ClassifyType derives TypeFlags by substring presence in typeLine.
func ClassifyType(typeLine string) TypeFlags {
	f := TypeFlags{
		Land:         strings.Contains(typeLine, "Land"),
		Creature:     strings.Contains(typeLine, "Creature"),
		Artifact:     strings.Contains(typeLine, "Artifact"),
		Vehicle:      strings.Contains(typeLine, "Vehicle"),
		Planeswalker: strings.Contains(typeLine, "Planeswalker"),
		Enchantment:  strings.Contains(typeLine, "Enchantment"),
	}
	f.Nyx = f.Enchantment && (f.Creature || f.Artifact)
	return f
}

// HasPTBox reports whether the frame carries a power/toughness box.
func (f TypeFlags) HasPTBox() bool {
	return f.Creature || f.Vehicle
}

// HasLowerBox reports whether anything sits in the bottom-right corner of
// the frame: a power/toughness or loyalty box.
func (f TypeFlags) HasLowerBox() bool {
	return f.HasPTBox() || f.Planeswalker
}
