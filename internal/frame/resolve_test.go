package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/youruser/proxyapp/internal/cards"
)

func TestResolveTwoColourCreature(t *testing.T) {
	s := Resolve(cards.Card{
		Name:       "Beast",
		Colors:     []string{"R", "G"},
		TypeLine:   "Creature — Beast",
		OracleText: "Trample",
		Power:      "4",
		Toughness:  "4",
	})
	assert.Equal(t, RG, s.Background)
	assert.Equal(t, RG, s.TextBox)
	assert.Equal(t, Gold, s.Title)
	assert.Equal(t, "background/rg.png", s.BackgroundPath())
	assert.Equal(t, "nonland-textboxes/rg.png", s.TextBoxPath())
	assert.Equal(t, "pt-boxes/gold.png", s.PTPath())
}

func TestResolveThreeColours(t *testing.T) {
	s := Resolve(cards.Card{
		Name:     "Esper Thing",
		Colors:   []string{"W", "U", "B"},
		TypeLine: "Sorcery",
	})
	assert.Equal(t, Gold, s.Background)
	assert.Equal(t, Gold, s.Title)
	assert.Equal(t, Gold, s.TextBox)
	assert.Equal(t, "", s.PTPath())
}

func TestResolveHybridKeepsSplitTitle(t *testing.T) {
	s := Resolve(cards.Card{
		Name:     "Boros Reckoner",
		Colors:   []string{"R", "W"},
		ManaCost: "{R/W}{R/W}{R/W}",
		TypeLine: "Creature — Minotaur Wizard",
	})
	assert.Equal(t, RW, s.Title)
	assert.Equal(t, RW, s.Background)
	assert.Equal(t, "pt-boxes/rw.png", s.PTPath())
}

func TestResolveColorlessLand(t *testing.T) {
	s := Resolve(cards.Card{
		Name:         "Wastes",
		TypeLine:     "Basic Land",
		ProducedMana: []string{"C"},
	})
	assert.Equal(t, Land, s.Background)
	assert.Equal(t, Land, s.TextBox)
	assert.Equal(t, "land-textboxes/land.png", s.TextBoxPath())
	assert.Equal(t, "background/land.png", s.BackgroundPath())
}

func TestResolveLandVariants(t *testing.T) {
	dual := Resolve(cards.Card{Name: "Dual", TypeLine: "Land — Forest Plains", ProducedMana: []string{"G", "W"}})
	assert.Equal(t, GW, dual.TextBox)

	tri := Resolve(cards.Card{Name: "Tri", TypeLine: "Land", ProducedMana: []string{"W", "U", "B"}})
	assert.Equal(t, Gold, tri.TextBox)

	fetch := Resolve(cards.Card{Name: "Fetch", TypeLine: "Land"})
	assert.Equal(t, Land, fetch.TextBox)

	art := Resolve(cards.Card{Name: "Seat", TypeLine: "Artifact Land", ProducedMana: []string{"B"}})
	assert.Equal(t, Artifact, art.TextBox)
}

func TestResolveArtifacts(t *testing.T) {
	s := Resolve(cards.Card{Name: "Sol Ring", TypeLine: "Artifact"})
	assert.Equal(t, Artifact, s.Background)
	assert.Equal(t, Artifact, s.Title)
	assert.Equal(t, Artifact, s.TextBox)

	golem := Resolve(cards.Card{Name: "Golem", TypeLine: "Artifact Creature — Golem", Colors: []string{"U"}})
	assert.Equal(t, Artifact, golem.Background)
	assert.Equal(t, Blue, golem.Title)
	assert.Equal(t, "pt-boxes/artifact.png", golem.PTPath())

	vehicle := Resolve(cards.Card{Name: "Cart", TypeLine: "Artifact — Vehicle"})
	assert.Equal(t, VehiclePT, vehicle.PTPath())
}
