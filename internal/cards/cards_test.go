package cards

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bulk = `[
{"object":"card","name":"Lightning Bolt","type_line":"Instant","colors":["R"],"mana_cost":"{R}","oracle_text":"Lightning Bolt deals 3 damage to any target.","artist":"Christopher Rush","image_uris":{"art_crop":"https://cards.scryfall.io/art_crop/front/a.jpg","png":"https://cards.scryfall.io/png/front/a.png"}},
{"object":"card","name":"Wastes","type_line":"Basic Land","colors":[],"produced_mana":["C"]},
{"object":"card","name":"Evolving Wilds","type_line":"Land","colors":[]},
{"object":"card","name":"Tarmogoyf","type_line":"Creature — Lhurgoyf","colors":["G"],"power":"*","toughness":"1+*"}
]`

func TestReadCatalog(t *testing.T) {
	c, err := ReadCatalog(strings.NewReader(bulk))
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())

	bolt, ok := c.Lookup("Lightning Bolt")
	require.True(t, ok)
	assert.Equal(t, []string{"R"}, bolt.Colors)
	assert.Equal(t, "https://cards.scryfall.io/art_crop/front/a.jpg", bolt.ImageURIs.ArtCrop)

	wastes, _ := c.Lookup("Wastes")
	assert.True(t, wastes.HasProducedMana())
	wilds, _ := c.Lookup("Evolving Wilds")
	assert.False(t, wilds.HasProducedMana())

	assert.False(t, c.Contains("Black Lotus"))
	assert.Equal(t, "Evolving Wilds", c.All()[0].Name)
}

func TestReadCatalogRejectsBadInput(t *testing.T) {
	_, err := ReadCatalog(strings.NewReader(`{"name":"x"}`))
	assert.ErrorIs(t, err, ErrBadCatalog)
	_, err = ReadCatalog(strings.NewReader(`[]`))
	assert.ErrorIs(t, err, ErrEmptyCatalog)
	_, err = ReadCatalog(strings.NewReader(`[{"name":`))
	assert.Error(t, err)
}

func TestLoadCatalogFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "all-cards.json")
	require.NoError(t, os.WriteFile(p, []byte(bulk), 0o644))
	c, err := LoadCatalogFile(p)
	require.NoError(t, err)
	assert.True(t, c.Contains("Tarmogoyf"))

	_, err = LoadCatalogFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "lightning-bolt", Slug("Lightning Bolt"))
	assert.Equal(t, "jace-the-mind-sculptor", Slug("Jace, the Mind Sculptor"))
	assert.Equal(t, "fire-ice", Slug("Fire // Ice"))
	assert.Equal(t, "sol-ring", Slug(" Sol Ring "))
}

func TestArtistName(t *testing.T) {
	assert.Equal(t, "Lightning Bolt (Christopher Rush)", ArtistName(Card{Name: "Lightning Bolt", Artist: "Christopher Rush"}))
	assert.Equal(t, "Fire Ice", ArtistName(Card{Name: "Fire // Ice"}))
}

func TestFilter(t *testing.T) {
	c, err := ReadCatalog(strings.NewReader(bulk))
	require.NoError(t, err)
	all := c.All()

	assert.Len(t, Filter(all, FilterOptions{}), 4)
	assert.Equal(t, "Lightning Bolt", Filter(all, FilterOptions{Colors: []string{"r"}})[0].Name)
	assert.Len(t, Filter(all, FilterOptions{Types: []string{"land"}}), 2)
	assert.Len(t, Filter(all, FilterOptions{Colorless: true}), 2)
	assert.Len(t, Filter(all, FilterOptions{FreeWords: "damage target"}), 1)
	assert.Len(t, Filter(all, FilterOptions{Artist: "christopher rush"}), 1)
	assert.Len(t, Filter(all, FilterOptions{Limit: 3}), 3)
}
