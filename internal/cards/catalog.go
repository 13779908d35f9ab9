package cards

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// Catalog is the local card database keyed by exact card name.
type Catalog struct {
	byName map[string]Card
}

// NewCatalog builds a catalog from cards. Later duplicates replace earlier ones.
func NewCatalog(cs []Card) *Catalog {
	c := &Catalog{byName: make(map[string]Card, len(cs))}
	for _, card := range cs {
		if card.Name == "" {
			continue
		}
		c.byName[card.Name] = card
	}
	return c
}

// Lookup returns the card with the exact given name.
func (c *Catalog) Lookup(name string) (Card, bool) {
	card, ok := c.byName[name]
	return card, ok
}

// Contains reports whether name is in the catalog.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.byName[name]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.byName)
}

// All returns every card sorted by name.
func (c *Catalog) All() []Card {
	out := make([]Card, 0, len(c.byName))
	for _, card := range c.byName {
		out = append(out, card)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LoadCatalogFile reads a Scryfall bulk data file (a JSON array of card objects).
func LoadCatalogFile(path string) (*Catalog, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", path, err)
	}
	defer fp.Close()

	c, err := ReadCatalog(fp)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return c, nil
}

// ReadCatalog decodes the bulk array one card at a time, so the multi-hundred
// megabyte file is never held in memory as raw JSON.
func ReadCatalog(r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrBadCatalog)
	}

	c := &Catalog{byName: map[string]Card{}}
	for dec.More() {
		var card Card
		if err := dec.Decode(&card); err != nil {
			return nil, fmt.Errorf("decoding card %d: %w", len(c.byName), err)
		}
		if card.Name == "" {
			continue
		}
		c.byName[card.Name] = card
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading catalog end: %w", err)
	}
	if len(c.byName) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}
