package deck

// Entry is one distinct card in a decklist.
type Entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Deck is a decklist in order of first appearance.
type Deck struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Add adds n copies of name, merging with an existing entry.
func (d *Deck) Add(name string, n int) {
	for i := range d.Entries {
		if d.Entries[i].Name == name {
			d.Entries[i].Count += n
			return
		}
	}
	d.Entries = append(d.Entries, Entry{Name: name, Count: n})
}

// Count returns how many copies of name the deck holds.
func (d Deck) Count(name string) int {
	for _, e := range d.Entries {
		if e.Name == name {
			return e.Count
		}
	}
	return 0
}

// Names returns the distinct card names.
func (d Deck) Names() []string {
	out := make([]string, 0, len(d.Entries))
	for _, e := range d.Entries {
		out = append(out, e.Name)
	}
	return out
}

// Total returns the number of cards including duplicates.
func (d Deck) Total() int {
	n := 0
	for _, e := range d.Entries {
		n += e.Count
	}
	return n
}
