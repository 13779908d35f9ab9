package deck

import (
	"sort"
	"strconv"
	"strings"
)

// ExportDeckText renders the deck sorted by name with a total line. With
// oneOfEach every card is listed once, which is what a proxy run prints.
func ExportDeckText(d Deck, oneOfEach bool) string {
	entries := append([]Entry(nil), d.Entries...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	lines := []string{}
	if d.Name != "" {
		lines = append(lines, "# "+d.Name)
	}
	total := 0
	for _, e := range entries {
		n := e.Count
		if oneOfEach {
			n = 1
		}
		total += n
		lines = append(lines, strconv.Itoa(n)+" "+e.Name)
	}
	lines = append(lines, "", "Total Cards: "+strconv.Itoa(total))
	return strings.Join(lines, "\n")
}

// Missing returns the names in want that have is lacking, in want's order.
func Missing(have, want Deck) []string {
	var out []string
	for _, e := range want.Entries {
		if have.Count(e.Name) == 0 {
			out = append(out, e.Name)
		}
	}
	return out
}
