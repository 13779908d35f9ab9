package cards

import "strings"

// FilterOptions narrows the catalog for the search endpoint. Empty fields match everything.
type FilterOptions struct {
	Colors    []string `json:"colors"`
	Types     []string `json:"types"`
	Colorless bool     `json:"colorless"`
	FreeWords string   `json:"free_words"`
	Artist    string   `json:"artist"`
	Limit     int      `json:"limit"`
}

func containsAll(hay []string, needles []string) bool {
	for _, n := range needles {
		found := false
		for _, h := range hay {
			if strings.EqualFold(h, n) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Filter returns the cards matching opt, in input order, capped at opt.Limit when positive.
func Filter(cards []Card, opt FilterOptions) []Card {
	var out []Card
	for _, c := range cards {
		if opt.Limit > 0 && len(out) >= opt.Limit {
			break
		}
		if opt.Colorless && len(c.Colors) > 0 {
			continue
		}
		if len(opt.Colors) > 0 && !containsAll(c.Colors, opt.Colors) {
			continue
		}
		if len(opt.Types) > 0 {
			matched := false
			for _, t := range opt.Types {
				if strings.Contains(strings.ToLower(c.TypeLine), strings.ToLower(t)) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if opt.Artist != "" && !strings.EqualFold(c.Artist, opt.Artist) {
			continue
		}
		if opt.FreeWords != "" {
			ok := true
			for _, k := range strings.Fields(opt.FreeWords) {
				k = strings.ToLower(k)
				if !strings.Contains(strings.ToLower(c.Name), k) &&
					!strings.Contains(strings.ToLower(c.OracleText), k) &&
					!strings.Contains(strings.ToLower(c.TypeLine), k) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
