package frame

import "strings"

// ParseManaCost returns the brace-delimited tokens of a cost string with the
// braces removed, e.g. "{2}{R/W}" -> ["2", "R/W"]. Text outside braces is ignored.
func ParseManaCost(cost string) []string {
	var tokens []string
	for {
		open := strings.IndexByte(cost, '{')
		if open < 0 {
			return tokens
		}
		end := strings.IndexByte(cost[open:], '}')
		if end < 0 {
			return tokens
		}
		tokens = append(tokens, cost[open+1:open+end])
		cost = cost[open+end+1:]
	}
}

// HybridPair returns the two-colour key shared by every coloured symbol in
// cost. It fails if any coloured symbol is not a two-colour hybrid, if two
// different pairs are mixed, or if there is no hybrid symbol at all.
// Hybrid Phyrexian symbols such as {R/W/P} count as their pair.
func HybridPair(cost string) (ColorKey, bool) {
	var (
		pair  ColorKey
		found bool
	)
	for _, tok := range ParseManaCost(cost) {
		if isGeneric(tok) {
			continue
		}
		k, ok := hybridToken(tok)
		if !ok {
			return Artifact, false
		}
		if found && k != pair {
			return Artifact, false
		}
		pair, found = k, true
	}
	return pair, found
}

// TwoColourBackground reports whether the card's cost is a single,
// consistent hybrid pair, which calls for a split two-colour frame.
func TwoColourBackground(cost string) bool {
	_, ok := HybridPair(cost)
	return ok
}

func isGeneric(tok string) bool {
	if tok == "X" || tok == "Y" || tok == "Z" {
		return true
	}
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func hybridToken(tok string) (ColorKey, bool) {
	parts := strings.Split(tok, "/")
	if len(parts) == 3 && parts[2] == "P" {
		parts = parts[:2]
	}
	if len(parts) != 2 || parts[0] == parts[1] {
		return Artifact, false
	}
	for _, p := range parts {
		if !strings.Contains("WUBRG", p) || len(p) != 1 {
			return Artifact, false
		}
	}
	return lookupPair(parts[0], parts[1])
}
