package frame

import "sort"

// ColorKey names a colour family in the template asset tree.
type ColorKey int

const (
	Artifact ColorKey = iota
	White
	Blue
	Black
	Red
	Green
	Gold
	Land
	WU
	WB
	RW
	GW
	UB
	UR
	GU
	BR
	BG
	RG
)

var colorKeyNames = [...]string{
	Artifact: "artifact",
	White:    "white",
	Blue:     "blue",
	Black:    "black",
	Red:      "red",
	Green:    "green",
	Gold:     "gold",
	Land:     "land",
	WU:       "wu",
	WB:       "wb",
	RW:       "rw",
	GW:       "gw",
	UB:       "ub",
	UR:       "ur",
	GU:       "gu",
	BR:       "br",
	BG:       "bg",
	RG:       "rg",
}

// String returns the file stem used for the key's assets.
func (k ColorKey) String() string {
	if k < 0 || int(k) >= len(colorKeyNames) {
		return colorKeyNames[Artifact]
	}
	return colorKeyNames[k]
}

// IsPair reports whether k is one of the ten two-colour keys.
func (k ColorKey) IsPair() bool {
	return k >= WU && k <= RG
}

var monoKeys = map[string]ColorKey{
	"W": White,
	"U": Blue,
	"B": Black,
	"R": Red,
	"G": Green,
	"C": Land,
}

// pairKeys is indexed by the two colour codes in sorted order.
var pairKeys = map[string]ColorKey{
	"UW": WU,
	"BW": WB,
	"RW": RW,
	"GW": GW,
	"BU": UB,
	"RU": UR,
	"GU": GU,
	"BR": BR,
	"BG": BG,
	"GR": RG,
}

// ClassifyColor maps a card's colours to a ColorKey. Sequences at or above
// threshold are gold; an empty sequence yields empty. Unknown single codes
// and pairs outside the ten guild pairs fall back to Artifact.
func ClassifyColor(colors []string, threshold int, empty ColorKey) ColorKey {
	if len(colors) >= threshold {
		return Gold
	}
	switch len(colors) {
	case 0:
		return empty
	case 1:
		if k, ok := monoKeys[colors[0]]; ok {
			return k
		}
		return Artifact
	case 2:
		if k, ok := lookupPair(colors[0], colors[1]); ok {
			return k
		}
		return Artifact
	}
	return Artifact
}

func lookupPair(a, b string) (ColorKey, bool) {
	pair := []string{a, b}
	sort.Strings(pair)
	k, ok := pairKeys[pair[0]+pair[1]]
	return k, ok
}
