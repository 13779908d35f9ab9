package frame

import (
	"path"

	"github.com/youruser/proxyapp/internal/cards"
)

// Selection is the set of frame assets chosen for one card.
type Selection struct {
	Flags      TypeFlags
	Background ColorKey
	Title      ColorKey
	TextBox    ColorKey
	PT         ColorKey
}

// Resolve picks the frame colours for c.
//
// Nonland cards take a two-colour border when they have two colours, a gold
// title bar once they have two or more (a single consistent hybrid pair keeps
// the split bar instead), and a gold text box from three colours up.
// Artifacts always use the artifact border. Lands use the land border and
// colour their text box by the mana they produce.
func Resolve(c cards.Card) Selection {
	s := Selection{Flags: ClassifyType(c.TypeLine)}

	if s.Flags.Land {
		s.Background = Land
		s.Title = Land
		switch {
		case s.Flags.Artifact:
			s.TextBox = Artifact
		case c.HasProducedMana():
			s.TextBox = ClassifyColor(c.ProducedMana, 3, Land)
		default:
			s.TextBox = Land
		}
		s.PT = s.TextBox
		return s
	}

	if s.Flags.Artifact {
		s.Background = Artifact
	} else {
		s.Background = ClassifyColor(c.Colors, 3, Artifact)
	}
	s.Title = ClassifyColor(c.Colors, 2, Artifact)
	if pair, ok := HybridPair(c.ManaCost); ok && len(c.Colors) == 2 {
		s.Title = pair
	}
	s.TextBox = ClassifyColor(c.Colors, 3, Artifact)

	switch {
	case s.Flags.Artifact && !s.Flags.Vehicle:
		s.PT = Artifact
	default:
		s.PT = s.Title
	}
	return s
}

// Asset paths relative to a template directory.
const (
	NyxBorder    = "nyx-border.png"
	BorderExtend = "border-extend.png"
	VehiclePT    = "pt-boxes/vehicle.png"
)

// BackgroundPath returns the border asset for the selection.
func (s Selection) BackgroundPath() string {
	return path.Join("background", s.Background.String()+".png")
}

// TitlePath returns the title and type bar asset.
func (s Selection) TitlePath() string {
	return path.Join("title-boxes", s.Title.String()+".png")
}

// TextBoxPath returns the rules box asset; lands have their own family.
func (s Selection) TextBoxPath() string {
	dir := "nonland-textboxes"
	if s.Flags.Land {
		dir = "land-textboxes"
	}
	return path.Join(dir, s.TextBox.String()+".png")
}

// PTPath returns the power/toughness box asset, or "" when the card has none.
func (s Selection) PTPath() string {
	if !s.Flags.HasPTBox() {
		return ""
	}
	if s.Flags.Vehicle {
		return VehiclePT
	}
	return path.Join("pt-boxes", s.PT.String()+".png")
}
