package imagepkg

import (
	"fmt"
	"image"
	"strings"
)

// Print geometry. The framed templates are 2682×3744 at the cut line; every
// coordinate below is relative to the top-left of that area and is shifted
// by the variant's Base.
const (
	cardWidth  = 2682
	cardHeight = 3744

	artX, artY          = 200, 420
	artWidth, artHeight = 2294, 1686

	nameX, nameY = 220, 230
	nameSize     = 140
	typeX, typeY = 220, 2170
	typeSize     = 120

	manaRight = 2470
	manaTop   = 240
	manaGap   = 8

	oracleLeft, oracleTop = 230, 2464
	oracleRight           = 2450
	oracleBottom          = 3264
	// Cards without a power/toughness box get this much more rules text height.
	noncreatureExtra = 220

	ptCenterX, ptCenterY = 2300, 3420
	ptSize               = 140

	// Border extension test template.
	bleedWidth, bleedHeight = 1632, 2220
	scanWidth, scanHeight   = 1490, 2080
	scanX, scanY            = 71, 70
)

// Kind separates variants that build a frame from template layers from
// those that wrap an existing card scan.
type Kind int

const (
	Framed Kind = iota
	ScanBorder
)

// Variant is a named output style. All variants share Compositor.Compose.
type Variant struct {
	Name string
	Kind Kind
	// Base is the uniform margin added around the card, in pixels.
	Base int
	// BorderFrame overlays the print-service border extension on framed cards.
	BorderFrame bool
	// TemplateDir is the asset directory holding the variant's frame layers.
	TemplateDir string
}

var (
	// Print is a full-bleed proxy ready for a print service.
	Print = Variant{Name: "print", Kind: Framed, Base: 150, BorderFrame: true, TemplateDir: "basic"}
	// Plain is the same frame at regular card size, without bleed.
	Plain = Variant{Name: "plain", Kind: Framed, Base: 0, TemplateDir: "basic"}
	// BorderExtension pads a full card scan with a black bleed border.
	BorderExtension = Variant{Name: "border-extension", Kind: ScanBorder}
)

// Variants lists the selectable variants.
var Variants = []Variant{Print, Plain, BorderExtension}

// VariantByName looks a variant up case-insensitively.
func VariantByName(name string) (Variant, error) {
	for _, v := range Variants {
		if strings.EqualFold(v.Name, name) {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// CanvasSize is the output size in pixels.
func (v Variant) CanvasSize() image.Point {
	if v.Kind == ScanBorder {
		return image.Pt(bleedWidth, bleedHeight)
	}
	return image.Pt(cardWidth+2*v.Base, cardHeight+2*v.Base)
}

func (v Variant) at(x, y int) image.Point {
	return image.Pt(x+v.Base, y+v.Base)
}

// Origin is where the frame layers are placed.
func (v Variant) Origin() image.Point {
	return v.at(0, 0)
}

// ArtBox is the footprint the card art is scaled to cover.
func (v Variant) ArtBox() image.Rectangle {
	tl := v.at(artX, artY)
	return image.Rectangle{Min: tl, Max: tl.Add(image.Pt(artWidth, artHeight))}
}

func (v Variant) NameAt() image.Point { return v.at(nameX, nameY) }

func (v Variant) TypeLineAt() image.Point { return v.at(typeX, typeY) }

// ManaAnchor is the top-right corner of the mana cost row.
func (v Variant) ManaAnchor() image.Point { return v.at(manaRight, manaTop) }

// OracleBox is the rules text area. It is taller when nothing occupies the
// bottom-right corner.
func (v Variant) OracleBox(lowerBox bool) image.Rectangle {
	bottom := oracleBottom
	if !lowerBox {
		bottom += noncreatureExtra
	}
	return image.Rectangle{Min: v.at(oracleLeft, oracleTop), Max: v.at(oracleRight, bottom)}
}

// PTCenter is the centre of the power/toughness text.
func (v Variant) PTCenter() image.Point { return v.at(ptCenterX, ptCenterY) }
