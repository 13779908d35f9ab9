package imagepkg

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/youruser/proxyapp/internal/cards"
	"github.com/youruser/proxyapp/internal/frame"
	"github.com/youruser/proxyapp/internal/textlayout"
)

// Catalog reports whether a card name is in the local database.
type Catalog interface {
	Contains(name string) bool
}

// ArtProvider returns local file paths for a card's imagery, downloading
// them on first request. Repeated calls return the same path.
type ArtProvider interface {
	ArtCrop(ctx context.Context, c cards.Card) (string, error)
	FullCard(ctx context.Context, c cards.Card) (string, error)
}

// Compositor assembles proxy images.
type Compositor struct {
	rc      *RenderingContext
	catalog Catalog
	art     ArtProvider
}

func NewCompositor(rc *RenderingContext, catalog Catalog, art ArtProvider) *Compositor {
	return &Compositor{rc: rc, catalog: catalog, art: art}
}

// Validate checks the card without touching any file.
func (c *Compositor) Validate(card cards.Card) error {
	if card.Name == "" {
		return fmt.Errorf("%w: missing name", ErrValidation)
	}
	if !c.catalog.Contains(card.Name) {
		return fmt.Errorf("%w: %s not in catalog", ErrValidation, card.Name)
	}
	return nil
}

// Compose renders card in variant v. Errors wrap ErrValidation,
// ErrArtUnavailable or ErrAssetMissing.
func (c *Compositor) Compose(ctx context.Context, card cards.Card, v Variant) (*image.NRGBA, error) {
	if err := c.Validate(card); err != nil {
		return nil, err
	}
	if v.Kind == ScanBorder {
		return c.composeScanBorder(ctx, card, v)
	}

	sel := frame.Resolve(card)
	layers, err := c.loadLayers(sel, v)
	if err != nil {
		return nil, err
	}

	artPath, err := c.art.ArtCrop(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtUnavailable, card.Name, err)
	}
	art, err := imaging.Open(artPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtUnavailable, card.Name, err)
	}
	box := v.ArtBox()
	art = CoverScale(art, box.Dx(), box.Dy())

	size := v.CanvasSize()
	canvas := imaging.New(size.X, size.Y, color.White)
	canvas = imaging.Paste(canvas, art, box.Min)
	for _, l := range layers {
		canvas = imaging.Overlay(canvas, l, v.Origin(), 1.0)
	}

	if err := c.drawCardText(canvas, card, sel, v); err != nil {
		return nil, err
	}
	return canvas, nil
}

// loadLayers returns the frame layers in blit order.
func (c *Compositor) loadLayers(sel frame.Selection, v Variant) ([]image.Image, error) {
	names := []string{sel.BackgroundPath()}
	if sel.Flags.Nyx {
		names = append(names, frame.NyxBorder)
	}
	names = append(names, sel.TextBoxPath(), sel.TitlePath())
	if p := sel.PTPath(); p != "" {
		names = append(names, p)
	}
	if v.BorderFrame {
		names = append(names, frame.BorderExtend)
	}

	layers := make([]image.Image, 0, len(names))
	for _, n := range names {
		img, err := c.rc.Assets.Image(v.TemplateDir + "/" + n)
		if err != nil {
			return nil, err
		}
		layers = append(layers, img)
	}
	return layers, nil
}

func (c *Compositor) drawCardText(canvas *image.NRGBA, card cards.Card, sel frame.Selection, v Variant) error {
	fonts := c.rc.Fonts

	name := v.NameAt()
	drawText(canvas, fonts.Face(Bold, nameSize), color.Black, card.Name, name.X, name.Y)
	tl := v.TypeLineAt()
	drawText(canvas, fonts.Face(Bold, typeSize), color.Black, card.TypeLine, tl.X, tl.Y)

	if err := c.drawManaCost(canvas, card, v); err != nil {
		return err
	}

	box := v.OracleBox(sel.Flags.HasLowerBox())
	res := textlayout.Layout(card.OracleText, box)
	drawLayout(canvas, fonts.Face(Regular, res.Tier.FontSize), color.Black, res)
	if res.Overflows(box) {
		c.rc.Log.Info("rules text overflows box",
			zap.String("card", card.Name),
			zap.Int("font_size", res.Tier.FontSize),
			zap.Int("overflow_px", res.Bottom()-box.Max.Y))
	}

	if sel.Flags.HasPTBox() && (card.Power != "" || card.Toughness != "") {
		drawCentered(canvas, fonts.Face(Bold, ptSize), color.Black, card.Power+"/"+card.Toughness, v.PTCenter())
	}
	return nil
}

// drawManaCost right-aligns the cost glyphs on the title bar. Unknown
// symbols are skipped.
func (c *Compositor) drawManaCost(canvas *image.NRGBA, card cards.Card, v Variant) error {
	tokens := frame.ParseManaCost(card.ManaCost)
	anchor := v.ManaAnchor()
	x := anchor.X
	for i := len(tokens) - 1; i >= 0; i-- {
		glyph, err := c.rc.Symbols.Title(tokens[i])
		if err != nil {
			return err
		}
		if glyph == nil {
			continue
		}
		gb := glyph.Bounds()
		x -= gb.Dx()
		dst := image.Rect(x, anchor.Y, x+gb.Dx(), anchor.Y+gb.Dy())
		draw.Draw(canvas, dst, glyph, gb.Min, draw.Over)
		x -= manaGap
	}
	return nil
}

// composeScanBorder pads the full Scryfall scan with a black bleed border.
func (c *Compositor) composeScanBorder(ctx context.Context, card cards.Card, v Variant) (*image.NRGBA, error) {
	border, err := c.rc.Assets.Image("black-border-extension.png")
	if err != nil {
		return nil, err
	}
	p, err := c.art.FullCard(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtUnavailable, card.Name, err)
	}
	scan, err := imaging.Open(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtUnavailable, card.Name, err)
	}

	size := v.CanvasSize()
	canvas := imaging.New(size.X, size.Y, color.Black)
	canvas = imaging.Paste(canvas, imaging.Resize(scan, scanWidth, scanHeight, imaging.Lanczos), image.Pt(scanX, scanY))
	return imaging.Overlay(canvas, border, image.Pt(0, 0), 1.0), nil
}
