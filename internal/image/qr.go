package imagepkg

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"net/url"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/youruser/proxyapp/internal/cards"
)

const (
	backQRSize = 1400
	backNameY  = 2900
)

// GenerateQRPNG returns PNG bytes of a size×size QR code for text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encoding QR: %w", err)
	}
	return q.PNG(size)
}

// GenerateQRImage returns an image.Image for further composition.
func GenerateQRImage(text string, size int) (image.Image, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return q.Image(size), nil
}

// CardLink is the URL encoded on a card's back: its Scryfall page, or an
// exact-name search when the catalog entry has none.
func CardLink(c cards.Card) string {
	if c.ScryfallURI != "" {
		return c.ScryfallURI
	}
	return "https://scryfall.com/search?q=" + url.QueryEscape(`!"`+c.Name+`"`)
}

// ComposeBack renders a black card back with a QR code linking to the card,
// sized like framed output of variant v.
func (c *Compositor) ComposeBack(_ context.Context, card cards.Card, v Variant) (*image.NRGBA, error) {
	if err := c.Validate(card); err != nil {
		return nil, err
	}
	if v.Kind != Framed {
		return nil, fmt.Errorf("%w: %s has no card back", ErrUnknownVariant, v.Name)
	}

	qr, err := GenerateQRImage(CardLink(card), backQRSize)
	if err != nil {
		return nil, fmt.Errorf("encoding QR for %s: %w", card.Name, err)
	}

	size := v.CanvasSize()
	canvas := imaging.New(size.X, size.Y, color.Black)
	canvas = imaging.PasteCenter(canvas, qr)
	drawCentered(canvas, c.rc.Fonts.Face(Bold, nameSize), color.White, card.Name, image.Pt(size.X/2, backNameY+v.Base))
	return canvas, nil
}
