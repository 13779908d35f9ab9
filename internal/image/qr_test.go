package imagepkg

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/proxyapp/internal/cards"
)

func TestGenerateQRPNG(t *testing.T) {
	b, err := GenerateQRPNG("https://scryfall.com/card/lea/161", 256)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), b[:4])

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(256, 256), img.Bounds().Size())
}

func TestCardLink(t *testing.T) {
	assert.Equal(t, "https://scryfall.com/card/x", CardLink(cards.Card{Name: "A", ScryfallURI: "https://scryfall.com/card/x"}))
	assert.Equal(t, "https://scryfall.com/search?q=%21%22Lightning+Bolt%22", CardLink(cards.Card{Name: "Lightning Bolt"}))
}

func TestComposeBack(t *testing.T) {
	fx := newFixture(t, nil, god)

	img, err := fx.comp.ComposeBack(context.Background(), god, Print)
	require.NoError(t, err)
	assert.Equal(t, Print.CanvasSize(), img.Bounds().Size())
	closeTo(t, color.NRGBA{A: 255}, nrgbaAt(img, image.Pt(20, 20)))

	// QR quiet zone is white.
	size := img.Bounds().Size()
	qrMin := image.Pt((size.X-backQRSize)/2, (size.Y-backQRSize)/2)
	closeTo(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, nrgbaAt(img, qrMin.Add(image.Pt(5, 5))))
	assert.Zero(t, fx.art.calls.Load())

	_, err = fx.comp.ComposeBack(context.Background(), cards.Card{}, Print)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = fx.comp.ComposeBack(context.Background(), god, BorderExtension)
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestComposeSheet(t *testing.T) {
	fx := newFixture(t, nil)
	thumbs := make([]image.Image, 11)
	for i := range thumbs {
		thumbs[i] = imaging.New(2682, 3744, color.White)
	}
	qr, err := GenerateQRImage("deck", 400)
	require.NoError(t, err)

	sheet := fx.comp.ComposeSheet("Mono Red", thumbs, qr)
	assert.Equal(t, sheetWidth, sheet.Bounds().Dx())
	assert.Equal(t, sheetMargin*2+sheetTitleH+2*(thumbHeight+thumbGap), sheet.Bounds().Dy())
}
