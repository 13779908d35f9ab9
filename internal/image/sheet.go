package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Contact sheet geometry.
const (
	sheetWidth   = 2150
	sheetMargin  = 48
	thumbWidth   = 215
	thumbHeight  = 300
	thumbGap     = 8
	sheetColumns = 9
	sheetTitleH  = 160
)

// ComposeSheet lays out proxy thumbnails in a grid under a title, with an
// optional QR code in the top-right corner. It is used to preview a decklist
// run before sending it to print.
func (c *Compositor) ComposeSheet(title string, proxies []image.Image, qr image.Image) *image.NRGBA {
	rows := (len(proxies) + sheetColumns - 1) / sheetColumns
	height := sheetMargin*2 + sheetTitleH + rows*(thumbHeight+thumbGap)
	if qr != nil {
		height = max(height, sheetMargin*2+400)
	}
	canvas := imaging.New(sheetWidth, height, color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff})

	if title != "" {
		drawText(canvas, c.rc.Fonts.Face(Bold, 96), color.Black, title, sheetMargin, sheetMargin)
	}
	if qr != nil {
		q := imaging.Resize(qr, 400, 400, imaging.Lanczos)
		canvas = imaging.Paste(canvas, q, image.Pt(sheetWidth-sheetMargin-400, sheetMargin))
	}

	x := sheetMargin
	y := sheetMargin + sheetTitleH
	for i, p := range proxies {
		if i > 0 && i%sheetColumns == 0 {
			x = sheetMargin
			y += thumbHeight + thumbGap
		}
		t := imaging.Fit(p, thumbWidth, thumbHeight, imaging.Lanczos)
		canvas = imaging.Paste(canvas, t, image.Pt(x, y))
		x += thumbWidth + thumbGap
	}
	return canvas
}
