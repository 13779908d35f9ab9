package imagepkg

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/youruser/proxyapp/internal/textlayout"
)

// drawText draws text with its top-left corner at (x, top).
func drawText(dst draw.Image, face font.Face, col color.Color, text string, x, top int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, top+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// drawCentered draws text centred on c, both axes.
func drawCentered(dst draw.Image, face font.Face, col color.Color, text string, c image.Point) {
	m := face.Metrics()
	w := font.MeasureString(face, text).Ceil()
	baseline := c.Y + (m.Ascent.Ceil()-m.Descent.Ceil())/2
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(c.X-w/2, baseline),
	}
	d.DrawString(text)
}

// drawLayout draws every laid-out line in one face.
func drawLayout(dst draw.Image, face font.Face, col color.Color, res textlayout.Result) {
	for _, l := range res.Lines {
		if l.Text == "" {
			continue
		}
		drawText(dst, face, col, l.Text, l.X, l.Y)
	}
}
