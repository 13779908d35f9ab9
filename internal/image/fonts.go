package imagepkg

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// FontStyle selects one of the template typefaces.
type FontStyle int

const (
	Regular FontStyle = iota
	Bold
)

var fontFiles = map[FontStyle]string{
	Regular: "fonts/MPlantin.ttf",
	Bold:    "fonts/JaceBeleren-Bold.ttf",
}

// Fonts holds the parsed template typefaces.
type Fonts struct {
	parsed map[FontStyle]*truetype.Font
}

// LoadFonts parses every template typeface from the asset store.
func LoadFonts(a *AssetStore) (*Fonts, error) {
	f := &Fonts{parsed: map[FontStyle]*truetype.Font{}}
	for style, name := range fontFiles {
		b, err := a.ReadFile(name)
		if err != nil {
			return nil, err
		}
		ttf, err := truetype.Parse(b)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", ErrAssetMissing, name, err)
		}
		f.parsed[style] = ttf
	}
	return f, nil
}

// Face returns a new face for style at size pixels. Faces keep a glyph cache
// and must not be shared between goroutines.
func (f *Fonts) Face(style FontStyle, size int) font.Face {
	return truetype.NewFace(f.parsed[style], &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
