package imagepkg

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"io/fs"
	"path/filepath"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/youruser/proxyapp/internal/cards"
	"github.com/youruser/proxyapp/internal/frame"
)

// Layer colours and sizes. Each frame layer is an opaque square anchored at
// the origin, smaller the later it is drawn, so every layer stays visible in
// a band of its own.
var (
	bgColor     = color.NRGBA{R: 200, A: 255}
	nyxColor    = color.NRGBA{R: 200, B: 200, A: 255}
	textColor   = color.NRGBA{G: 200, A: 255}
	titleColor  = color.NRGBA{B: 200, A: 255}
	ptColor     = color.NRGBA{R: 200, G: 200, A: 255}
	borderColor = color.NRGBA{G: 200, B: 200, A: 255}
	glyphColor  = color.NRGBA{R: 255, A: 255}
	artColor    = color.NRGBA{R: 10, G: 120, B: 30, A: 255}
)

const (
	bgSize     = 48
	nyxSize    = 40
	textSize   = 32
	titleSize  = 24
	ptSizePx   = 16
	borderSize = 8
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func square(t *testing.T, size int, c color.Color) *fstest.MapFile {
	return &fstest.MapFile{Data: encodePNG(t, imaging.New(size, size, c))}
}

func testAssets(t *testing.T) fstest.MapFS {
	t.Helper()
	fsys := fstest.MapFS{
		"fonts/MPlantin.ttf":         {Data: goregular.TTF},
		"fonts/JaceBeleren-Bold.ttf": {Data: gobold.TTF},
	}
	families := map[string]*fstest.MapFile{
		"background":        square(t, bgSize, bgColor),
		"nonland-textboxes": square(t, textSize, textColor),
		"land-textboxes":    square(t, textSize, textColor),
		"title-boxes":       square(t, titleSize, titleColor),
		"pt-boxes":          square(t, ptSizePx, ptColor),
	}
	for k := frame.Artifact; k <= frame.RG; k++ {
		for dir, f := range families {
			fsys["basic/"+dir+"/"+k.String()+".png"] = f
		}
	}
	fsys["basic/"+frame.VehiclePT] = square(t, ptSizePx, ptColor)
	fsys["basic/"+frame.NyxBorder] = square(t, nyxSize, nyxColor)
	fsys["basic/"+frame.BorderExtend] = square(t, borderSize, borderColor)
	fsys["black-border-extension.png"] = square(t, borderSize, borderColor)

	glyph := square(t, 40, glyphColor)
	for _, p := range titleSymbolPaths() {
		fsys[p] = glyph
	}
	return fsys
}

// countingFS counts every Open call.
type countingFS struct {
	fs.FS
	opens atomic.Int32
}

func (c *countingFS) Open(name string) (fs.File, error) {
	c.opens.Add(1)
	return c.FS.Open(name)
}

// fakeArt serves fixed local files.
type fakeArt struct {
	crop  string
	full  string
	err   error
	calls atomic.Int32
}

func (f *fakeArt) ArtCrop(_ context.Context, _ cards.Card) (string, error) {
	f.calls.Add(1)
	if f.err != nil {
		return "", f.err
	}
	return f.crop, nil
}

func (f *fakeArt) FullCard(_ context.Context, _ cards.Card) (string, error) {
	f.calls.Add(1)
	if f.err != nil {
		return "", f.err
	}
	return f.full, nil
}

func newFakeArt(t *testing.T) *fakeArt {
	t.Helper()
	dir := t.TempDir()
	crop := filepath.Join(dir, "crop.png")
	full := filepath.Join(dir, "full.png")
	require.NoError(t, imaging.Save(imaging.New(626, 457, artColor), crop))
	require.NoError(t, imaging.Save(imaging.New(745, 1040, artColor), full))
	return &fakeArt{crop: crop, full: full}
}

var errNoArt = errors.New("no art_crop uri")

type fixture struct {
	fsys    *countingFS
	art     *fakeArt
	rc      *RenderingContext
	comp    *Compositor
	catalog *cards.Catalog
}

func newFixture(t *testing.T, log *zap.Logger, known ...cards.Card) *fixture {
	t.Helper()
	if log == nil {
		log = zap.NewNop()
	}
	fsys := &countingFS{FS: testAssets(t)}
	rc, err := NewRenderingContext(fsys, log)
	require.NoError(t, err)
	catalog := cards.NewCatalog(known)
	art := newFakeArt(t)
	return &fixture{
		fsys:    fsys,
		art:     art,
		rc:      rc,
		comp:    NewCompositor(rc, catalog, art),
		catalog: catalog,
	}
}

func nrgbaAt(img *image.NRGBA, p image.Point) color.NRGBA {
	return img.NRGBAAt(p.X, p.Y)
}
