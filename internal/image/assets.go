package imagepkg

import (
	"fmt"
	"image"
	"io/fs"

	"github.com/disintegration/imaging"
)

// AssetStore reads template images and fonts from a read-only tree,
// normally the template-data directory.
type AssetStore struct {
	fsys fs.FS
}

func NewAssetStore(fsys fs.FS) *AssetStore {
	return &AssetStore{fsys: fsys}
}

// Image opens and decodes name. A missing or undecodable file is reported
// as ErrAssetMissing.
func (a *AssetStore) Image(name string) (image.Image, error) {
	f, err := a.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetMissing, name, err)
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrAssetMissing, name, err)
	}
	return img, nil
}

// ReadFile returns the raw bytes of name.
func (a *AssetStore) ReadFile(name string) ([]byte, error) {
	b, err := fs.ReadFile(a.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetMissing, name, err)
	}
	return b, nil
}

// CoverScale scales img uniformly so it covers a w×h box. One side may end up
// larger than the box; the image is never letterboxed or distorted.
func CoverScale(img image.Image, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return imaging.New(w, h, image.Transparent)
	}
	scale := max(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	nw := max(int(float64(b.Dx())*scale), w)
	nh := max(int(float64(b.Dy())*scale), h)
	return imaging.Resize(img, nw, nh, imaging.Lanczos)
}
