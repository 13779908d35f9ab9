package imagepkg

import (
	"io/fs"

	"go.uber.org/zap"
)

// RenderingContext carries the per-process rendering state: the asset tree,
// parsed fonts and the symbol cache. Build one per run and share it.
type RenderingContext struct {
	Assets  *AssetStore
	Fonts   *Fonts
	Symbols *SymbolCache
	Log     *zap.Logger
}

// NewRenderingContext parses fonts from fsys up front; a missing font is a
// configuration error.
func NewRenderingContext(fsys fs.FS, log *zap.Logger) (*RenderingContext, error) {
	if log == nil {
		log = zap.NewNop()
	}
	assets := NewAssetStore(fsys)
	fonts, err := LoadFonts(assets)
	if err != nil {
		return nil, err
	}
	return &RenderingContext{
		Assets:  assets,
		Fonts:   fonts,
		Symbols: NewSymbolCache(assets, log),
		Log:     log,
	}, nil
}
