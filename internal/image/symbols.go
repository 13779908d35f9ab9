package imagepkg

import (
	"image"
	"path"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	symbolDir  = "symbols/title"
	symbolSize = 120
)

// titleSymbolPaths maps cost tokens to their glyph files.
func titleSymbolPaths() map[string]string {
	p := map[string]string{}
	for i := 0; i <= 15; i++ {
		p[strconv.Itoa(i)] = path.Join(symbolDir, strconv.Itoa(i)+".png")
	}
	for _, c := range []string{"W", "U", "B", "R", "G", "C", "S", "X"} {
		p[c] = path.Join(symbolDir, "mana_"+strings.ToLower(c)+".png")
	}
	// {2/W} and friends
	for _, c := range []string{"W", "U", "B", "R", "G"} {
		p["2/"+c] = path.Join(symbolDir, "mana_2"+strings.ToLower(c)+".png")
	}
	for _, c := range []string{"B/G", "B/R", "G/U", "G/W", "R/G", "R/W", "U/B", "U/R", "W/B", "W/U"} {
		p[c] = path.Join(symbolDir, "mana_"+strings.ToLower(c[:1]+c[2:])+".png")
	}
	for _, c := range []string{"W", "U", "B", "R", "G"} {
		p[c+"/P"] = path.Join(symbolDir, "mana_phy"+strings.ToLower(c)+".png")
	}
	return p
}

// SymbolCache loads cost glyphs on first use and keeps them for the life of
// the rendering context. Safe for concurrent use.
type SymbolCache struct {
	assets *AssetStore
	paths  map[string]string
	log    *zap.Logger

	mu    sync.RWMutex
	cache map[string]image.Image
	group singleflight.Group
}

func NewSymbolCache(assets *AssetStore, log *zap.Logger) *SymbolCache {
	return &SymbolCache{
		assets: assets,
		paths:  titleSymbolPaths(),
		log:    log,
		cache:  map[string]image.Image{},
	}
}

// Known reports whether token has a glyph. Braces are optional.
func (s *SymbolCache) Known(token string) bool {
	_, ok := s.paths[trimBraces(token)]
	return ok
}

// Title returns the title-bar glyph for token ("{W}" or "W"), scaled to
// symbolSize. An unknown token is logged and yields a nil image and nil
// error; the caller skips the glyph. A known token whose file is missing
// returns ErrAssetMissing.
func (s *SymbolCache) Title(token string) (image.Image, error) {
	token = trimBraces(token)

	s.mu.RLock()
	img, ok := s.cache[token]
	s.mu.RUnlock()
	if ok {
		return img, nil
	}

	p, ok := s.paths[token]
	if !ok {
		s.log.Warn("cannot find symbol", zap.String("symbol", token))
		return nil, nil
	}

	v, err, _ := s.group.Do(token, func() (interface{}, error) {
		src, err := s.assets.Image(p)
		if err != nil {
			return nil, err
		}
		scaled := CoverScale(src, symbolSize, symbolSize)
		s.mu.Lock()
		s.cache[token] = scaled
		s.mu.Unlock()
		return scaled, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(image.Image), nil
}

// Len returns the number of cached glyphs.
func (s *SymbolCache) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

func trimBraces(token string) string {
	if strings.HasPrefix(token, "{") && strings.HasSuffix(token, "}") {
		return token[1 : len(token)-1]
	}
	return token
}
