package imagepkg

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/youruser/proxyapp/internal/cards"
	"github.com/youruser/proxyapp/internal/frame"
)

// The print-service watermark sits above the bottom border; cards with a
// lower-right box have it a little lower.
const (
	watermarkX      = 2352
	watermarkY      = 4064
	watermarkLowerY = 4140
	watermarkWidth  = 610
	watermarkHeight = 100
)

// CardLookup finds catalog entries by exact name.
type CardLookup interface {
	Lookup(name string) (cards.Card, bool)
}

// StripReport summarises a StripWatermarks run.
type StripReport struct {
	Processed []string
	Missing   []string
}

// StripWatermarks paints over the watermark on every png/jpg in dir whose
// base name is a card in the catalog, saving each file in place. Files whose
// names are not in the catalog are listed in Missing and left untouched.
func StripWatermarks(dir string, catalog CardLookup, log *zap.Logger) (StripReport, error) {
	var rep StripReport
	entries, err := os.ReadDir(dir)
	if err != nil {
		return rep, fmt.Errorf("reading %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	mask := imaging.New(watermarkWidth, watermarkHeight, color.Black)
	for i, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".png" && ext != ".jpg") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		card, ok := catalog.Lookup(name)
		if !ok {
			log.Warn("cannot find card in local database", zap.String("card", name))
			rep.Missing = append(rep.Missing, name)
			continue
		}
		log.Info("stripping watermark",
			zap.String("card", name),
			zap.Int("percent", i*100/len(entries)))

		p := filepath.Join(dir, e.Name())
		img, err := imaging.Open(p)
		if err != nil {
			return rep, fmt.Errorf("opening %s: %w", p, err)
		}
		y := watermarkY
		if frame.ClassifyType(card.TypeLine).HasLowerBox() {
			y = watermarkLowerY
		}
		out := imaging.Paste(img, mask, image.Pt(watermarkX, y))
		if err := imaging.Save(out, p); err != nil {
			return rep, fmt.Errorf("saving %s: %w", p, err)
		}
		rep.Processed = append(rep.Processed, name)
	}
	return rep, nil
}
