// Package app assembles the renderer, catalog and output sink from a
// loaded configuration. Both binaries build on it.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/youruser/proxyapp/internal/batch"
	"github.com/youruser/proxyapp/internal/cards"
	"github.com/youruser/proxyapp/internal/config"
	imagepkg "github.com/youruser/proxyapp/internal/image"
	"github.com/youruser/proxyapp/internal/output"
	"github.com/youruser/proxyapp/internal/scryfall"
)

// ImageDir is where downloaded card images live inside the data directory.
const ImageDir = "scryfall"

type App struct {
	Config     *config.Config
	Log        *zap.Logger
	Client     *scryfall.Client
	Catalog    *cards.Catalog
	Art        *scryfall.ArtCache
	Compositor *imagepkg.Compositor
	Sink       *output.Sink
	Runner     *batch.Runner
	Variant    imagepkg.Variant
}

// NewClient builds the Scryfall client described by cfg.
func NewClient(cfg *config.Config, log *zap.Logger) *scryfall.Client {
	return scryfall.NewClient(cfg.Scryfall.BaseURL, time.Duration(cfg.Scryfall.Timeout)*time.Second, log)
}

// CatalogPath is the local bulk card file.
func CatalogPath(cfg *config.Config) string {
	return filepath.Join(cfg.Paths.DataDir, scryfall.AllCardsFile)
}

// Open loads the card catalog and template fonts and wires the renderer.
func Open(cfg *config.Config, log *zap.Logger) (*App, error) {
	variant, err := imagepkg.VariantByName(cfg.Render.Template)
	if err != nil {
		return nil, err
	}
	naming, err := output.ParseNaming(cfg.Render.Naming)
	if err != nil {
		return nil, err
	}

	catalog, err := cards.LoadCatalogFile(CatalogPath(cfg))
	if err != nil {
		return nil, fmt.Errorf("loading card catalog (run --update all first): %w", err)
	}
	log.Info("card catalog loaded", zap.Int("cards", catalog.Len()))

	rc, err := imagepkg.NewRenderingContext(os.DirFS(cfg.Paths.TemplateDir), log)
	if err != nil {
		return nil, fmt.Errorf("loading templates from %s: %w", cfg.Paths.TemplateDir, err)
	}

	client := NewClient(cfg, log)
	art := scryfall.NewArtCache(client, filepath.Join(cfg.Paths.DataDir, ImageDir), log)
	comp := imagepkg.NewCompositor(rc, catalog, art)
	sink := output.NewSink(cfg.Paths.OutputDir, naming)

	return &App{
		Config:     cfg,
		Log:        log,
		Client:     client,
		Catalog:    catalog,
		Art:        art,
		Compositor: comp,
		Sink:       sink,
		Runner:     batch.NewRunner(comp, catalog, sink, log),
		Variant:    variant,
	}, nil
}
