// Package batch renders many proxies concurrently and writes them to an
// output sink.
package batch

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sort"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/youruser/proxyapp/internal/cards"
	"github.com/youruser/proxyapp/internal/deck"
	imagepkg "github.com/youruser/proxyapp/internal/image"
)

// Sheet thumbnails are kept at twice the contact sheet cell size.
const (
	sheetThumbW = 430
	sheetThumbH = 600
)

// Renderer composes card images.
type Renderer interface {
	Compose(ctx context.Context, card cards.Card, v imagepkg.Variant) (*image.NRGBA, error)
	ComposeBack(ctx context.Context, card cards.Card, v imagepkg.Variant) (*image.NRGBA, error)
	ComposeSheet(title string, proxies []image.Image, qr image.Image) *image.NRGBA
}

// Lookup resolves card names against the catalog.
type Lookup interface {
	Lookup(name string) (cards.Card, bool)
}

// Sink stores rendered images.
type Sink interface {
	Write(img image.Image, c cards.Card, suffix string) (string, error)
	WriteNamed(img image.Image, name string) (string, error)
}

// Options controls a run.
type Options struct {
	Variant imagepkg.Variant
	Workers int
	// Backs also writes a QR card back for every proxy.
	Backs bool
	// SheetName, when set, writes a contact sheet of all proxies under that file name.
	SheetName  string
	SheetTitle string
	// SheetQR is encoded in the sheet corner when non-empty.
	SheetQR string
}

// Failure records one card that could not be rendered.
type Failure struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Summary reports the outcome of a run. Written and the failure lists are
// sorted by card name.
type Summary struct {
	RunID    string    `json:"run_id"`
	Written  []string  `json:"written"`
	Rejected []Failure `json:"rejected"`
	NoArt    []Failure `json:"no_art"`
	Sheet    string    `json:"sheet,omitempty"`
}

// Failed reports how many cards were not written.
func (s Summary) Failed() int { return len(s.Rejected) + len(s.NoArt) }

// Runner drives a Renderer over a list of cards.
type Runner struct {
	render  Renderer
	catalog Lookup
	sink    Sink
	log     *zap.Logger
}

func NewRunner(render Renderer, catalog Lookup, sink Sink, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{render: render, catalog: catalog, sink: sink, log: log}
}

// RunDeck renders one proxy per distinct card in d.
func (r *Runner) RunDeck(ctx context.Context, d deck.Deck, opt Options) (Summary, error) {
	if opt.SheetTitle == "" {
		opt.SheetTitle = d.Name
	}
	return r.Run(ctx, d.Names(), opt)
}

// Run renders every named card. Validation and art failures are collected
// in the summary; a missing template asset aborts the run and is returned.
func (r *Runner) Run(ctx context.Context, names []string, opt Options) (Summary, error) {
	runID := uuid.NewString()
	log := r.log.With(zap.String("run_id", runID), zap.String("template", opt.Variant.Name))
	names = dedupe(names)
	log.Info("starting render run", zap.Int("cards", len(names)), zap.Int("workers", opt.Workers))

	var (
		mu     sync.Mutex
		sum    = Summary{RunID: runID}
		thumbs = make([]image.Image, len(names))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opt.Workers, 1))
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			card, ok := r.catalog.Lookup(name)
			if !ok {
				card = cards.Card{Name: name}
			}

			paths, thumb, err := r.renderOne(gctx, card, opt)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				sum.Written = append(sum.Written, paths...)
				thumbs[i] = thumb
				log.Debug("rendered card", zap.String("card", name))
				return nil
			case errors.Is(err, imagepkg.ErrValidation):
				sum.Rejected = append(sum.Rejected, Failure{Name: name, Reason: err.Error()})
				log.Warn("card rejected", zap.String("card", name), zap.Error(err))
				return nil
			case errors.Is(err, imagepkg.ErrArtUnavailable):
				sum.NoArt = append(sum.NoArt, Failure{Name: name, Reason: err.Error()})
				log.Warn("card art unavailable", zap.String("card", name), zap.Error(err))
				return nil
			default:
				return fmt.Errorf("rendering %s: %w", name, err)
			}
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("render run aborted", zap.Error(err))
		return sum, err
	}

	if opt.SheetName != "" {
		p, err := r.writeSheet(thumbs, opt)
		if err != nil {
			return sum, err
		}
		sum.Sheet = p
	}

	sort.Strings(sum.Written)
	sortFailures(sum.Rejected)
	sortFailures(sum.NoArt)
	log.Info("render run finished",
		zap.Int("written", len(sum.Written)),
		zap.Int("rejected", len(sum.Rejected)),
		zap.Int("no_art", len(sum.NoArt)))
	return sum, nil
}

func (r *Runner) renderOne(ctx context.Context, card cards.Card, opt Options) ([]string, image.Image, error) {
	img, err := r.render.Compose(ctx, card, opt.Variant)
	if err != nil {
		return nil, nil, err
	}
	p, err := r.sink.Write(img, card, "")
	if err != nil {
		return nil, nil, err
	}
	paths := []string{p}

	if opt.Backs && opt.Variant.Kind == imagepkg.Framed {
		back, err := r.render.ComposeBack(ctx, card, opt.Variant)
		if err != nil {
			return nil, nil, err
		}
		bp, err := r.sink.Write(back, card, "-back")
		if err != nil {
			return nil, nil, err
		}
		paths = append(paths, bp)
	}

	var thumb image.Image
	if opt.SheetName != "" {
		thumb = imaging.Fit(img, sheetThumbW, sheetThumbH, imaging.Lanczos)
	}
	return paths, thumb, nil
}

func (r *Runner) writeSheet(thumbs []image.Image, opt Options) (string, error) {
	proxies := make([]image.Image, 0, len(thumbs))
	for _, t := range thumbs {
		if t != nil {
			proxies = append(proxies, t)
		}
	}
	var qr image.Image
	if opt.SheetQR != "" {
		q, err := imagepkg.GenerateQRImage(opt.SheetQR, 400)
		if err != nil {
			r.log.Warn("skipping sheet QR code", zap.Error(err))
		} else {
			qr = q
		}
	}
	sheet := r.render.ComposeSheet(opt.SheetTitle, proxies, qr)
	return r.sink.WriteNamed(sheet, opt.SheetName)
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func sortFailures(f []Failure) {
	sort.Slice(f, func(i, j int) bool { return f[i].Name < f[j].Name })
}
