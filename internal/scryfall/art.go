package scryfall

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/youruser/proxyapp/internal/cards"
	"github.com/youruser/proxyapp/internal/util"
)

const (
	artDir  = "card-art"
	fullDir = "full-cards"
)

// ArtCache serves card images from dir, downloading the ones it lacks.
// Concurrent requests for the same file share one download.
type ArtCache struct {
	client *Client
	dir    string
	log    *zap.Logger
	group  singleflight.Group
}

// NewArtCache stores images under dir/card-art and dir/full-cards.
func NewArtCache(client *Client, dir string, log *zap.Logger) *ArtCache {
	return &ArtCache{client: client, dir: dir, log: log}
}

// ArtCrop returns the path of the card's cropped artwork.
func (a *ArtCache) ArtCrop(ctx context.Context, c cards.Card) (string, error) {
	return a.fetch(ctx, artDir, c.ImageURIs.ArtCrop, c)
}

// FullCard returns the path of the card's full PNG scan.
func (a *ArtCache) FullCard(ctx context.Context, c cards.Card) (string, error) {
	return a.fetch(ctx, fullDir, c.ImageURIs.PNG, c)
}

func (a *ArtCache) fetch(ctx context.Context, sub, uri string, c cards.Card) (string, error) {
	if uri == "" {
		return "", fmt.Errorf("%w: %s (%s)", ErrNoImage, c.Name, sub)
	}
	p := filepath.Join(a.dir, sub, cards.Slug(c.Name)+extOf(uri))
	if util.Exists(p) {
		return p, nil
	}

	_, err, _ := a.group.Do(p, func() (interface{}, error) {
		if util.Exists(p) {
			return nil, nil
		}
		a.log.Info("downloading card image", zap.String("card", c.Name), zap.String("kind", sub))
		// Detached from ctx: every waiter shares this download.
		return nil, a.client.Download(context.WithoutCancel(ctx), uri, p)
	})
	if err != nil {
		return "", err
	}
	return p, nil
}

// extOf returns the file extension of a URI's path, ignoring the query
// string Scryfall appends to image links.
func extOf(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ".png"
	}
	if ext := path.Ext(u.Path); ext != "" {
		return ext
	}
	return ".png"
}
