package scryfall

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/youruser/proxyapp/internal/util"
)

const (
	DefaultBaseURL = "https://api.scryfall.com"

	// OracleCards is one card object per Oracle ID, the most recognisable printing.
	OracleCards = "oracle_cards"
	// UniqueArtwork holds one object per unique artwork.
	UniqueArtwork = "unique_artwork"
	// DefaultCards holds every English printing.
	DefaultCards = "default_cards"

	BulkIndexFile = "bulk-data.json"
	AllCardsFile  = "all-cards.json"
)

// BulkEntry is one file listed by /bulk-data.
type BulkEntry struct {
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	DownloadURI string    `json:"download_uri"`
	UpdatedAt   time.Time `json:"updated_at"`
	Size        int64     `json:"size"`
}

type bulkIndex struct {
	Data []BulkEntry `json:"data"`
}

// Client talks to the Scryfall API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Download saves url to path.
func (c *Client) Download(ctx context.Context, url, path string) error {
	c.log.Debug("downloading", zap.String("url", url), zap.String("path", path))
	return util.DownloadFile(ctx, c.http, url, path)
}

// UpdateOptions selects the update stages, mirroring "all", "bulk" and "cards".
type UpdateOptions struct {
	// Bulk refreshes the bulk index file.
	Bulk bool
	// Cards downloads the card file the index points to.
	Cards bool
	// Type is the bulk file type; OracleCards when empty.
	Type string
}

// Update refreshes the local card database in dataDir.
func (c *Client) Update(ctx context.Context, dataDir string, opt UpdateOptions) error {
	if err := util.EnsureDir(dataDir); err != nil {
		return err
	}
	indexPath := filepath.Join(dataDir, BulkIndexFile)

	if opt.Bulk {
		if err := c.fetchIndex(ctx, indexPath); err != nil {
			return err
		}
	}
	if !opt.Cards {
		return nil
	}

	entry, err := ReadBulkEntry(indexPath, opt.Type)
	if err != nil {
		return err
	}
	c.log.Info("fetching card database",
		zap.String("type", entry.Type),
		zap.Time("updated_at", entry.UpdatedAt),
		zap.Int64("size", entry.Size))
	if err := c.Download(ctx, entry.DownloadURI, filepath.Join(dataDir, AllCardsFile)); err != nil {
		return fmt.Errorf("fetching %s: %w", entry.Type, err)
	}
	return nil
}

// fetchIndex saves the /bulk-data listing after checking it decodes, so a
// bad response never replaces a working index.
func (c *Client) fetchIndex(ctx context.Context, indexPath string) error {
	c.log.Info("fetching bulk data index")
	b, err := util.GetBytes(ctx, c.http, c.baseURL+"/bulk-data")
	if err != nil {
		return fmt.Errorf("fetching bulk index: %w", err)
	}
	var idx bulkIndex
	if err := json.Unmarshal(b, &idx); err != nil {
		return fmt.Errorf("decoding bulk index: %w", err)
	}
	c.log.Debug("bulk data index", zap.Int("files", len(idx.Data)))
	if err := os.WriteFile(indexPath, b, 0o644); err != nil {
		return fmt.Errorf("saving bulk index: %w", err)
	}
	return nil
}

// ReadBulkEntry finds the entry of the given type in a saved bulk index.
func ReadBulkEntry(indexPath, kind string) (BulkEntry, error) {
	if kind == "" {
		kind = OracleCards
	}
	b, err := os.ReadFile(indexPath)
	if err != nil {
		return BulkEntry{}, fmt.Errorf("reading %s (run the bulk update first): %w", indexPath, err)
	}
	var idx bulkIndex
	if err := json.Unmarshal(b, &idx); err != nil {
		return BulkEntry{}, fmt.Errorf("decoding %s: %w", indexPath, err)
	}
	for _, e := range idx.Data {
		if e.Type == kind {
			return e, nil
		}
	}
	return BulkEntry{}, fmt.Errorf("%w: %s", ErrNoBulkEntry, kind)
}
