// Package output writes finished proxies to disk.
package output

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/youruser/proxyapp/internal/cards"
	"github.com/youruser/proxyapp/internal/util"
)

// Naming selects how output files are named.
type Naming string

const (
	// NamingSlug writes "jace-the-mind-sculptor.png".
	NamingSlug Naming = "slug"
	// NamingArtist writes "Jace, the Mind Sculptor (Jace Beleren).png".
	NamingArtist Naming = "artist"
)

var ErrUnknownNaming = errors.New("unknown naming mode")

// ParseNaming validates a naming mode; "" means NamingSlug.
func ParseNaming(s string) (Naming, error) {
	switch Naming(s) {
	case "", NamingSlug:
		return NamingSlug, nil
	case NamingArtist:
		return NamingArtist, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownNaming, s)
}

// Sink writes PNG images into a directory.
type Sink struct {
	dir    string
	naming Naming
}

func NewSink(dir string, naming Naming) *Sink {
	if naming == "" {
		naming = NamingSlug
	}
	return &Sink{dir: dir, naming: naming}
}

// FileName returns the output file name for c, without the directory.
func (s *Sink) FileName(c cards.Card, suffix string) string {
	base := cards.Slug(c.Name)
	if s.naming == NamingArtist {
		base = cards.ArtistName(c)
	}
	return base + suffix + ".png"
}

// Write saves img for card c and returns the written path. suffix
// distinguishes extra images of one card, such as its back.
func (s *Sink) Write(img image.Image, c cards.Card, suffix string) (string, error) {
	return s.WriteNamed(img, s.FileName(c, suffix))
}

// WriteNamed saves img as name inside the sink directory.
func (s *Sink) WriteNamed(img image.Image, name string) (string, error) {
	if err := util.EnsureDir(s.dir); err != nil {
		return "", err
	}
	p := filepath.Join(s.dir, name)
	if err := imaging.Save(img, p); err != nil {
		return "", fmt.Errorf("saving %s: %w", p, err)
	}
	return p, nil
}
