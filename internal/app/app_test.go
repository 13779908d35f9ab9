package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/youruser/proxyapp/internal/config"
	imagepkg "github.com/youruser/proxyapp/internal/image"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			TemplateDir: filepath.Join(root, "template-data"),
			DataDir:     filepath.Join(root, "data"),
			OutputDir:   filepath.Join(root, "output"),
		},
		Render:   config.RenderConfig{Template: "plain", Naming: "artist", Workers: 1},
		Scryfall: config.ScryfallConfig{BaseURL: "http://127.0.0.1:1", BulkType: "oracle_cards", Timeout: 5},
	}
	fonts := filepath.Join(cfg.Paths.TemplateDir, "fonts")
	require.NoError(t, os.MkdirAll(fonts, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(fonts, "MPlantin.ttf"), goregular.TTF, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(fonts, "JaceBeleren-Bold.ttf"), gobold.TTF, 0o644))
	return cfg
}

func TestOpen(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(cfg.Paths.DataDir, 0o755))
	require.NoError(t, os.WriteFile(CatalogPath(cfg),
		[]byte(`[{"name":"Lightning Bolt","artist":"Christopher Moeller"}]`), 0o644))

	a, err := Open(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, a.Catalog.Len())
	assert.Equal(t, imagepkg.Plain, a.Variant)

	bolt, _ := a.Catalog.Lookup("Lightning Bolt")
	assert.Equal(t, "Lightning Bolt (Christopher Moeller).png", a.Sink.FileName(bolt, ""))
	assert.NotNil(t, a.Runner)
}

func TestOpenWithoutCatalog(t *testing.T) {
	_, err := Open(testConfig(t), zap.NewNop())
	assert.ErrorContains(t, err, "run --update all first")
}

func TestOpenUnknownTemplate(t *testing.T) {
	cfg := testConfig(t)
	cfg.Render.Template = "white-lined"
	_, err := Open(cfg, zap.NewNop())
	assert.ErrorIs(t, err, imagepkg.ErrUnknownVariant)
}
