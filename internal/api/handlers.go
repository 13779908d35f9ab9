package api

import (
	"bytes"
	"context"
	"errors"
	"image"
	"net/http"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/proxyapp/internal/batch"
	"github.com/youruser/proxyapp/internal/cards"
	"github.com/youruser/proxyapp/internal/deck"
	imagepkg "github.com/youruser/proxyapp/internal/image"
)

const (
	defaultQRSize = 400
	maxQRSize     = 2048
)

// Renderer composes single card images.
type Renderer interface {
	Compose(ctx context.Context, card cards.Card, v imagepkg.Variant) (*image.NRGBA, error)
	ComposeBack(ctx context.Context, card cards.Card, v imagepkg.Variant) (*image.NRGBA, error)
}

// DeckRunner renders a whole decklist to the output directory.
type DeckRunner interface {
	RunDeck(ctx context.Context, d deck.Deck, opt batch.Options) (batch.Summary, error)
}

// Handler serves the proxy API.
type Handler struct {
	catalog  *cards.Catalog
	render   Renderer
	runner   DeckRunner
	template imagepkg.Variant
	workers  int
	log      *zap.Logger
}

// NewHandler wires the API. template is used when a request names none.
func NewHandler(catalog *cards.Catalog, render Renderer, runner DeckRunner, template imagepkg.Variant, workers int, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		catalog:  catalog,
		render:   render,
		runner:   runner,
		template: template,
		workers:  workers,
		log:      log,
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "cards": h.catalog.Len()})
}

func (h *Handler) filterHandler(c *gin.Context) {
	var opt cards.FilterOptions
	if err := c.ShouldBindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := cards.Filter(h.catalog.All(), opt)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "cards": out})
}

// variant reads the optional "template" query parameter.
func (h *Handler) variant(c *gin.Context) (imagepkg.Variant, bool) {
	name := c.Query("template")
	if name == "" {
		return h.template, true
	}
	v, err := imagepkg.VariantByName(name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return imagepkg.Variant{}, false
	}
	return v, true
}

func (h *Handler) lookup(name string) cards.Card {
	if card, ok := h.catalog.Lookup(name); ok {
		return card
	}
	return cards.Card{Name: name}
}

func (h *Handler) renderHandler(c *gin.Context) {
	v, ok := h.variant(c)
	if !ok {
		return
	}
	card := h.lookup(c.Param("name"))
	img, err := h.render.Compose(c.Request.Context(), card, v)
	if err != nil {
		h.renderError(c, card.Name, err)
		return
	}
	h.writePNG(c, img)
}

func (h *Handler) backHandler(c *gin.Context) {
	v, ok := h.variant(c)
	if !ok {
		return
	}
	card := h.lookup(c.Param("name"))
	img, err := h.render.ComposeBack(c.Request.Context(), card, v)
	if err != nil {
		h.renderError(c, card.Name, err)
		return
	}
	h.writePNG(c, img)
}

// qr endpoint returns a PNG of a QR for "text" query param
func (h *Handler) qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := defaultQRSize
	if s := c.Query("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 && v <= maxQRSize {
			size = v
		}
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

type decklistRequest struct {
	Name     string `json:"name"`
	Decklist string `json:"decklist" binding:"required"`
	Template string `json:"template"`
	Backs    bool   `json:"backs"`
	Sheet    bool   `json:"sheet"`
}

func (h *Handler) parseDecklist(c *gin.Context) (decklistRequest, deck.Deck, bool) {
	var req decklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, deck.Deck{}, false
	}
	d, err := deck.Parse(strings.NewReader(req.Decklist))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, deck.Deck{}, false
	}
	d.Name = req.Name
	return req, d, true
}

// decklistRenderHandler renders every card of a decklist into the output
// directory and reports what was written.
func (h *Handler) decklistRenderHandler(c *gin.Context) {
	req, d, ok := h.parseDecklist(c)
	if !ok {
		return
	}
	v := h.template
	if req.Template != "" {
		var err error
		if v, err = imagepkg.VariantByName(req.Template); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	opt := batch.Options{Variant: v, Workers: h.workers, Backs: req.Backs}
	if req.Sheet {
		opt.SheetName = sheetName(d.Name)
		opt.SheetQR = deck.ExportDeckText(d, false)
	}
	sum, err := h.runner.RunDeck(c.Request.Context(), d, opt)
	if err != nil {
		h.log.Error("decklist render failed", zap.String("run_id", sum.RunID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "run_id": sum.RunID})
		return
	}
	c.JSON(http.StatusOK, sum)
}

// decklistExportHandler normalises a decklist and lists the cards missing
// from the local catalog.
func (h *Handler) decklistExportHandler(c *gin.Context) {
	_, d, ok := h.parseDecklist(c)
	if !ok {
		return
	}
	missing := []string{}
	for _, n := range d.Names() {
		if !h.catalog.Contains(n) {
			missing = append(missing, n)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"total":    d.Total(),
		"decklist": deck.ExportDeckText(d, false),
		"missing":  missing,
	})
}

func (h *Handler) renderError(c *gin.Context, name string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, imagepkg.ErrValidation):
		status = http.StatusNotFound
	case errors.Is(err, imagepkg.ErrUnknownVariant):
		status = http.StatusBadRequest
	case errors.Is(err, imagepkg.ErrArtUnavailable):
		status = http.StatusBadGateway
	default:
		h.log.Error("render failed", zap.String("card", name), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (h *Handler) writePNG(c *gin.Context, img image.Image) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func sheetName(deckName string) string {
	if deckName == "" {
		return "decklist-sheet.png"
	}
	return cards.Slug(deckName) + "-sheet.png"
}
