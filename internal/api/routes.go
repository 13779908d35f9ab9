package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.POST("/cards/filter", h.filterHandler)
		api.GET("/cards/:name/render", h.renderHandler)
		api.GET("/cards/:name/back", h.backHandler)
		api.GET("/qr", h.qrHandler)
		api.POST("/decklist/render", h.decklistRenderHandler)
		api.POST("/decklist/export", h.decklistExportHandler)
	}
}
