package handler

import (
	"net/http"

	"estate-search/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles catalog administration requests
type CatalogHandler struct {
	searchService *service.SearchService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(searchService *service.SearchService) *CatalogHandler {
	return &CatalogHandler{searchService: searchService}
}

// Reload handles POST /api/v1/catalog/reload. The swap is atomic: queries
// running during the reload see either the old or the new snapshot, never
// a partial one.
func (h *CatalogHandler) Reload(c *gin.Context) {
	count, err := h.searchService.Reload(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Reload failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"listings": count,
	})
}

// Stats handles GET /api/v1/catalog/stats
func (h *CatalogHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"listings": h.searchService.CatalogSize(),
	})
}
