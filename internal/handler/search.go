package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"estate-search/internal/model"
	"estate-search/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	searchService *service.SearchService
	replyClient   service.ReplyClient
	defaultTopK   int
	maxTopK       int
}

// NewSearchHandler creates a new search handler. replyClient may be nil;
// replies then come from the local fallback phrasing.
func NewSearchHandler(searchService *service.SearchService, replyClient service.ReplyClient, defaultTopK, maxTopK int) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		replyClient:   replyClient,
		defaultTopK:   defaultTopK,
		maxTopK:       maxTopK,
	}
}

// Search handles POST /api/v1/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	topK := req.TopK
	if topK <= 0 {
		topK = h.defaultTopK
	}
	if topK > h.maxTopK {
		topK = h.maxTopK
	}

	result, err := h.searchService.Search(c.Request.Context(), req.Query, topK)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCatalog) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "No listings loaded",
				"outcome": model.OutcomeEmptyCatalog,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed: " + err.Error()})
		return
	}

	// Phrase the reply best-effort: an external phrasing failure never
	// affects the search result.
	reply := service.FallbackReply(result)
	if h.replyClient != nil && h.replyClient.IsEnabled() {
		phrased, err := h.replyClient.Phrase(c.Request.Context(), req.Query, result)
		if err != nil {
			log.Printf("Reply phrasing failed, using fallback: %v", err)
		} else if phrased != "" {
			reply = phrased
		}
	}

	c.JSON(http.StatusOK, model.SearchResponse{
		Results: result.Listings,
		Count:   result.Count,
		Outcome: result.Outcome,
		Intent:  result.Intent,
		Reply:   reply,
		Took:    result.Took,
	})
}

// GetListing handles GET /api/v1/listings/:id
func (h *SearchHandler) GetListing(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID"})
		return
	}

	listing, ok := h.searchService.GetListing(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, listing)
}
