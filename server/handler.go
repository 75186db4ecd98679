package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zakkhoyt/linkmark/config"
	"github.com/zakkhoyt/linkmark/core"
	"github.com/zakkhoyt/linkmark/core/compose"
	"github.com/zakkhoyt/linkmark/core/extract"
	"github.com/zakkhoyt/linkmark/core/locator"
	"github.com/zakkhoyt/linkmark/core/markdown"
	"github.com/zakkhoyt/linkmark/core/normalize"
)

// Handler holds dependencies for the HTTP handlers.
type Handler struct {
	cfg       *config.Config
	fetcher   core.Fetcher
	extractor *extract.Extractor
}

// NewHandler creates an HTTP handler.
func NewHandler(cfg *config.Config, fetcher core.Fetcher) *Handler {
	return &Handler{
		cfg:       cfg,
		fetcher:   fetcher,
		extractor: extract.New(extract.Options{Verbose: cfg.Extract.Verbose}),
	}
}

// HealthCheck returns the service status.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "linkmark",
	})
}

// Classify handles GET /api/v1/classify?url=.
func (h *Handler) Classify(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	loc, err := locator.Classify(rawURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, loc)
}

// extractRequest is the body of POST /api/v1/extract and /api/v1/link.
// Exactly one of URL and HTML is required; when both are present the HTML
// is extracted with the URL as its source locator.
type extractRequest struct {
	URL  string `json:"url"`
	HTML string `json:"html"`
}

// Extract handles POST /api/v1/extract.
func (h *Handler) Extract(c *gin.Context) {
	listing, ok := h.extractListing(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, listing)
}

// Link handles POST /api/v1/link: extract, then respond with the markdown
// link fragment.
func (h *Handler) Link(c *gin.Context) {
	listing, ok := h.extractListing(c)
	if !ok {
		return
	}

	url := listing.SourceURL
	if url == "" {
		composed, err := compose.ListingURL(listing.Identifier, "", "", nil, compose.FormatShort)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		url = composed
	}

	title := normalize.Truncate(listing.TitleNormalized, h.cfg.Extract.TitleMaxLength)
	opts := normalize.DefaultEscapeOptions()
	opts.Parens = false
	title = normalize.EscapeMarkdown(title, opts)

	link, err := markdown.Link(title, url)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"markdown":   link,
		"identifier": listing.Identifier,
		"title":      listing.TitleNormalized,
		"url":        url,
	})
}

// ParseImage handles GET /api/v1/image/parse?url=.
func (h *Handler) ParseImage(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	spec := compose.ParseImageURL(rawURL)
	if spec == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "not a CDN image URL"})
		return
	}
	c.JSON(http.StatusOK, spec)
}

// ComposeImage handles GET /api/v1/image/compose?id=&width=&height=&side=.
func (h *Handler) ComposeImage(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id query parameter is required"})
		return
	}

	opts := compose.ImageOptions{
		Width:      intQuery(c, "width"),
		Height:     intQuery(c, "height"),
		SquareSide: intQuery(c, "side"),
		Quality:    intQuery(c, "quality"),
		AutoCrop:   c.Query("autocrop") == "true",
		Format:     c.Query("format"),
		Host:       h.cfg.Image.CDNHost,
	}
	c.JSON(http.StatusOK, gin.H{"url": compose.ImageURL(id, opts)})
}

// extractListing resolves the request body into an extracted listing,
// fetching the URL when no HTML was supplied. Writes the error response
// itself and reports ok=false on failure.
func (h *Handler) extractListing(c *gin.Context) (*core.ExtractedListing, bool) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return nil, false
	}
	if req.URL == "" && req.HTML == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "either url or html is required"})
		return nil, false
	}

	html := req.HTML
	if html == "" {
		result, err := h.fetcher.Fetch(c.Request.Context(), req.URL)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return nil, false
		}
		html = result.HTML
	}

	listing, err := h.extractor.Listing(extract.FromHTML(html), req.URL)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, core.ErrInvalidURL) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return nil, false
	}
	return listing, true
}

func intQuery(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
