package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakkhoyt/linkmark/config"
	"github.com/zakkhoyt/linkmark/core"
)

// stubFetcher serves canned HTML so handler tests never touch the network.
type stubFetcher struct {
	html string
}

func (s *stubFetcher) Fetch(_ context.Context, url string) (*core.FetchResult, error) {
	return &core.FetchResult{URL: url, StatusCode: http.StatusOK, HTML: s.html}, nil
}

func testRouter(t *testing.T, html string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Environment:    "test",
			RateLimitRPS:   1000,
			RateLimitBurst: 1000,
		},
		Extract: config.ExtractConfig{TitleMaxLength: 80},
		Image:   config.ImageConfig{CDNHost: "m.media-amazon.com", SquareSide: 500, Quality: 95},
	}
	return SetupRouter(cfg, NewHandler(cfg, &stubFetcher{html: html}))
}

func TestHealthCheck(t *testing.T) {
	router := testRouter(t, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestClassifyEndpoint(t *testing.T) {
	router := testRouter(t, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/classify?url=https://www.amazon.com/dp/B01ABCDEFG%3Fth=1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var loc core.ParsedLocator
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loc))
	assert.Equal(t, core.KindProduct, loc.Kind)
	assert.Equal(t, "B01ABCDEFG", loc.Identifier)
}

func TestClassifyEndpointRequiresURL(t *testing.T) {
	router := testRouter(t, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/classify", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractEndpointWithHTML(t *testing.T) {
	router := testRouter(t, "")

	body, _ := json.Marshal(map[string]string{
		"html": `<html><head><title>Amazon.com: Widget Pro</title></head>
		<body><input id="ASIN" value="B01ABCDEFG"></body></html>`,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var listing core.ExtractedListing
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Equal(t, "B01ABCDEFG", listing.Identifier)
	assert.Equal(t, "Widget Pro", listing.TitleNormalized)
}

func TestExtractEndpointNoIdentifier(t *testing.T) {
	router := testRouter(t, "")

	body, _ := json.Marshal(map[string]string{"html": "<html><body><p>empty</p></body></html>"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestLinkEndpointFetchesURL(t *testing.T) {
	page := `<html><head><title>Amazon.com: Widget Pro : Electronics</title></head>
	<body><input id="ASIN" value="B01ABCDEFG"></body></html>`
	router := testRouter(t, page)

	body, _ := json.Marshal(map[string]string{"url": "https://www.amazon.com/dp/B01ABCDEFG"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/link", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Markdown string `json:"markdown"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "[Widget Pro](https://www.amazon.com/dp/B01ABCDEFG)", resp.Markdown)
}

func TestImageEndpoints(t *testing.T) {
	router := testRouter(t, "")

	t.Run("compose", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/image/compose?id=ABC1234567&width=800&height=600&autocrop=true", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ABC1234567._SX800_SY600_AC_.jpg")
	})

	t.Run("parse", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/image/parse?url=https://m.media-amazon.com/images/I/ABC1234567._SL500_.jpg", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var spec core.ImageSpec
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &spec))
		assert.Equal(t, "ABC1234567", spec.ID)
		assert.Equal(t, 500, spec.SquareSide)
	})

	t.Run("parse rejects non CDN URL", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/image/parse?url=https://example.com/x.jpg", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
