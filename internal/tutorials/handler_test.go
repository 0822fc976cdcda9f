package tutorials

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTutorialsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(NewResolver(DefaultConfig()), NewVerifier()).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestTutorialsLookup(t *testing.T) {
	router := newTutorialsRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tutorials?category=blush&skinTone=Deep", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var body struct {
		Category string `json:"category"`
		EmbedURL string `json:"embedUrl"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Category != "blush" {
		t.Fatalf("unexpected category %q", body.Category)
	}
	if body.EmbedURL != "https://www.youtube.com/embed/wFLjQGTc_zc" {
		t.Fatalf("unexpected url %q", body.EmbedURL)
	}
}

func TestTutorialsLookupDefaultsCategory(t *testing.T) {
	router := newTutorialsRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tutorials?skinTone=Fair", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "j7-Oi8n01Lc") {
		t.Fatalf("expected fair foundation tutorial, got %s", resp.Body.String())
	}
}

func TestTutorialsVerifyRequiresURL(t *testing.T) {
	router := newTutorialsRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tutorials/verify", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestTutorialsVerifyRejectsBadURL(t *testing.T) {
	router := newTutorialsRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tutorials/verify",
		strings.NewReader(`{"url":"https://example.com/nope"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestTutorialsVerifyValid(t *testing.T) {
	oldURL := oEmbedURL
	t.Cleanup(func() { oEmbedURL = oldURL })
	oEmbedURL = stubOEmbed(t, map[string]bool{"ZD92D2qQW8U": true}).URL

	router := newTutorialsRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tutorials/verify",
		strings.NewReader(`{"url":"https://www.youtube.com/watch?v=ZD92D2qQW8U","category":"foundation"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var result VerifyResult
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !result.IsValid || result.EmbedURL != "https://www.youtube.com/embed/ZD92D2qQW8U" {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestTutorialsVerifyFallback(t *testing.T) {
	oldURL := oEmbedURL
	t.Cleanup(func() { oEmbedURL = oldURL })
	oEmbedURL = stubOEmbed(t, map[string]bool{"vYAq-sA-DUM": true}).URL

	router := newTutorialsRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tutorials/verify",
		strings.NewReader(`{"url":"https://youtu.be/AAAAAAAAAAA","category":"lipstick"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var result VerifyResult
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.IsValid || !result.IsFallback {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.EmbedURL != "https://www.youtube.com/embed/vYAq-sA-DUM" {
		t.Fatalf("unexpected fallback %q", result.EmbedURL)
	}
}
