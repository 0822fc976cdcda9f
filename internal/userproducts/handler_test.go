package userproducts_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"beauty-backend/internal/catalog"
	"beauty-backend/internal/userproducts"
)

func newShelfRouter(t *testing.T, userID string, isGuest bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", userID)
		c.Set("isGuest", isGuest)
		c.Next()
	})
	repo := userproducts.NewMemoryRepo(catalog.NewMemoryRepo(catalog.SeedProducts()))
	userproducts.NewHandler(repo).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doShelfRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSaveAndListProducts(t *testing.T) {
	router := newShelfRouter(t, "user-1", false)

	rec := doShelfRequest(t, router, http.MethodPost, "/api/v1/users/products", map[string]int64{"productId": 101})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var saved userproducts.UserProduct
	if err := json.Unmarshal(rec.Body.Bytes(), &saved); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if saved.ProductID != 101 || saved.Product.ID != 101 {
		t.Fatalf("expected joined product details, got %+v", saved)
	}
	if saved.Favorited {
		t.Fatal("expected new save to be unfavorited")
	}

	rec = doShelfRequest(t, router, http.MethodGet, "/api/v1/users/products", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var items []userproducts.UserProduct
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 || items[0].Product.Name == "" {
		t.Fatalf("unexpected list %+v", items)
	}
}

func TestSaveProductIsIdempotent(t *testing.T) {
	router := newShelfRouter(t, "user-1", false)
	body := map[string]int64{"productId": 201}

	first := doShelfRequest(t, router, http.MethodPost, "/api/v1/users/products", body)
	second := doShelfRequest(t, router, http.MethodPost, "/api/v1/users/products", body)
	if first.Code != http.StatusCreated || second.Code != http.StatusCreated {
		t.Fatalf("expected 201s, got %d and %d", first.Code, second.Code)
	}

	var a, b userproducts.UserProduct
	if err := json.Unmarshal(first.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode first: %v", err)
	}
	if err := json.Unmarshal(second.Body.Bytes(), &b); err != nil {
		t.Fatalf("decode second: %v", err)
	}
	if a.ID != b.ID {
		t.Fatalf("expected repeated save to return the same row, got %q and %q", a.ID, b.ID)
	}
}

func TestSaveUnknownProduct(t *testing.T) {
	router := newShelfRouter(t, "user-1", false)

	rec := doShelfRequest(t, router, http.MethodPost, "/api/v1/users/products", map[string]int64{"productId": 999999})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestToggleFavorite(t *testing.T) {
	router := newShelfRouter(t, "user-1", false)

	// Toggling an unsaved product saves it favorited.
	rec := doShelfRequest(t, router, http.MethodPost, "/api/v1/users/products/301/favorite", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var item userproducts.UserProduct
	if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !item.Favorited {
		t.Fatal("expected favorited after first toggle")
	}

	rec = doShelfRequest(t, router, http.MethodPost, "/api/v1/users/products/301/favorite", nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if item.Favorited {
		t.Fatal("expected unfavorited after second toggle")
	}
}

func TestRemoveSavedProduct(t *testing.T) {
	router := newShelfRouter(t, "user-1", false)

	doShelfRequest(t, router, http.MethodPost, "/api/v1/users/products", map[string]int64{"productId": 101})

	rec := doShelfRequest(t, router, http.MethodDelete, "/api/v1/users/products/101", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = doShelfRequest(t, router, http.MethodDelete, "/api/v1/users/products/101", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestShelfRequiresLogin(t *testing.T) {
	router := newShelfRouter(t, "guest:abc", true)

	rec := doShelfRequest(t, router, http.MethodGet, "/api/v1/users/products", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for guest, got %d", rec.Code)
	}
	rec = doShelfRequest(t, router, http.MethodPost, "/api/v1/users/products", map[string]int64{"productId": 101})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for guest save, got %d", rec.Code)
	}
}
