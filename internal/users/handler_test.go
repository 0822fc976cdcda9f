package users_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"beauty-backend/internal/users"
)

func newUsersRouter(t *testing.T, svc *users.Service, userID string, isGuest bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", userID)
		c.Set("isGuest", isGuest)
		c.Next()
	})
	users.NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := users.NewService(users.NewMemoryRepo())
	router := newUsersRouter(t, svc, "", true)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":    "ada@example.com",
		"password": "hunter22",
		"name":     "Ada",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string     `json:"token"`
		User  users.User `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected token in response")
	}
	if resp.User.Email != "ada@example.com" {
		t.Fatalf("unexpected user email %q", resp.User.Email)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("passwordHash")) {
		t.Fatal("response must not expose password hash")
	}
}

func TestRegisterEndpointDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := users.NewService(users.NewMemoryRepo())
	router := newUsersRouter(t, svc, "", true)

	body := map[string]string{"email": "dup@example.com", "password": "hunter22"}
	if rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", body); rec.Code != http.StatusCreated {
		t.Fatalf("first register expected 201, got %d", rec.Code)
	}
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d", rec.Code)
	}
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := users.NewService(users.NewMemoryRepo())
	router := newUsersRouter(t, svc, "", true)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever1",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestMeRequiresLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := users.NewService(users.NewMemoryRepo())
	router := newUsersRouter(t, svc, "guest:abc", true)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/me", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for guest, got %d", rec.Code)
	}
}

func TestMeReturnsCurrentUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := users.NewService(users.NewMemoryRepo())
	user, _, err := svc.Register(context.Background(), "ada@example.com", "hunter22", "Ada")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	router := newUsersRouter(t, svc, user.ID, false)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/me", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got users.User
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != user.ID || got.Name != "Ada" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUpdateProfileEndpoint(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := users.NewService(users.NewMemoryRepo())
	user, _, err := svc.Register(context.Background(), "ada@example.com", "hunter22", "Ada")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	router := newUsersRouter(t, svc, user.ID, false)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/users/profile", map[string]string{
		"skinTone":  "Deep",
		"undertone": "Cool",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got users.User
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.SkinTone != "Deep" || got.Undertone != "Cool" {
		t.Fatalf("unexpected profile: %+v", got)
	}

	rec = doJSON(t, router, http.MethodPut, "/api/v1/users/profile", map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty update, got %d", rec.Code)
	}
}
