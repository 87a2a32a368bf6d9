package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"freshmart/internal/middleware"
	"freshmart/internal/storage"
	"freshmart/internal/store"
)

const testSecret = "test-secret"

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := store.New(storage.NewMemoryStore(), "admin@freshmart.com", zerolog.Nop())
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	r := gin.New()
	r.POST("/auth/login", Login(m, testSecret, time.Minute))
	r.POST("/auth/logout", Logout(m))
	r.GET("/auth/me", middleware.UserAuth(testSecret), GetMe(m))

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(testSecret))
	admin.DELETE("/products/:id", DeleteProduct(m))
	return r
}

func login(t *testing.T, r *gin.Engine, email, name string) (string, bool) {
	t.Helper()
	body := map[string]string{"email": email, "name": name}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		AccessToken string `json:"accessToken"`
		User        struct {
			IsAdmin bool `json:"isAdmin"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad login response: %v", err)
	}
	return resp.AccessToken, resp.User.IsAdmin
}

func TestLoginIssuesTokenWithAdminFlag(t *testing.T) {
	r := newAuthRouter(t)

	token, isAdmin := login(t, r, "shopper@example.com", "Shopper")
	if token == "" {
		t.Fatal("expected an access token")
	}
	if isAdmin {
		t.Fatal("shopper must not be admin")
	}

	_, isAdmin = login(t, r, "admin@freshmart.com", "Admin")
	if !isAdmin {
		t.Fatal("admin email must yield the admin flag")
	}
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	r := newAuthRouter(t)

	shopperToken, _ := login(t, r, "shopper@example.com", "Shopper")

	req := httptest.NewRequest("DELETE", "/admin/api/products/1", nil)
	req.Header.Set("Authorization", "Bearer "+shopperToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for shopper, got %d", w.Code)
	}

	adminToken, _ := login(t, r, "admin@freshmart.com", "Admin")
	req = httptest.NewRequest("DELETE", "/admin/api/products/1", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d body %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest("DELETE", "/admin/api/products/1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestMeReflectsSessionLifecycle(t *testing.T) {
	r := newAuthRouter(t)

	token, _ := login(t, r, "shopper@example.com", "Shopper")

	req := httptest.NewRequest("GET", "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest("POST", "/auth/logout", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", w.Code)
	}

	// Token still parses, but the session is gone.
	req = httptest.NewRequest("GET", "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("me after logout: expected 401, got %d", w.Code)
	}
}
