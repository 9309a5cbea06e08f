package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/folio/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func sessionEngine(api *API) *gin.Engine {
	r := gin.New()
	r.Use(sessions.Sessions("folio_session", cookie.NewStore([]byte("test-secret"))))
	r.POST("/admin/login", api.Login)
	protected := r.Group("/admin/api", AuthRequired())
	protected.GET("/owners", api.ListOwners)
	return r
}

func TestLoginAndAuthRequired(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()
	if _, err := db.EnsureUser(api.DB(), "admin", "s3cret"); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
	r := sessionEngine(api)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/api/owners", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"username":"admin","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"username":"admin","password":"s3cret"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for valid login, got %d: %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("expected session cookie")
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/api/owners", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with session, got %d", w.Code)
	}
}
