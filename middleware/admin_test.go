package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"main/model"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func adminTestRouter(accessKey, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "u1")
		c.Set("role", role)
	})
	router.Use(RequireAdmin(accessKey))
	router.GET("/admin", func(c *gin.Context) {
		utils.Success(c, nil)
	})
	return router
}

func TestRequireAdminHappyPath(t *testing.T) {
	router := adminTestRouter("sekrit", model.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(AdminAccessHeader, "sekrit")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestRequireAdminRejectsNonAdminRole(t *testing.T) {
	router := adminTestRouter("sekrit", model.RoleUser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(AdminAccessHeader, "sekrit")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestRequireAdminRejectsWrongKey(t *testing.T) {
	router := adminTestRouter("sekrit", model.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(AdminAccessHeader, "guess")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestRequireAdminRejectsWhenNoKeyConfigured(t *testing.T) {
	router := adminTestRouter("", model.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(AdminAccessHeader, "")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("an empty configured key must never grant access, got %d", w.Code)
	}
}
