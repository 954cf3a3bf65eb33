package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"main/model"
	"main/usecase"

	"github.com/gin-gonic/gin"
)

func newAdminRouter(svc *usecase.UserService) *gin.Engine {
	h := NewAdminHandler(svc)

	router := gin.New()
	router.Use(asUser("admin-1"))
	router.GET("/api/admin/users", h.ListUsers)
	router.DELETE("/api/admin/users", h.DeleteUser)
	return router
}

func TestAdminListUsers(t *testing.T) {
	users := &memUserRepo{users: []*model.User{
		{UserID: "u1", Username: "alice"},
		{UserID: "u2", Username: "bob"},
	}}
	router := newAdminRouter(newTestUserService(users))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users?page=1&limit=20", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeResponse(t, w)
	if resp.Pagination == nil || resp.Pagination.Total != 2 {
		t.Errorf("expected pagination with total 2, got %+v", resp.Pagination)
	}
}

func TestAdminDeleteUserRequiresID(t *testing.T) {
	router := newAdminRouter(newTestUserService(&memUserRepo{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/users", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without an id, got %d", w.Code)
	}
}

func TestAdminDeleteUserNotFound(t *testing.T) {
	router := newAdminRouter(newTestUserService(&memUserRepo{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/users?id=missing", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
