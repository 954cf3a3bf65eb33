package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"main/config"
	"main/middleware"
	"main/model"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func testTokenManager() *services.TokenManager {
	return services.NewTokenManager(config.AuthConfig{
		JWTSecret:        "test-secret-key-for-unit-tests",
		Issuer:           "tomodoro",
		AccessDuration:   15 * time.Minute,
		RefreshDuration:  7 * 24 * time.Hour,
		RememberDuration: 30 * 24 * time.Hour,
	})
}

func newAuthRouter(users *memUserRepo) (*gin.Engine, *AuthHandler) {
	h := NewAuthHandler(newTestUserService(users), testTokenManager(), nil)

	router := gin.New()
	router.POST("/api/auth/login", h.Login)
	router.POST("/api/auth/register", h.Register)
	router.POST("/api/auth/refresh", h.Refresh)
	router.POST("/api/auth/logout", h.Logout)
	return router, h
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return resp
}

func seedUser(t *testing.T, password string) *model.User {
	t.Helper()
	hashed, err := services.HashPassword(password)
	if err != nil {
		t.Fatal(err)
	}
	return &model.User{
		UserID:   "u1",
		Username: "alice",
		Email:    "alice@example.com",
		Password: hashed,
		Role:     model.RoleUser,
	}
}

func TestLoginSuccess(t *testing.T) {
	users := &memUserRepo{users: []*model.User{seedUser(t, "hunter21!")}}
	router, _ := newAuthRouter(users)

	w := postJSON(t, router, "/api/auth/login", gin.H{
		"username": "alice",
		"password": "hunter21!",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := decodeResponse(t, w)
	if !resp.Success {
		t.Error("expected success=true")
	}

	data, _ := resp.Data.(map[string]any)
	if data["token"] == "" || data["refresh"] == "" {
		t.Errorf("expected token pair in response, got %v", data)
	}
}

func TestLoginWithEmailIdentifier(t *testing.T) {
	users := &memUserRepo{users: []*model.User{seedUser(t, "hunter21!")}}
	router, _ := newAuthRouter(users)

	w := postJSON(t, router, "/api/auth/login", gin.H{
		"username": "alice@example.com",
		"password": "hunter21!",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for email identifier, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	users := &memUserRepo{users: []*model.User{seedUser(t, "hunter21!")}}
	router, _ := newAuthRouter(users)

	w := postJSON(t, router, "/api/auth/login", gin.H{
		"username": "alice",
		"password": "wrong",
	})

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestLoginValidation(t *testing.T) {
	router, _ := newAuthRouter(&memUserRepo{})

	w := postJSON(t, router, "/api/auth/login", gin.H{"username": "alice"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", w.Code)
	}
	resp := decodeResponse(t, w)
	if len(resp.Errors) == 0 {
		t.Error("expected field errors in the envelope")
	}
}

func TestLoginRequires2FAWhenEnabled(t *testing.T) {
	user := seedUser(t, "hunter21!")
	user.TwoFactorEnabled = true
	user.TwoFactorSecret = "JBSWY3DPEHPK3PXP"
	users := &memUserRepo{users: []*model.User{user}}
	router, _ := newAuthRouter(users)

	w := postJSON(t, router, "/api/auth/login", gin.H{
		"username": "alice",
		"password": "hunter21!",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decodeResponse(t, w)
	data, _ := resp.Data.(map[string]any)
	if data["requires_2fa"] != true {
		t.Errorf("expected requires_2fa marker, got %v", data)
	}
	if _, hasToken := data["token"]; hasToken {
		t.Error("no tokens may be issued before the 2FA code is verified")
	}
}

func TestRegisterCreatesAccount(t *testing.T) {
	users := &memUserRepo{}
	router, _ := newAuthRouter(users)

	w := postJSON(t, router, "/api/auth/register", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "hunter21!",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(users.users) != 1 {
		t.Fatalf("expected 1 stored user, got %d", len(users.users))
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	users := &memUserRepo{users: []*model.User{seedUser(t, "hunter21!")}}
	router, _ := newAuthRouter(users)

	w := postJSON(t, router, "/api/auth/register", gin.H{
		"username": "alice",
		"email":    "other@example.com",
		"password": "hunter21!",
	})

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	router, _ := newAuthRouter(&memUserRepo{})

	w := postJSON(t, router, "/api/auth/register", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "weakpass",
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for password without number or special char, got %d", w.Code)
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	users := &memUserRepo{users: []*model.User{seedUser(t, "hunter21!")}}
	router, h := newAuthRouter(users)

	refresh, err := h.Tokens.GenerateRefreshToken("u1", false)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeResponse(t, w)
	data, _ := resp.Data.(map[string]any)
	if data["token"] == "" || data["refresh"] == "" {
		t.Errorf("expected a fresh token pair, got %v", data)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	users := &memUserRepo{users: []*model.User{seedUser(t, "hunter21!")}}
	router, h := newAuthRouter(users)

	access, err := h.Tokens.GenerateAccessToken("u1", model.RoleUser)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("an access token must not refresh, got %d", w.Code)
	}
}

func TestRefreshRejectsNonStringUserID(t *testing.T) {
	users := &memUserRepo{users: []*model.User{seedUser(t, "hunter21!")}}
	router, _ := newAuthRouter(users)

	// well-signed refresh token whose user_id claim is not a string
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": 12345,
		"type":    services.TokenTypeRefresh,
		"iss":     "tomodoro",
		"iat":     now.Unix(),
		"exp":     now.Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret-key-for-unit-tests"))
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a malformed user_id claim, got %d", w.Code)
	}
}

// TestLogoutBypassesAuthGuard wires the routes the way main.go does, with the
// auth middleware on the protected group and logout outside it. Logout must
// return 200 even for requests the guard would reject.
func TestLogoutBypassesAuthGuard(t *testing.T) {
	users := &memUserRepo{users: []*model.User{seedUser(t, "hunter21!")}}
	tokens := testTokenManager()
	h := NewAuthHandler(newTestUserService(users), tokens, nil)

	router := gin.New()
	public := router.Group("/api")
	public.POST("/auth/logout", h.Logout)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(tokens, nil))
	protected.GET("/users/profile", func(c *gin.Context) {
		utils.Success(c, nil)
	})

	// the guard is active: a bare request to a protected route is rejected
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/profile", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("protected route without token: expected 401, got %d", w.Code)
	}

	// logout with no Authorization header at all
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	if w.Code != http.StatusOK {
		t.Errorf("logout without token: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// logout with a garbage token the guard would reject
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("logout with garbage token: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// logout with an expired token
	expired := services.NewTokenManager(config.AuthConfig{
		JWTSecret:      "test-secret-key-for-unit-tests",
		Issuer:         "tomodoro",
		AccessDuration: -time.Minute,
	})
	staleToken, err := expired.GenerateAccessToken("u1", model.RoleUser)
	if err != nil {
		t.Fatal(err)
	}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+staleToken)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("logout with expired token: expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	router, _ := newAuthRouter(&memUserRepo{})

	// no Authorization header at all
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("logout must always return 200, got %d", w.Code)
	}

	// garbage tokens in both headers
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	req.Header.Set("Refresh-Token", "also-not-a-token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("logout must always return 200, got %d", w.Code)
	}
}
