package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safe/backend/internal/domain/identity"
	"github.com/safe/backend/internal/infrastructure/auth"
	"github.com/safe/backend/internal/infrastructure/config"
	"github.com/safe/backend/internal/interfaces/http/handler"
	"github.com/safe/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-router",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "safe-test",
		MaxRefreshCount:        5,
	})

	engine := gin.New()
	Setup(engine, Config{
		Handlers: Handlers{
			Auth:   handler.NewAuthHandler(nil),
			Class:  handler.NewClassHandler(nil),
			Post:   handler.NewPostHandler(nil, nil),
			Shop:   handler.NewShopHandler(nil),
			Point:  handler.NewPointHandler(nil),
			System: handler.NewSystemHandler(nil),
		},
		AuthMiddleware: middleware.JWTAuthMiddleware(jwtService),
	})
	return engine, jwtService
}

func issueToken(t *testing.T, svc *auth.JWTService, role identity.Role) string {
	t.Helper()
	pair, err := svc.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:  uuid.New(),
		LoginID: "router-test",
		Role:    string(role),
	})
	require.NoError(t, err)
	return pair.AccessToken
}

func TestRouterHealthIsPublic(t *testing.T) {
	engine, _ := newTestRouter(t)

	for _, path := range []string{"/health", "/api/v1/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouterProtectedRoutesRequireToken(t *testing.T) {
	engine, _ := newTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodGet, "/api/v1/posts"},
		{http.MethodGet, "/api/v1/items"},
		{http.MethodGet, "/api/v1/inventory"},
		{http.MethodGet, "/api/v1/transactions"},
		{http.MethodPost, "/api/v1/shop/purchase"},
		{http.MethodPost, "/api/v1/points/award"},
		{http.MethodGet, "/api/v1/classes"},
	}
	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, p.path)
	}
}

func TestRouterPublicRoutesSkipAuth(t *testing.T) {
	engine, _ := newTestRouter(t)

	// An empty body fails request binding, proving the request reached
	// the handler instead of being rejected by the token check.
	paths := []string{
		"/api/v1/auth/signup",
		"/api/v1/auth/login",
		"/api/v1/auth/refresh",
		"/api/v1/classes/join",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestRouterTeacherRoutesRejectStudents(t *testing.T) {
	engine, jwtService := newTestRouter(t)
	token := issueToken(t, jwtService, identity.RoleStudent)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/classes"},
		{http.MethodPost, "/api/v1/items"},
		{http.MethodPost, "/api/v1/points/award"},
		{http.MethodPost, "/api/v1/posts/" + uuid.NewString() + "/approve"},
	}
	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.AuthHeaderKey, middleware.BearerPrefix+token)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code, p.path)
	}
}

func TestRouterTeacherPassesRoleGate(t *testing.T) {
	engine, jwtService := newTestRouter(t)
	token := issueToken(t, jwtService, identity.RoleTeacher)

	// The empty body fails binding, proving the teacher cleared the
	// role gate and reached the handler.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/points/award", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AuthHeaderKey, middleware.BearerPrefix+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
