package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukydev/fleet-demand-ops/internal/auth"
	"github.com/ukydev/fleet-demand-ops/internal/models"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	authService, _ := auth.NewService()
	middleware := NewAuthMiddleware(authService)

	// Test successful authentication
	t.Run("valid token", func(t *testing.T) {
		user := &models.User{
			ID:     7,
			Name:   "Admin User",
			Role:   models.RoleAdmin,
			Sector: models.SectorLogistics,
		}
		token, _ := authService.GenerateToken(user)

		req := httptest.NewRequest("GET", "/api/demands", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
			claims, ok := GetUserFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, user.ID, claims.UserID)
			assert.Equal(t, user.Role, claims.Role)
			assert.Equal(t, user.Sector, claims.Sector)
		})

		middleware.Authenticate(handler).ServeHTTP(w, req)
		assert.True(t, handlerCalled)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	// Test missing authorization header
	t.Run("missing authorization header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/demands", nil)
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		middleware.Authenticate(handler).ServeHTTP(w, req)
		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	// Test invalid token
	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/demands", nil)
		req.Header.Set("Authorization", "Bearer invalid-token")
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		middleware.Authenticate(handler).ServeHTTP(w, req)
		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	// Test skip auth paths
	t.Run("skip auth path", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/auth/login", nil)
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		middleware.Authenticate(handler).ServeHTTP(w, req)
		assert.True(t, handlerCalled)
	})

	t.Run("health check skips auth", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		middleware.Authenticate(handler).ServeHTTP(w, req)
		assert.True(t, handlerCalled)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	authService, _ := auth.NewService()
	middleware := NewAuthMiddleware(authService)

	makeRequest := func(role models.Role) (*httptest.ResponseRecorder, *bool) {
		claims := &models.Claims{UserID: 1, Name: "Test", Role: role, Sector: models.SectorLogistics}
		req := httptest.NewRequest("POST", "/api/users", nil)
		req = req.WithContext(context.WithValue(req.Context(), UserContextKey, claims))
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})
		middleware.RequireRole(models.RoleSupervisor)(handler).ServeHTTP(w, req)
		return w, &handlerCalled
	}

	t.Run("matching role passes", func(t *testing.T) {
		w, called := makeRequest(models.RoleSupervisor)
		assert.True(t, *called)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin always passes", func(t *testing.T) {
		w, called := makeRequest(models.RoleAdmin)
		assert.True(t, *called)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("lesser role is refused", func(t *testing.T) {
		w, called := makeRequest(models.RoleUser)
		assert.False(t, *called)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing context is refused", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/users", nil)
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})
		middleware.RequireRole(models.RoleAdmin)(handler).ServeHTTP(w, req)
		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimitMiddleware()
	handler := limiter.RateLimit(2, 60)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/api/demands", nil)
		req.RemoteAddr = "10.0.0.1:12345"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest("GET", "/api/demands", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// A different client is unaffected
	req = httptest.NewRequest("GET", "/api/demands", nil)
	req.RemoteAddr = "10.0.0.2:12345"
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
