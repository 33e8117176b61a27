package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-bookstore/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedEcho(t *testing.T, wantEmail string) http.Handler {
	return AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(UserContextKey).(*utils.Claims)
		require.True(t, ok)
		assert.Equal(t, wantEmail, claims.Email)
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAuthMiddleware(t *testing.T) {
	utils.JwtKey = []byte("test-secret")

	t.Run("valid token passes claims through", func(t *testing.T) {
		token, err := utils.GenerateJWT("reader@example.com", "user")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/cart", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protectedEcho(t, "reader@example.com").ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protectedEcho(t, "").ServeHTTP(rec, httptest.NewRequest("GET", "/cart", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/cart", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		protectedEcho(t, "").ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminMiddleware(t *testing.T) {
	utils.JwtKey = []byte("test-secret")
	handler := AuthMiddleware(AdminMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	t.Run("admin role allowed", func(t *testing.T) {
		token, err := utils.GenerateJWT("admin@example.com", "admin")
		require.NoError(t, err)
		req := httptest.NewRequest("POST", "/products", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("customer role forbidden", func(t *testing.T) {
		token, err := utils.GenerateJWT("reader@example.com", "user")
		require.NoError(t, err)
		req := httptest.NewRequest("POST", "/products", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
