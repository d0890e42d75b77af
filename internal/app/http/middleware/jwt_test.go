package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"artmarket-api/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authRouter(t *testing.T, extra ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"
	t.Cleanup(func() { config.JWT_SECRET = "" })

	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email":   c.GetString("email"),
			"user_id": c.GetString("user_id"),
		})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r := authRouter(t)

	token := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "3b8f1c1e-52f7-4537-a91f-602a0f23e3a1",
		"email":   "jane@x.com",
		"roles":   []string{"USER"},
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jane@x.com")
	assert.Contains(t, w.Body.String(), "3b8f1c1e-52f7-4537-a91f-602a0f23e3a1")
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := authRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadSignature(t *testing.T) {
	r := authRouter(t)

	token := signToken(t, "other-secret", jwt.MapClaims{
		"email": "jane@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	r := authRouter(t)

	token := signToken(t, "test-secret", jwt.MapClaims{
		"email": "jane@x.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	r := authRouter(t, RequireRole("ADMIN"))

	adminToken := signToken(t, "test-secret", jwt.MapClaims{
		"email": "admin@x.com",
		"roles": []string{"USER", "ADMIN"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	userToken := signToken(t, "test-secret", jwt.MapClaims{
		"email": "jane@x.com",
		"roles": []string{"USER"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
