package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sanitizeRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/echo", SanitizeAndCleanInputMiddleware(), func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", body)
	})
	return r
}

func TestSanitizeStripsMarkup(t *testing.T) {
	r := sanitizeRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/echo",
		strings.NewReader(`{"name":"<script>alert(1)</script>Jane","bio":"plain text"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Jane", got["name"])
	assert.Equal(t, "plain text", got["bio"])
}

func TestSanitizeRejectsMalformedJSON(t *testing.T) {
	r := sanitizeRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
