package apiutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		want := uuid.NewString()
		c.Params = gin.Params{{Key: "id", Value: want}}

		id, ok := UUIDParam(c)
		require.True(t, ok)
		assert.Equal(t, want, id)
	})

	t.Run("malformed", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

		_, ok := UUIDParam(c)
		require.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "uuid is expected")
	})
}

func TestBindingErrorEnumeratesConstraints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type payload struct {
		Name   string `validate:"required"`
		Email  string `validate:"required,email"`
		UserID string `validate:"required,uuid"`
	}

	v := validator.New()
	err := v.Struct(payload{Email: "nope", UserID: "nope"})
	require.Error(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	BindingError(c, err)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var got struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Validation failed", got.Error)
	require.Len(t, got.Details, 3)
	assert.Contains(t, got.Details, "Name is required")
	assert.Contains(t, got.Details, "Email must be a valid email address")
	assert.Contains(t, got.Details, "UserID must be a UUID")
}

func TestBindingErrorNonValidator(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	BindingError(c, assert.AnError)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
