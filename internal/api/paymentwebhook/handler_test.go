package paymentwebhook

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"artmarket-api/config"
	"artmarket-api/internal/api/payments"
	"artmarket-api/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWebhookRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock := testutil.NewGormMock(t)
	h := NewHandler(payments.NewService(db))

	r := gin.New()
	r.POST("/webhook", h.StripeWebhook)
	return r, mock
}

func TestWebhookRequiresConfiguredSecret(t *testing.T) {
	config.STRIPE_WEBHOOK_SECRET = ""
	r, mock := setupWebhookRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	config.STRIPE_WEBHOOK_SECRET = "whsec_test"
	t.Cleanup(func() { config.STRIPE_WEBHOOK_SECRET = "" })
	r, mock := setupWebhookRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/webhook",
		strings.NewReader(`{"type":"checkout.session.completed"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Signature verification failed")
	// nothing touched the store
	assert.NoError(t, mock.ExpectationsWereMet())
}
