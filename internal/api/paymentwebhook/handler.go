package paymentwebhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"artmarket-api/config"
	"artmarket-api/internal/api/payments"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/webhook"
)

// Handler receives checkout notifications from Stripe and flips the matching
// payment row to PAID. Signature verification happens before any parsing.
type Handler struct {
	payments *payments.Service
}

func NewHandler(svc *payments.Service) *Handler {
	return &Handler{payments: svc}
}

// POST /webhook
func (h *Handler) StripeWebhook(c *gin.Context) {
	endpointSecret := config.STRIPE_WEBHOOK_SECRET
	if endpointSecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "STRIPE_WEBHOOK_SECRET not configured"})
		return
	}

	payload, err := readStripeBody(c, 65536)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		endpointSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		fmt.Println("❌ Stripe signature verification failed:", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse session"})
			return
		}

		if _, err := h.payments.MarkPaidByRefID(session.ID); err != nil {
			if errors.Is(err, payments.ErrNotFound) {
				// no pending payment for this session; acknowledge so Stripe
				// stops retrying
				c.JSON(http.StatusOK, gin.H{"status": "ignored"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "received"})

	default:
		c.JSON(http.StatusOK, gin.H{"status": "unhandled event type"})
	}
}

func readStripeBody(c *gin.Context, limit int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	return io.ReadAll(c.Request.Body)
}
