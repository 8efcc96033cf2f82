// File: handlers/payment.go
package handlers

import (
	"net/http"

	"boatify/middleware"
	"boatify/services/payment"
	"boatify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves the Stripe checkout endpoints.
type PaymentHandler struct {
	PaymentService payment.PaymentService
}

// CreateCheckoutSessionHandler handles POST /api/payments/create-session.
func (h *PaymentHandler) CreateCheckoutSessionHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	var input struct {
		ReservationID string `json:"reservationId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	url, err := h.PaymentService.CreateCheckoutSession(actor, input.ReservationID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// StripeWebhookHandler handles POST /api/payments/webhook. The raw body is
// needed for signature verification, so no JSON binding here.
func (h *PaymentHandler) StripeWebhookHandler(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		utils.GetLogger().Error("failed to read webhook payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable payload"})
		return
	}
	if err := h.PaymentService.HandleWebhook(payload, c.GetHeader("Stripe-Signature")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
