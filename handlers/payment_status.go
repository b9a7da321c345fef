package handlers

import (
	"net/http"

	"weddify/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentStatusHandler serves the route the payment gateway redirects
// back to. The gateway appends tx_ref and payment_id as query
// parameters; the handler resolves the payment through the status
// poller and returns the final snapshot.
type PaymentStatusHandler struct {
	Poller *booking.StatusPoller
	Logger *zap.Logger
}

func NewPaymentStatusHandler(poller *booking.StatusPoller, logger *zap.Logger) *PaymentStatusHandler {
	return &PaymentStatusHandler{Poller: poller, Logger: logger}
}

func (h *PaymentStatusHandler) Resolve(c *gin.Context) {
	txRef := c.Query("tx_ref")
	paymentID := c.Query("payment_id")
	if txRef == "" || paymentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment information"})
		return
	}

	payment, err := h.Poller.Await(c.Request.Context(), txRef, paymentID)
	if err != nil {
		h.Logger.Warn("payment status resolution failed",
			zap.String("txRef", txRef), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment verification failed"})
		return
	}

	c.JSON(http.StatusOK, payment)
}
