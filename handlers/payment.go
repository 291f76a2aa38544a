package handlers

import (
	"net/http"

	paymentRepo "innkeep/database/repository/payment"
	"innkeep/middleware"
	"innkeep/services/booking"
	"innkeep/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves the payment method catalog and the payment session
// lifecycle: open, complete, abandon.
type PaymentHandler struct {
	Service booking.BookingService
	Methods paymentRepo.PaymentMethodRepository
	Logger  *zap.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(service booking.BookingService, methods paymentRepo.PaymentMethodRepository) *PaymentHandler {
	return &PaymentHandler{
		Service: service,
		Methods: methods,
		Logger:  utils.GetLogger(),
	}
}

// ListMethods handles GET /api/payment/methods. Secret keys never leave the
// server; the model strips them from JSON.
func (h *PaymentHandler) ListMethods(c *gin.Context) {
	methods, err := h.Methods.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list payment methods", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"methods": methods})
}

// OpenSession handles POST /api/payment/sessions. The response carries
// everything the payment page needs to start the provider widget.
func (h *PaymentHandler) OpenSession(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing principal", "")
		return
	}

	var req struct {
		BookingID string `json:"bookingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid session request", err.Error())
		return
	}

	paymentCtx, err := h.Service.OpenPaymentSession(principal, req.BookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, paymentCtx)
}

// CompleteSession handles POST /api/payment/sessions/:id/complete with the
// provider token handed back by the payment widget. The session survives a
// provider denial or a gateway outage so the customer can retry.
func (h *PaymentHandler) CompleteSession(c *gin.Context) {
	var req struct {
		Token  string `json:"token" binding:"required"`
		Amount int    `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid completion payload", err.Error())
		return
	}

	result, err := h.Service.CompletePayment(c.Param("id"), req.Token, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	h.Logger.Info("payment completed",
		zap.String("sessionID", c.Param("id")),
		zap.String("bookingID", result.Booking.ID))
	c.JSON(http.StatusOK, result)
}

// AbandonSession handles DELETE /api/payment/sessions/:id.
func (h *PaymentHandler) AbandonSession(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing principal", "")
		return
	}

	if err := h.Service.AbandonSession(principal, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment session abandoned"})
}
