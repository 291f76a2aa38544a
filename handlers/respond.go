package handlers

import (
	"net/http"

	"innkeep/services/booking"
	"innkeep/utils"

	"github.com/gin-gonic/gin"
)

// statusFor maps a booking-engine error kind onto an HTTP status.
func statusFor(err error) int {
	switch booking.KindOf(err) {
	case booking.KindValidation:
		return http.StatusBadRequest
	case booking.KindNotEligible:
		return http.StatusForbidden
	case booking.KindNotFound:
		return http.StatusNotFound
	case booking.KindGateway:
		return http.StatusBadGateway
	case booking.KindPaymentRejected:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a booking-engine error in the shared envelope.
func respondError(c *gin.Context, err error) {
	utils.JSONError(c, statusFor(err), err.Error(), "")
}
