package handlers

import (
	"net/http"
	"strconv"

	bookingRepo "innkeep/database/repository/booking"
	"innkeep/middleware"
	"innkeep/models"
	"innkeep/services/booking"
	"innkeep/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the customer-facing booking lifecycle.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{
		Service: service,
		Logger:  utils.GetLogger(),
	}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing principal", "")
		return
	}

	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", err.Error())
		return
	}

	created, err := h.Service.CreateBooking(principal, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListBookings handles GET /api/bookings. Customers always see only their own
// bookings; optional ?room= and ?status= filters narrow the listing.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing principal", "")
		return
	}

	filter := bookingRepo.ListFilter{
		RoomID: c.Query("room"),
		Status: models.BookingStatus(c.Query("status")),
	}
	bookings, err := h.Service.ListBookings(principal, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing principal", "")
		return
	}

	found, err := h.Service.GetBooking(principal, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing principal", "")
		return
	}

	canceled, err := h.Service.CancelBooking(principal, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, canceled)
}

// RateBooking handles POST /api/bookings/:id/rating.
func (h *BookingHandler) RateBooking(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing principal", "")
		return
	}

	var req struct {
		Rating int `json:"rating"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		// Accept ?rating= as a fallback for form-style clients.
		rating, convErr := strconv.Atoi(c.Query("rating"))
		if convErr != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid rating payload", "")
			return
		}
		req.Rating = rating
	}

	rated, err := h.Service.RateBooking(principal, c.Param("id"), req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}
	h.Logger.Info("booking rated",
		zap.String("bookingID", rated.ID),
		zap.Int("rating", rated.Rating))
	c.JSON(http.StatusOK, rated)
}
