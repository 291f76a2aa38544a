package handlers

import (
	"net/http"
	"time"

	catalogRepo "innkeep/database/repository/catalog"
	"innkeep/models"
	"innkeep/services/booking"
	"innkeep/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RoomHandler serves the public catalog: hotels, rooms, availability and the
// contact form. No authentication required.
type RoomHandler struct {
	Catalog catalogRepo.CatalogRepository
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewRoomHandler creates a RoomHandler.
func NewRoomHandler(catalog catalogRepo.CatalogRepository, service booking.BookingService) *RoomHandler {
	return &RoomHandler{
		Catalog: catalog,
		Service: service,
		Logger:  utils.GetLogger(),
	}
}

// ListRooms handles GET /api/rooms, optionally scoped by ?hotel=<id>.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.Catalog.ListRooms(c.Query("hotel"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list rooms", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// GetRoom handles GET /api/rooms/:id. Each successful fetch bumps the room's
// view counter.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id := c.Param("id")
	room, err := h.Catalog.GetRoomByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load room", "")
		return
	}
	if room == nil {
		utils.JSONError(c, http.StatusNotFound, "Room not found", "")
		return
	}

	if err := h.Catalog.IncrementRoomViews(room.ID); err != nil {
		h.Logger.Warn("failed to bump room view count", zap.String("roomID", room.ID), zap.Error(err))
	} else {
		room.ViewCount++
	}
	c.JSON(http.StatusOK, room)
}

// CheckAvailability handles GET /api/rooms/:id/availability?date=2006-01-02.
func (h *RoomHandler) CheckAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date; expected YYYY-MM-DD", "")
		return
	}

	status, err := h.Service.CheckAvailability(c.Param("id"), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// ListHotels handles GET /api/hotels.
func (h *RoomHandler) ListHotels(c *gin.Context) {
	hotels, err := h.Catalog.ListHotels()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list hotels", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotels": hotels})
}

// GetHotel handles GET /api/hotels/:id.
func (h *RoomHandler) GetHotel(c *gin.Context) {
	hotel, err := h.Catalog.GetHotelByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load hotel", "")
		return
	}
	if hotel == nil {
		utils.JSONError(c, http.StatusNotFound, "Hotel not found", "")
		return
	}
	c.JSON(http.StatusOK, hotel)
}

type contactRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Mobile   string `json:"mobile" binding:"required"`
	Email    string `json:"email"`
	Message  string `json:"message" binding:"required"`
}

// SubmitMessage handles POST /api/contact.
func (h *RoomHandler) SubmitMessage(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid contact submission", err.Error())
		return
	}

	msg := &models.ContactMessage{
		ID:        uuid.New().String(),
		FullName:  req.FullName,
		Mobile:    req.Mobile,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	if err := h.Catalog.SaveMessage(msg); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save message", "")
		return
	}
	h.Logger.Info("contact message received", zap.String("messageID", msg.ID))
	c.JSON(http.StatusCreated, gin.H{"message": "Thank you for reaching out. We will get back to you soon."})
}
