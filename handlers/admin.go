package handlers

import (
	"net/http"
	"time"

	bookingRepo "innkeep/database/repository/booking"
	catalogRepo "innkeep/database/repository/catalog"
	"innkeep/middleware"
	"innkeep/models"
	"innkeep/services/booking"
	"innkeep/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminHandler serves the staff surface: booking oversight, the status state
// machine, catalog management and the inquiry inbox. Every route behind it is
// guarded by the admin principal middleware.
type AdminHandler struct {
	Service booking.BookingService
	Catalog catalogRepo.CatalogRepository
	Logger  *zap.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(service booking.BookingService, catalog catalogRepo.CatalogRepository) *AdminHandler {
	return &AdminHandler{
		Service: service,
		Catalog: catalog,
		Logger:  utils.GetLogger(),
	}
}

// adminPrincipal is the principal admin routes act under. The middleware has
// already verified the caller's role; the service only needs the kind.
func adminPrincipal(c *gin.Context) models.Principal {
	if principal, ok := middleware.GetPrincipal(c); ok {
		return principal
	}
	return models.Principal{Kind: models.PrincipalAdmin}
}

// ListBookings handles GET /api/admin/bookings with optional ?customer=,
// ?room= and ?status= filters.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	filter := bookingRepo.ListFilter{
		CustomerID: c.Query("customer"),
		RoomID:     c.Query("room"),
		Status:     models.BookingStatus(c.Query("status")),
	}
	bookings, err := h.Service.ListBookings(adminPrincipal(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBooking handles GET /api/admin/bookings/:id.
func (h *AdminHandler) GetBooking(c *gin.Context) {
	found, err := h.Service.GetBooking(adminPrincipal(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// TransitionBooking handles POST /api/admin/bookings/:id/:action where
// :action is one of confirm, reject, checkin, checkout, markpaid.
func (h *AdminHandler) TransitionBooking(c *gin.Context) {
	var req struct {
		Remarks string `json:"remarks"`
	}
	// Remarks are optional; an empty body is fine.
	_ = c.ShouldBindJSON(&req)

	action := booking.AdminAction(c.Param("action"))
	updated, err := h.Service.AdminTransition(c.Param("id"), action, req.Remarks)
	if err != nil {
		respondError(c, err)
		return
	}
	h.Logger.Info("admin transition applied",
		zap.String("bookingID", updated.ID),
		zap.String("action", string(action)))
	c.JSON(http.StatusOK, updated)
}

// Report handles GET /api/admin/report.
func (h *AdminHandler) Report(c *gin.Context) {
	report, err := h.Service.Report()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

type roomRequest struct {
	HotelID         string `json:"hotelId" binding:"required"`
	RoomType        string `json:"roomType" binding:"required"`
	RoomCode        string `json:"roomCode" binding:"required"`
	Description     string `json:"description"`
	MarkedPrice     int    `json:"markedPrice"`
	Price           int    `json:"price" binding:"required"`
	MaximumCapacity int    `json:"maximumCapacity" binding:"required"`
}

func (r roomRequest) validate() string {
	valid := false
	for _, t := range models.RoomTypes {
		if r.RoomType == t {
			valid = true
			break
		}
	}
	if !valid {
		return "Unknown room type"
	}
	if r.MaximumCapacity < models.MinCapacity || r.MaximumCapacity > models.MaxCapacity {
		return "Maximum capacity out of range"
	}
	if r.Price <= 0 {
		return "Price must be positive"
	}
	return ""
}

// CreateRoom handles POST /api/admin/rooms.
func (h *AdminHandler) CreateRoom(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room payload", err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, msg, "")
		return
	}

	hotel, err := h.Catalog.GetHotelByID(req.HotelID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load hotel", "")
		return
	}
	if hotel == nil {
		utils.JSONError(c, http.StatusNotFound, "Hotel not found", "")
		return
	}

	if existing, err := h.Catalog.GetRoomByCode(req.RoomCode); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check room code", "")
		return
	} else if existing != nil {
		utils.JSONError(c, http.StatusConflict, "Room code already in use", "")
		return
	}

	now := time.Now()
	room := &models.Room{
		ID:              uuid.New().String(),
		HotelID:         hotel.ID,
		RoomType:        req.RoomType,
		RoomCode:        req.RoomCode,
		Description:     req.Description,
		MarkedPrice:     req.MarkedPrice,
		Price:           req.Price,
		MaximumCapacity: req.MaximumCapacity,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := h.Catalog.CreateRoom(room); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create room", "")
		return
	}
	h.Logger.Info("room created",
		zap.String("roomID", room.ID),
		zap.String("roomCode", room.RoomCode))
	c.JSON(http.StatusCreated, room)
}

// UpdateRoom handles PUT /api/admin/rooms/:id. A price change never touches
// existing bookings; their amounts were fixed at creation.
func (h *AdminHandler) UpdateRoom(c *gin.Context) {
	room, err := h.Catalog.GetRoomByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load room", "")
		return
	}
	if room == nil {
		utils.JSONError(c, http.StatusNotFound, "Room not found", "")
		return
	}

	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room payload", err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, msg, "")
		return
	}

	room.RoomType = req.RoomType
	room.RoomCode = req.RoomCode
	room.Description = req.Description
	room.MarkedPrice = req.MarkedPrice
	room.Price = req.Price
	room.MaximumCapacity = req.MaximumCapacity
	room.UpdatedAt = time.Now()
	if err := h.Catalog.UpdateRoom(room); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update room", "")
		return
	}
	c.JSON(http.StatusOK, room)
}

type hotelRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Contact string `json:"contact" binding:"required"`
	Email   string `json:"email"`
}

// CreateHotel handles POST /api/admin/hotels.
func (h *AdminHandler) CreateHotel(c *gin.Context) {
	var req hotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid hotel payload", err.Error())
		return
	}

	now := time.Now()
	hotel := &models.Hotel{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Address:   req.Address,
		Contact:   req.Contact,
		Email:     req.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.Catalog.CreateHotel(hotel); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create hotel", "")
		return
	}
	h.Logger.Info("hotel created", zap.String("hotelID", hotel.ID), zap.String("name", hotel.Name))
	c.JSON(http.StatusCreated, hotel)
}

// ListMessages handles GET /api/admin/messages.
func (h *AdminHandler) ListMessages(c *gin.Context) {
	messages, err := h.Catalog.ListMessages()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list messages", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
