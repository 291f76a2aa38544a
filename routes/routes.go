package routes

import (
	"time"

	"innkeep/handlers"
	"innkeep/middleware"
	"innkeep/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every route handler the API mounts.
type Handlers struct {
	Rooms   *handlers.RoomHandler
	Booking *handlers.BookingHandler
	Payment *handlers.PaymentHandler
	Admin   *handlers.AdminHandler
}

// RegisterRoutes wires the full API surface onto the router.
func RegisterRoutes(router *gin.Engine, h Handlers) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")

	// Public catalog and contact form.
	api.GET("/rooms", h.Rooms.ListRooms)
	api.GET("/rooms/:id", h.Rooms.GetRoom)
	api.GET("/rooms/:id/availability", h.Rooms.CheckAvailability)
	api.GET("/hotels", h.Rooms.ListHotels)
	api.GET("/hotels/:id", h.Rooms.GetHotel)
	api.POST("/contact", h.Rooms.SubmitMessage)
	api.GET("/payment/methods", h.Payment.ListMethods)

	// Customer booking lifecycle.
	bookings := api.Group("/bookings", middleware.RequirePrincipal(models.PrincipalCustomer))
	{
		bookings.POST("", h.Booking.CreateBooking)
		bookings.GET("", h.Booking.ListBookings)
		bookings.GET("/:id", h.Booking.GetBooking)
		bookings.POST("/:id/cancel", h.Booking.CancelBooking)
		bookings.POST("/:id/rating", h.Booking.RateBooking)
	}

	// Payment sessions. Completion is unauthenticated: the payment page calls
	// back with the session token, which is itself the credential.
	payment := api.Group("/payment")
	{
		payment.POST("/sessions", middleware.RequirePrincipal(models.PrincipalCustomer), h.Payment.OpenSession)
		payment.POST("/sessions/:id/complete", h.Payment.CompleteSession)
		payment.DELETE("/sessions/:id", middleware.RequirePrincipal(models.PrincipalCustomer), h.Payment.AbandonSession)
	}

	// Staff surface.
	admin := api.Group("/admin", middleware.RequirePrincipal(models.PrincipalAdmin))
	{
		admin.GET("/bookings", h.Admin.ListBookings)
		admin.GET("/bookings/:id", h.Admin.GetBooking)
		admin.POST("/bookings/:id/:action", h.Admin.TransitionBooking)
		admin.GET("/report", h.Admin.Report)
		admin.POST("/rooms", h.Admin.CreateRoom)
		admin.PUT("/rooms/:id", h.Admin.UpdateRoom)
		admin.POST("/hotels", h.Admin.CreateHotel)
		admin.GET("/messages", h.Admin.ListMessages)
	}
}
