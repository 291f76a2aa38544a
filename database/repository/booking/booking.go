package bookingRepo

import (
	"time"

	"innkeep/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ListFilter narrows a booking listing. Zero-valued fields are ignored.
type ListFilter struct {
	CustomerID string
	RoomID     string
	Status     models.BookingStatus
}

// BookingRepository is the persistence boundary for booking records.
// GetByID returns (nil, nil) when no booking matches.
type BookingRepository interface {
	// Insert stores a new booking record.
	Insert(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// List retrieves bookings matching the filter, newest first.
	List(filter ListFilter) ([]models.Booking, error)
	// UpdateFields applies a partial $set-style update to one booking.
	UpdateFields(id string, fields bson.M) error
	// CountOverlapping counts bookings for the room whose inclusive
	// [booking_starts, booking_ends] interval contains the date. No status
	// filter is applied: Rejected bookings still count as conflicts.
	CountOverlapping(roomID string, date time.Time) (int64, error)
	// Report aggregates the admin dashboard figures.
	Report() (*models.BookingReport, error)
}
