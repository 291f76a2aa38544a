package booking

import (
	"time"

	bookingRepo "innkeep/database/repository/booking"
	catalogRepo "innkeep/database/repository/catalog"
	paymentRepo "innkeep/database/repository/payment"
	"innkeep/models"
	"innkeep/services/payment"
)

// CreateBookingRequest is a customer's booking submission.
type CreateBookingRequest struct {
	RoomID          string    `json:"roomId"`
	TotalPersons    int       `json:"totalPersons"`
	BookingStarts   time.Time `json:"bookingStarts"`
	BookingEnds     time.Time `json:"bookingEnds"`
	PaymentMethodID string    `json:"paymentMethodId"`
	Message         string    `json:"message,omitempty"`
}

// PaymentResult is the outcome of a verified payment: the settled booking
// plus the return target the payment page should redirect to.
type PaymentResult struct {
	Booking     *models.Booking `json:"booking"`
	RedirectURL string          `json:"redirectUrl"`
}

// BookingService is the booking engine's outbound surface.
type BookingService interface {
	CheckAvailability(roomID string, date time.Time) (RoomStatus, error)
	CreateBooking(principal models.Principal, req CreateBookingRequest) (*models.Booking, error)
	GetBooking(principal models.Principal, bookingID string) (*models.Booking, error)
	ListBookings(principal models.Principal, filter bookingRepo.ListFilter) ([]models.Booking, error)
	CancelBooking(principal models.Principal, bookingID string) (*models.Booking, error)
	RateBooking(principal models.Principal, bookingID string, rating int) (*models.Booking, error)

	AdminTransition(bookingID string, action AdminAction, remarks string) (*models.Booking, error)
	Report() (*models.BookingReport, error)

	OpenPaymentSession(principal models.Principal, bookingID string) (*models.PaymentContext, error)
	CompletePayment(sessionID, providerToken string, claimedAmount int) (*PaymentResult, error)
	AbandonSession(principal models.Principal, sessionID string) error
}

// ReminderScheduler queues a follow-up nudge for an unpaid booking. Optional:
// a nil scheduler simply skips reminders.
type ReminderScheduler interface {
	SchedulePaymentReminder(session models.PaymentSession) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Catalog   catalogRepo.CatalogRepository
	Bookings  bookingRepo.BookingRepository
	Methods   paymentRepo.PaymentMethodRepository
	Gateway   payment.Gateway
	Sessions  SessionStore
	Reminders ReminderScheduler

	// ReturnBase prefixes the booking-detail redirect handed back after a
	// verified payment.
	ReturnBase string
}
