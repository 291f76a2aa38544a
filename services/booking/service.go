package booking

import (
	"fmt"
	"time"

	bookingRepo "innkeep/database/repository/booking"
	"innkeep/models"
	"innkeep/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CreateBooking validates the submission, prices the stay and stores the
// booking in its initial Pending/unpaid state. The amount is fixed here and
// never recalculated, even if the room's nightly price changes later.
func (s *DefaultBookingService) CreateBooking(principal models.Principal, req CreateBookingRequest) (*models.Booking, error) {
	if !principal.IsCustomer() {
		return nil, NewError(KindNotEligible, "only customers can create bookings")
	}

	room, err := s.Catalog.GetRoomByID(req.RoomID)
	if err != nil {
		return nil, NewError(KindInternal, "failed to load room %s: %v", req.RoomID, err)
	}
	if room == nil {
		return nil, NewError(KindNotFound, "room %s not found", req.RoomID)
	}

	if req.TotalPersons < models.MinCapacity || req.TotalPersons > room.MaximumCapacity {
		return nil, NewError(KindValidation,
			"total persons must be between %d and %d for this room", models.MinCapacity, room.MaximumCapacity)
	}

	method, err := s.Methods.GetByID(req.PaymentMethodID)
	if err != nil {
		return nil, NewError(KindInternal, "failed to load payment method %s: %v", req.PaymentMethodID, err)
	}
	if method == nil {
		return nil, NewError(KindValidation, "unknown payment method %s", req.PaymentMethodID)
	}

	nights, err := StayNights(req.BookingStarts, req.BookingEnds)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &models.Booking{
		ID:           uuid.New().String(),
		RoomID:       room.ID,
		CustomerID:   principal.Subject,
		TotalPersons: req.TotalPersons,
		// Only the calendar dates are part of the contract; clock times on
		// the submitted range are discarded.
		BookingStarts:   calendarDate(req.BookingStarts),
		BookingEnds:     calendarDate(req.BookingEnds),
		Message:         req.Message,
		Status:          models.StatusPending,
		Amount:          StayAmount(room.Price, nights),
		PaymentMethodID: method.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Bookings.Insert(booking); err != nil {
		return nil, NewError(KindInternal, "failed to store booking: %v", err)
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("roomID", room.ID),
		zap.String("customerID", principal.Subject),
		zap.Int("nights", nights),
		zap.Int("amount", booking.Amount))
	return booking, nil
}

// GetBooking returns one booking. Customers may only read their own records;
// admins may read any.
func (s *DefaultBookingService) GetBooking(principal models.Principal, bookingID string) (*models.Booking, error) {
	booking, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() && booking.CustomerID != principal.Subject {
		return nil, NewError(KindNotEligible, "booking %s does not belong to this customer", bookingID)
	}
	return booking, nil
}

// ListBookings lists bookings matching the filter. A customer's listing is
// always scoped to their own bookings regardless of the requested filter.
func (s *DefaultBookingService) ListBookings(principal models.Principal, filter bookingRepo.ListFilter) ([]models.Booking, error) {
	if !principal.IsAdmin() {
		filter.CustomerID = principal.Subject
	}
	bookings, err := s.Bookings.List(filter)
	if err != nil {
		return nil, NewError(KindInternal, "failed to list bookings: %v", err)
	}
	return bookings, nil
}

// CancelBooking lets the owning customer cancel. Cancellation converges on
// the same terminal Rejected state an admin rejection uses, distinguished
// only by the remarks text.
func (s *DefaultBookingService) CancelBooking(principal models.Principal, bookingID string) (*models.Booking, error) {
	booking, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.CustomerID != principal.Subject {
		return nil, NewError(KindNotEligible, "booking %s does not belong to this customer", bookingID)
	}

	remarks := "Canceled by customer on " + time.Now().Format("01/02/2006, 15:04:05")
	return s.reject(booking, remarks)
}

// RateBooking records the owning customer's rating for a past stay. The
// rating overwrites any previous value.
func (s *DefaultBookingService) RateBooking(principal models.Principal, bookingID string, rating int) (*models.Booking, error) {
	if rating < models.MinRating || rating > models.MaxRating {
		return nil, NewError(KindValidation, "rating must be between %d and %d", models.MinRating, models.MaxRating)
	}

	booking, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.CustomerID != principal.Subject {
		return nil, NewError(KindNotEligible, "booking %s does not belong to this customer", bookingID)
	}

	if err := s.Bookings.UpdateFields(booking.ID, bson.M{"rating": rating}); err != nil {
		return nil, NewError(KindInternal, "failed to store rating: %v", err)
	}
	booking.Rating = rating
	return booking, nil
}

// Report aggregates the admin dashboard figures.
func (s *DefaultBookingService) Report() (*models.BookingReport, error) {
	report, err := s.Bookings.Report()
	if err != nil {
		return nil, NewError(KindInternal, "failed to build booking report: %v", err)
	}
	return report, nil
}

// loadBooking fetches a booking, mapping absence to a NotFound error.
func (s *DefaultBookingService) loadBooking(bookingID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, NewError(KindInternal, "failed to load booking %s: %v", bookingID, err)
	}
	if booking == nil {
		return nil, NewError(KindNotFound, "booking %s not found", bookingID)
	}
	return booking, nil
}

// redirectFor is the canonical booking-detail return target used after a
// verified payment.
func (s *DefaultBookingService) redirectFor(booking *models.Booking) string {
	return fmt.Sprintf("%s%s?b=s", s.ReturnBase, booking.DetailPath())
}
