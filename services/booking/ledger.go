package booking

import (
	"time"

	"innkeep/models"
	"innkeep/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// AdminAction is a staff-driven transition on a booking.
type AdminAction string

const (
	ActionConfirm  AdminAction = "confirm"
	ActionReject   AdminAction = "reject"
	ActionCheckIn  AdminAction = "checkin"
	ActionCheckOut AdminAction = "checkout"
	ActionMarkPaid AdminAction = "markpaid"
)

// AdminTransition drives the booking status state machine.
//
//	Pending ──confirm──▶ Confirmed ──reject──▶ Rejected (terminal)
//	   └───────────────────reject──────────────────▲
//
// Check-in/check-out and payment are orthogonal flags: check-in requires
// Confirmed, check-out requires a prior check-in, and mark-paid applies in
// any status as the admin escape hatch for offline settlement.
func (s *DefaultBookingService) AdminTransition(bookingID string, action AdminAction, remarks string) (*models.Booking, error) {
	booking, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, err
	}

	switch action {
	case ActionConfirm:
		return s.confirm(booking)
	case ActionReject:
		if remarks == "" {
			remarks = "Rejected by admin on " + time.Now().Format("01/02/2006, 15:04:05")
		}
		return s.reject(booking, remarks)
	case ActionCheckIn:
		return s.checkIn(booking)
	case ActionCheckOut:
		return s.checkOut(booking)
	case ActionMarkPaid:
		return s.markPaid(booking)
	default:
		return nil, NewError(KindValidation, "unknown admin action %q", action)
	}
}

// confirm moves Pending to Confirmed. Confirming an already-Confirmed
// booking succeeds without side effects; Rejected is terminal.
func (s *DefaultBookingService) confirm(booking *models.Booking) (*models.Booking, error) {
	switch booking.Status {
	case models.StatusConfirmed:
		return booking, nil
	case models.StatusRejected:
		return nil, NewError(KindNotEligible, "booking %s is rejected and cannot be confirmed", booking.ID)
	}

	if err := s.Bookings.UpdateFields(booking.ID, bson.M{"status": models.StatusConfirmed}); err != nil {
		return nil, NewError(KindInternal, "failed to confirm booking: %v", err)
	}
	booking.Status = models.StatusConfirmed
	utils.GetLogger().Info("booking confirmed", zap.String("bookingID", booking.ID))
	return booking, nil
}

// reject moves any status to the terminal Rejected state, recording why.
func (s *DefaultBookingService) reject(booking *models.Booking, remarks string) (*models.Booking, error) {
	fields := bson.M{
		"status":         models.StatusRejected,
		"status_remarks": remarks,
	}
	if err := s.Bookings.UpdateFields(booking.ID, fields); err != nil {
		return nil, NewError(KindInternal, "failed to reject booking: %v", err)
	}
	booking.Status = models.StatusRejected
	booking.StatusRemarks = remarks
	utils.GetLogger().Info("booking rejected",
		zap.String("bookingID", booking.ID),
		zap.String("remarks", remarks))
	return booking, nil
}

// checkIn flags the customer's arrival. Repeat calls refresh the timestamp.
func (s *DefaultBookingService) checkIn(booking *models.Booking) (*models.Booking, error) {
	if booking.Status != models.StatusConfirmed {
		return nil, NewError(KindNotEligible, "booking %s must be confirmed before check-in", booking.ID)
	}

	now := time.Now()
	fields := bson.M{
		"checked_in":   true,
		"checkin_time": now,
	}
	if err := s.Bookings.UpdateFields(booking.ID, fields); err != nil {
		return nil, NewError(KindInternal, "failed to record check-in: %v", err)
	}
	booking.CheckedIn = true
	booking.CheckinTime = &now
	return booking, nil
}

// checkOut flags the customer's departure; requires a prior check-in.
func (s *DefaultBookingService) checkOut(booking *models.Booking) (*models.Booking, error) {
	if !booking.CheckedIn {
		return nil, NewError(KindNotEligible, "booking %s has no check-in to check out from", booking.ID)
	}

	now := time.Now()
	fields := bson.M{
		"checked_out":   true,
		"checkout_time": now,
	}
	if err := s.Bookings.UpdateFields(booking.ID, fields); err != nil {
		return nil, NewError(KindInternal, "failed to record check-out: %v", err)
	}
	booking.CheckedOut = true
	booking.CheckoutTime = &now
	return booking, nil
}

// markPaid settles the booking regardless of status. paid_date moves in
// lockstep with payment_status; they are never set independently.
func (s *DefaultBookingService) markPaid(booking *models.Booking) (*models.Booking, error) {
	now := time.Now()
	fields := bson.M{
		"payment_status": true,
		"paid_date":      now,
	}
	if err := s.Bookings.UpdateFields(booking.ID, fields); err != nil {
		return nil, NewError(KindInternal, "failed to mark booking paid: %v", err)
	}
	booking.PaymentStatus = true
	booking.PaidDate = &now
	utils.GetLogger().Info("booking marked paid",
		zap.String("bookingID", booking.ID),
		zap.Int("amount", booking.Amount))
	return booking, nil
}
