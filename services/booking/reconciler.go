package booking

import (
	"context"
	"time"

	"innkeep/models"
	"innkeep/services/payment"
	"innkeep/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OpenPaymentSession binds a fresh payment session to the booking and
// returns the context the payment page needs. Eligible only for the owning
// customer while the booking is Pending and unpaid, and only for methods
// that settle through the gateway. Opening a session replaces any prior
// unconsumed session the customer holds.
func (s *DefaultBookingService) OpenPaymentSession(principal models.Principal, bookingID string) (*models.PaymentContext, error) {
	booking, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if !principal.IsCustomer() || booking.CustomerID != principal.Subject {
		return nil, NewError(KindNotEligible, "booking %s does not belong to this customer", bookingID)
	}
	if booking.Status != models.StatusPending || booking.PaymentStatus {
		return nil, NewError(KindNotEligible, "booking %s is not awaiting payment", bookingID)
	}

	method, err := s.Methods.GetByID(booking.PaymentMethodID)
	if err != nil {
		return nil, NewError(KindInternal, "failed to load payment method: %v", err)
	}
	if method == nil {
		return nil, NewError(KindInternal, "booking %s references unknown payment method %s", bookingID, booking.PaymentMethodID)
	}
	if !method.RequiresGateway() {
		return nil, NewError(KindNotEligible, "payment method %s settles offline", method.Name)
	}

	session := models.PaymentSession{
		SessionID:  uuid.New().String(),
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		Amount:     booking.Amount,
		CreatedAt:  time.Now(),
	}
	if err := s.Sessions.Put(context.Background(), session); err != nil {
		return nil, NewError(KindInternal, "failed to store payment session: %v", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.SchedulePaymentReminder(session); err != nil {
			// The reminder is best-effort; the session itself is live.
			utils.GetLogger().Warn("failed to schedule payment reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	ctx := s.Gateway.RequestPayment(session, *method)
	utils.GetLogger().Info("payment session opened",
		zap.String("sessionID", session.SessionID),
		zap.String("bookingID", booking.ID),
		zap.Int("amount", session.Amount))
	return &ctx, nil
}

// CompletePayment verifies a provider token against the session's booking
// and settles it on success. On an explicit provider denial or a gateway
// failure nothing is mutated and the session stays alive so the caller can
// retry; the two outcomes carry different error kinds so observability can
// tell an outage from a denial. A verified payment never changes the booking
// status: confirmation stays a separate admin decision.
func (s *DefaultBookingService) CompletePayment(sessionID, providerToken string, claimedAmount int) (*PaymentResult, error) {
	logger := utils.GetLogger()

	session, err := s.Sessions.Get(context.Background(), sessionID)
	if err != nil {
		return nil, NewError(KindInternal, "failed to load payment session: %v", err)
	}
	if session == nil {
		return nil, NewError(KindNotFound, "payment session not found or expired")
	}

	booking, err := s.Bookings.GetByID(session.BookingID)
	if err != nil {
		return nil, NewError(KindInternal, "failed to load booking %s: %v", session.BookingID, err)
	}
	if booking == nil {
		// A live session pointing at a missing booking is a broken
		// invariant, not a user error.
		logger.Error("payment session bound to missing booking",
			zap.String("sessionID", sessionID),
			zap.String("bookingID", session.BookingID))
		return nil, NewError(KindInternal, "session %s is bound to a missing booking", sessionID)
	}

	method, err := s.Methods.GetByID(booking.PaymentMethodID)
	if err != nil || method == nil {
		return nil, NewError(KindInternal, "failed to load payment method %s", booking.PaymentMethodID)
	}

	if claimedAmount != session.Amount {
		logger.Warn("claimed amount differs from session amount",
			zap.String("sessionID", sessionID),
			zap.Int("claimed", claimedAmount),
			zap.Int("expected", session.Amount))
	}

	verifyCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	verdict, err := s.Gateway.VerifyPayment(verifyCtx, *method, providerToken, claimedAmount)
	if err != nil {
		logger.Error("payment verification failed at gateway",
			zap.String("sessionID", sessionID),
			zap.String("bookingID", booking.ID),
			zap.Error(err))
		return nil, NewError(KindGateway, "payment gateway unavailable: %v", err)
	}
	if verdict != payment.VerdictVerified {
		logger.Warn("payment rejected by provider",
			zap.String("sessionID", sessionID),
			zap.String("bookingID", booking.ID))
		return nil, NewError(KindPaymentRejected, "payment was not verified by the provider")
	}

	settled, err := s.markPaid(booking)
	if err != nil {
		return nil, err
	}

	// The session is consumed only once the booking is settled.
	if err := s.Sessions.Delete(context.Background(), *session); err != nil {
		logger.Warn("failed to clear consumed payment session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	return &PaymentResult{
		Booking:     settled,
		RedirectURL: s.redirectFor(settled),
	}, nil
}

// AbandonSession lets the owning customer discard an open payment session.
// The booking stays Pending/unpaid and can be settled later, by a new
// session or by an admin marking it paid.
func (s *DefaultBookingService) AbandonSession(principal models.Principal, sessionID string) error {
	session, err := s.Sessions.Get(context.Background(), sessionID)
	if err != nil {
		return NewError(KindInternal, "failed to load payment session: %v", err)
	}
	if session == nil {
		return NewError(KindNotFound, "payment session not found or expired")
	}
	if session.CustomerID != principal.Subject {
		return NewError(KindNotEligible, "payment session does not belong to this customer")
	}
	if err := s.Sessions.Delete(context.Background(), *session); err != nil {
		return NewError(KindInternal, "failed to abandon payment session: %v", err)
	}
	return nil
}
