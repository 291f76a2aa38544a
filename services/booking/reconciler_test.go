package booking

import (
	"context"
	"errors"
	"testing"

	"innkeep/models"
	"innkeep/services/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSession(t *testing.T, svc *DefaultBookingService, bookings *fakeBookingRepo, methods *fakeMethodRepo) *models.PaymentContext {
	t.Helper()
	seedBooking(bookings, "b1", models.StatusPending)
	seedMethod(methods, "pm-1", true)

	ctx, err := svc.OpenPaymentSession(customer("cust-1"), "b1")
	require.NoError(t, err)
	return ctx
}

func TestOpenPaymentSession(t *testing.T) {
	svc, bookings, _, methods, sessions, _, reminders := testService()
	ctx := openSession(t, svc, bookings, methods)

	assert.NotEmpty(t, ctx.SessionID)
	assert.Equal(t, 2000, ctx.Amount)
	assert.Equal(t, "test_public_key_x", ctx.PublicKey)
	assert.Equal(t, "https://pay.example.com/start", ctx.PaymentURL)

	stored, err := sessions.Get(context.Background(), ctx.SessionID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "b1", stored.BookingID)
	assert.Equal(t, "cust-1", stored.CustomerID)

	require.Len(t, reminders.scheduled, 1)
	assert.Equal(t, ctx.SessionID, reminders.scheduled[0].SessionID)
}

func TestOpenPaymentSessionReplacesPriorSession(t *testing.T) {
	svc, bookings, _, methods, sessions, _, _ := testService()
	first := openSession(t, svc, bookings, methods)

	second, err := svc.OpenPaymentSession(customer("cust-1"), "b1")
	require.NoError(t, err)
	assert.NotEqual(t, first.SessionID, second.SessionID)

	gone, err := sessions.Get(context.Background(), first.SessionID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestOpenPaymentSessionOwnershipAndState(t *testing.T) {
	svc, bookings, _, methods, _, _, _ := testService()
	seedBooking(bookings, "b1", models.StatusPending)
	seedMethod(methods, "pm-1", true)

	_, err := svc.OpenPaymentSession(customer("someone-else"), "b1")
	assert.True(t, IsKind(err, KindNotEligible))

	_, err = svc.OpenPaymentSession(admin(), "b1")
	assert.True(t, IsKind(err, KindNotEligible))

	// Rejected or already-paid bookings are not awaiting payment.
	seedBooking(bookings, "b2", models.StatusRejected)
	_, err = svc.OpenPaymentSession(customer("cust-1"), "b2")
	assert.True(t, IsKind(err, KindNotEligible))

	paid := seedBooking(bookings, "b3", models.StatusPending)
	paid.PaymentStatus = true
	bookings.Insert(paid)
	_, err = svc.OpenPaymentSession(customer("cust-1"), "b3")
	assert.True(t, IsKind(err, KindNotEligible))
}

func TestOpenPaymentSessionOfflineMethod(t *testing.T) {
	svc, bookings, _, methods, _, _, _ := testService()
	seedBooking(bookings, "b1", models.StatusPending)
	seedMethod(methods, "pm-1", false)

	_, err := svc.OpenPaymentSession(customer("cust-1"), "b1")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotEligible))
}

func TestOpenPaymentSessionSurvivesReminderFailure(t *testing.T) {
	svc, bookings, _, methods, _, _, reminders := testService()
	reminders.err = errors.New("queue down")

	ctx := openSession(t, svc, bookings, methods)
	assert.NotEmpty(t, ctx.SessionID)
}

func TestCompletePaymentVerified(t *testing.T) {
	svc, bookings, _, methods, sessions, gateway, _ := testService()
	ctx := openSession(t, svc, bookings, methods)
	gateway.verdict = payment.VerdictVerified

	result, err := svc.CompletePayment(ctx.SessionID, "tok-123", 2000)
	require.NoError(t, err)

	assert.True(t, result.Booking.PaymentStatus)
	require.NotNil(t, result.Booking.PaidDate)
	// Payment never confirms a booking; that stays an admin decision.
	assert.Equal(t, models.StatusPending, result.Booking.Status)
	assert.Equal(t, "http://localhost:8080/api/bookings/b1?b=s", result.RedirectURL)

	stored, _ := bookings.GetByID("b1")
	assert.True(t, stored.PaymentStatus)

	// The session is consumed.
	gone, err := sessions.Get(context.Background(), ctx.SessionID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	assert.Equal(t, "tok-123", gateway.lastToken)
	assert.Equal(t, 2000, gateway.lastAmount)
}

func TestCompletePaymentRejected(t *testing.T) {
	svc, bookings, _, methods, sessions, gateway, _ := testService()
	ctx := openSession(t, svc, bookings, methods)
	gateway.verdict = payment.VerdictRejected

	_, err := svc.CompletePayment(ctx.SessionID, "tok-bad", 2000)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindPaymentRejected))

	// Nothing is mutated and the session survives for a retry.
	stored, _ := bookings.GetByID("b1")
	assert.False(t, stored.PaymentStatus)
	assert.Nil(t, stored.PaidDate)

	alive, err := sessions.Get(context.Background(), ctx.SessionID)
	require.NoError(t, err)
	assert.NotNil(t, alive)
}

func TestCompletePaymentGatewayError(t *testing.T) {
	svc, bookings, _, methods, sessions, gateway, _ := testService()
	ctx := openSession(t, svc, bookings, methods)
	gateway.err = errors.New("connection refused")

	_, err := svc.CompletePayment(ctx.SessionID, "tok-123", 2000)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindGateway))

	stored, _ := bookings.GetByID("b1")
	assert.False(t, stored.PaymentStatus)

	alive, err := sessions.Get(context.Background(), ctx.SessionID)
	require.NoError(t, err)
	assert.NotNil(t, alive)
}

func TestCompletePaymentUnknownSession(t *testing.T) {
	svc, _, _, _, _, _, _ := testService()

	_, err := svc.CompletePayment("ghost-session", "tok", 1000)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestCompletePaymentAmountMismatchStillVerifies(t *testing.T) {
	svc, bookings, _, methods, _, gateway, _ := testService()
	ctx := openSession(t, svc, bookings, methods)
	gateway.verdict = payment.VerdictVerified

	// The claimed amount is logged but the provider verdict decides.
	result, err := svc.CompletePayment(ctx.SessionID, "tok-123", 999)
	require.NoError(t, err)
	assert.True(t, result.Booking.PaymentStatus)
	assert.Equal(t, 999, gateway.lastAmount)
}

func TestAbandonSession(t *testing.T) {
	svc, bookings, _, methods, sessions, _, _ := testService()
	ctx := openSession(t, svc, bookings, methods)

	err := svc.AbandonSession(customer("someone-else"), ctx.SessionID)
	assert.True(t, IsKind(err, KindNotEligible))

	err = svc.AbandonSession(customer("cust-1"), ctx.SessionID)
	require.NoError(t, err)

	gone, err := sessions.Get(context.Background(), ctx.SessionID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// The booking itself is untouched and still payable later.
	stored, _ := bookings.GetByID("b1")
	assert.Equal(t, models.StatusPending, stored.Status)
	assert.False(t, stored.PaymentStatus)

	err = svc.AbandonSession(customer("cust-1"), ctx.SessionID)
	assert.True(t, IsKind(err, KindNotFound))
}
