package models

// BookingReport aggregates the admin dashboard figures over all bookings.
// Amounts follow the booking lifecycle: ConfirmedAmount is everything an
// admin accepted, CollectedAmount the confirmed-and-paid subset, and
// PendingAmount what is still owed on live (Pending or Confirmed) bookings.
type BookingReport struct {
	TotalBookings     int64 `json:"total_bookings"`
	PendingBookings   int64 `json:"pending_bookings"`
	ConfirmedBookings int64 `json:"confirmed_bookings"`
	RejectedBookings  int64 `json:"rejected_bookings"`
	ServedPersons     int64 `json:"served_persons"`
	ConfirmedAmount   int64 `json:"confirmed_amount"`
	RejectedAmount    int64 `json:"rejected_amount"`
	CollectedAmount   int64 `json:"collected_amount"`
	PendingAmount     int64 `json:"pending_amount"`
}
