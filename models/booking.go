package models

import "time"

// BookingStatus is the admin-driven lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusRejected  BookingStatus = "Rejected"
)

// Rating bounds for a completed stay.
const (
	MinRating = 1
	MaxRating = 5
)

// Booking is a customer's reservation of a room for a date range. The date
// interval is inclusive on both ends; a same-day stay counts as one night.
// Amount is computed once at creation and never recalculated, even if the
// room's price later changes. Bookings are never deleted: cancellation is a
// transition to Rejected.
type Booking struct {
	ID           string `bson:"id" json:"id"`
	RoomID       string `bson:"room_id" json:"room_id"`
	CustomerID   string `bson:"customer_id" json:"customer_id"`
	TotalPersons int    `bson:"total_persons" json:"total_persons"`

	BookingStarts time.Time `bson:"booking_starts" json:"booking_starts"`
	BookingEnds   time.Time `bson:"booking_ends" json:"booking_ends"`
	Message       string    `bson:"message,omitempty" json:"message,omitempty"`

	Status        BookingStatus `bson:"status" json:"status"`
	StatusRemarks string        `bson:"status_remarks,omitempty" json:"status_remarks,omitempty"`

	// Set only after the booking is Confirmed; orthogonal to Status.
	CheckedIn    bool       `bson:"checked_in" json:"checked_in"`
	CheckinTime  *time.Time `bson:"checkin_time,omitempty" json:"checkin_time,omitempty"`
	CheckedOut   bool       `bson:"checked_out" json:"checked_out"`
	CheckoutTime *time.Time `bson:"checkout_time,omitempty" json:"checkout_time,omitempty"`

	Rating int `bson:"rating,omitempty" json:"rating,omitempty"`

	// Payment information. PaidDate is non-nil iff PaymentStatus is true.
	Amount          int        `bson:"amount" json:"amount"`
	PaymentMethodID string     `bson:"payment_method_id" json:"payment_method_id"`
	PaymentStatus   bool       `bson:"payment_status" json:"payment_status"`
	PaidDate        *time.Time `bson:"paid_date,omitempty" json:"paid_date,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// DetailPath is the booking's canonical detail location, used as the return
// target after a verified payment.
func (b Booking) DetailPath() string {
	return "/api/bookings/" + b.ID
}
