package models

import "time"

// PaymentSession is the transient binding between a customer and the booking
// awaiting external payment verification. It lives in the session cache under
// its token and under the owning customer (one active session per customer);
// it is consumed on verified payment or explicit abandonment, and simply
// expires otherwise.
type PaymentSession struct {
	SessionID  string    `json:"sessionId"`
	BookingID  string    `json:"bookingId"`
	CustomerID string    `json:"customerId"`
	Amount     int       `json:"amount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PaymentContext is everything the payment page needs to start the external
// flow for a session.
type PaymentContext struct {
	SessionID  string `json:"sessionId"`
	PaymentURL string `json:"paymentUrl"`
	PublicKey  string `json:"publicKey"`
	Amount     int    `json:"amount"`
	ReturnURL  string `json:"returnUrl,omitempty"`
}
