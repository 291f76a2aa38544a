package models

import "time"

// PaymentMethod identifies a way to settle a booking. Gateway methods carry
// the provider's credential pairs and endpoint URLs; offline methods (for
// example "Pay at Hotel") carry only a name. Read-only to the booking engine.
type PaymentMethod struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	TestPublicKey string    `bson:"test_public_key,omitempty" json:"-"`
	LivePublicKey string    `bson:"live_public_key,omitempty" json:"-"`
	TestSecretKey string    `bson:"test_secret_key,omitempty" json:"-"`
	LiveSecretKey string    `bson:"live_secret_key,omitempty" json:"-"`
	PaymentURL    string    `bson:"payment_url,omitempty" json:"payment_url,omitempty"`
	ReturnURL     string    `bson:"return_url,omitempty" json:"return_url,omitempty"`
	VerifyURL     string    `bson:"payment_verify_url,omitempty" json:"-"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// RequiresGateway reports whether bookings paid with this method must go
// through the external request/verify protocol. Offline methods settle via
// the admin mark-paid action instead.
func (m PaymentMethod) RequiresGateway() bool {
	return m.VerifyURL != ""
}

// SecretKey returns the credential matching the deployment mode.
func (m PaymentMethod) SecretKey(live bool) string {
	if live {
		return m.LiveSecretKey
	}
	return m.TestSecretKey
}

// PublicKey returns the publishable credential matching the deployment mode.
func (m PaymentMethod) PublicKey(live bool) string {
	if live {
		return m.LivePublicKey
	}
	return m.TestPublicKey
}
