package paymentRepo

import "innkeep/models"

// PaymentMethodRepository exposes the configured payment methods. Read-only
// to the booking engine; methods are seeded by deployment tooling.
// GetByID returns (nil, nil) when no method matches.
type PaymentMethodRepository interface {
	GetByID(id string) (*models.PaymentMethod, error)
	List() ([]models.PaymentMethod, error)
}
