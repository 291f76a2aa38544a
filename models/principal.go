package models

// PrincipalKind is the explicit caller kind, resolved once at the HTTP
// boundary from the token's role claim.
type PrincipalKind string

const (
	PrincipalCustomer PrincipalKind = "customer"
	PrincipalAdmin    PrincipalKind = "admin"
)

// Principal is the authenticated caller handed to every booking operation.
// The engine trusts it; authentication itself happens upstream.
type Principal struct {
	Kind    PrincipalKind `json:"kind"`
	Subject string        `json:"subject"`
}

func (p Principal) IsAdmin() bool {
	return p.Kind == PrincipalAdmin
}

func (p Principal) IsCustomer() bool {
	return p.Kind == PrincipalCustomer
}
