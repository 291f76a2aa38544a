package booking

import (
	"errors"
	"fmt"
)

// Kind classifies a booking-engine failure. Every failure branch is
// distinguishable by kind; none of them mutate state.
type Kind string

const (
	// KindValidation marks malformed or out-of-range input.
	KindValidation Kind = "validation"
	// KindNotEligible marks a caller or booking in the wrong state for the
	// requested action.
	KindNotEligible Kind = "notEligible"
	// KindNotFound marks an absent booking, room, method or session.
	KindNotFound Kind = "notFound"
	// KindGateway marks an unreachable or garbled payment provider; the
	// caller may retry.
	KindGateway Kind = "gateway"
	// KindPaymentRejected marks an explicit denial by the payment provider;
	// the caller may retry with a new token.
	KindPaymentRejected Kind = "paymentRejected"
	// KindInternal marks a broken invariant, such as a session bound to a
	// booking that vanished from storage.
	KindInternal Kind = "internal"
)

// Error carries a failure kind alongside its message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError builds a typed booking error.
func NewError(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from an error, defaulting to KindInternal for
// anything untyped.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
