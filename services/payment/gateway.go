package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"innkeep/models"

	"go.uber.org/zap"
)

// Verdict is the gateway's answer to a verification call. A transport or
// protocol failure is reported as an error instead and must never be read as
// a denied payment.
type Verdict int

const (
	VerdictRejected Verdict = iota
	VerdictVerified
)

func (v Verdict) String() string {
	if v == VerdictVerified {
		return "verified"
	}
	return "rejected"
}

// Gateway talks the provider's request/verify protocol. It only reports
// verdicts; booking state changes belong to the booking service.
type Gateway interface {
	// RequestPayment builds the context the payment page needs to start the
	// external flow for a session.
	RequestPayment(session models.PaymentSession, method models.PaymentMethod) models.PaymentContext
	// VerifyPayment asks the provider whether the token corresponds to a
	// completed transaction of the claimed amount. A non-nil error means the
	// provider was unreachable or answered garbage (retryable); a nil error
	// with VerdictRejected means the provider explicitly denied the payment.
	VerifyPayment(ctx context.Context, method models.PaymentMethod, token string, amount int) (Verdict, error)
}

// HTTPGateway implements Gateway over the provider's HTTP endpoints. The wire
// contract is fixed by the provider: a form POST of {token, amount} with an
// "Authorization: Key <secret>" header, answered with JSON carrying a truthy
// transaction identifier ("idx") on success.
type HTTPGateway struct {
	Live   bool
	Client *http.Client
	Logger *zap.Logger
}

// NewHTTPGateway creates a gateway adapter. The live flag selects which of
// the method's credential pairs signs the verify call.
func NewHTTPGateway(live bool, logger *zap.Logger) *HTTPGateway {
	return &HTTPGateway{
		Live:   live,
		Client: &http.Client{Timeout: 15 * time.Second},
		Logger: logger,
	}
}

func (g *HTTPGateway) RequestPayment(session models.PaymentSession, method models.PaymentMethod) models.PaymentContext {
	return models.PaymentContext{
		SessionID:  session.SessionID,
		PaymentURL: method.PaymentURL,
		PublicKey:  method.PublicKey(g.Live),
		Amount:     session.Amount,
		ReturnURL:  method.ReturnURL,
	}
}

func (g *HTTPGateway) VerifyPayment(ctx context.Context, method models.PaymentMethod, token string, amount int) (Verdict, error) {
	form := url.Values{}
	form.Set("token", token)
	form.Set("amount", strconv.Itoa(amount))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, method.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return VerdictRejected, fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Key "+method.SecretKey(g.Live))

	resp, err := g.Client.Do(req)
	if err != nil {
		return VerdictRejected, fmt.Errorf("verify call to %s failed: %w", method.Name, err)
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return VerdictRejected, fmt.Errorf("unparseable verify response from %s: %w", method.Name, err)
	}

	// A truthy transaction identifier is the provider's success marker; any
	// other well-formed response is an explicit denial.
	if idx, ok := body["idx"].(string); ok && idx != "" {
		g.Logger.Info("payment verified",
			zap.String("gateway", method.Name),
			zap.String("transaction", idx),
			zap.Int("amount", amount))
		return VerdictVerified, nil
	}

	g.Logger.Warn("payment rejected by gateway",
		zap.String("gateway", method.Name),
		zap.Int("status", resp.StatusCode))
	return VerdictRejected, nil
}
