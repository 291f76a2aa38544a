package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"innkeep/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testMethod(verifyURL string) models.PaymentMethod {
	return models.PaymentMethod{
		ID:            "pm-1",
		Name:          "Khalti",
		TestPublicKey: "test_pub",
		LivePublicKey: "live_pub",
		TestSecretKey: "test_secret",
		LiveSecretKey: "live_secret",
		PaymentURL:    "https://pay.example.com/start",
		ReturnURL:     "https://shop.example.com/return",
		VerifyURL:     verifyURL,
	}
}

func TestVerifyPaymentVerified(t *testing.T) {
	var gotAuth, gotToken, gotAmount string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotAuth = r.Header.Get("Authorization")
		gotToken = r.FormValue("token")
		gotAmount = r.FormValue("amount")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"idx": "txn_8841", "amount": 2000}`))
	}))
	defer srv.Close()

	g := NewHTTPGateway(false, zap.NewNop())
	verdict, err := g.VerifyPayment(context.Background(), testMethod(srv.URL), "tok-1", 2000)
	require.NoError(t, err)
	assert.Equal(t, VerdictVerified, verdict)
	assert.Equal(t, "Key test_secret", gotAuth)
	assert.Equal(t, "tok-1", gotToken)
	assert.Equal(t, "2000", gotAmount)
}

func TestVerifyPaymentLiveModeUsesLiveKey(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"idx": "txn_1"}`))
	}))
	defer srv.Close()

	g := NewHTTPGateway(true, zap.NewNop())
	verdict, err := g.VerifyPayment(context.Background(), testMethod(srv.URL), "tok-1", 500)
	require.NoError(t, err)
	assert.Equal(t, VerdictVerified, verdict)
	assert.Equal(t, "Key live_secret", gotAuth)
}

func TestVerifyPaymentRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "Invalid token", "error_key": "validation_error"}`))
	}))
	defer srv.Close()

	g := NewHTTPGateway(false, zap.NewNop())
	verdict, err := g.VerifyPayment(context.Background(), testMethod(srv.URL), "tok-bad", 500)
	require.NoError(t, err)
	assert.Equal(t, VerdictRejected, verdict)
}

func TestVerifyPaymentEmptyIdxIsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"idx": ""}`))
	}))
	defer srv.Close()

	g := NewHTTPGateway(false, zap.NewNop())
	verdict, err := g.VerifyPayment(context.Background(), testMethod(srv.URL), "tok", 500)
	require.NoError(t, err)
	assert.Equal(t, VerdictRejected, verdict)
}

func TestVerifyPaymentGarbledResponseIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway timeout</html>`))
	}))
	defer srv.Close()

	g := NewHTTPGateway(false, zap.NewNop())
	_, err := g.VerifyPayment(context.Background(), testMethod(srv.URL), "tok", 500)
	require.Error(t, err)
}

func TestVerifyPaymentUnreachableProviderIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	g := NewHTTPGateway(false, zap.NewNop())
	_, err := g.VerifyPayment(context.Background(), testMethod(srv.URL), "tok", 500)
	require.Error(t, err)
}

func TestVerifyPaymentHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"idx": "txn_1"}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	g := NewHTTPGateway(false, zap.NewNop())
	_, err := g.VerifyPayment(ctx, testMethod(srv.URL), "tok", 500)
	require.Error(t, err)
}

func TestRequestPaymentBuildsContext(t *testing.T) {
	g := NewHTTPGateway(false, zap.NewNop())
	session := models.PaymentSession{SessionID: "sess-1", BookingID: "b1", CustomerID: "c1", Amount: 1200}

	ctx := g.RequestPayment(session, testMethod("https://pay.example.com/verify"))
	assert.Equal(t, "sess-1", ctx.SessionID)
	assert.Equal(t, "https://pay.example.com/start", ctx.PaymentURL)
	assert.Equal(t, "test_pub", ctx.PublicKey)
	assert.Equal(t, 1200, ctx.Amount)
	assert.Equal(t, "https://shop.example.com/return", ctx.ReturnURL)
}
