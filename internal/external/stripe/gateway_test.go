package rewards

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	model "github.com/glkeru/rewards/internal/models"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81/webhook"
	"go.uber.org/zap"
)

const testSecret = "whsec_test"

func newTestGateway(transport http.RoundTripper) *StripeGateway {
	return NewStripeGateway("sk_test_123", testSecret, "", &http.Client{Transport: transport}, zap.NewNop())
}

func TestCreatePayout(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodPost, "https://api.stripe.com/v1/payment_intents",
		func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "payout-key", req.Header.Get("Idempotency-Key"))
			require.NoError(t, req.ParseForm())
			require.Equal(t, "3000", req.PostForm.Get("amount"))
			require.Equal(t, "inr", req.PostForm.Get("currency"))
			require.Equal(t, "u1", req.PostForm.Get("metadata[userId]"))
			require.Equal(t, "30", req.PostForm.Get("metadata[tokens]"))
			require.Equal(t, model.PurposeCashout, req.PostForm.Get("metadata[purpose]"))
			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"id":       "pi_123",
				"object":   "payment_intent",
				"amount":   3000,
				"currency": "inr",
				"status":   "requires_payment_method",
			})
		})
	gateway := newTestGateway(transport)

	id, err := gateway.CreatePayout(context.Background(), model.PayoutRequest{
		IdempotencyKey: "payout-key",
		Amount:         3000,
		Currency:       "inr",
		Metadata:       model.PayoutMetadata{UserID: "u1", Tokens: 30, Purpose: model.PurposeCashout},
	})
	require.NoError(t, err)
	require.Equal(t, "pi_123", id)
	require.Equal(t, 1, transport.GetTotalCallCount())
}

func TestCreatePayoutError(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodPost, "https://api.stripe.com/v1/payment_intents",
		httpmock.NewJsonResponderOrPanic(http.StatusPaymentRequired, map[string]any{
			"error": map[string]any{
				"type":    "card_error",
				"code":    "card_declined",
				"message": "Your card was declined.",
			},
		}))
	gateway := newTestGateway(transport)

	id, err := gateway.CreatePayout(context.Background(), model.PayoutRequest{IdempotencyKey: "k", Amount: 100, Currency: "inr"})
	require.Error(t, err)
	require.Empty(t, id)
	// без повторов
	require.Equal(t, 1, transport.GetTotalCallCount())
}

func signed(t *testing.T, event map[string]any, secret string) ([]byte, string) {
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	sp := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	})
	return sp.Payload, sp.Header
}

func intentEvent(eventType string) map[string]any {
	return map[string]any{
		"id":     "evt_1",
		"object": "event",
		"type":   eventType,
		"data": map[string]any{
			"object": map[string]any{
				"id":     "pi_123",
				"object": "payment_intent",
				"metadata": map[string]string{
					"userId":  "u1",
					"tokens":  "30",
					"purpose": model.PurposeCashout,
				},
			},
		},
	}
}

func TestParseEvent(t *testing.T) {
	gateway := newTestGateway(httpmock.NewMockTransport())

	for _, eventType := range []string{model.EventPaymentSucceeded, model.EventPaymentFailed} {
		t.Run(eventType, func(t *testing.T) {
			payload, header := signed(t, intentEvent(eventType), testSecret)
			event, err := gateway.ParseEvent(payload, header)
			require.NoError(t, err)
			require.Equal(t, model.GatewayEvent{
				ID:            "evt_1",
				Type:          eventType,
				TransactionID: "pi_123",
				Metadata:      model.PayoutMetadata{UserID: "u1", Tokens: 30, Purpose: model.PurposeCashout},
			}, event)
		})
	}
}

func TestParseEventInvalidSignature(t *testing.T) {
	gateway := newTestGateway(httpmock.NewMockTransport())

	payload, header := signed(t, intentEvent(model.EventPaymentSucceeded), "whsec_other")
	_, err := gateway.ParseEvent(payload, header)
	require.ErrorIs(t, err, model.ErrInvalidSignature)

	_, err = gateway.ParseEvent(payload, "")
	require.ErrorIs(t, err, model.ErrInvalidSignature)

	// измененное тело
	payload, header = signed(t, intentEvent(model.EventPaymentSucceeded), testSecret)
	payload[len(payload)-2] = ' '
	_, err = gateway.ParseEvent(payload, header)
	require.ErrorIs(t, err, model.ErrInvalidSignature)
}
