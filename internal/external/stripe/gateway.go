package rewards

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	model "github.com/glkeru/rewards/internal/models"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"github.com/stripe/stripe-go/v81/webhook"
	"go.uber.org/zap"
)

// ключи метаданных PaymentIntent
const (
	metaUser    = "userId"
	metaTokens  = "tokens"
	metaPurpose = "purpose"
)

type StripeGateway struct {
	intents paymentintent.Client
	secret  string
	logger  *zap.Logger
}

// url и httpClient необязательные: пустые значения - api.stripe.com и клиент по умолчанию
func NewStripeGateway(key string, webhookSecret string, url string, httpClient *http.Client, logger *zap.Logger) *StripeGateway {
	config := &stripe.BackendConfig{
		HTTPClient: httpClient,
		// повторы запросов делает вызывающий, по ключу идемпотентности
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     logger.Sugar(),
	}
	if url != "" {
		config.URL = stripe.String(url)
	}
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, config)
	return &StripeGateway{
		intents: paymentintent.Client{B: backend, Key: key},
		secret:  webhookSecret,
		logger:  logger,
	}
}

// Создание PaymentIntent на сумму выплаты
func (s *StripeGateway) CreatePayout(ctx context.Context, req model.PayoutRequest) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.IdempotencyKey)
	params.AddMetadata(metaUser, req.Metadata.UserID)
	params.AddMetadata(metaTokens, strconv.FormatInt(req.Metadata.Tokens, 10))
	params.AddMetadata(metaPurpose, req.Metadata.Purpose)

	intent, err := s.intents.New(params)
	if err != nil {
		s.logger.Error("Stripe create payment intent",
			zap.Error(err),
			zap.String("user", req.Metadata.UserID),
			zap.String("key", req.IdempotencyKey))
		return "", err
	}
	return intent.ID, nil
}

// Проверка подписи и разбор события. Объект события - PaymentIntent
func (s *StripeGateway) ParseEvent(payload []byte, signature string) (model.GatewayEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return model.GatewayEvent{}, fmt.Errorf("%w: %v", model.ErrInvalidSignature, err)
	}

	result := model.GatewayEvent{ID: event.ID, Type: string(event.Type)}
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return result, nil
	}
	intent := stripe.PaymentIntent{}
	err = json.Unmarshal(event.Data.Raw, &intent)
	if err != nil {
		// событие другого типа объекта
		s.logger.Debug("Event object is not a payment intent", zap.String("type", result.Type), zap.Error(err))
		return result, nil
	}
	result.TransactionID = intent.ID
	result.Metadata = parseMetadata(intent.Metadata)
	return result, nil
}

func parseMetadata(meta map[string]string) model.PayoutMetadata {
	tokens, _ := strconv.ParseInt(meta[metaTokens], 10, 64)
	return model.PayoutMetadata{
		UserID:  meta[metaUser],
		Tokens:  tokens,
		Purpose: meta[metaPurpose],
	}
}
