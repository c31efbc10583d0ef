package rewards

import (
	"context"
	"errors"
	"fmt"
	"time"

	interf "github.com/glkeru/rewards/internal/interfaces"
	model "github.com/glkeru/rewards/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type PayoutSettings struct {
	Rate       decimal.Decimal // валюта за один токен
	MinCashout int64
	Currency   string
	Timeout    time.Duration // ожидание ответа шлюза
}

// Вывод токенов: резерв, транзакция в шлюзе, запись выплаты в статусе pending
type PayoutService struct {
	ledger   *Ledger
	payments interf.PaymentStorage
	gateway  interf.Gateway
	settings PayoutSettings
	logger   *zap.Logger
}

func NewPayoutService(ledger *Ledger, payments interf.PaymentStorage, gateway interf.Gateway, settings PayoutSettings, logger *zap.Logger) *PayoutService {
	if settings.MinCashout < 1 {
		settings.MinCashout = 1
	}
	if !settings.Rate.IsPositive() {
		settings.Rate = decimal.NewFromInt(1)
	}
	if settings.Timeout <= 0 {
		settings.Timeout = 10 * time.Second
	}
	return &PayoutService{ledger, payments, gateway, settings, logger}
}

func (p *PayoutService) Amount(tokens int64) decimal.Decimal {
	return decimal.NewFromInt(tokens).Mul(p.settings.Rate)
}

// сумма в минимальных единицах валюты (пайсы, центы)
func minorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func (p *PayoutService) Cashout(ctx context.Context, user string, tokens int64) (result model.CashoutResult, err error) {
	ctx, span := tracer.Start(ctx, "Cashout")
	span.SetAttributes(attribute.String("user", user), attribute.Int64("tokens", tokens))
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
		cashoutsTotal.WithLabelValues(cashoutResult(err)).Inc()
	}()

	if tokens <= 0 || tokens < p.settings.MinCashout {
		return model.CashoutResult{}, model.ErrInvalidAmount
	}

	// резерв
	err = p.ledger.Reserve(ctx, user, tokens)
	if err != nil {
		return model.CashoutResult{}, err
	}

	amount := p.Amount(tokens)
	id := uuid.New()

	// транзакция в шлюзе с ограничением по времени
	gctx, cancel := context.WithTimeout(ctx, p.settings.Timeout)
	transactionId, err := p.gateway.CreatePayout(gctx, model.PayoutRequest{
		IdempotencyKey: id.String(),
		Amount:         minorUnits(amount),
		Currency:       p.settings.Currency,
		Metadata: model.PayoutMetadata{
			UserID:  user,
			Tokens:  tokens,
			Purpose: model.PurposeCashout,
		},
	})
	cancel()
	if err != nil {
		p.logger.Error("Gateway error",
			zap.Error(err),
			zap.String("service", "Cashout"),
			zap.String("user", user))
		p.compensate(ctx, user, tokens, amount)
		return model.CashoutResult{}, fmt.Errorf("%w: %v", model.ErrGateway, err)
	}

	// запись выплаты
	now := time.Now().UTC()
	record := model.PaymentRecord{
		ID:            id,
		User:          user,
		Amount:        amount,
		Tokens:        tokens,
		TransactionID: transactionId,
		Status:        model.PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err = p.payments.Create(ctx, record)
	if err != nil {
		// транзакция в шлюзе уже есть, ее событие придет как неизвестное
		p.logger.Error("Payment record error",
			zap.Error(err),
			zap.String("service", "Cashout"),
			zap.String("user", user),
			zap.String("transaction", transactionId))
		p.compensate(ctx, user, tokens, amount)
		return model.CashoutResult{}, err
	}

	return model.CashoutResult{
		Success:       true,
		Message:       fmt.Sprintf("Successfully initiated cash out of %d tokens (%s %s)", tokens, amount.String(), p.settings.Currency),
		TransactionID: transactionId,
		Amount:        amount,
		Tokens:        tokens,
	}, nil
}

// Возврат резерва. Не зависит от отмены запроса
func (p *PayoutService) compensate(ctx context.Context, user string, tokens int64, amount decimal.Decimal) {
	err := p.ledger.Refund(context.WithoutCancel(ctx), user, tokens, amount)
	if err != nil {
		p.logger.Error("Refund after failed cashout",
			zap.Error(err),
			zap.String("user", user),
			zap.Int64("tokens", tokens))
	}
}

func cashoutResult(err error) string {
	switch {
	case err == nil:
		return "pending"
	case errors.Is(err, model.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, model.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, model.ErrGateway):
		return "gateway_error"
	default:
		return "error"
	}
}
