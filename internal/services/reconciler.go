package rewards

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	interf "github.com/glkeru/rewards/internal/interfaces"
	model "github.com/glkeru/rewards/internal/models"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const ledgerRetries = 3

var ledgerBackOff = func() backoff.BackOff { return backoff.NewExponentialBackOff() }

// Обработка событий шлюза: выплата переходит из pending в конечный статус ровно один раз.
// Если баланс изменить не удалось, выплата возвращается в pending и событие
// ждет повторной доставки (ErrReconcileDeferred)
type Reconciler struct {
	ledger    *Ledger
	payments  interf.PaymentStorage
	publisher interf.ResultPublisher
	logger    *zap.Logger
}

func NewReconciler(ledger *Ledger, payments interf.PaymentStorage, publisher interf.ResultPublisher, logger *zap.Logger) *Reconciler {
	return &Reconciler{ledger, payments, publisher, logger}
}

func targetStatus(eventType string) (model.PaymentStatus, bool) {
	switch eventType {
	case model.EventPaymentSucceeded:
		return model.PaymentCompleted, true
	case model.EventPaymentFailed:
		return model.PaymentFailed, true
	}
	return "", false
}

func (r *Reconciler) Handle(ctx context.Context, event model.GatewayEvent) (err error) {
	ctx, span := tracer.Start(ctx, "Reconcile", trace.WithAttributes(
		attribute.String("event", event.Type),
		attribute.String("transaction", event.TransactionID),
	))
	outcome := "applied"
	defer func() {
		span.End()
		gatewayEvents.WithLabelValues(event.Type, outcome).Inc()
	}()

	status, ok := targetStatus(event.Type)
	if !ok {
		outcome = "ignored"
		r.logger.Debug("Unhandled event type", zap.String("type", event.Type))
		return nil
	}
	if event.Metadata.Purpose != "" && event.Metadata.Purpose != model.PurposeCashout {
		outcome = "ignored"
		return nil
	}

	record, err := r.payments.Resolve(ctx, event.TransactionID, status)
	switch {
	case errors.Is(err, model.ErrUnknownTransaction):
		outcome = "unknown"
		r.logger.Warn("Unknown transaction",
			zap.String("transaction", event.TransactionID),
			zap.String("type", event.Type))
		return err
	case errors.Is(err, model.ErrDuplicateEvent):
		outcome = "duplicate"
		r.logger.Info("Duplicate event",
			zap.String("transaction", event.TransactionID),
			zap.String("type", event.Type),
			zap.String("status", string(record.Status)))
		return err
	case err != nil:
		outcome = "error"
		r.logger.Error("Resolve payment", zap.Error(err), zap.String("transaction", event.TransactionID))
		return err
	}

	if event.Metadata.UserID != "" && event.Metadata.UserID != record.User {
		r.logger.Warn("Event metadata user differs from payment record",
			zap.String("transaction", event.TransactionID),
			zap.String("metadata", event.Metadata.UserID),
			zap.String("record", record.User))
	}

	// изменение баланса по записи выплаты, с повторами при сбоях хранилища
	err = r.applyLedger(ctx, record)
	if err != nil {
		outcome = "ledger_error"
		r.logger.Error("Ledger update after gateway event",
			zap.Error(err),
			zap.String("transaction", record.TransactionID),
			zap.String("user", record.User),
			zap.String("status", string(record.Status)),
			zap.Int64("tokens", record.Tokens))
		if errors.Is(err, model.ErrInconsistent) {
			return err
		}
		return r.reopen(ctx, record, err)
	}

	if r.publisher != nil {
		if perr := r.publisher.Publish(ctx, record); perr != nil {
			r.logger.Error("Publish payout result", zap.Error(perr), zap.String("transaction", record.TransactionID))
		}
	}
	r.logger.Info("Payment resolved",
		zap.String("transaction", record.TransactionID),
		zap.String("status", string(record.Status)))
	return nil
}

// Возврат выплаты в pending после сбоя хранилища балансов, чтобы повторная
// доставка события снова прошла Resolve и изменила баланс
func (r *Reconciler) reopen(ctx context.Context, record model.PaymentRecord, cause error) error {
	err := r.payments.Reopen(context.WithoutCancel(ctx), record.TransactionID, record.Status)
	if err != nil {
		r.logger.Error("Reopen payment, tokens need manual reconciliation",
			zap.Error(err),
			zap.String("transaction", record.TransactionID),
			zap.String("user", record.User),
			zap.String("status", string(record.Status)),
			zap.Int64("tokens", record.Tokens))
		return cause
	}
	r.logger.Warn("Payment reopened",
		zap.String("transaction", record.TransactionID),
		zap.String("status", string(record.Status)))
	return fmt.Errorf("%w: %v", model.ErrReconcileDeferred, cause)
}

func (r *Reconciler) applyLedger(ctx context.Context, record model.PaymentRecord) error {
	op := func() error {
		var err error
		switch record.Status {
		case model.PaymentCompleted:
			err = r.ledger.Settle(ctx, record.User, record.Tokens, record.Amount)
		case model.PaymentFailed:
			err = r.ledger.Refund(ctx, record.User, record.Tokens, record.Amount)
		default:
			return backoff.Permanent(fmt.Errorf("unexpected status %s", record.Status))
		}
		if errors.Is(err, model.ErrInconsistent) {
			return backoff.Permanent(err)
		}
		return err
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(ledgerBackOff(), ledgerRetries), ctx)
	return backoff.Retry(op, policy)
}
