package rewards

import (
	"context"
	"errors"

	interf "github.com/glkeru/rewards/internal/interfaces"
	model "github.com/glkeru/rewards/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Баланс токенов пользователя: начисление, резерв, подтверждение и возврат выплат
type Ledger struct {
	db     interf.LedgerStorage
	cache  interf.CacheStorage
	logger *zap.Logger
}

func NewLedger(db interf.LedgerStorage, cache interf.CacheStorage, logger *zap.Logger) *Ledger {
	return &Ledger{db, cache, logger}
}

// Начисление за завершение. Вызывающий гарантирует один вызов на событие завершения
func (l *Ledger) Award(ctx context.Context, user string, tokens int64) error {
	if tokens <= 0 {
		return model.ErrInvalidAmount
	}
	err := l.db.Award(ctx, user, tokens)
	if err != nil {
		return err
	}
	tokensAwarded.Add(float64(tokens))
	l.invalidate(ctx, user)
	l.logger.Info("tokens awarded", zap.String("user", user), zap.Int64("tokens", tokens))
	return nil
}

func (l *Ledger) Reserve(ctx context.Context, user string, tokens int64) error {
	if tokens <= 0 {
		return model.ErrInvalidAmount
	}
	err := l.db.Reserve(ctx, user, tokens)
	if err != nil {
		return err
	}
	l.invalidate(ctx, user)
	return nil
}

// Подтверждение выплаты шлюзом: только здесь растет totalEarnings
func (l *Ledger) Settle(ctx context.Context, user string, tokens int64, amount decimal.Decimal) error {
	err := l.db.Settle(ctx, user, tokens, amount)
	if err != nil {
		return err
	}
	l.invalidate(ctx, user)
	return nil
}

// Возврат токенов неуспешной выплаты. totalEarnings не меняется: до Settle он не увеличивался
func (l *Ledger) Refund(ctx context.Context, user string, tokens int64, amount decimal.Decimal) error {
	err := l.db.Refund(ctx, user, tokens)
	if err != nil {
		return err
	}
	l.invalidate(ctx, user)
	l.logger.Info("tokens refunded",
		zap.String("user", user),
		zap.Int64("tokens", tokens),
		zap.String("amount", amount.String()))
	return nil
}

// Баланс: кэш, затем хранилище. Неизвестный пользователь - нулевой баланс
func (l *Ledger) Balance(ctx context.Context, user string) (model.Balance, error) {
	var version int64
	cacheable := false
	if l.cache != nil {
		balance, err := l.cache.GetBalance(ctx, user)
		if err == nil {
			return balance, nil
		}
		// версия до чтения из хранилища: изменение после нее не даст записать старый снимок
		version, err = l.cache.BalanceVersion(ctx, user)
		if err != nil {
			l.logger.Error("Balance version", zap.Error(err), zap.String("user", user))
		} else {
			cacheable = true
		}
	}
	balance, err := l.db.GetBalance(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Balance{User: user, TotalEarnings: decimal.Zero}, nil
		}
		return model.Balance{}, err
	}
	if cacheable {
		err = l.cache.SetBalance(ctx, balance, version)
		if err != nil {
			l.logger.Error("Cache balance", zap.Error(err), zap.String("user", user))
		}
	}
	return balance, nil
}

// инвалидировать кэш баланса
func (l *Ledger) invalidate(ctx context.Context, user string) {
	if l.cache == nil {
		return
	}
	err := l.cache.InvalidateBalance(ctx, user)
	if err != nil {
		l.logger.Error("Invalidate balance", zap.Error(err), zap.String("user", user))
	}
}
