package rewards

import (
	"context"

	model "github.com/glkeru/rewards/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=./../services/mock_rewards_test.go -package=rewards . LedgerStorage,PaymentStorage,CompletionStorage,CatalogStorage,CacheStorage,Gateway,ResultPublisher
//go:generate mockgen -destination=./../api/mock_gateway_test.go -package=rewards . Gateway

// Счетчики токенов. Каждая операция - одно атомарное условное изменение
type LedgerStorage interface {
	Award(ctx context.Context, user string, tokens int64) error
	Reserve(ctx context.Context, user string, tokens int64) error
	Settle(ctx context.Context, user string, tokens int64, amount decimal.Decimal) error
	Refund(ctx context.Context, user string, tokens int64) error
	GetBalance(ctx context.Context, user string) (model.Balance, error)
}

// Журнал выплат
type PaymentStorage interface {
	Create(ctx context.Context, record model.PaymentRecord) error
	Resolve(ctx context.Context, transactionId string, status model.PaymentStatus) (model.PaymentRecord, error)
	// возврат в pending, только если статус все еще from
	Reopen(ctx context.Context, transactionId string, from model.PaymentStatus) error
	GetByTransaction(ctx context.Context, transactionId string) (model.PaymentRecord, error)
	ListByUser(ctx context.Context, user string) ([]model.PaymentRecord, error)
}

// Отметки о завершении курсов и проектов
type CompletionStorage interface {
	SaveProgress(ctx context.Context, marker model.CompletionMarker) (model.CompletionMarker, error)
	Claim(ctx context.Context, user string, source model.SourceType, sourceId string, tokens int64) error
	Release(ctx context.Context, user string, source model.SourceType, sourceId string) error
}

// Стоимость курсов и проектов в токенах. Неизвестный id - ErrNotFound
type CatalogStorage interface {
	TokenValue(ctx context.Context, source model.SourceType, sourceId string) (int64, error)
}

// Кэш балансов. Версия защищает от записи устаревшего снимка
type CacheStorage interface {
	GetBalance(ctx context.Context, user string) (model.Balance, error)
	BalanceVersion(ctx context.Context, user string) (int64, error)
	SetBalance(ctx context.Context, balance model.Balance, version int64) error
	InvalidateBalance(ctx context.Context, user string) error
}

// Платежный шлюз
type Gateway interface {
	CreatePayout(ctx context.Context, req model.PayoutRequest) (transactionId string, err error)
	ParseEvent(payload []byte, signature string) (model.GatewayEvent, error)
}

// Уведомления о результате выплаты
type ResultPublisher interface {
	Publish(ctx context.Context, record model.PaymentRecord) error
}
