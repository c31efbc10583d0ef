package rewards

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Баланс пользователя в токенах
type Balance struct {
	User            string          `json:"userId"`
	TotalTokens     int64           `json:"totalTokens"`     // заработано за все время
	AvailableTokens int64           `json:"availableTokens"` // можно вывести
	CashedOutTokens int64           `json:"cashedOutTokens"` // в выплатах (в процессе или завершенных)
	TotalEarnings   decimal.Decimal `json:"totalEarnings"`   // подтвержденные выплаты в валюте
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Terminal() bool {
	return s == PaymentCompleted || s == PaymentFailed
}

// Выплата через платежный шлюз
type PaymentRecord struct {
	ID            uuid.UUID       `json:"id"`
	User          string          `json:"userId"`
	Amount        decimal.Decimal `json:"amount"`
	Tokens        int64           `json:"tokens"`
	TransactionID string          `json:"transactionId"`
	Status        PaymentStatus   `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type SourceType string

const (
	SourceCourse  SourceType = "course"
	SourceProject SourceType = "project"
)

// Событие завершения курса или проекта
type CompletionEvent struct {
	UserID     string     `json:"userId"`
	SourceType SourceType `json:"sourceType"`
	SourceID   string     `json:"sourceId"`
	TokenValue int64      `json:"tokenValue"`
}

func (e CompletionEvent) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.UserID, validation.Required),
		validation.Field(&e.SourceType, validation.Required, validation.In(SourceCourse, SourceProject)),
		validation.Field(&e.SourceID, validation.Required),
		validation.Field(&e.TokenValue, validation.Min(int64(0))),
	)
}

// Отметка о завершении: награда выдается только при первом достижении порога
type CompletionMarker struct {
	User         string     `json:"userId"`
	SourceType   SourceType `json:"sourceType"`
	SourceID     string     `json:"sourceId"`
	Progress     int        `json:"progress"`
	Completed    bool       `json:"completed"`
	Awarded      bool       `json:"awarded"`
	TokensEarned int64      `json:"tokensEarned"`
}

const CompleteProgress = 100

type CashoutRequest struct {
	Tokens int64 `json:"tokens"`
}

func (r CashoutRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Tokens, validation.Required, validation.Min(int64(1))),
	)
}

type CashoutResult struct {
	Success       bool            `json:"success"`
	Message       string          `json:"message"`
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	Tokens        int64           `json:"tokens"`
}

type Dashboard struct {
	TotalTokens       int64           `json:"totalTokens"`
	AvailableTokens   int64           `json:"availableTokens"`
	CashedOutTokens   int64           `json:"cashedOutTokens"`
	TotalEarnings     decimal.Decimal `json:"totalEarnings"`
	AvailableEarnings decimal.Decimal `json:"availableEarnings"`
	PaymentHistory    []PaymentRecord `json:"paymentHistory"`
}
