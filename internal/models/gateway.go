package rewards

const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"

	PurposeCashout = "token_cashout"
)

// Метаданные транзакции шлюза, по ним событие сопоставляется с выплатой
type PayoutMetadata struct {
	UserID  string `json:"userId"`
	Tokens  int64  `json:"tokens"`
	Purpose string `json:"purpose"`
}

// Запрос на создание транзакции в шлюзе
type PayoutRequest struct {
	IdempotencyKey string
	Amount         int64 // в минимальных единицах валюты
	Currency       string
	Metadata       PayoutMetadata
}

// Проверенное (подпись) событие шлюза
type GatewayEvent struct {
	ID            string         `json:"id"`
	Type          string         `json:"eventType"`
	TransactionID string         `json:"transactionId"`
	Metadata      PayoutMetadata `json:"metadata"`
}
