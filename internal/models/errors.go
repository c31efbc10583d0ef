package rewards

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidAmount       = errors.New("invalid token amount")
	ErrInsufficientBalance = errors.New("insufficient tokens available for cash out")
	ErrGateway             = errors.New("payment processing failed")
	ErrUnknownTransaction  = errors.New("unknown transaction")
	ErrDuplicateEvent      = errors.New("duplicate event")
	ErrInvalidSignature    = errors.New("webhook signature verification failed")
	ErrInconsistent        = errors.New("ledger state is inconsistent")
	ErrAlreadyClaimed      = errors.New("completion already awarded")
	ErrReconcileDeferred   = errors.New("payment reopened, event must be redelivered")
)
