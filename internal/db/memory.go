package rewards

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	model "github.com/glkeru/rewards/internal/models"
	"github.com/shopspring/decimal"
)

// Хранилище в памяти: локальный запуск и тесты.
// Все изменения под одним мьютексом, поэтому read-modify-write атомарны
type MemoryDB struct {
	mu          sync.Mutex
	balances    map[string]*model.Balance
	payments    map[string]*model.PaymentRecord
	completions map[string]*model.CompletionMarker
	catalog     map[string]int64
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		balances:    make(map[string]*model.Balance),
		payments:    make(map[string]*model.PaymentRecord),
		completions: make(map[string]*model.CompletionMarker),
		catalog:     make(map[string]int64),
	}
}

func (m *MemoryDB) balance(user string) *model.Balance {
	b, ok := m.balances[user]
	if !ok {
		b = &model.Balance{User: user, TotalEarnings: decimal.Zero}
		m.balances[user] = b
	}
	return b
}

func (m *MemoryDB) Award(ctx context.Context, user string, tokens int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.balance(user)
	b.TotalTokens += tokens
	b.AvailableTokens += tokens
	return nil
}

func (m *MemoryDB) Reserve(ctx context.Context, user string, tokens int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.balances[user]
	if !ok || b.AvailableTokens < tokens {
		return model.ErrInsufficientBalance
	}
	b.AvailableTokens -= tokens
	b.CashedOutTokens += tokens
	return nil
}

func (m *MemoryDB) Settle(ctx context.Context, user string, tokens int64, amount decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.balances[user]
	if !ok || b.CashedOutTokens < tokens {
		return fmt.Errorf("settle %d tokens for %s: %w", tokens, user, model.ErrInconsistent)
	}
	b.TotalEarnings = b.TotalEarnings.Add(amount)
	return nil
}

func (m *MemoryDB) Refund(ctx context.Context, user string, tokens int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.balances[user]
	if !ok || b.CashedOutTokens < tokens {
		return model.ErrInconsistent
	}
	b.CashedOutTokens -= tokens
	b.AvailableTokens += tokens
	return nil
}

func (m *MemoryDB) GetBalance(ctx context.Context, user string) (model.Balance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.balances[user]
	if !ok {
		return model.Balance{}, model.ErrNotFound
	}
	return *b, nil
}

// Выплаты
func (m *MemoryDB) Create(ctx context.Context, record model.PaymentRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payments[record.TransactionID]; ok {
		return model.ErrDuplicateEvent
	}
	r := record
	m.payments[record.TransactionID] = &r
	return nil
}

func (m *MemoryDB) Resolve(ctx context.Context, transactionId string, status model.PaymentStatus) (model.PaymentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.payments[transactionId]
	if !ok {
		return model.PaymentRecord{}, model.ErrUnknownTransaction
	}
	if r.Status != model.PaymentPending {
		return *r, model.ErrDuplicateEvent
	}
	r.Status = status
	r.UpdatedAt = time.Now().UTC()
	return *r, nil
}

// Возврат выплаты в pending, если статус не менялся с from
func (m *MemoryDB) Reopen(ctx context.Context, transactionId string, from model.PaymentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.payments[transactionId]
	if !ok || r.Status != from {
		return fmt.Errorf("payment %s in status %s %w", transactionId, from, model.ErrNotFound)
	}
	r.Status = model.PaymentPending
	r.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *MemoryDB) GetByTransaction(ctx context.Context, transactionId string) (model.PaymentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.payments[transactionId]
	if !ok {
		return model.PaymentRecord{}, model.ErrNotFound
	}
	return *r, nil
}

func (m *MemoryDB) ListByUser(ctx context.Context, user string) ([]model.PaymentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var records []model.PaymentRecord
	for _, r := range m.payments {
		if r.User == user {
			records = append(records, *r)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

// Отметки о завершении
func completionKey(user string, source model.SourceType, sourceId string) string {
	return user + "/" + string(source) + "/" + sourceId
}

func (m *MemoryDB) SaveProgress(ctx context.Context, marker model.CompletionMarker) (model.CompletionMarker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := completionKey(marker.User, marker.SourceType, marker.SourceID)
	c, ok := m.completions[key]
	if !ok {
		c = &model.CompletionMarker{User: marker.User, SourceType: marker.SourceType, SourceID: marker.SourceID}
		m.completions[key] = c
	}
	if marker.Progress > c.Progress {
		c.Progress = marker.Progress
	}
	c.Completed = c.Completed || marker.Completed
	return *c, nil
}

func (m *MemoryDB) Claim(ctx context.Context, user string, source model.SourceType, sourceId string, tokens int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.completions[completionKey(user, source, sourceId)]
	if !ok || !c.Completed || c.Awarded {
		return model.ErrAlreadyClaimed
	}
	c.Awarded = true
	c.TokensEarned = tokens
	return nil
}

func (m *MemoryDB) Release(ctx context.Context, user string, source model.SourceType, sourceId string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.completions[completionKey(user, source, sourceId)]
	if !ok {
		return model.ErrNotFound
	}
	c.Awarded = false
	c.TokensEarned = 0
	return nil
}

// Каталог наград
func catalogKey(source model.SourceType, sourceId string) string {
	return string(source) + "/" + sourceId
}

func (m *MemoryDB) SetTokenValue(source model.SourceType, sourceId string, tokens int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.catalog[catalogKey(source, sourceId)] = tokens
}

func (m *MemoryDB) TokenValue(ctx context.Context, source model.SourceType, sourceId string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tokens, ok := m.catalog[catalogKey(source, sourceId)]
	if !ok {
		return 0, fmt.Errorf("%s %s %w", source, sourceId, model.ErrNotFound)
	}
	return tokens, nil
}
