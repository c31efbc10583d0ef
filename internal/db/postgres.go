package rewards

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	model "github.com/glkeru/rewards/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS balances (
	user_id           TEXT PRIMARY KEY,
	total_tokens      BIGINT  NOT NULL DEFAULT 0,
	available_tokens  BIGINT  NOT NULL DEFAULT 0 CHECK (available_tokens >= 0),
	cashed_out_tokens BIGINT  NOT NULL DEFAULT 0 CHECK (cashed_out_tokens >= 0),
	total_earnings    NUMERIC NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS payments (
	id             UUID PRIMARY KEY,
	user_id        TEXT        NOT NULL,
	amount         NUMERIC     NOT NULL,
	tokens         BIGINT      NOT NULL,
	transaction_id TEXT        NOT NULL UNIQUE,
	status         TEXT        NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS payments_user_idx ON payments (user_id, created_at DESC);
CREATE TABLE IF NOT EXISTS completions (
	user_id       TEXT    NOT NULL,
	source_type   TEXT    NOT NULL,
	source_id     TEXT    NOT NULL,
	progress      INT     NOT NULL DEFAULT 0,
	completed     BOOLEAN NOT NULL DEFAULT false,
	awarded       BOOLEAN NOT NULL DEFAULT false,
	tokens_earned BIGINT  NOT NULL DEFAULT 0,
	PRIMARY KEY (user_id, source_type, source_id)
);
CREATE TABLE IF NOT EXISTS reward_catalog (
	source_type TEXT   NOT NULL,
	source_id   TEXT   NOT NULL,
	tokens      BIGINT NOT NULL CHECK (tokens >= 0),
	PRIMARY KEY (source_type, source_id)
);`

var paymentColumns = []string{"id", "user_id", "amount::text", "tokens", "transaction_id", "status", "created_at", "updated_at"}

// Хранилище в PostgreSQL: балансы, выплаты и отметки о завершении
type PostgresDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgresDB(ctx context.Context, dsn string, logger *zap.Logger) (*PostgresDB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("env REWARDS_POSTGRES_DSN is not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &PostgresDB{pool, logger}, nil
}

func (p *PostgresDB) Migrate(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, schema)
	return err
}

func (p *PostgresDB) Close() {
	p.pool.Close()
}

func (p *PostgresDB) sqlError(err error, sql string, args []any) error {
	p.logger.Error("SQL error",
		zap.Error(err),
		zap.String("query", sql),
		zap.Any("args", args),
	)
	return err
}

func (p *PostgresDB) exec(ctx context.Context, query sq.Sqlizer) (int64, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, p.sqlError(err, sql, args)
	}
	tag, err := p.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, p.sqlError(err, sql, args)
	}
	return tag.RowsAffected(), nil
}

// Начисление
func (p *PostgresDB) Award(ctx context.Context, user string, tokens int64) error {
	query := sq.Insert("balances").
		Columns("user_id", "total_tokens", "available_tokens").
		Values(user, tokens, tokens).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET " +
			"total_tokens = balances.total_tokens + EXCLUDED.total_tokens, " +
			"available_tokens = balances.available_tokens + EXCLUDED.available_tokens").
		PlaceholderFormat(sq.Dollar)
	_, err := p.exec(ctx, query)
	return err
}

// Изменение счетчиков под блокировкой строки баланса
func (p *PostgresDB) locked(ctx context.Context, user string, change func(available, cashedOut int64) (sq.UpdateBuilder, error)) (err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	// блокируем строку с балансом
	var available, cashedOut int64
	row := tx.QueryRow(ctx, "SELECT available_tokens, cashed_out_tokens FROM balances WHERE user_id = $1 FOR UPDATE", user)
	err = row.Scan(&available, &cashedOut)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("balance %w", model.ErrNotFound)
		}
		return err
	}

	update, err := change(available, cashedOut)
	if err != nil {
		return err
	}
	sql, args, err := update.Where(sq.Eq{"user_id": user}).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return p.sqlError(err, sql, args)
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		return p.sqlError(err, sql, args)
	}
	return tx.Commit(ctx)
}

func (p *PostgresDB) Reserve(ctx context.Context, user string, tokens int64) error {
	err := p.locked(ctx, user, func(available, cashedOut int64) (sq.UpdateBuilder, error) {
		if available < tokens {
			return sq.UpdateBuilder{}, model.ErrInsufficientBalance
		}
		return sq.Update("balances").
			Set("available_tokens", available-tokens).
			Set("cashed_out_tokens", cashedOut+tokens), nil
	})
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrInsufficientBalance
	}
	return err
}

func (p *PostgresDB) Refund(ctx context.Context, user string, tokens int64) error {
	err := p.locked(ctx, user, func(available, cashedOut int64) (sq.UpdateBuilder, error) {
		if cashedOut < tokens {
			return sq.UpdateBuilder{}, fmt.Errorf("refund %d tokens for %s: %w", tokens, user, model.ErrInconsistent)
		}
		return sq.Update("balances").
			Set("available_tokens", available+tokens).
			Set("cashed_out_tokens", cashedOut-tokens), nil
	})
	if errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("refund %d tokens for %s: %w", tokens, user, model.ErrInconsistent)
	}
	return err
}

func (p *PostgresDB) Settle(ctx context.Context, user string, tokens int64, amount decimal.Decimal) error {
	query := sq.Update("balances").
		Set("total_earnings", sq.Expr("total_earnings + ?::numeric", amount.String())).
		Where(sq.Eq{"user_id": user}).
		Where(sq.GtOrEq{"cashed_out_tokens": tokens}).
		PlaceholderFormat(sq.Dollar)
	affected, err := p.exec(ctx, query)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("settle %d tokens for %s: %w", tokens, user, model.ErrInconsistent)
	}
	return nil
}

func (p *PostgresDB) GetBalance(ctx context.Context, user string) (model.Balance, error) {
	balance := model.Balance{User: user}
	var earnings string
	row := p.pool.QueryRow(ctx,
		"SELECT total_tokens, available_tokens, cashed_out_tokens, total_earnings::text FROM balances WHERE user_id = $1", user)
	err := row.Scan(&balance.TotalTokens, &balance.AvailableTokens, &balance.CashedOutTokens, &earnings)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Balance{}, fmt.Errorf("balance %w", model.ErrNotFound)
		}
		return model.Balance{}, err
	}
	balance.TotalEarnings, err = decimal.NewFromString(earnings)
	if err != nil {
		return model.Balance{}, err
	}
	return balance, nil
}

// Выплаты
func (p *PostgresDB) Create(ctx context.Context, record model.PaymentRecord) error {
	query := sq.Insert("payments").
		Columns("id", "user_id", "amount", "tokens", "transaction_id", "status", "created_at", "updated_at").
		Values(record.ID, record.User, sq.Expr("?::numeric", record.Amount.String()), record.Tokens,
			record.TransactionID, string(record.Status), record.CreatedAt, record.UpdatedAt).
		PlaceholderFormat(sq.Dollar)
	_, err := p.exec(ctx, query)
	return err
}

func scanPayment(row pgx.Row) (model.PaymentRecord, error) {
	var record model.PaymentRecord
	var id pgtype.UUID
	var amount, status string
	err := row.Scan(&id, &record.User, &amount, &record.Tokens, &record.TransactionID, &status, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return model.PaymentRecord{}, err
	}
	record.ID, _ = uuid.FromBytes(id.Bytes[:])
	record.Status = model.PaymentStatus(status)
	record.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return model.PaymentRecord{}, err
	}
	return record, nil
}

func (p *PostgresDB) Resolve(ctx context.Context, transactionId string, status model.PaymentStatus) (model.PaymentRecord, error) {
	sql, args, err := sq.Update("payments").
		Set("status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"transaction_id": transactionId}).
		Where(sq.Eq{"status": string(model.PaymentPending)}).
		Suffix("RETURNING " + strings.Join(paymentColumns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.PaymentRecord{}, p.sqlError(err, sql, args)
	}
	record, err := scanPayment(p.pool.QueryRow(ctx, sql, args...))
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return model.PaymentRecord{}, p.sqlError(err, sql, args)
	}

	record, err = p.GetByTransaction(ctx, transactionId)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.PaymentRecord{}, model.ErrUnknownTransaction
		}
		return model.PaymentRecord{}, err
	}
	return record, model.ErrDuplicateEvent
}

// Возврат в pending, если статус все еще from
func (p *PostgresDB) Reopen(ctx context.Context, transactionId string, from model.PaymentStatus) error {
	query := sq.Update("payments").
		Set("status", string(model.PaymentPending)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"transaction_id": transactionId, "status": string(from)}).
		PlaceholderFormat(sq.Dollar)
	affected, err := p.exec(ctx, query)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("payment %s in status %s %w", transactionId, from, model.ErrNotFound)
	}
	return nil
}

func (p *PostgresDB) GetByTransaction(ctx context.Context, transactionId string) (model.PaymentRecord, error) {
	sql, args, err := sq.Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"transaction_id": transactionId}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.PaymentRecord{}, p.sqlError(err, sql, args)
	}
	record, err := scanPayment(p.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PaymentRecord{}, model.ErrNotFound
		}
		return model.PaymentRecord{}, err
	}
	return record, nil
}

func (p *PostgresDB) ListByUser(ctx context.Context, user string) ([]model.PaymentRecord, error) {
	sql, args, err := sq.Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"user_id": user}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, p.sqlError(err, sql, args)
	}
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, p.sqlError(err, sql, args)
	}
	defer rows.Close()

	var records []model.PaymentRecord
	for rows.Next() {
		record, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Отметки о завершении
func (p *PostgresDB) SaveProgress(ctx context.Context, marker model.CompletionMarker) (model.CompletionMarker, error) {
	sql, args, err := sq.Insert("completions").
		Columns("user_id", "source_type", "source_id", "progress", "completed").
		Values(marker.User, string(marker.SourceType), marker.SourceID, marker.Progress, marker.Completed).
		Suffix("ON CONFLICT (user_id, source_type, source_id) DO UPDATE SET " +
			"progress = GREATEST(completions.progress, EXCLUDED.progress), " +
			"completed = completions.completed OR EXCLUDED.completed " +
			"RETURNING progress, completed, awarded, tokens_earned").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.CompletionMarker{}, p.sqlError(err, sql, args)
	}
	saved := model.CompletionMarker{User: marker.User, SourceType: marker.SourceType, SourceID: marker.SourceID}
	err = p.pool.QueryRow(ctx, sql, args...).Scan(&saved.Progress, &saved.Completed, &saved.Awarded, &saved.TokensEarned)
	if err != nil {
		return model.CompletionMarker{}, p.sqlError(err, sql, args)
	}
	return saved, nil
}

func completionKeyEq(user string, source model.SourceType, sourceId string) sq.Eq {
	return sq.Eq{"user_id": user, "source_type": string(source), "source_id": sourceId}
}

func (p *PostgresDB) Claim(ctx context.Context, user string, source model.SourceType, sourceId string, tokens int64) error {
	query := sq.Update("completions").
		Set("awarded", true).
		Set("tokens_earned", tokens).
		Where(completionKeyEq(user, source, sourceId)).
		Where(sq.Eq{"completed": true, "awarded": false}).
		PlaceholderFormat(sq.Dollar)
	affected, err := p.exec(ctx, query)
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrAlreadyClaimed
	}
	return nil
}

func (p *PostgresDB) Release(ctx context.Context, user string, source model.SourceType, sourceId string) error {
	query := sq.Update("completions").
		Set("awarded", false).
		Set("tokens_earned", 0).
		Where(completionKeyEq(user, source, sourceId)).
		PlaceholderFormat(sq.Dollar)
	affected, err := p.exec(ctx, query)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("completion %w", model.ErrNotFound)
	}
	return nil
}

// Каталог наград
func (p *PostgresDB) SetTokenValue(ctx context.Context, source model.SourceType, sourceId string, tokens int64) error {
	query := sq.Insert("reward_catalog").
		Columns("source_type", "source_id", "tokens").
		Values(string(source), sourceId, tokens).
		Suffix("ON CONFLICT (source_type, source_id) DO UPDATE SET tokens = EXCLUDED.tokens").
		PlaceholderFormat(sq.Dollar)
	_, err := p.exec(ctx, query)
	return err
}

func (p *PostgresDB) TokenValue(ctx context.Context, source model.SourceType, sourceId string) (int64, error) {
	sql, args, err := sq.Select("tokens").
		From("reward_catalog").
		Where(sq.Eq{"source_type": string(source), "source_id": sourceId}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, p.sqlError(err, sql, args)
	}
	var tokens int64
	err = p.pool.QueryRow(ctx, sql, args...).Scan(&tokens)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%s %s %w", source, sourceId, model.ErrNotFound)
		}
		return 0, p.sqlError(err, sql, args)
	}
	return tokens, nil
}
