package rewards

import (
	"context"
	"errors"
	"fmt"

	model "github.com/glkeru/rewards/internal/models"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const balancesCollection = "balances"

var zero128, _ = primitive.ParseDecimal128("0")

type balanceDoc struct {
	User            string               `bson:"userId"`
	TotalTokens     int64                `bson:"totalTokens"`
	AvailableTokens int64                `bson:"availableTokens"`
	CashedOutTokens int64                `bson:"cashedOutTokens"`
	TotalEarnings   primitive.Decimal128 `bson:"totalEarnings"`
}

// Балансы в MongoDB. Счетчики меняются только через $inc с условием в фильтре,
// поэтому конкурентные операции одного пользователя не теряют обновления
type BalancesDB struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewBalancesDB(db *mongo.Database, logger *zap.Logger) *BalancesDB {
	return newBalancesDB(db.Collection(balancesCollection), logger)
}

func newBalancesDB(coll *mongo.Collection, logger *zap.Logger) *BalancesDB {
	return &BalancesDB{coll, logger}
}

// Начисление, баланс создается при первом начислении
func (b *BalancesDB) Award(ctx context.Context, user string, tokens int64) error {
	filter := bson.M{"userId": user}
	update := bson.M{
		"$inc": bson.M{"totalTokens": tokens, "availableTokens": tokens},
		"$setOnInsert": bson.M{
			"cashedOutTokens": int64(0),
			"totalEarnings":   zero128,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := b.coll.UpdateOne(ctx, filter, update, opts)
	// параллельный upsert нового пользователя: повторяем как обычное обновление
	if mongo.IsDuplicateKeyError(err) {
		_, err = b.coll.UpdateOne(ctx, filter, update, opts)
	}
	if err != nil {
		b.logger.Error("Award error", zap.Error(err), zap.String("user", user))
		return err
	}
	return nil
}

// Резерв под выплату: available -> cashedOut, только если хватает токенов
func (b *BalancesDB) Reserve(ctx context.Context, user string, tokens int64) error {
	filter := bson.M{"userId": user, "availableTokens": bson.M{"$gte": tokens}}
	update := bson.M{"$inc": bson.M{"availableTokens": -tokens, "cashedOutTokens": tokens}}
	res, err := b.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		b.logger.Error("Reserve error", zap.Error(err), zap.String("user", user))
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrInsufficientBalance
	}
	return nil
}

func (b *BalancesDB) Settle(ctx context.Context, user string, tokens int64, amount decimal.Decimal) error {
	inc, err := toDecimal128(amount)
	if err != nil {
		return err
	}
	filter := bson.M{"userId": user, "cashedOutTokens": bson.M{"$gte": tokens}}
	res, err := b.coll.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"totalEarnings": inc}})
	if err != nil {
		b.logger.Error("Settle error", zap.Error(err), zap.String("user", user))
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("settle %d tokens for %s: %w", tokens, user, model.ErrInconsistent)
	}
	return nil
}

// Возврат токенов неуспешной выплаты
func (b *BalancesDB) Refund(ctx context.Context, user string, tokens int64) error {
	filter := bson.M{"userId": user, "cashedOutTokens": bson.M{"$gte": tokens}}
	update := bson.M{"$inc": bson.M{"availableTokens": tokens, "cashedOutTokens": -tokens}}
	res, err := b.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		b.logger.Error("Refund error", zap.Error(err), zap.String("user", user))
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("refund %d tokens for %s: %w", tokens, user, model.ErrInconsistent)
	}
	return nil
}

func (b *BalancesDB) GetBalance(ctx context.Context, user string) (model.Balance, error) {
	var doc balanceDoc
	err := b.coll.FindOne(ctx, bson.M{"userId": user}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Balance{}, fmt.Errorf("balance %w", model.ErrNotFound)
		}
		return model.Balance{}, err
	}
	earnings, err := fromDecimal128(doc.TotalEarnings)
	if err != nil {
		return model.Balance{}, err
	}
	return model.Balance{
		User:            doc.User,
		TotalTokens:     doc.TotalTokens,
		AvailableTokens: doc.AvailableTokens,
		CashedOutTokens: doc.CashedOutTokens,
		TotalEarnings:   earnings,
	}, nil
}
