package rewards

import (
	"context"
	"errors"
	"fmt"
	"time"

	model "github.com/glkeru/rewards/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const paymentsCollection = "payments"

type paymentDoc struct {
	ID            string               `bson:"id"`
	User          string               `bson:"userId"`
	Amount        primitive.Decimal128 `bson:"amount"`
	Tokens        int64                `bson:"tokens"`
	TransactionID string               `bson:"transactionId"`
	Status        string               `bson:"status"`
	CreatedAt     time.Time            `bson:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt"`
}

func (d paymentDoc) record() (model.PaymentRecord, error) {
	amount, err := fromDecimal128(d.Amount)
	if err != nil {
		return model.PaymentRecord{}, err
	}
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return model.PaymentRecord{}, err
	}
	return model.PaymentRecord{
		ID:            id,
		User:          d.User,
		Amount:        amount,
		Tokens:        d.Tokens,
		TransactionID: d.TransactionID,
		Status:        model.PaymentStatus(d.Status),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}, nil
}

type PaymentsDB struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewPaymentsDB(db *mongo.Database, logger *zap.Logger) *PaymentsDB {
	return newPaymentsDB(db.Collection(paymentsCollection), logger)
}

func newPaymentsDB(coll *mongo.Collection, logger *zap.Logger) *PaymentsDB {
	return &PaymentsDB{coll, logger}
}

func (p *PaymentsDB) Create(ctx context.Context, record model.PaymentRecord) error {
	amount, err := toDecimal128(record.Amount)
	if err != nil {
		return err
	}
	doc := paymentDoc{
		ID:            record.ID.String(),
		User:          record.User,
		Amount:        amount,
		Tokens:        record.Tokens,
		TransactionID: record.TransactionID,
		Status:        string(record.Status),
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
	_, err = p.coll.InsertOne(ctx, doc)
	if err != nil {
		p.logger.Error("Create payment error",
			zap.Error(err),
			zap.String("transaction", record.TransactionID))
		return err
	}
	return nil
}

// Перевод из pending в конечный статус. Выполняется один раз на транзакцию
func (p *PaymentsDB) Resolve(ctx context.Context, transactionId string, status model.PaymentStatus) (model.PaymentRecord, error) {
	filter := bson.M{"transactionId": transactionId, "status": string(model.PaymentPending)}
	update := bson.M{"$set": bson.M{"status": string(status), "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc paymentDoc
	err := p.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err == nil {
		return doc.record()
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return model.PaymentRecord{}, err
	}

	// не pending: либо уже в конечном статусе, либо неизвестная транзакция
	record, err := p.GetByTransaction(ctx, transactionId)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.PaymentRecord{}, model.ErrUnknownTransaction
		}
		return model.PaymentRecord{}, err
	}
	return record, model.ErrDuplicateEvent
}

// Возврат в pending, если статус все еще from
func (p *PaymentsDB) Reopen(ctx context.Context, transactionId string, from model.PaymentStatus) error {
	filter := bson.M{"transactionId": transactionId, "status": string(from)}
	update := bson.M{"$set": bson.M{"status": string(model.PaymentPending), "updatedAt": time.Now().UTC()}}
	res, err := p.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		p.logger.Error("Reopen payment error",
			zap.Error(err),
			zap.String("transaction", transactionId))
		return err
	}
	if res.ModifiedCount == 0 {
		return fmt.Errorf("payment %s in status %s %w", transactionId, from, model.ErrNotFound)
	}
	return nil
}

func (p *PaymentsDB) GetByTransaction(ctx context.Context, transactionId string) (model.PaymentRecord, error) {
	var doc paymentDoc
	err := p.coll.FindOne(ctx, bson.M{"transactionId": transactionId}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.PaymentRecord{}, model.ErrNotFound
		}
		return model.PaymentRecord{}, err
	}
	return doc.record()
}

func (p *PaymentsDB) ListByUser(ctx context.Context, user string) ([]model.PaymentRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := p.coll.Find(ctx, bson.M{"userId": user}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []model.PaymentRecord
	for cursor.Next(ctx) {
		var doc paymentDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		record, err := doc.record()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, cursor.Err()
}
