package rewards

import (
	"context"
	"fmt"

	model "github.com/glkeru/rewards/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const completionsCollection = "completions"

type completionDoc struct {
	User         string `bson:"userId"`
	SourceType   string `bson:"sourceType"`
	SourceID     string `bson:"sourceId"`
	Progress     int    `bson:"progress"`
	Completed    bool   `bson:"completed"`
	Awarded      bool   `bson:"awarded"`
	TokensEarned int64  `bson:"tokensEarned"`
}

type CompletionsDB struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewCompletionsDB(db *mongo.Database, logger *zap.Logger) *CompletionsDB {
	return newCompletionsDB(db.Collection(completionsCollection), logger)
}

func newCompletionsDB(coll *mongo.Collection, logger *zap.Logger) *CompletionsDB {
	return &CompletionsDB{coll, logger}
}

func completionFilter(user string, source model.SourceType, sourceId string) bson.M {
	return bson.M{"userId": user, "sourceType": string(source), "sourceId": sourceId}
}

// Прогресс только растет, флаг completed не сбрасывается ($max: false < true)
func (c *CompletionsDB) SaveProgress(ctx context.Context, marker model.CompletionMarker) (model.CompletionMarker, error) {
	filter := completionFilter(marker.User, marker.SourceType, marker.SourceID)
	update := bson.M{
		"$max":         bson.M{"progress": marker.Progress, "completed": marker.Completed},
		"$setOnInsert": bson.M{"awarded": false, "tokensEarned": int64(0)},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc completionDoc
	err := c.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if mongo.IsDuplicateKeyError(err) {
		err = c.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	}
	if err != nil {
		c.logger.Error("Save progress error",
			zap.Error(err),
			zap.String("user", marker.User),
			zap.String("source", marker.SourceID))
		return model.CompletionMarker{}, err
	}
	return model.CompletionMarker{
		User:         doc.User,
		SourceType:   model.SourceType(doc.SourceType),
		SourceID:     doc.SourceID,
		Progress:     doc.Progress,
		Completed:    doc.Completed,
		Awarded:      doc.Awarded,
		TokensEarned: doc.TokensEarned,
	}, nil
}

// Захват награды: удается только одному вызову на отметку
func (c *CompletionsDB) Claim(ctx context.Context, user string, source model.SourceType, sourceId string, tokens int64) error {
	filter := completionFilter(user, source, sourceId)
	filter["completed"] = true
	filter["awarded"] = false
	update := bson.M{"$set": bson.M{"awarded": true, "tokensEarned": tokens}}
	res, err := c.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return model.ErrAlreadyClaimed
	}
	return nil
}

func (c *CompletionsDB) Release(ctx context.Context, user string, source model.SourceType, sourceId string) error {
	update := bson.M{"$set": bson.M{"awarded": false, "tokensEarned": int64(0)}}
	res, err := c.coll.UpdateOne(ctx, completionFilter(user, source, sourceId), update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("completion %w", model.ErrNotFound)
	}
	return nil
}
