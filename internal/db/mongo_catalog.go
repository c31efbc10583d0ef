package rewards

import (
	"context"
	"errors"
	"fmt"

	model "github.com/glkeru/rewards/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	coursesCollection  = "courses"
	projectsCollection = "projects"
)

// Стоимость курсов и проектов из их карточек. Значение задает администратор платформы
type CatalogDB struct {
	courses  *mongo.Collection
	projects *mongo.Collection
	logger   *zap.Logger
}

func NewCatalogDB(db *mongo.Database, logger *zap.Logger) *CatalogDB {
	return newCatalogDB(db.Collection(coursesCollection), db.Collection(projectsCollection), logger)
}

func newCatalogDB(courses, projects *mongo.Collection, logger *zap.Logger) *CatalogDB {
	return &CatalogDB{courses, projects, logger}
}

// id карточки: ObjectID платформы или строка
func catalogID(sourceId string) any {
	if id, err := primitive.ObjectIDFromHex(sourceId); err == nil {
		return id
	}
	return sourceId
}

func (c *CatalogDB) TokenValue(ctx context.Context, source model.SourceType, sourceId string) (int64, error) {
	var coll *mongo.Collection
	switch source {
	case model.SourceCourse:
		coll = c.courses
	case model.SourceProject:
		coll = c.projects
	default:
		return 0, fmt.Errorf("source type %q %w", source, model.ErrNotFound)
	}

	var doc struct {
		Tokens int64 `bson:"tokens"`
	}
	opts := options.FindOne().SetProjection(bson.M{"tokens": 1})
	err := coll.FindOne(ctx, bson.M{"_id": catalogID(sourceId)}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, fmt.Errorf("%s %s %w", source, sourceId, model.ErrNotFound)
		}
		c.logger.Error("Token value error",
			zap.Error(err),
			zap.String("type", string(source)),
			zap.String("source", sourceId))
		return 0, err
	}
	return doc.Tokens, nil
}
