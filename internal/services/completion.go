package rewards

import (
	"context"
	"errors"

	interf "github.com/glkeru/rewards/internal/interfaces"
	model "github.com/glkeru/rewards/internal/models"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Отслеживание завершения курсов и проектов. Награда выдается только при первом
// достижении порога: отметка захватывается атомарно, затем начисляются токены.
// Стоимость курса или проекта берется из каталога, а не из запроса пользователя
type CompletionService struct {
	ledger  *Ledger
	db      interf.CompletionStorage
	catalog interf.CatalogStorage
	logger  *zap.Logger
}

func NewCompletionService(ledger *Ledger, db interf.CompletionStorage, catalog interf.CatalogStorage, logger *zap.Logger) *CompletionService {
	return &CompletionService{ledger, db, catalog, logger}
}

// Прогресс курса в процентах. Возвращает сохраненную отметку (прогресс не убывает)
func (c *CompletionService) CourseProgress(ctx context.Context, user string, courseId string, progress int) (model.CompletionMarker, int64, error) {
	tokens, err := c.catalog.TokenValue(ctx, model.SourceCourse, courseId)
	if err != nil {
		return model.CompletionMarker{}, 0, err
	}
	progress = max(0, min(progress, model.CompleteProgress))
	return c.track(ctx, model.CompletionMarker{
		User:       user,
		SourceType: model.SourceCourse,
		SourceID:   courseId,
		Progress:   progress,
		Completed:  progress >= model.CompleteProgress,
	}, tokens)
}

// Отметка о завершении проекта
func (c *CompletionService) ProjectCompleted(ctx context.Context, user string, projectId string, completed bool) (model.CompletionMarker, int64, error) {
	tokens, err := c.catalog.TokenValue(ctx, model.SourceProject, projectId)
	if err != nil {
		return model.CompletionMarker{}, 0, err
	}
	progress := 0
	if completed {
		progress = model.CompleteProgress
	}
	return c.track(ctx, model.CompletionMarker{
		User:       user,
		SourceType: model.SourceProject,
		SourceID:   projectId,
		Progress:   progress,
		Completed:  completed,
	}, tokens)
}

// Событие завершения из внутреннего трекера (Kafka, HTTP с внутренним токеном).
// Стоимость приходит в событии. Повторная доставка не начисляет повторно
func (c *CompletionService) Complete(ctx context.Context, event model.CompletionEvent) (awarded int64, err error) {
	if err = event.Validate(); err != nil {
		return 0, err
	}
	_, awarded, err = c.track(ctx, model.CompletionMarker{
		User:       event.UserID,
		SourceType: event.SourceType,
		SourceID:   event.SourceID,
		Progress:   model.CompleteProgress,
		Completed:  true,
	}, event.TokenValue)
	return awarded, err
}

func (c *CompletionService) track(ctx context.Context, marker model.CompletionMarker, tokens int64) (model.CompletionMarker, int64, error) {
	ctx, span := tracer.Start(ctx, "Completion", trace.WithAttributes(
		attribute.String("user", marker.User),
		attribute.String("source", string(marker.SourceType)+"/"+marker.SourceID),
	))
	defer span.End()

	if tokens < 0 {
		return model.CompletionMarker{}, 0, model.ErrInvalidAmount
	}
	saved, err := c.db.SaveProgress(ctx, marker)
	if err != nil {
		return model.CompletionMarker{}, 0, err
	}
	if !saved.Completed || saved.Awarded {
		return saved, 0, nil
	}

	err = c.db.Claim(ctx, marker.User, marker.SourceType, marker.SourceID, tokens)
	if errors.Is(err, model.ErrAlreadyClaimed) {
		return saved, 0, nil
	}
	if err != nil {
		return saved, 0, err
	}
	saved.Awarded = true
	saved.TokensEarned = tokens
	if tokens == 0 {
		return saved, 0, nil
	}

	err = c.ledger.Award(ctx, marker.User, tokens)
	if err != nil {
		// отметка снимается, чтобы повтор события начислил токены
		rerr := c.db.Release(context.WithoutCancel(ctx), marker.User, marker.SourceType, marker.SourceID)
		if rerr != nil {
			c.logger.Error("Release completion",
				zap.Error(rerr),
				zap.String("user", marker.User),
				zap.String("source", marker.SourceID))
		}
		return saved, 0, err
	}
	c.logger.Info("Completion awarded",
		zap.String("user", marker.User),
		zap.String("type", string(marker.SourceType)),
		zap.String("source", marker.SourceID),
		zap.Int64("tokens", tokens))
	return saved, tokens, nil
}
