// Job - начисление токенов за завершенные курсы и проекты
// Опрос Kafka -> отметка о завершении -> Ledger.Award -> коммит непрерывного префикса смещений
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	config "github.com/glkeru/rewards/internal/config"
	db "github.com/glkeru/rewards/internal/db"
	kafka "github.com/glkeru/rewards/internal/external/kafka"
	model "github.com/glkeru/rewards/internal/models"
	services "github.com/glkeru/rewards/internal/services"
	otel "github.com/glkeru/rewards/observability/otel"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxRetryTime = time.Minute

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	err = cfg.RequireKafka()
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.OtelEndpoint != "" {
		shutdown, err := otel.InitTracer(ctx, cfg.OtelEndpoint, "rewards-completions", logger)
		if err != nil {
			logger.Error("Tracer init", zap.Error(err))
		} else {
			defer shutdown(context.Background())
		}
	}

	// kafka
	reader, err := kafka.NewCompletionReader(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroup)
	if err != nil {
		panic(err)
	}
	defer reader.Close()

	// database
	storage, err := db.OpenStorage(ctx, cfg, logger)
	if err != nil {
		panic(err)
	}
	defer storage.Close(context.Background())

	// services
	ledger := services.NewLedger(storage.Ledger, db.OpenCache(cfg, logger), logger)
	serv := services.NewCompletionService(ledger, storage.Completions, storage.Catalog, logger)

	// обработчики ограничены семафором, смещения коммитятся по порядку
	g := &errgroup.Group{}
	semaphore := make(chan struct{}, cfg.Workers)
	offsets := kafka.NewOffsetTracker(reader.Commit)

loop:
	for {
		msg, err := reader.Fetch(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				logger.Error("Kafka fetch", zap.Error(err))
			}
			break loop
		}

		select {
		case semaphore <- struct{}{}:
		case <-ctx.Done():
			break loop
		}
		offsets.Track(msg)
		g.Go(func() error {
			defer func() { <-semaphore }()
			event, err := kafka.DecodeCompletion(msg)
			if err != nil {
				logger.Error("Skip message", zap.Error(err))
			} else {
				complete(ctx, serv, event, logger)
			}
			// коммит и после ошибки, иначе сообщение блокирует партицию
			err = offsets.Done(context.WithoutCancel(ctx), msg)
			if err != nil {
				logger.Error("Kafka commit", zap.Error(err), zap.Int64("offset", msg.Offset))
			}
			return nil
		})
	}
	g.Wait()
	logger.Info("Completions job stopped")
}

// Начисление с повторами при сбоях хранилища. Ошибки валидации не повторяются
func complete(ctx context.Context, serv *services.CompletionService, event model.CompletionEvent, logger *zap.Logger) {
	var awarded int64
	op := func() error {
		var err error
		awarded, err = serv.Complete(ctx, event)
		var verr validation.Errors
		if errors.As(err, &verr) || errors.Is(err, model.ErrInvalidAmount) {
			return backoff.Permanent(err)
		}
		return err
	}
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = maxRetryTime
	err := backoff.RetryNotify(op, backoff.WithContext(policy, ctx), func(err error, d time.Duration) {
		logger.Warn("Completion retry", zap.Error(err), zap.String("user", event.UserID), zap.Duration("after", d))
	})
	if err != nil {
		logger.Error("Completion failed",
			zap.Error(err),
			zap.String("user", event.UserID),
			zap.String("type", string(event.SourceType)),
			zap.String("source", event.SourceID))
		return
	}
	if awarded > 0 {
		logger.Info("Completion processed", zap.String("user", event.UserID), zap.Int64("tokens", awarded))
	}
}
