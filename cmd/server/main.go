package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/glkeru/rewards/internal/api"
	rewardsgrpc "github.com/glkeru/rewards/internal/api/grpc"
	config "github.com/glkeru/rewards/internal/config"
	db "github.com/glkeru/rewards/internal/db"
	stripe "github.com/glkeru/rewards/internal/external/stripe"
	rabbit "github.com/glkeru/rewards/internal/external/rabbitmq"
	interf "github.com/glkeru/rewards/internal/interfaces"
	services "github.com/glkeru/rewards/internal/services"
	otel "github.com/glkeru/rewards/observability/otel"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

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
	err = cfg.RequireGateway()
	if err != nil {
		panic(err)
	}
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// tracing
	if cfg.OtelEndpoint != "" {
		shutdown, err := otel.InitTracer(ctx, cfg.OtelEndpoint, "rewards", logger)
		if err != nil {
			logger.Error("Tracer init", zap.Error(err))
		} else {
			defer shutdown(context.Background())
		}
	}

	// database
	storage, err := db.OpenStorage(ctx, cfg, logger)
	if err != nil {
		panic(err)
	}
	defer storage.Close(context.Background())

	// cache
	cache := db.OpenCache(cfg, logger)

	// payout results
	var publisher interf.ResultPublisher
	if cfg.RabbitURL != "" {
		rp, err := rabbit.NewRabbitPublisher(cfg.RabbitURL)
		if err != nil {
			logger.Error("RabbitMQ is not available", zap.Error(err))
		} else {
			defer rp.Close()
			publisher = rp
		}
	}

	// gateway
	gateway := stripe.NewStripeGateway(cfg.StripeKey, cfg.StripeWebhookSecret, cfg.StripeURL, nil, logger)

	// services
	ledger := services.NewLedger(storage.Ledger, cache, logger)
	payout := services.NewPayoutService(ledger, storage.Payments, gateway, services.PayoutSettings{
		Rate:       cfg.Rate,
		MinCashout: cfg.MinCashout,
		Currency:   cfg.Currency,
		Timeout:    cfg.GatewayTimeout,
	}, logger)
	reconciler := services.NewReconciler(ledger, storage.Payments, publisher, logger)
	completions := services.NewCompletionService(ledger, storage.Completions, storage.Catalog, logger)
	dashboard := services.NewDashboardService(ledger, storage.Payments, cfg.Rate)

	// api handlers
	r := api.NewHandler(dashboard, payout, reconciler, completions, gateway, cfg.InternalToken, logger)
	r.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Handler:      otelhttp.NewHandler(r, "rewards"),
		Addr:         ":" + cfg.Port,
		WriteTimeout: cfg.GatewayTimeout + 10*time.Second,
		ReadTimeout:  10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server started", zap.String("port", cfg.Port), zap.String("storage", cfg.Storage))
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	// grpc для внутренних сервисов, только с общим секретом
	var grpcServer *grpc.Server
	if cfg.InternalToken != "" {
		listener, err := net.Listen("tcp", ":"+cfg.GrpcPort)
		if err != nil {
			panic(err)
		}
		grpcServer = rewardsgrpc.NewServer(rewardsgrpc.NewRewardsService(dashboard, logger), cfg.InternalToken)
		g.Go(func() error {
			logger.Info("gRPC server started", zap.String("port", cfg.GrpcPort))
			return grpcServer.Serve(listener)
		})
	} else {
		logger.Warn("REWARDS_INTERNAL_TOKEN is not set, /completions and gRPC are disabled")
	}

	// shutdown
	g.Go(func() error {
		<-gctx.Done()
		if grpcServer != nil {
			grpcServer.GracefulStop()
		}
		timeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(timeout)
	})
	err = g.Wait()
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
