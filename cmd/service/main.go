package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/chat-service/internal/badge"
	"github.com/s21platform/chat-service/internal/client/centrifugo"
	"github.com/s21platform/chat-service/internal/config"
	"github.com/s21platform/chat-service/internal/databus/changefeed"
	"github.com/s21platform/chat-service/internal/infra"
	"github.com/s21platform/chat-service/internal/pkg/jwt"
	"github.com/s21platform/chat-service/internal/pkg/retry"
	"github.com/s21platform/chat-service/internal/pkg/validator"
	db "github.com/s21platform/chat-service/internal/repository/postgres"
	"github.com/s21platform/chat-service/internal/rest"
	"github.com/s21platform/chat-service/internal/service"
)

const changefeedConsumerGroupID = "chat-changefeed-dispatcher"

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	badgeSync := badge.New(cfg, dbRepo)
	defer badgeSync.Close()

	centrifugeClient := centrifugo.New(cfg)
	defer centrifugeClient.Close()

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Centrifuge.JWTSecret)

	engine := service.NewEngine(
		dbRepo,
		badgeSync,
		centrifugeClient,
		vldtr,
		retry.DefaultPolicy(),
		uint64(cfg.Chat.PageSize),
	)

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	ctx := context.WithValue(context.Background(), config.KeyMetrics, metrics)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	consumerConfig := kafkalib.DefaultConsumerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.ChangefeedTopic,
		changefeedConsumerGroupID,
	)
	consumer, err := kafkalib.NewConsumer(consumerConfig, metrics)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create consumer: %v", err))
	}

	changefeedHandler := changefeed.New(engine)
	consumer.RegisterHandler(ctx, func(ctx context.Context, in []byte) error {
		changefeedHandler.Handler(ctx, in)
		return nil
	})

	handler := rest.New(engine, jwtGenerator)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})

	handler.AttachRoutes(router)
	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
	}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
