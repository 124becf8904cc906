package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MichalMitros/car-tracker/cmd/tracker/config"
	"github.com/MichalMitros/car-tracker/internal/api"
	"github.com/MichalMitros/car-tracker/internal/events"
	"github.com/MichalMitros/car-tracker/internal/extractor"
	"github.com/MichalMitros/car-tracker/internal/fetcher"
	"github.com/MichalMitros/car-tracker/internal/handler"
	"github.com/MichalMitros/car-tracker/internal/platform/rabbitmq"
	"github.com/MichalMitros/car-tracker/internal/platform/storage"
	"github.com/MichalMitros/car-tracker/internal/query"
	"github.com/MichalMitros/car-tracker/internal/reconciler"
	"github.com/MichalMitros/car-tracker/internal/recorder"
	"github.com/MichalMitros/car-tracker/internal/scheduler"
	"github.com/MichalMitros/car-tracker/internal/tracker"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't load config")
	}
	logger = logger.Level(cfg.Level())

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}
	defer closeWithLog(&logger, "Postgres", pgDB.Close)

	pg := storage.NewPostgres(pgDB)

	reconcilerOps := []reconciler.Option{}
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		defer closeWithLog(&logger, "Redis", redisClient.Close)

		reconcilerOps = append(reconcilerOps, reconciler.WithPublisher(events.NewRedisPublisher(redisClient, cfg.Redis.Stream)))
	}

	pageExtractor, err := extractor.NewExtractor(cfg.BaseURL, &logger)
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("baseUrl", cfg.BaseURL).
			Msg("can't create extractor")
	}

	trk := tracker.NewTracker(
		fetcher.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, &logger),
		pageExtractor,
		reconciler.NewReconciler(pg, &logger, reconcilerOps...),
		recorder.NewRecorder(pg),
		query.NewBuilder(cfg.BaseURL),
		&logger,
		tracker.WithMaxPages(cfg.MaxPages),
		tracker.WithRequestDelay(cfg.RequestDelay),
	)

	sch := scheduler.NewScheduler(pg, trk, &logger,
		scheduler.WithEnabled(cfg.ScrapingEnabled),
		scheduler.WithInterval(cfg.ScrapingInterval),
		scheduler.WithCooldown(cfg.SearchCooldown),
	)

	if cfg.RabbitMQ.URL != "" {
		amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open RabbitMQ connection")
		}
		defer closeWithLog(&logger, "RabbitMQ", amqpConnection.Close)

		mq, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open RabbitMQ channel")
		}
		defer closeWithLog(&logger, "RabbitMQ channel", mq.Close)

		if err := mq.Bind(cfg.RabbitMQ.Queue, cfg.RabbitMQ.RoutingKey); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't declare RabbitMQ queue")
		}

		// start consuming and handling run commands
		han := handler.NewHandler(mq, sch, &logger)
		if err := han.Start(ctx, cfg.RabbitMQ.Queue); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't start consuming")
		}
		defer func() {
			// wait for consumer to finish
			<-mq.Done()
		}()
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewAPI(pg, sch, &logger).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sch.Start(ctx)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()

		logger.Info().Msg("graceful shutdown start")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(egCtx), shutdownTimeout)
		defer cancel()

		sch.Stop()
		return server.Shutdown(shutdownCtx)
	})

	logger.Info().
		Str("addr", cfg.HTTPAddr).
		Bool("scrapingEnabled", cfg.ScrapingEnabled).
		Msg("car tracker up and running")

	if err := eg.Wait(); err != nil {
		logger.Error().
			Err(err).
			Msg("server failed")
	}

	// scheduler must be stopped even when server failed
	sch.Stop()
	stop()

	logger.Info().Msg("graceful shutdown successful")
}

func closeWithLog(logger *zerolog.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		logger.Error().
			Err(err).
			Str("connection", name).
			Msg("can't close connection")
	}
}
