// Command server runs the café storefront HTTP API.
//
// @title        Lion's Café Storefront API
// @version      1.0
// @description  Menu, ordering, reservations and payments for the café storefront.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Staff token: "Bearer <jwt>"
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/lionscafe/storefront/docs"
	"github.com/lionscafe/storefront/internal/api"
	"github.com/lionscafe/storefront/internal/api/handler"
	"github.com/lionscafe/storefront/internal/core/ports"
	"github.com/lionscafe/storefront/internal/core/service"
	mongodb "github.com/lionscafe/storefront/internal/infrastructure/db/mongo"
	redisdb "github.com/lionscafe/storefront/internal/infrastructure/db/redis"
	"github.com/lionscafe/storefront/internal/infrastructure/memory"
	"github.com/lionscafe/storefront/internal/infrastructure/messaging"
	"github.com/lionscafe/storefront/internal/infrastructure/payment/stripe"
	"github.com/lionscafe/storefront/internal/infrastructure/queue"
	"github.com/lionscafe/storefront/internal/pkg/config"
	"github.com/lionscafe/storefront/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "storefront",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	store := memory.NewStore()
	readiness := map[string]handler.Pinger{}

	// Order writes are serialized per order id until shutdown.
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	dispatcher := queue.NewDispatcher(cfg.OrderWorkers, log.With().Str("component", "order_dispatcher").Logger())
	dispatcher.Start(workerCtx)

	// --- Optional infrastructure ---
	var publisher ports.OrderEventPublisher
	if cfg.RabbitMQ.URL != "" {
		p, err := messaging.Dial(cfg.RabbitMQ.URL, log.With().Str("component", "publisher").Logger())
		if err != nil {
			return err
		}
		defer p.Close()
		publisher = p
		readiness["rabbitmq"] = p
		log.Info().Str("exchange", messaging.ExchangeOrderEvents).Msg("order events enabled")
	}

	var dedup ports.EventDeduplicator
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		dedup = redisdb.NewDedupChecker(rdb)
		readiness["redis"] = redisdb.Pinger{Client: rdb}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("payment event dedup enabled")
	}

	var audit ports.PaymentEventRepository
	if cfg.Mongo.URI != "" {
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(dctx)
		}()
		events := mongodb.NewPaymentEventRepository(db)
		if err := events.EnsureIndexes(ctx); err != nil {
			return err
		}
		audit = events
		readiness["mongodb"] = mongodb.Pinger{Client: client}
		log.Info().Str("database", cfg.Mongo.Database).Msg("payment event audit enabled")
	}

	var provider ports.PaymentProvider
	if cfg.PaymentsEnabled() {
		provider = stripe.NewProvider(cfg.Payment.StripeSecretKey)
	} else {
		log.Warn().Msg("STRIPE_SECRET_KEY not set, payment intents are disabled")
	}
	if cfg.Payment.StripeWebhookSecret == "" {
		log.Warn().Msg("STRIPE_WEBHOOK_SECRET not set, webhook signatures are not verified")
	}
	if !cfg.StaffRoutesEnabled() {
		log.Warn().Msg("STAFF_JWT_SECRET not set, staff routes are not mounted")
	}

	// --- Services ---
	orders := service.NewOrderService(store, dispatcher, publisher, log.With().Str("component", "orders").Logger())
	e := api.NewRouter(api.Dependencies{
		Users:         service.NewUserService(store, log.With().Str("component", "users").Logger()),
		Menu:          service.NewMenuService(store, log.With().Str("component", "menu").Logger()),
		Orders:        orders,
		Reservations:  service.NewReservationService(store, log.With().Str("component", "reservations").Logger()),
		Notifications: service.NewNotificationService(store, log.With().Str("component", "notifications").Logger()),
		Payments: service.NewPaymentService(service.PaymentDeps{
			Provider: provider,
			Orders:   orders,
			Dedup:    dedup,
			Audit:    audit,
			Currency: cfg.Payment.Currency,
		}, log.With().Str("component", "payments").Logger()),
		Webhooks:       stripe.NewWebhookDecoder(cfg.Payment.StripeWebhookSecret),
		StaffJWTSecret: cfg.StaffJWTSecret,
		Readiness:      readiness,
		Logger:         log,
	})

	// --- Serve ---
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	stopWorkers()
	log.Info().Msg("server stopped")
	return nil
}
