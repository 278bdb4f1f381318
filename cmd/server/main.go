package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/axoxia/shipping-quote/internal/config"
	"github.com/axoxia/shipping-quote/internal/currency"
	"github.com/axoxia/shipping-quote/internal/database"
	"github.com/axoxia/shipping-quote/internal/handler"
	"github.com/axoxia/shipping-quote/internal/metrics"
	"github.com/axoxia/shipping-quote/internal/middleware"
	"github.com/axoxia/shipping-quote/internal/notify"
	"github.com/axoxia/shipping-quote/internal/payment"
	"github.com/axoxia/shipping-quote/internal/repository"
	"github.com/axoxia/shipping-quote/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	gin.SetMode(cfg.GinMode)

	var pool *pgxpool.Pool
	table := currency.Default()

	if cfg.UsesDatabase() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pool, err = database.NewPool(ctx, cfg.DatabaseURL())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()

		if cfg.AutoMigrate {
			if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
				log.Fatal().Err(err).Msg("failed to run migrations")
			}
			if err := database.SeedCurrencies(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("failed to seed currencies")
			}
		}

		table, err = repository.NewCurrencyRepository(pool).LoadTable(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load currency table")
		}
	}

	log.Info().
		Str("source", cfg.CurrencySource).
		Str("base", string(table.Base().Code)).
		Int("currencies", len(table.All())).
		Msg("currency table loaded")

	accepted, err := payment.NewAcceptedFor(table, cfg.PaymentCurrencies...)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid PAYMENT_CURRENCIES")
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New("axoxia", prometheus.DefaultRegisterer)
	}

	router := gin.New()
	router.Use(middleware.Logger())
	if m != nil {
		router.Use(middleware.Metrics(m))
	}
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	if m != nil {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	var db handler.Pinger
	if pool != nil {
		db = pool
	}
	healthHandler := handler.NewHealthHandler(db, table)
	router.GET("/health", healthHandler.Health)

	handler.SetupSwagger(router)
	setupAPIRoutes(router, cfg, table, accepted, m)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupAPIRoutes(router *gin.Engine, cfg *config.Config, table *currency.Table, accepted payment.Accepted, m *metrics.Metrics) {
	quoteService := service.NewQuoteService(table, m)
	checkoutService := service.NewCheckoutService(
		quoteService,
		payment.NewSandboxProcessor(),
		newDispatcher(cfg),
		accepted,
		m,
	)

	currencyHandler := handler.NewCurrencyHandler(quoteService)
	quoteHandler := handler.NewQuoteHandler(quoteService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)

	api := router.Group("/api/v1")
	{
		api.GET("/currencies", currencyHandler.List)
		api.POST("/convert", currencyHandler.Convert)
		api.POST("/quotes", quoteHandler.Quote)
		api.POST("/quotes/matrix", quoteHandler.Matrix)
		api.POST("/checkout", checkoutHandler.Checkout)
	}
}

func newDispatcher(cfg *config.Config) notify.Dispatcher {
	if cfg.NotifyProvider == config.NotifyProviderBrevo {
		return notify.NewBrevoDispatcher(cfg.BrevoAPIURL, cfg.BrevoAPIKey, notify.Sender{
			Name:  cfg.MailFromName,
			Email: cfg.MailFromAddress,
		})
	}
	return notify.NewLogDispatcher(log.Logger)
}
