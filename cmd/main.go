package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/zar-bot/docs"
	"github.com/sbilibin2017/zar-bot/internal/commands"
	"github.com/sbilibin2017/zar-bot/internal/config"
	"github.com/sbilibin2017/zar-bot/internal/facades"
	"github.com/sbilibin2017/zar-bot/internal/handlers"
	"github.com/sbilibin2017/zar-bot/internal/logger"
	"github.com/sbilibin2017/zar-bot/internal/metrics"
	"github.com/sbilibin2017/zar-bot/internal/middlewares"
	"github.com/sbilibin2017/zar-bot/internal/services"
	"github.com/sbilibin2017/zar-bot/internal/telegram"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title zar-bot API
// @version 1.0.0
// @description Currency conversion, exchange rates and match odds over JSON, WhatsApp and Telegram
// @host localhost:3000
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// newBotAPI connects to Telegram; replaced in tests.
var newBotAPI = func(token string) (telegram.BotAPI, error) {
	return telegram.NewBotAPI(token)
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting zar-bot Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// newDispatcher wires the upstream facades and services behind a Dispatcher.
func newDispatcher(cfg *config.Config) *commands.Dispatcher {
	ratesFacade := facades.NewRatesHTTPFacade(cfg.Rates.BaseURL, cfg.Rates.Timeout)
	oddsFacade := facades.NewOddsHTTPFacade(
		cfg.Odds.BaseURL, cfg.Odds.APIKey, cfg.Odds.Regions, cfg.Odds.Markets, cfg.Odds.Timeout,
	)

	exchangeService := services.NewExchangeService(ratesFacade)
	oddsService := services.NewOddsService(oddsFacade, cfg.Odds.Leagues)

	return commands.NewDispatcher(exchangeService, oddsService)
}

// newRouter sets up the HTTP routes.
func newRouter(cfg *config.Config, dispatcher handlers.IntentDispatcher) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/", handlers.NewHealthHandler(buildVersion))
	r.Post("/api", handlers.NewAPIHandler(dispatcher))
	r.Get("/rates", handlers.NewGetRatesHandler(dispatcher))
	r.Post("/whatsapp", handlers.NewWhatsAppHandler(dispatcher, cfg.Odds.Footer))
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.App.Addr())),
	))

	return r
}

// run initializes the logger, upstream clients, HTTP server and optional
// Telegram bot, and blocks until a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	metrics.MustRegister()

	if cfg.Odds.APIKey == "" {
		logger.Log.Warn("ODDS_API_KEY is not set, odds requests will answer Unconfigured")
	}
	for _, league := range cfg.Substitutions() {
		route := cfg.Odds.Leagues[league]
		logger.Log.Warnw("league is served from another league's feed",
			"league", league,
			"alias", route.Alias,
			"sport_key", route.SportKey,
		)
	}

	dispatcher := newDispatcher(cfg)

	// Bot init errors surface before the HTTP server is listening.
	var bot *telegram.Bot
	if cfg.Telegram.Enabled() {
		api, err := newBotAPI(cfg.Telegram.Token)
		if err != nil {
			return fmt.Errorf("telegram bot init failed: %w", err)
		}
		bot = telegram.NewBot(api, dispatcher, cfg.Odds.Footer, cfg.Telegram.Workers)
	}

	srv := &http.Server{
		Addr:    cfg.App.Addr(),
		Handler: newRouter(cfg, dispatcher),
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.App.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	botCtx, cancelBot := context.WithCancel(ctxShutdown)
	defer cancelBot()

	var botWG sync.WaitGroup
	if bot != nil {
		botWG.Add(1)
		go func() {
			defer botWG.Done()
			if err := bot.Start(botCtx); err != nil {
				errChan <- fmt.Errorf("telegram bot failed: %w", err)
			}
		}()
	} else {
		logger.Log.Info("TELEGRAM_BOT_TOKEN is not set, telegram bot disabled")
	}

	var runErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case runErr = <-errChan:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	cancelBot()
	botWG.Wait()

	if runErr != nil {
		return runErr
	}
	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
