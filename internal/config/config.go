package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/sbilibin2017/zar-bot/internal/models"
)

// Config holds process-wide settings. It is built once at startup and
// treated as read-only afterwards.
type Config struct {
	App      AppConfig
	Rates    RatesConfig
	Odds     OddsConfig
	Telegram TelegramConfig
}

// AppConfig covers the HTTP listener and logging.
type AppConfig struct {
	Host            string
	Port            string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Addr returns the listen address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// RatesConfig points at the currency-rate provider.
type RatesConfig struct {
	BaseURL string
	Timeout time.Duration
}

// OddsConfig points at the odds provider.
type OddsConfig struct {
	BaseURL     string
	APIKey      string
	Regions     string
	Markets     string
	Timeout     time.Duration
	Footer      string
	PSLFallback bool
	LeaguesFile string
	Leagues     Leagues
}

// TelegramConfig configures the bot channel. An empty Token disables it.
type TelegramConfig struct {
	Token   string
	Workers int
}

// Enabled reports whether the bot channel should start.
func (c TelegramConfig) Enabled() bool {
	return c.Token != ""
}

// DefaultFooter is appended to odds replies on the text channels.
const DefaultFooter = "🔞 Bet responsibly. Odds by zar-bot."

// Load reads environment variables, optionally seeded from the env file at
// path, and returns the parsed configuration.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var (
		cfg Config
		err error
	)

	// Application config
	cfg.App.Host = getEnv("APP_HOST", "0.0.0.0")
	cfg.App.Port = getEnv("APP_PORT", getEnv("PORT", "3000"))
	cfg.App.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.App.LogFormat = getEnv("APP_LOG_FORMAT", "json")
	if cfg.App.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	upstreamTimeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("UPSTREAM_TIMEOUT: %w", err)
	}

	// Currency rates provider
	cfg.Rates.BaseURL = strings.TrimRight(getEnv("RATES_API_URL", "https://api.frankfurter.app"), "/")
	cfg.Rates.Timeout = upstreamTimeout

	// Odds provider
	cfg.Odds.BaseURL = strings.TrimRight(getEnv("ODDS_API_URL", "https://api.the-odds-api.com"), "/")
	cfg.Odds.APIKey = getEnv("ODDS_API_KEY", "")
	cfg.Odds.Regions = getEnv("ODDS_REGIONS", "uk,us,eu")
	cfg.Odds.Markets = getEnv("ODDS_MARKETS", "h2h")
	cfg.Odds.Timeout = upstreamTimeout
	cfg.Odds.Footer = getEnv("ODDS_FOOTER", DefaultFooter)
	cfg.Odds.LeaguesFile = getEnv("ODDS_LEAGUES_FILE", "")
	if cfg.Odds.PSLFallback, err = strconv.ParseBool(getEnv("ODDS_PSL_FALLBACK", "false")); err != nil {
		return nil, fmt.Errorf("ODDS_PSL_FALLBACK: %w", err)
	}
	if cfg.Odds.Leagues, err = LoadLeagues(cfg.Odds.LeaguesFile, cfg.Odds.PSLFallback); err != nil {
		return nil, err
	}

	// Telegram bot
	cfg.Telegram.Token = getEnv("TELEGRAM_BOT_TOKEN", "")
	if cfg.Telegram.Workers, err = strconv.Atoi(getEnv("TELEGRAM_WORKERS", "4")); err != nil {
		return nil, fmt.Errorf("TELEGRAM_WORKERS: %w", err)
	}
	if cfg.Telegram.Workers <= 0 {
		cfg.Telegram.Workers = 1
	}

	return &cfg, nil
}

// Substitutions lists leagues whose route borrows another league's feed.
func (c *Config) Substitutions() []models.League {
	var out []models.League
	for _, l := range models.Leagues {
		if r, ok := c.Odds.Leagues[l]; ok && r.Alias != "" {
			out = append(out, l)
		}
	}
	return out
}
