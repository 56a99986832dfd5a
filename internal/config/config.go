package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"
)

// ErrMissingStoreCredentials is returned when Supabase endpoint or key is not configured.
var ErrMissingStoreCredentials = errors.New("missing Supabase credentials")

// ErrStoreURLNotDSN is returned when SUPABASE_URL points at the Supabase REST
// endpoint instead of the Postgres database.
var ErrStoreURLNotDSN = errors.New("SUPABASE_URL must be a Postgres connection string")

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	SupabaseURL     string
	SupabaseKey     string
	BotToken        string
	TelegramAPIURL  string
	WebAppURL       string
	ManagerUsername string
	NotifyTimeout   time.Duration
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultTelegramAPIURL  = "https://api.telegram.org"
	defaultWebAppURL       = "https://testtelegramapp.vercel.app/"
	defaultManagerUsername = "ImTatyanaSolovyova"
	defaultNotifyTimeout   = 10 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		SupabaseURL:     getString(lookup, "SUPABASE_URL", ""),
		SupabaseKey:     getString(lookup, "SUPABASE_KEY", ""),
		BotToken:        getString(lookup, "BOT_TOKEN", ""),
		TelegramAPIURL:  getString(lookup, "TELEGRAM_API_URL", defaultTelegramAPIURL),
		WebAppURL:       getString(lookup, "WEB_APP_URL", defaultWebAppURL),
		ManagerUsername: getString(lookup, "MANAGER_USERNAME", defaultManagerUsername),
		NotifyTimeout:   getDuration(lookup, "NOTIFY_TIMEOUT", defaultNotifyTimeout),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("flowerbot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		notifyTimeoutStr   = cfg.NotifyTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.SupabaseURL, "d", cfg.SupabaseURL, "Supabase Postgres DSN, e.g. postgres://postgres@db.<project>.supabase.co:5432/postgres")
	fs.StringVar(&cfg.TelegramAPIURL, "telegram-api", cfg.TelegramAPIURL, "Telegram Bot API base URL")
	fs.StringVar(&cfg.WebAppURL, "web-app", cfg.WebAppURL, "Mini-app URL shown in the welcome menu")
	fs.StringVar(&cfg.ManagerUsername, "manager", cfg.ManagerUsername, "Telegram username of the shop manager")
	fs.StringVar(&notifyTimeoutStr, "notify-timeout", notifyTimeoutStr, "Timeout of a single admin notification")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.NotifyTimeout, err = time.ParseDuration(notifyTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid notify timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if keyFile, ok := lookup("SUPABASE_KEY_FILE"); ok && keyFile != "" {
		content, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, fmt.Errorf("read supabase key file: %w", err)
		}
		cfg.SupabaseKey = strings.TrimSpace(string(content))
	}

	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = defaultNotifyTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	cfg.ManagerUsername = strings.TrimPrefix(cfg.ManagerUsername, "@")

	if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
		return nil, fmt.Errorf("%w: SUPABASE_URL and SUPABASE_KEY must be provided", ErrMissingStoreCredentials)
	}

	if u, err := url.Parse(cfg.SupabaseURL); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return nil, fmt.Errorf("%w (postgres://user@host:5432/db), got %s endpoint %q", ErrStoreURLNotDSN, u.Scheme, u.Host)
	}

	return cfg, nil
}

// ManagerURL returns direct chat link of the shop manager.
func (c *Config) ManagerURL() string {
	return "https://t.me/" + c.ManagerUsername
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
