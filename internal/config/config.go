package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress  string
	DatabaseURI string

	RazorpayBaseURL   string
	RazorpayKeyID     string
	RazorpayKeySecret string
	Currency          string

	ShiprocketBaseURL        string
	ShiprocketEmail          string
	ShiprocketPassword       string
	ShiprocketPickupLocation string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	EmailFrom    string
	AdminEmail   string

	JWTSecret string

	GatewayTimeout        time.Duration
	ShipmentRetryInterval time.Duration
	WorkerPoolSize        int
	MaxShipmentBatch      int
	ShutdownTimeout       time.Duration
}

const (
	defaultRunAddress            = ":8080"
	defaultRazorpayBaseURL       = "https://api.razorpay.com"
	defaultShiprocketBaseURL     = "https://apiv2.shiprocket.in/v1/external"
	defaultPickupLocation        = "Primary"
	defaultCurrency              = "INR"
	defaultJWTSecret             = "change-me-in-production"
	defaultGatewayTimeout        = 10 * time.Second
	defaultShipmentRetryInterval = time.Minute
	defaultWorkerPoolSize        = 4
	defaultMaxShipmentBatch      = 16
	defaultShutdownTimeout       = 10 * time.Second
	defaultSMTPPort              = 587
)

// Load parses configuration from .env file, environment variables and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:  getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI: getString(lookup, "DATABASE_URI", ""),

		RazorpayBaseURL:   getString(lookup, "RAZORPAY_BASE_URL", defaultRazorpayBaseURL),
		RazorpayKeyID:     getString(lookup, "RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getString(lookup, "RAZORPAY_KEY_SECRET", ""),
		Currency:          getString(lookup, "CURRENCY", defaultCurrency),

		ShiprocketBaseURL:        getString(lookup, "SHIPROCKET_BASE_URL", defaultShiprocketBaseURL),
		ShiprocketEmail:          getString(lookup, "SHIPROCKET_EMAIL", ""),
		ShiprocketPassword:       getString(lookup, "SHIPROCKET_PASSWORD", ""),
		ShiprocketPickupLocation: getString(lookup, "SHIPROCKET_PICKUP_LOCATION", defaultPickupLocation),

		SMTPHost:     getString(lookup, "EMAIL_HOST", ""),
		SMTPPort:     getInt(lookup, "EMAIL_PORT", defaultSMTPPort),
		SMTPUser:     getString(lookup, "EMAIL_USER", ""),
		SMTPPassword: getString(lookup, "EMAIL_PASSWORD", ""),
		EmailFrom:    getString(lookup, "EMAIL_FROM", ""),
		AdminEmail:   getString(lookup, "ADMIN_EMAIL", ""),

		JWTSecret: getString(lookup, "JWT_SECRET", defaultJWTSecret),

		GatewayTimeout:        getDuration(lookup, "GATEWAY_TIMEOUT", defaultGatewayTimeout),
		ShipmentRetryInterval: getDuration(lookup, "SHIPMENT_RETRY_INTERVAL", defaultShipmentRetryInterval),
		WorkerPoolSize:        getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		MaxShipmentBatch:      getInt(lookup, "SHIPMENT_BATCH_SIZE", defaultMaxShipmentBatch),
		ShutdownTimeout:       getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("artstore", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		gatewayTimeoutStr  = cfg.GatewayTimeout.String()
		retryIntervalStr   = cfg.ShipmentRetryInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RazorpayBaseURL, "razorpay-url", cfg.RazorpayBaseURL, "Razorpay API base URL")
	fs.StringVar(&cfg.ShiprocketBaseURL, "shiprocket-url", cfg.ShiprocketBaseURL, "Shiprocket API base URL")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing admin auth tokens")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent shipment retry workers")
	fs.IntVar(&cfg.MaxShipmentBatch, "shipment-batch", cfg.MaxShipmentBatch, "Maximum orders per shipment retry batch")
	fs.StringVar(&gatewayTimeoutStr, "gateway-timeout", gatewayTimeoutStr, "Timeout for outbound gateway calls")
	fs.StringVar(&retryIntervalStr, "retry-interval", retryIntervalStr, "Interval between shipment retry polls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.GatewayTimeout, err = time.ParseDuration(gatewayTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid gateway timeout: %w", err)
	}

	if cfg.ShipmentRetryInterval, err = time.ParseDuration(retryIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid retry interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.MaxShipmentBatch <= 0 {
		cfg.MaxShipmentBatch = defaultMaxShipmentBatch
	}

	if cfg.GatewayTimeout <= 0 {
		cfg.GatewayTimeout = defaultGatewayTimeout
	}

	if cfg.ShipmentRetryInterval <= 0 {
		cfg.ShipmentRetryInterval = defaultShipmentRetryInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		return nil, fmt.Errorf("razorpay credentials must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
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
