package models

import (
	"os"
	"strconv"
	"strings"

	"github.com/rohanthewiz/serr"
)

// ============================================================================
// Server Configuration
//
// Loaded from environment variables so the binary carries no deployment
// settings. Every field has a usable default; LoadConfig only fails on values
// that are present but malformed.
// ============================================================================

const (
	defaultAddress   = ":8000"
	defaultLogLevel  = "info"
	defaultRateLimit = 0 // off: clients are told apart only by proxy headers
)

// Config holds the settings for the web server and the terminal view
type Config struct {
	Address     string // Listen address (GOSEARCH_ADDRESS)
	LogLevel    string // debug, info, warn or error (GOSEARCH_LOG_LEVEL)
	Verbose     bool   // rweb verbose request output (GOSEARCH_VERBOSE)
	RecentLimit int    // Queries retained for /api/v1/searches (GOSEARCH_RECENT_LIMIT)
	RateLimit   int    // Requests per minute per client behind a proxy, 0 disables (GOSEARCH_RATE_LIMIT)
}

// DefaultConfig returns the configuration used when no variables are set
func DefaultConfig() *Config {
	return &Config{
		Address:     defaultAddress,
		LogLevel:    defaultLogLevel,
		RecentLimit: DefaultRecentLimit,
		RateLimit:   defaultRateLimit,
	}
}

// LoadConfig reads the configuration from the environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	if addr := os.Getenv("GOSEARCH_ADDRESS"); addr != "" {
		cfg.Address = addr
	}

	if level := os.Getenv("GOSEARCH_LOG_LEVEL"); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	if verboseStr := os.Getenv("GOSEARCH_VERBOSE"); verboseStr != "" {
		verbose, err := strconv.ParseBool(verboseStr)
		if err != nil {
			return nil, serr.Wrap(err, "invalid GOSEARCH_VERBOSE value, expected true/false")
		}
		cfg.Verbose = verbose
	}

	if limitStr := os.Getenv("GOSEARCH_RECENT_LIMIT"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, serr.Wrap(err, "invalid GOSEARCH_RECENT_LIMIT value, expected an integer")
		}
		cfg.RecentLimit = limit
	}

	if rateStr := os.Getenv("GOSEARCH_RATE_LIMIT"); rateStr != "" {
		rate, err := strconv.Atoi(rateStr)
		if err != nil {
			return nil, serr.Wrap(err, "invalid GOSEARCH_RATE_LIMIT value, expected requests per minute")
		}
		cfg.RateLimit = rate
	}

	return cfg, nil
}

// Validate checks the loaded values before the server starts
func (c *Config) Validate() error {
	if c.Address == "" {
		return serr.New("GOSEARCH_ADDRESS must not be empty")
	}
	if !strings.Contains(c.Address, ":") {
		return serr.New("GOSEARCH_ADDRESS must be host:port or :port")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return serr.New("GOSEARCH_LOG_LEVEL must be one of debug, info, warn, error")
	}

	if c.RecentLimit < 1 {
		return serr.New("GOSEARCH_RECENT_LIMIT must be at least 1")
	}
	if c.RateLimit < 0 {
		return serr.New("GOSEARCH_RATE_LIMIT must not be negative")
	}

	return nil
}
