// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Catalog CatalogConfig
	Server  ServerConfig
	Charts  ChartsConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// CatalogConfig holds catalog source configuration.
type CatalogConfig struct {
	// Path is the catalog CSV file.
	Path string
	// Watch reloads the catalog when the file changes (default: true).
	Watch bool
	// SettleDelay is how long the file must stay quiet before a change
	// triggers a reload (default: 2s).
	SettleDelay time.Duration
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string        // Server port (default: 8080)
	ReadTimeout  time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout time.Duration // HTTP write timeout (default: 15s)
	IdleTimeout  time.Duration // HTTP idle timeout (default: 60s)
	CORSOrigins  []string      // Allowed CORS origins (default: *)
}

// ChartsConfig holds the dashboard's presentation limits. Each value
// bounds how much of a distribution the corresponding chart shows; the
// underlying aggregations are never truncated by them.
type ChartsConfig struct {
	TopRatings        int // ratings bar (default: 10)
	TopGenres         int // genres bar (default: 15)
	TrendGenres       int // genre trend lines (default: 8)
	TopDirectors      int // directors bar (default: 10)
	TopCast           int // cast bar (default: 10)
	TopCountries      int // countries bar (default: 20)
	BubbleCountries   int // country/rating bubble, countries (default: 15)
	RatingsPerCountry int // country/rating bubble, ratings each (default: 5)
	CountryTypeSplit  int // movies-vs-TV countries (default: 10)
	SeasonLimit       int // TV season bar (default: 15)
	HistogramBins     int // movie duration histogram (default: 30)
	TrendFloorYear    int // yearly release line floor (default: 1990)
	DefaultYearLo     int // default filter window start (default: 2010)
	DefaultYearHi     int // default filter window end (default: 2021)
	DropdownTokens    int // genre/country dropdown size (default: 50)
	DetailPageSize    int // detail browser page size (default: 100)
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	// Define command-line flags.
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	catalogPath := flag.String("catalog-path", "", "Path to the catalog CSV file")
	catalogWatch := flag.String("catalog-watch", "", "Reload the catalog on file changes (default: true)")
	settleDelay := flag.String("settle-delay", "", "Quiet period before a file change triggers reload (default: 2s)")

	// Server flags
	serverPort := flag.String("port", "", "Server port (default: 8080)")
	readTimeout := flag.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := flag.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := flag.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")
	corsOrigins := flag.String("cors-origins", "", "Comma-separated allowed CORS origins (default: *)")

	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	// Build config with proper precedence. The chart limits are
	// environment-only; they exist for tuning, not daily operation.
	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Catalog: CatalogConfig{
			Path:  getConfigValue(*catalogPath, "CATALOG_PATH", ""),
			Watch: getBoolConfigValue(*catalogWatch, "CATALOG_WATCH", true),
		},
		Server: ServerConfig{
			Port:        getConfigValue(*serverPort, "SERVER_PORT", "8080"),
			CORSOrigins: splitList(getConfigValue(*corsOrigins, "CORS_ORIGINS", "*")),
		},
		Charts: ChartsConfig{
			TopRatings:        getIntConfigValue("", "CHART_TOP_RATINGS", 10),
			TopGenres:         getIntConfigValue("", "CHART_TOP_GENRES", 15),
			TrendGenres:       getIntConfigValue("", "CHART_TREND_GENRES", 8),
			TopDirectors:      getIntConfigValue("", "CHART_TOP_DIRECTORS", 10),
			TopCast:           getIntConfigValue("", "CHART_TOP_CAST", 10),
			TopCountries:      getIntConfigValue("", "CHART_TOP_COUNTRIES", 20),
			BubbleCountries:   getIntConfigValue("", "CHART_BUBBLE_COUNTRIES", 15),
			RatingsPerCountry: getIntConfigValue("", "CHART_RATINGS_PER_COUNTRY", 5),
			CountryTypeSplit:  getIntConfigValue("", "CHART_COUNTRY_TYPE_SPLIT", 10),
			SeasonLimit:       getIntConfigValue("", "CHART_SEASON_LIMIT", 15),
			HistogramBins:     getIntConfigValue("", "CHART_HISTOGRAM_BINS", 30),
			TrendFloorYear:    getIntConfigValue("", "CHART_TREND_FLOOR_YEAR", 1990),
			DefaultYearLo:     getIntConfigValue("", "FILTER_DEFAULT_YEAR_LO", 2010),
			DefaultYearHi:     getIntConfigValue("", "FILTER_DEFAULT_YEAR_HI", 2021),
			DropdownTokens:    getIntConfigValue("", "DROPDOWN_TOKENS", 50),
			DetailPageSize:    getIntConfigValue("", "DETAIL_PAGE_SIZE", 100),
		},
	}

	// Parse settle delay.
	settleDelayStr := getConfigValue(*settleDelay, "CATALOG_SETTLE_DELAY", "2s")
	settleDelayDuration, err := time.ParseDuration(settleDelayStr)
	if err != nil {
		return nil, fmt.Errorf("invalid settle delay %q: %w", settleDelayStr, err)
	}
	cfg.Catalog.SettleDelay = settleDelayDuration

	// Parse server timeouts.
	readTimeoutStr := getConfigValue(*readTimeout, "SERVER_READ_TIMEOUT", "15s")
	readTimeoutDuration, err := time.ParseDuration(readTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid read timeout %q: %w", readTimeoutStr, err)
	}
	cfg.Server.ReadTimeout = readTimeoutDuration

	writeTimeoutStr := getConfigValue(*writeTimeout, "SERVER_WRITE_TIMEOUT", "15s")
	writeTimeoutDuration, err := time.ParseDuration(writeTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid write timeout %q: %w", writeTimeoutStr, err)
	}
	cfg.Server.WriteTimeout = writeTimeoutDuration

	idleTimeoutStr := getConfigValue(*idleTimeout, "SERVER_IDLE_TIMEOUT", "60s")
	idleTimeoutDuration, err := time.ParseDuration(idleTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid idle timeout %q: %w", idleTimeoutStr, err)
	}
	cfg.Server.IdleTimeout = idleTimeoutDuration

	// Expand and validate catalog path.
	if err := cfg.expandCatalogPath(); err != nil {
		return nil, fmt.Errorf("invalid catalog path: %w", err)
	}

	// Validate configuration.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Catalog.Path == "" {
		return errors.New("CATALOG_PATH is required")
	}

	if c.Catalog.SettleDelay <= 0 {
		return errors.New("settle delay must be positive")
	}

	limits := map[string]int{
		"CHART_TOP_RATINGS":         c.Charts.TopRatings,
		"CHART_TOP_GENRES":          c.Charts.TopGenres,
		"CHART_TREND_GENRES":        c.Charts.TrendGenres,
		"CHART_TOP_DIRECTORS":       c.Charts.TopDirectors,
		"CHART_TOP_CAST":            c.Charts.TopCast,
		"CHART_TOP_COUNTRIES":       c.Charts.TopCountries,
		"CHART_BUBBLE_COUNTRIES":    c.Charts.BubbleCountries,
		"CHART_RATINGS_PER_COUNTRY": c.Charts.RatingsPerCountry,
		"CHART_COUNTRY_TYPE_SPLIT":  c.Charts.CountryTypeSplit,
		"CHART_SEASON_LIMIT":        c.Charts.SeasonLimit,
		"CHART_HISTOGRAM_BINS":      c.Charts.HistogramBins,
		"DROPDOWN_TOKENS":           c.Charts.DropdownTokens,
		"DETAIL_PAGE_SIZE":          c.Charts.DetailPageSize,
	}
	for name, v := range limits {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, v)
		}
	}

	if c.Charts.DefaultYearLo > c.Charts.DefaultYearHi {
		return fmt.Errorf("default year window inverted: %d > %d",
			c.Charts.DefaultYearLo, c.Charts.DefaultYearHi)
	}

	return nil
}

// expandCatalogPath expands ~ and makes the path absolute.
func (c *Config) expandCatalogPath() error {
	if c.Catalog.Path == "" {
		return nil
	}

	expanded, err := expandPath(c.Catalog.Path, "")
	if err != nil {
		return err
	}
	c.Catalog.Path = expanded
	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	// Expand tilde.
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	// Make absolute if needed.
	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// splitList splits a comma-separated value into trimmed entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: Default value.
	return defaultValue
}

// getBoolConfigValue returns a bool from flag, env var, or default.
// Accepts: "true", "1", "yes" (case-insensitive) as true; anything else is false.
func getBoolConfigValue(flagValue, envKey string, defaultValue bool) bool {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	strValue = strings.ToLower(strValue)
	return strValue == "true" || strValue == "1" || strValue == "yes"
}

// getIntConfigValue returns an int from flag, env var, or default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	var result int
	if _, err := fmt.Sscanf(strValue, "%d", &result); err != nil {
		return defaultValue
	}
	return result
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=value.
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present.
		value = strings.Trim(value, `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
