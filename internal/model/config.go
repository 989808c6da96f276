package model

import "time"

// Config holds the complete application configuration
type Config struct {
	Input       InputConfig       `yaml:"input" mapstructure:"input"`
	URL         URLConfig         `yaml:"url" mapstructure:"url"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// InputConfig bounds accepted input length (characters, after trimming)
type InputConfig struct {
	MinLength int `yaml:"min_length" mapstructure:"min_length"`
	MaxLength int `yaml:"max_length" mapstructure:"max_length"`
}

// URLConfig lists the substring markers used in URL mode
type URLConfig struct {
	TrustedMarkers    []string `yaml:"trusted_markers" mapstructure:"trusted_markers"`
	SuspiciousMarkers []string `yaml:"suspicious_markers" mapstructure:"suspicious_markers"`
}

// CacheConfig controls the result cache
type CacheConfig struct {
	Enabled       bool          `yaml:"enabled" mapstructure:"enabled"`
	Backend       string        `yaml:"backend" mapstructure:"backend"` // memory, disk, layered, redis
	TTL           time.Duration `yaml:"ttl" mapstructure:"ttl"`
	Dir           string        `yaml:"dir" mapstructure:"dir"`
	RedisAddr     string        `yaml:"redis_addr" mapstructure:"redis_addr"`
	SweepSchedule string        `yaml:"sweep_schedule" mapstructure:"sweep_schedule"` // cron spec for disk sweeps
}

// ServerConfig controls the HTTP API
type ServerConfig struct {
	Addr              string        `yaml:"addr" mapstructure:"addr"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"` // Per client
	Burst             int           `yaml:"burst" mapstructure:"burst"`
	ProgressDelay     time.Duration `yaml:"progress_delay" mapstructure:"progress_delay"` // Cosmetic delay on the websocket stream
	ProgressTick      time.Duration `yaml:"progress_tick" mapstructure:"progress_tick"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`

	// ClientLimits overrides the per-client rate for specific client addresses
	ClientLimits []ClientLimit `yaml:"client_limits,omitempty" mapstructure:"client_limits"`
}

// ClientLimit is a rate override for one client address
type ClientLimit struct {
	Client            string  `yaml:"client" mapstructure:"client"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool   `yaml:"verbose" mapstructure:"verbose"`
	Format        string `yaml:"format" mapstructure:"format"` // text, json, yaml, md
	IncludeFooter bool   `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultTrustedMarkers are URL substrings that select the high reliability template
var DefaultTrustedMarkers = []string{
	"reuters.com", "ap.org", "bbc.com", "npr.org", "pbs.org",
	"gov", ".edu", "nature.com", "science.org",
}

// DefaultSuspiciousMarkers are URL substrings that select the low reliability template
var DefaultSuspiciousMarkers = []string{
	"breaking-news", "real-truth", "secret-info", "leaked", "shocking",
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			MinLength: 10,
			MaxLength: 5000,
		},
		URL: URLConfig{
			TrustedMarkers:    append([]string(nil), DefaultTrustedMarkers...),
			SuspiciousMarkers: append([]string(nil), DefaultSuspiciousMarkers...),
		},
		Cache: CacheConfig{
			Enabled:       false,
			Backend:       "memory",
			TTL:           10 * time.Minute,
			Dir:           ".fakenews-cache",
			SweepSchedule: "@every 1h",
		},
		Server: ServerConfig{
			Addr:              ":8080",
			RequestsPerSecond: 2,
			Burst:             10,
			ProgressDelay:     3500 * time.Millisecond,
			ProgressTick:      200 * time.Millisecond,
			ShutdownTimeout:   10 * time.Second,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Format:        "text",
			IncludeFooter: true,
		},
	}
}
