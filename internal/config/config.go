package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig     `yaml:"server"`
	Environment string           `yaml:"environment"`
	Debug       *bool            `yaml:"debug"`
	CORS        CORSConfig       `yaml:"cors"`
	Log         LogConfig        `yaml:"log"`
	Simulation  SimulationConfig `yaml:"simulation"`
	RateLimit   RateLimitConfig  `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// GetHost returns the server host, with container detection
func (c ServerConfig) GetHost() string {
	// In a container, listen on all interfaces
	if os.Getenv("ECS_CONTAINER_METADATA_URI") != "" || os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return "0.0.0.0"
	}
	return c.Host
}

// CORSConfig lists the browser origins allowed to call the API
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LogConfig controls the process logger
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// SimulationConfig shapes the simulated latency and randomness of the
// mock connectors and the campaign engine. The delay pointers distinguish
// an explicit 0 (no delay) from unset.
type SimulationConfig struct {
	ConnectDelayMS *int   `yaml:"connect_delay_ms"`
	ChatMinDelayMS *int   `yaml:"chat_min_delay_ms"`
	ChatMaxDelayMS *int   `yaml:"chat_max_delay_ms"`
	PostDelayMS    int    `yaml:"post_delay_ms"`
	Seed           uint64 `yaml:"seed"` // 0 seeds from the clock
}

func millis(ms *int) time.Duration {
	if ms == nil {
		return 0
	}
	return time.Duration(*ms) * time.Millisecond
}

// ConnectDelay returns the simulated connector handshake time.
func (s SimulationConfig) ConnectDelay() time.Duration {
	return millis(s.ConnectDelayMS)
}

// ChatDelay returns the bounds of the pre-generation delay.
func (s SimulationConfig) ChatDelay() (lo, hi time.Duration) {
	return millis(s.ChatMinDelayMS), millis(s.ChatMaxDelayMS)
}

// PostDelay returns the delay applied after generation.
func (s SimulationConfig) PostDelay() time.Duration {
	return time.Duration(s.PostDelayMS) * time.Millisecond
}

// RateLimitConfig holds the per-IP limit on chat requests
type RateLimitConfig struct {
	Enabled       *bool `yaml:"enabled"`
	Requests      int   `yaml:"requests"`
	WindowSeconds int   `yaml:"window_seconds"`
}

// IsEnabled reports whether rate limiting is on. Unset means on.
func (r RateLimitConfig) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// Window returns the rate limit window.
func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

// IsDebug reports whether debug mode is on. Unset means on.
func (c *Config) IsDebug() bool {
	return c.Debug == nil || *c.Debug
}

// IsDevelopment reports whether the app runs in development.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

// IsProduction reports whether the app runs in production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	sim := &cfg.Simulation
	if sim.ConnectDelayMS == nil {
		sim.ConnectDelayMS = intPtr(1000)
	}
	if sim.ChatMinDelayMS == nil {
		sim.ChatMinDelayMS = intPtr(1000)
	}
	if sim.ChatMaxDelayMS == nil {
		sim.ChatMaxDelayMS = intPtr(3000)
	}
	if *sim.ChatMaxDelayMS < *sim.ChatMinDelayMS {
		sim.ChatMaxDelayMS = intPtr(*sim.ChatMinDelayMS)
	}
	if cfg.RateLimit.Requests == 0 {
		cfg.RateLimit.Requests = 60
	}
	if cfg.RateLimit.WindowSeconds == 0 {
		cfg.RateLimit.WindowSeconds = 60
	}
}

// LoadFromEnv loads config from file, then overrides with environment
// variables. A missing file is not an error; defaults are used instead.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = Default(), nil
	}
	if err != nil {
		return nil, err
	}

	// Override with environment variables if present
	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port, ok := envInt("PORT"); ok {
		cfg.Server.Port = port
	}
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		cfg.Environment = env
	}
	if debug, ok := envBool("DEBUG"); ok {
		cfg.Debug = &debug
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORS.AllowedOrigins = splitList(origins)
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Log.Format = format
	}
	if delay, ok := envInt("CONNECT_DELAY_MS"); ok {
		cfg.Simulation.ConnectDelayMS = &delay
	}
	if seed := os.Getenv("SIMULATION_SEED"); seed != "" {
		if v, err := strconv.ParseUint(seed, 10, 64); err == nil {
			cfg.Simulation.Seed = v
		}
	}

	return cfg, nil
}

func intPtr(v int) *int { return &v }

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envBool(key string) (bool, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
