package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/rhobs/jokes-mcp/pkg/jokes"
)

// Transport selects how the MCP server is exposed.
type Transport string

const (
	TransportHTTP  Transport = "http"
	TransportStdio Transport = "stdio"
)

const (
	DefaultPort            = 3000
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "logfmt"
	DefaultShutdownTimeout = 10 * time.Second
)

// Config holds jokes-mcp server configuration
type Config struct {
	// Host is the interface to bind in HTTP mode. Empty binds all interfaces.
	Host string `toml:"host,omitempty"`

	// Port is the TCP port to listen on in HTTP mode.
	// Default: 3000
	Port int `toml:"port,omitempty"`

	// Transport is either "http" (default) or "stdio".
	Transport Transport `toml:"transport,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level,omitempty"`

	// LogFormat is either "logfmt" (default) or "json".
	LogFormat string `toml:"log_format,omitempty"`

	// ChuckNorrisURL is the base URL of the Chuck Norris joke API.
	// Default: "https://api.chucknorris.io"
	ChuckNorrisURL string `toml:"chuck_norris_url,omitempty"`

	// DadJokeURL is the base URL of the dad joke API.
	// Default: "https://icanhazdadjoke.com"
	DadJokeURL string `toml:"dad_joke_url,omitempty"`

	// ValidateCategories makes get-chuck-joke-by-category check the category
	// against the upstream category list before fetching a joke.
	// Default: false (categories are passed through to the upstream)
	ValidateCategories bool `toml:"validate_categories,omitempty"`

	// ShutdownTimeout bounds graceful HTTP shutdown.
	// Default: 10s
	ShutdownTimeout time.Duration `toml:"shutdown_timeout,omitempty"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Port:            DefaultPort,
		Transport:       TransportHTTP,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
		ChuckNorrisURL:  jokes.DefaultChuckNorrisURL,
		DadJokeURL:      jokes.DefaultDadJokeURL,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// Load builds a Config from defaults, the optional TOML file at path and the
// environment, in that order of precedence. getenv is usually os.Getenv.
func Load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if getenv == nil {
		getenv = os.Getenv
	}
	if err := cfg.applyEnv(getenv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("HOST"); v != "" {
		c.Host = v
	}
	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}
	if v := getenv("MCP_TRANSPORT"); v != "" {
		c.Transport = Transport(v)
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := getenv("CHUCK_NORRIS_URL"); v != "" {
		c.ChuckNorrisURL = v
	}
	if v := getenv("DAD_JOKE_URL"); v != "" {
		c.DadJokeURL = v
	}
	if v := getenv("VALIDATE_CATEGORIES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid VALIDATE_CATEGORIES %q: %w", v, err)
		}
		c.ValidateCategories = b
	}
	if v := getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		c.ShutdownTimeout = d
	}
	return nil
}

// Validate checks that the configuration values are valid.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}

	switch c.Transport {
	case TransportHTTP, TransportStdio:
	default:
		return fmt.Errorf("invalid transport %q (valid options: http, stdio)", c.Transport)
	}

	switch c.LogFormat {
	case "logfmt", "json":
	default:
		return fmt.Errorf("invalid log format %q (valid options: logfmt, json)", c.LogFormat)
	}

	for name, raw := range map[string]string{
		"chuck_norris_url": c.ChuckNorrisURL,
		"dad_joke_url":     c.DadJokeURL,
	} {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid %s %q: scheme must be http or https", name, raw)
		}
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid shutdown timeout %s: must be positive", c.ShutdownTimeout)
	}

	return nil
}

// ListenAddr returns the host:port address for HTTP mode.
func (c Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
