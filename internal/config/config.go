// Package config loads the server's configuration from defaults, an optional
// YAML file, and PHONEFIX_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/phonefixpro/site/internal/content"
)

// EnvPrefix prefixes every environment variable the config reads, e.g.
// PHONEFIX_SERVER_ADDR for server.addr.
const EnvPrefix = "PHONEFIX"

var (
	// ErrInvalid is wrapped by every error Validate returns.
	ErrInvalid = errors.New("invalid config")
)

// Config is the complete configuration.
type Config struct {
	Server    ServerConfig     `mapstructure:"server"`
	Log       LogConfig        `mapstructure:"log"`
	Templates TemplatesConfig  `mapstructure:"templates"`
	Business  content.Business `mapstructure:"business"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	// Addr is the address to listen on, e.g. ":8080".
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig controls logging.
type LogConfig struct {
	// Level is one of debug, info, warn (or warning), error. Case is
	// ignored.
	Level string `mapstructure:"level"`
	// Format is json or text.
	Format string `mapstructure:"format"`
}

// TemplatesConfig controls where templates are read from.
type TemplatesConfig struct {
	// Dir reads templates from disk instead of the ones bundled with the
	// binary. Empty means bundled.
	Dir string `mapstructure:"dir"`
	// Watch re-reads templates from Dir whenever they change.
	Watch bool `mapstructure:"watch"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Business: content.DefaultBusiness(),
	}
}

// SetDefaults registers the default values with v.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("server.addr", defaults.Server.Addr)
	v.SetDefault("server.read_timeout", defaults.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", defaults.Server.WriteTimeout)
	v.SetDefault("server.idle_timeout", defaults.Server.IdleTimeout)
	v.SetDefault("server.shutdown_timeout", defaults.Server.ShutdownTimeout)

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	v.SetDefault("templates.dir", defaults.Templates.Dir)
	v.SetDefault("templates.watch", defaults.Templates.Watch)

	v.SetDefault("business.name", defaults.Business.Name)
	v.SetDefault("business.owner", defaults.Business.Owner)
	v.SetDefault("business.address", defaults.Business.Address)
	v.SetDefault("business.phone", defaults.Business.Phone)
	v.SetDefault("business.whatsapp", defaults.Business.WhatsApp)
	v.SetDefault("business.email", defaults.Business.Email)
	v.SetDefault("business.map.latitude", defaults.Business.Map.Latitude)
	v.SetDefault("business.map.longitude", defaults.Business.Map.Longitude)
	v.SetDefault("business.map.zoom", defaults.Business.Map.Zoom)
}

// New returns a viper instance with defaults registered and environment
// overrides enabled. If file is not empty it is read as the config file; a
// missing file is an error only when it was named explicitly.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	// e.g. PHONEFIX_BUSINESS_MAP_ZOOM for business.map.zoom
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %q: %w", file, err)
		}
		return v, nil
	}

	v.SetConfigName("phonefixpro")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/phonefixpro")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}
	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every problem with c.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, fmt.Errorf("%w: server.addr must not be empty", ErrInvalid))
	}
	timeouts := []struct {
		key   string
		value time.Duration
	}{
		{"server.read_timeout", c.Server.ReadTimeout},
		{"server.write_timeout", c.Server.WriteTimeout},
		{"server.idle_timeout", c.Server.IdleTimeout},
		{"server.shutdown_timeout", c.Server.ShutdownTimeout},
	}
	for _, timeout := range timeouts {
		if timeout.value <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %s", ErrInvalid, timeout.key, timeout.value))
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: log.level %q is not one of debug, info, warn, warning, error", ErrInvalid, c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("%w: log.format %q is not one of json, text", ErrInvalid, c.Log.Format))
	}
	if c.Templates.Watch && c.Templates.Dir == "" {
		errs = append(errs, fmt.Errorf("%w: templates.watch requires templates.dir", ErrInvalid))
	}
	return errors.Join(errs...)
}
