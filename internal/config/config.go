// Package config provides configuration management for the site server using
// Viper for loading from files, environment variables and command-line flags.
//
// Values come from a YAML file (.fusionsite.yml by default), FUSIONSITE_
// prefixed environment variables and flags bound by the cmd package. Load
// applies defaults and rejects unsafe or inconsistent settings.
package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/fusionprintdesign/fusionsite/internal/logging"
)

// Environments understood by the server.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Quote sink kinds.
const (
	SinkLog    = "log"
	SinkSQLite = "sqlite"
	SinkBoth   = "both"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server" yaml:"server"`
	Site        SiteConfig        `mapstructure:"site" yaml:"site"`
	Contact     ContactConfig     `mapstructure:"contact" yaml:"contact"`
	Session     SessionConfig     `mapstructure:"session" yaml:"session"`
	Quotes      QuotesConfig      `mapstructure:"quotes" yaml:"quotes"`
	Metrics     MetricsConfig     `mapstructure:"metrics" yaml:"metrics"`
	Log         LogConfig         `mapstructure:"log" yaml:"log"`
	Development DevelopmentConfig `mapstructure:"development" yaml:"development"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port" yaml:"port"`
	Host              string        `mapstructure:"host" yaml:"host"`
	Environment       string        `mapstructure:"environment" yaml:"environment"`
	AllowedOrigins    []string      `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

type SiteConfig struct {
	Name      string `mapstructure:"name" yaml:"name"`
	BaseURL   string `mapstructure:"base_url" yaml:"base_url"`
	StaticDir string `mapstructure:"static_dir" yaml:"static_dir"`
	Preloader bool   `mapstructure:"preloader" yaml:"preloader"`
}

type ContactConfig struct {
	SuccessBanner  time.Duration `mapstructure:"success_banner" yaml:"success_banner"`
	RequestsPerMin int           `mapstructure:"requests_per_minute" yaml:"requests_per_minute"`
}

type SessionConfig struct {
	CookieName      string        `mapstructure:"cookie_name" yaml:"cookie_name"`
	TTL             time.Duration `mapstructure:"ttl" yaml:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" yaml:"cleanup_interval"`
	MaxEntries      int           `mapstructure:"max_entries" yaml:"max_entries"`
	SecureCookie    bool          `mapstructure:"secure_cookie" yaml:"secure_cookie"`
}

type QuotesConfig struct {
	Sink       string `mapstructure:"sink" yaml:"sink"`
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

type DevelopmentConfig struct {
	LiveReload bool     `mapstructure:"live_reload" yaml:"live_reload"`
	WatchPaths []string `mapstructure:"watch_paths" yaml:"watch_paths"`
}

// IsDevelopment reports whether the server runs with development tooling.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.environment", EnvProduction)
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("site.name", "Fusion Print & Design")
	v.SetDefault("site.base_url", "http://localhost:8080")
	v.SetDefault("site.static_dir", "")
	v.SetDefault("site.preloader", true)

	v.SetDefault("contact.success_banner", 5*time.Second)
	v.SetDefault("contact.requests_per_minute", 30)

	v.SetDefault("session.cookie_name", "fpd_session")
	v.SetDefault("session.ttl", 30*time.Minute)
	v.SetDefault("session.cleanup_interval", 5*time.Minute)
	v.SetDefault("session.max_entries", 10000)

	v.SetDefault("quotes.sink", SinkLog)
	v.SetDefault("quotes.sqlite_path", "data/quotes.db")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("development.watch_paths", []string{"./static"})
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads and validates the configuration held by v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// viper leaves slices set from env vars as a single comma separated string
	if v.IsSet("server.allowed_origins") && len(config.Server.AllowedOrigins) == 1 {
		config.Server.AllowedOrigins = splitList(config.Server.AllowedOrigins[0])
	}
	if v.IsSet("development.watch_paths") && len(config.Development.WatchPaths) == 1 {
		config.Development.WatchPaths = splitList(config.Development.WatchPaths[0])
	}

	config.Server.Environment = strings.ToLower(strings.TrimSpace(config.Server.Environment))
	config.Quotes.Sink = strings.ToLower(strings.TrimSpace(config.Quotes.Sink))
	config.Site.BaseURL = strings.TrimRight(config.Site.BaseURL, "/")

	// Live reload follows the environment unless set explicitly (viper does not
	// unmarshal env-only keys that have no default)
	if v.IsSet("development.live_reload") {
		config.Development.LiveReload = v.GetBool("development.live_reload")
	} else {
		config.Development.LiveReload = config.Server.Environment == EnvDevelopment
	}
	if v.IsSet("session.secure_cookie") {
		config.Session.SecureCookie = v.GetBool("session.secure_cookie")
	} else {
		config.Session.SecureCookie = strings.HasPrefix(config.Site.BaseURL, "https://")
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// validateConfig validates configuration values for security and correctness
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := validateSiteConfig(&config.Site); err != nil {
		return fmt.Errorf("site config: %w", err)
	}

	if err := validateSessionConfig(&config.Session); err != nil {
		return fmt.Errorf("session config: %w", err)
	}

	if err := validateQuotesConfig(&config.Quotes); err != nil {
		return fmt.Errorf("quotes config: %w", err)
	}

	if config.Contact.RequestsPerMin < 0 {
		return fmt.Errorf("contact config: requests_per_minute must not be negative")
	}

	if config.Metrics.Enabled && !strings.HasPrefix(config.Metrics.Path, "/") {
		return fmt.Errorf("metrics config: path %q must start with /", config.Metrics.Path)
	}

	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("log config: %w", err)
	}
	switch config.Log.Format {
	case "json", "console", "text":
	default:
		return fmt.Errorf("log config: unknown format %q", config.Log.Format)
	}

	for _, path := range config.Development.WatchPaths {
		if err := validatePath(path); err != nil {
			return fmt.Errorf("development config: invalid watch path '%s': %w", path, err)
		}
	}

	return nil
}

// validateServerConfig validates server configuration values
func validateServerConfig(config *ServerConfig) error {
	// Port 0 lets the system pick one, which tests rely on
	if config.Port < 0 || config.Port > 65535 {
		return fmt.Errorf("port %d is not in valid range 0-65535", config.Port)
	}

	if config.Host != "" {
		dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'", "\\"}
		for _, char := range dangerousChars {
			if strings.Contains(config.Host, char) {
				return fmt.Errorf("host contains dangerous character: %s", char)
			}
		}
	}

	switch config.Environment {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("unknown environment %q", config.Environment)
	}

	for _, origin := range config.AllowedOrigins {
		if origin == "*" {
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("allowed origin %q is not scheme://host", origin)
		}
	}

	if config.ShutdownTimeout < 0 {
		return fmt.Errorf("shutdown_timeout must not be negative")
	}

	return nil
}

func validateSiteConfig(config *SiteConfig) error {
	u, err := url.Parse(config.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url %q must be an absolute http(s) URL", config.BaseURL)
	}

	if config.StaticDir != "" {
		if err := validatePath(config.StaticDir); err != nil {
			return fmt.Errorf("static_dir: %w", err)
		}
	}

	return nil
}

func validateSessionConfig(config *SessionConfig) error {
	if config.CookieName == "" || strings.ContainsAny(config.CookieName, " ;,=\t") {
		return fmt.Errorf("cookie_name %q is not a valid cookie name", config.CookieName)
	}
	if config.TTL <= 0 {
		return fmt.Errorf("ttl must be positive")
	}
	if config.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be positive")
	}
	if config.MaxEntries < 1 {
		return fmt.Errorf("max_entries must be at least 1")
	}

	return nil
}

func validateQuotesConfig(config *QuotesConfig) error {
	switch config.Sink {
	case SinkLog:
		return nil
	case SinkSQLite, SinkBoth:
		if err := validatePath(config.SQLitePath); err != nil {
			return fmt.Errorf("sqlite_path: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("unknown sink %q", config.Sink)
	}
}

// validatePath validates a file path for security
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains traversal: %s", path)
	}

	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'"}
	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "FUSIONSITE"

// newKeyReplacer maps nested keys such as server.port onto SERVER_PORT.
func newKeyReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

// BindEnv wires environment overrides onto v the same way the CLI does.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(newKeyReplacer())
}
