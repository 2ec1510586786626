package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, EnvProduction, cfg.Server.Environment)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "fpd_session", cfg.Session.CookieName)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, SinkLog, cfg.Quotes.Sink)
	assert.Equal(t, 5*time.Second, cfg.Contact.SuccessBanner)
	assert.True(t, cfg.Site.Preloader)
	assert.False(t, cfg.Development.LiveReload)
	assert.False(t, cfg.Session.SecureCookie)
	assert.Equal(t, "localhost:8080", cfg.Addr())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		values      map[string]interface{}
		expectError bool
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "development enables live reload",
			values: map[string]interface{}{
				"server.environment": "Development",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.IsDevelopment())
				assert.True(t, cfg.Development.LiveReload)
			},
		},
		{
			name: "explicit live reload wins",
			values: map[string]interface{}{
				"server.environment":      "development",
				"development.live_reload": false,
			},
			check: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.Development.LiveReload)
			},
		},
		{
			name: "https base url makes cookies secure",
			values: map[string]interface{}{
				"site.base_url": "https://fusionprintdesign.com/",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "https://fusionprintdesign.com", cfg.Site.BaseURL)
				assert.True(t, cfg.Session.SecureCookie)
			},
		},
		{
			name: "durations parse from strings",
			values: map[string]interface{}{
				"session.ttl":             "10m",
				"server.shutdown_timeout": "5s",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 10*time.Minute, cfg.Session.TTL)
				assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
			},
		},
		{
			name:        "invalid port type",
			values:      map[string]interface{}{"server.port": "invalid_port"},
			expectError: true,
		},
		{
			name:        "port out of range",
			values:      map[string]interface{}{"server.port": 70000},
			expectError: true,
		},
		{
			name:        "dangerous host",
			values:      map[string]interface{}{"server.host": "localhost; rm -rf /"},
			expectError: true,
		},
		{
			name:        "unknown environment",
			values:      map[string]interface{}{"server.environment": "staging"},
			expectError: true,
		},
		{
			name:        "unknown sink",
			values:      map[string]interface{}{"quotes.sink": "kafka"},
			expectError: true,
		},
		{
			name: "sqlite sink with traversal path",
			values: map[string]interface{}{
				"quotes.sink":        "sqlite",
				"quotes.sqlite_path": "../../etc/quotes.db",
			},
			expectError: true,
		},
		{
			name:        "relative base url",
			values:      map[string]interface{}{"site.base_url": "fusion.local"},
			expectError: true,
		},
		{
			name:        "bad origin",
			values:      map[string]interface{}{"server.allowed_origins": []string{"not-a-url"}},
			expectError: true,
		},
		{
			name:        "zero ttl",
			values:      map[string]interface{}{"session.ttl": "0s"},
			expectError: true,
		},
		{
			name:        "unknown log level",
			values:      map[string]interface{}{"log.level": "chatty"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.values {
				v.Set(k, val)
			}

			cfg, err := LoadFrom(v)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)

				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FUSIONSITE_SERVER_PORT", "9090")
	t.Setenv("FUSIONSITE_QUOTES_SINK", "sqlite")
	t.Setenv("FUSIONSITE_SESSION_SECURE_COOKIE", "true")

	v := viper.New()
	BindEnv(v)

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, SinkSQLite, cfg.Quotes.Sink)
	assert.True(t, cfg.Session.SecureCookie)
}

func TestValidateConfigWithDetails(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	result := ValidateConfigWithDetails(cfg)
	assert.True(t, result.Valid)
	assert.False(t, result.HasErrors())

	cfg.Server.AllowedOrigins = []string{"*"}
	cfg.Contact.RequestsPerMin = 0
	cfg.Development.LiveReload = true
	result = ValidateConfigWithDetails(cfg)
	assert.True(t, result.Valid)
	assert.True(t, result.HasWarnings())
	assert.Len(t, result.Warnings, 3)
	assert.Contains(t, result.String(), "development.live_reload")

	cfg.Quotes.Sink = "carrier-pigeon"
	result = ValidateConfigWithDetails(cfg)
	assert.False(t, result.Valid)
	assert.Contains(t, result.String(), "Valid sinks")
}

func TestConfigYAML(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	out, err := cfg.YAML()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "server")
	assert.Contains(t, decoded, "session")
	assert.Contains(t, string(out), "cookie_name: fpd_session")
}

func TestValidatePath(t *testing.T) {
	assert.NoError(t, validatePath("./static"))
	assert.Error(t, validatePath(""))
	assert.Error(t, validatePath("../secret"))
	assert.Error(t, validatePath("static;rm"))
}
