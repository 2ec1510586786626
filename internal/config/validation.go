package config

import (
	"fmt"
	"net"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error with suggestions
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the result of configuration validation
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings
func (vr *ValidationResult) HasWarnings() bool {
	return len(vr.Warnings) > 0
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var builder strings.Builder

	write := func(title string, issues []ValidationError) {
		if len(issues) == 0 {
			return
		}
		builder.WriteString(title + ":\n")
		for _, issue := range issues {
			builder.WriteString(fmt.Sprintf("  - %s: %s\n", issue.Field, issue.Message))
			for _, suggestion := range issue.Suggestions {
				builder.WriteString(fmt.Sprintf("    hint: %s\n", suggestion))
			}
		}
	}

	write("Validation errors", vr.Errors)
	write("Validation warnings", vr.Warnings)

	return builder.String()
}

func (vr *ValidationResult) addError(field string, value interface{}, msg string, suggestions ...string) {
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Value: value, Message: msg, Suggestions: suggestions})
}

func (vr *ValidationResult) addWarning(field string, value interface{}, msg string, suggestions ...string) {
	vr.Warnings = append(vr.Warnings, ValidationError{Field: field, Value: value, Message: msg, Suggestions: suggestions})
}

// ValidateConfigWithDetails performs the same checks as Load and adds
// warnings for settings that work but are probably unintended.
func ValidateConfigWithDetails(config *Config) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	if err := validateServerConfig(&config.Server); err != nil {
		result.addError("server", config.Server, err.Error(),
			"Use 'localhost' for local development",
			"Use a port between 1024-65535")
	} else {
		if config.Server.Port > 0 && config.Server.Port < 1024 {
			result.addWarning("server.port", config.Server.Port,
				"port below 1024 requires elevated privileges",
				"Put a reverse proxy in front or use a port above 1024")
		}
		if config.Server.Host != "" && config.Server.Host != "localhost" && net.ParseIP(config.Server.Host) == nil &&
			strings.ContainsAny(config.Server.Host, " /") {
			result.addError("server.host", config.Server.Host, "host is neither an IP address nor a hostname")
		}
	}

	for _, origin := range config.Server.AllowedOrigins {
		if origin == "*" {
			result.addWarning("server.allowed_origins", origin,
				"wildcard origin disables the cross-site form check",
				"List the exact origins that host the contact form")
		}
	}

	if err := validateSiteConfig(&config.Site); err != nil {
		result.addError("site", config.Site.BaseURL, err.Error(),
			"Example: https://fusionprintdesign.com")
	}

	if err := validateSessionConfig(&config.Session); err != nil {
		result.addError("session", config.Session, err.Error())
	}

	if err := validateQuotesConfig(&config.Quotes); err != nil {
		result.addError("quotes", config.Quotes.Sink, err.Error(),
			fmt.Sprintf("Valid sinks: %s, %s, %s", SinkLog, SinkSQLite, SinkBoth))
	}

	if config.Contact.RequestsPerMin == 0 {
		result.addWarning("contact.requests_per_minute", 0,
			"contact form posts are not rate limited")
	}

	if config.Server.Environment == EnvProduction {
		if !config.Session.SecureCookie && strings.HasPrefix(config.Site.BaseURL, "https://") {
			result.addWarning("session.secure_cookie", false,
				"session cookie is sent over plain HTTP on an https site",
				"Set session.secure_cookie: true")
		}
		if config.Development.LiveReload {
			result.addWarning("development.live_reload", true,
				"live reload is enabled in production",
				"Set server.environment: development or disable live_reload")
		}
	}

	if err := validateConfig(config); err != nil && !result.HasErrors() {
		result.addError("config", nil, err.Error())
	}

	result.Valid = !result.HasErrors()

	return result
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return []byte(b.String()), nil
}
