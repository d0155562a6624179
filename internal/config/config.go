package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"kollama/internal/ollama"
	"kollama/internal/presentation/theme"
)

// ErrInvalidServerURL is returned when serverUrl is not an absolute http(s) URL.
var ErrInvalidServerURL = errors.New("invalid server url")

const (
	KeyServerURL       = "serverUrl"
	KeyModel           = "model"
	KeyDebugLogs       = "debugLogs"
	KeyBackgroundColor = "backgroundColor"

	KeyUseFilledDarkIcon    = "useFilledDarkIcon"
	KeyUseFilledLightIcon   = "useFilledLightIcon"
	KeyUseOutlinedDarkIcon  = "useOutlinedDarkIcon"
	KeyUseOutlinedLightIcon = "useOutlinedLightIcon"
	KeyUseOutlinedIcon      = "useOutlinedIcon"

	DefaultFileName = "kollama.yaml"
	EnvPrefix       = "KOLLAMA"
)

// Configuration mirrors the widget settings page.
type Configuration struct {
	ServerURL       string `mapstructure:"serverUrl" yaml:"serverUrl"`
	Model           string `mapstructure:"model" yaml:"model,omitempty"`
	DebugLogs       bool   `mapstructure:"debugLogs" yaml:"debugLogs"`
	BackgroundColor string `mapstructure:"backgroundColor" yaml:"backgroundColor,omitempty"`

	theme.IconFlags `mapstructure:",squash" yaml:",inline"`
}

// Default returns the settings a fresh widget starts with.
func Default() Configuration {
	return Configuration{
		ServerURL: ollama.DefaultBaseURL,
	}
}

// DebugLogsEnabled lets a Configuration gate the debug logger.
func (c *Configuration) DebugLogsEnabled() bool {
	return c.DebugLogs
}

// Contrast classifies the configured background color.
func (c Configuration) Contrast() theme.Contrast {
	return theme.ContrastFromHex(c.BackgroundColor)
}

// IconPath resolves the widget icon for the configured flags and background.
func (c Configuration) IconPath() string {
	return theme.IconPath(c.IconFlags, c.Contrast())
}

// APIURL returns the /api/ URL of endpoint on the configured server.
func (c Configuration) APIURL(endpoint ollama.Endpoint) string {
	return endpoint.URL(c.ServerURL)
}

// Validate checks fields that would otherwise produce unusable URLs.
func (c Configuration) Validate() error {
	raw := strings.TrimSpace(c.ServerURL)
	if raw == "" {
		return nil
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidServerURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidServerURL, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidServerURL)
	}
	return nil
}

// DefaultPath returns ~/.kollama/kollama.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".kollama", DefaultFileName), nil
}
