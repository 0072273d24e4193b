package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kars1996/create-kapp/internal/branding"
	"github.com/spf13/viper"
)

const (
	KeyArchiveHost = "archive_host"
	KeyLogLevel    = "log_level"
	KeyHTTPTimeout = "http_timeout"
)

// Settings holds the resolved runtime configuration.
type Settings struct {
	// ArchiveHost replaces the host part of the archive URL (mirrors, tests).
	ArchiveHost string
	LogLevel    string
	// HTTPTimeout bounds the archive download. Zero means no timeout.
	HTTPTimeout time.Duration
}

// Load initializes a Viper instance bound to the environment and returns the
// resolved settings.
func Load() (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyArchiveHost, branding.ArchiveHost())
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyHTTPTimeout, "0s")

	timeout, err := time.ParseDuration(v.GetString(KeyHTTPTimeout))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", branding.EnvVar(KeyHTTPTimeout), err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %s", branding.EnvVar(KeyHTTPTimeout), timeout)
	}

	host := strings.TrimRight(v.GetString(KeyArchiveHost), "/")
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		return nil, fmt.Errorf("%s must be an http(s) URL, got %q", branding.EnvVar(KeyArchiveHost), host)
	}

	return &Settings{
		ArchiveHost: host,
		LogLevel:    strings.ToLower(v.GetString(KeyLogLevel)),
		HTTPTimeout: timeout,
	}, nil
}
