// Package config provides runtime configuration values for the service.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds configuration knobs for the HTTP server, the simulated
// catalog, and the remote todos client.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	RemoteBaseURL   string
	RemoteTimeout   time.Duration
	CatalogDelay    time.Duration
	LogProd         bool
}

// Load collects configuration from environment with defaults.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", 15)
	v.SetDefault("REMOTE_BASE_URL", "https://jsonplaceholder.typicode.com")
	v.SetDefault("REMOTE_TIMEOUT_MS", 3000)
	v.SetDefault("CATALOG_DELAY_MS", 500)
	v.SetDefault("LOG_PROD", false)

	return Config{
		HTTPAddr:        v.GetString("HTTP_ADDR"),
		ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT")) * time.Second,
		RemoteBaseURL:   v.GetString("REMOTE_BASE_URL"),
		RemoteTimeout:   time.Duration(v.GetInt("REMOTE_TIMEOUT_MS")) * time.Millisecond,
		CatalogDelay:    time.Duration(v.GetInt("CATALOG_DELAY_MS")) * time.Millisecond,
		LogProd:         v.GetBool("LOG_PROD"),
	}
}
