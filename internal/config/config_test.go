package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")
	t.Setenv("REMOTE_BASE_URL", "")
	t.Setenv("REMOTE_TIMEOUT_MS", "")
	t.Setenv("CATALOG_DELAY_MS", "")
	t.Setenv("LOG_PROD", "")
	c := Load()
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, 15*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "https://jsonplaceholder.typicode.com", c.RemoteBaseURL)
	assert.Equal(t, 3000*time.Millisecond, c.RemoteTimeout)
	assert.Equal(t, 500*time.Millisecond, c.CatalogDelay)
	assert.False(t, c.LogProd)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "2")
	t.Setenv("REMOTE_BASE_URL", "http://localhost:9999")
	t.Setenv("REMOTE_TIMEOUT_MS", "150")
	t.Setenv("CATALOG_DELAY_MS", "10")
	t.Setenv("LOG_PROD", "true")
	c := Load()
	assert.Equal(t, ":9090", c.HTTPAddr)
	assert.Equal(t, 2*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "http://localhost:9999", c.RemoteBaseURL)
	assert.Equal(t, 150*time.Millisecond, c.RemoteTimeout)
	assert.Equal(t, 10*time.Millisecond, c.CatalogDelay)
	assert.True(t, c.LogProd)
}
