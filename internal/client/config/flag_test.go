package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"boletera"}, args...)
}

func TestParseFlags_OverridesDefaults(t *testing.T) {
	withArgs(t, "-a", "https://flag.example", "-d", "flag.db", "-t", "5")

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "https://flag.example", cfg.BaseURL)
	assert.Equal(t, "flag.db", cfg.DatabasePath)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestParseFlags_UnknownFlagsAreFilteredOut(t *testing.T) {
	withArgs(t, "-a", "https://flag.example", "-unknown", "x")

	var cfg Config
	cfg.LoadDefaults()
	assert.NotPanics(t, func() { parseFlags(&cfg) })
	assert.Equal(t, "https://flag.example", cfg.BaseURL)
}

func TestParseFlags_NoFlagsKeepsDefaults(t *testing.T) {
	withArgs(t)

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}
