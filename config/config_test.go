package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("TAX_RATE", "")
	t.Setenv("DELIVERY_FEE", "")
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("DEFAULT_ETA_MINUTES", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "file", cfg.StorageBackend)
	assert.True(t, cfg.TaxRate.Equal(decimal.RequireFromString("0.08")))
	assert.True(t, cfg.DeliveryFee.Equal(decimal.RequireFromString("3.99")))
	assert.Equal(t, 15, cfg.DefaultETAMinutes)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TAX_RATE", "0.10")
	t.Setenv("DELIVERY_FEE", "0")
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("DEFAULT_ETA_MINUTES", "30")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "redis", cfg.StorageBackend)
	assert.True(t, cfg.TaxRate.Equal(decimal.RequireFromString("0.10")))
	assert.True(t, cfg.DeliveryFee.IsZero())
	assert.Equal(t, 30, cfg.DefaultETAMinutes)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("TAX_RATE", "eight percent")
	t.Setenv("DEFAULT_ETA_MINUTES", "soon")

	cfg := Load()

	assert.True(t, cfg.TaxRate.Equal(decimal.RequireFromString("0.08")))
	assert.Equal(t, 15, cfg.DefaultETAMinutes)
}
