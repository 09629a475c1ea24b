package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("FEE_TEST_STR", "value")
	t.Setenv("FEE_TEST_INT", "42")
	t.Setenv("FEE_TEST_BAD_INT", "nope")
	t.Setenv("FEE_TEST_DUR", "90s")
	t.Setenv("FEE_TEST_LIST", " USD, EUR ,,KES ")

	assert.Equal(t, "value", GetEnv("FEE_TEST_STR", "x"))
	assert.Equal(t, "x", GetEnv("FEE_TEST_MISSING", "x"))
	assert.Equal(t, 42, GetIntEnv("FEE_TEST_INT", 1))
	assert.Equal(t, 1, GetIntEnv("FEE_TEST_BAD_INT", 1))
	assert.Equal(t, 90*time.Second, GetDurationEnv("FEE_TEST_DUR", time.Second))
	assert.Equal(t, []string{"USD", "EUR", "KES"}, GetListEnv("FEE_TEST_LIST", nil))
	assert.Equal(t, []string{"USD"}, GetListEnv("FEE_TEST_LIST_MISSING", []string{"USD"}))
}

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_NAME", "fees")
	t.Setenv("FEE_CACHE_TTL", "1m")
	t.Setenv("DEFAULT_CURRENCIES", "USD,EUR")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, []string{"USD", "EUR"}, cfg.DefaultPlan.Currencies)
	assert.Contains(t, cfg.DB.DSN(), "dbname=fees")
	assert.Contains(t, cfg.DB.DSN(), "sslmode=disable")
}
