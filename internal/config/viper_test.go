package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "USD", cfg.Bai.DefaultCurrency)
	assert.False(t, cfg.Bai.StrictTotals)
	assert.Empty(t, cfg.Bai.CodeOverlayFile)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
}

func TestInitializeConfigEnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BAI_DEFAULT_CURRENCY", "CHF")
	t.Setenv("BAI_STRICT_TOTALS", "true")
	t.Setenv("CSV_DELIMITER", ";")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "CHF", cfg.Bai.DefaultCurrency)
	assert.True(t, cfg.Bai.StrictTotals)
	assert.Equal(t, ";", cfg.CSV.Delimiter)
}
