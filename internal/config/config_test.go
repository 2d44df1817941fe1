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
	assert.Empty(t, cfg.Catalog.File)
	assert.InDelta(t, 0.6, cfg.Classification.ConfidenceThreshold, 1e-9)
	assert.Zero(t, cfg.Classification.Workers)
	assert.False(t, cfg.Normalization.Lenient)
}

func TestInitializeConfigEnvOverrides(t *testing.T) {
	t.Setenv("SNAPENGINE_LOG_LEVEL", "debug")
	t.Setenv("SNAPENGINE_LOG_FORMAT", "json")
	t.Setenv("SNAPENGINE_CATALOG_FILE", "catalog.yaml")
	t.Setenv("SNAPENGINE_CLASSIFICATION_CONFIDENCE_THRESHOLD", "1.0")
	t.Setenv("SNAPENGINE_NORMALIZATION_LENIENT", "true")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "catalog.yaml", cfg.Catalog.File)
	assert.InDelta(t, 1.0, cfg.Classification.ConfidenceThreshold, 1e-9)
	assert.True(t, cfg.Normalization.Lenient)
}

func TestInitializeConfigValidation(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad log level", key: "SNAPENGINE_LOG_LEVEL", value: "chatty"},
		{name: "bad log format", key: "SNAPENGINE_LOG_FORMAT", value: "xml"},
		{name: "threshold above range", key: "SNAPENGINE_CLASSIFICATION_CONFIDENCE_THRESHOLD", value: "1.5"},
		{name: "threshold below range", key: "SNAPENGINE_CLASSIFICATION_CONFIDENCE_THRESHOLD", value: "-0.1"},
		{name: "negative workers", key: "SNAPENGINE_CLASSIFICATION_WORKERS", value: "-2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.NotNil(t, cfg.NewLogger())
}
