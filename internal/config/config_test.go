package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := defaults()
	assert.Equal(t, "https://world.openfoodfacts.org", cfg.Nutrition.BaseURL)
	assert.Equal(t, "gemini-1.5-flash", cfg.Vision.Model)
	assert.Equal(t, "kg", cfg.Display.WeightUnit)
	assert.Empty(t, cfg.DB.ConnectionString)
}

func TestLoadConfig_DevMode(t *testing.T) {
	t.Setenv("DEV_MODE", "true")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "file:./local.db?cache=shared&mode=rwc", cfg.DB.ConnectionString)
	assert.Equal(t, "test-key", cfg.Vision.APIKey)
}
