package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DB        DBConfig        `toml:"database"`
	Nutrition NutritionConfig `toml:"nutrition"`
	Vision    VisionConfig    `toml:"vision"`
	Sync      SyncConfig      `toml:"sync"`
	Display   DisplayConfig   `toml:"display"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type NutritionConfig struct {
	BaseURL string `toml:"base_url"` // Barcode/product lookup endpoint.
}

type VisionConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

type SyncConfig struct {
	Endpoint string `toml:"endpoint"`
	Token    string `toml:"token"`
}

type DisplayConfig struct {
	WeightUnit string `toml:"weight_unit"` // "kg" or "lbs".
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "fitlog")
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from the config file. A missing file is fine, the
// app has to work with nothing but defaults when run offline.
func LoadConfig() (*Config, error) {
	cfg := defaults()

	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Environment overrides.
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Vision.APIKey = v
	}
	if v := os.Getenv("FITLOG_SYNC_TOKEN"); v != "" {
		cfg.Sync.Token = v
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = "file:./local.db?cache=shared&mode=rwc"
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Nutrition: NutritionConfig{
			BaseURL: "https://world.openfoodfacts.org",
		},
		Vision: VisionConfig{
			Model: "gemini-1.5-flash",
		},
		Display: DisplayConfig{
			WeightUnit: "kg",
		},
	}
}
