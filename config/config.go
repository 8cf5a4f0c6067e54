// Package config resolves the spreadsheet key and service-account
// credentials from flags, the environment and an optional .env file.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvServiceAccountKey     = "GOOGLE_SERVICE_ACCOUNT_KEY"
	EnvServiceAccountKeyFile = "GOOGLE_SERVICE_ACCOUNT_KEY_FILE"
	EnvSpreadsheetKey        = "SHEETS_SPREADSHEET_KEY"
)

// Config carries everything needed to open a spreadsheet.
type Config struct {
	SpreadsheetKey    string
	ServiceAccountKey []byte // service-account key JSON
}

// Load resolves configuration. Flag values, when non-empty, win over
// the environment; a .env file in the working directory is loaded first
// and never overrides variables already set.
func Load(spreadsheetKey, keyFile string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{SpreadsheetKey: spreadsheetKey}
	if cfg.SpreadsheetKey == "" {
		cfg.SpreadsheetKey = os.Getenv(EnvSpreadsheetKey)
	}
	if cfg.SpreadsheetKey == "" {
		return Config{}, fmt.Errorf("no spreadsheet key: pass --spreadsheet or set %s", EnvSpreadsheetKey)
	}

	if keyFile == "" {
		keyFile = os.Getenv(EnvServiceAccountKeyFile)
	}
	switch {
	case keyFile != "":
		data, err := os.ReadFile(keyFile)
		if err != nil {
			return Config{}, fmt.Errorf("reading service account key file: %w", err)
		}
		cfg.ServiceAccountKey = data
	case os.Getenv(EnvServiceAccountKey) != "":
		cfg.ServiceAccountKey = []byte(os.Getenv(EnvServiceAccountKey))
	default:
		return Config{}, fmt.Errorf("no service account key: set %s or %s", EnvServiceAccountKey, EnvServiceAccountKeyFile)
	}

	if !json.Valid(cfg.ServiceAccountKey) {
		return Config{}, fmt.Errorf("service account key is not valid JSON")
	}
	return cfg, nil
}
