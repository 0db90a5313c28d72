package config

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the portfolio pipeline. Values come from
// config.json with environment variable overrides; a missing file falls back
// to the tag defaults so a fresh checkout can run against the default store.
type Config struct {
	Database    DatabaseConfig    `json:"database"`
	DataSources DataSourcesConfig `json:"data_sources"`
	Server      ServerConfig      `json:"server"`
	Pipeline    PipelineConfig    `json:"pipeline"`
}

type DatabaseConfig struct {
	Path string `json:"path" env:"DB_PATH" env-default:"database/fintech_portfolio.db"`
}

type DataSourcesConfig struct {
	Customers    string `json:"customers" env:"SOURCE_CUSTOMERS" env-default:"data_sources/customers.csv"`
	Loans        string `json:"loans" env:"SOURCE_LOANS" env-default:"data_sources/loans.csv"`
	Transactions string `json:"transactions" env:"SOURCE_TRANSACTIONS" env-default:"data_sources/transactions.csv"`
}

type ServerConfig struct {
	Port string `json:"port" env:"PORT" env-default:"8080"`
}

type PipelineConfig struct {
	ReportPath string `json:"report_path" env:"REPORT_PATH" env-default:"etl_report.json"`
	BackupDir  string `json:"backup_dir" env:"BACKUP_DIR" env-default:"backups"`
	// RiskSeed seeds the randomized risk-score fallback used when a loan has
	// no usable credit score, so repeated runs stay reproducible.
	RiskSeed int64 `json:"risk_seed" env:"RISK_SEED" env-default:"42"`
}

// Load reads configuration from the given file. A missing file is not an
// error: defaults (plus environment overrides) are used instead.
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SourcePaths maps logical dataset name to configured file location.
func (c *Config) SourcePaths() map[string]string {
	return map[string]string{
		"customers":    c.DataSources.Customers,
		"loans":        c.DataSources.Loans,
		"transactions": c.DataSources.Transactions,
	}
}
