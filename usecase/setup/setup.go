package setup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/finport/portfolio-etl/consts"
)

// Setup prepares a fresh working directory: folders, store schema, sample
// source data when none exists, and a default config file. Safe to re-run.
func (u *setupUsecase) Setup() error {
	if err := u.createDirectories(); err != nil {
		return err
	}

	u.logger.Info("[Setup] Initializing store schema")
	if err := u.dao.InitSchema(); err != nil {
		return fmt.Errorf("schema setup failed: %w", err)
	}

	if u.haveSourceFiles() {
		u.logger.Info("[Setup] Using existing source files")
	} else {
		u.logger.Info("[Setup] Generating sample data")
		if err := u.generateSampleData(); err != nil {
			return fmt.Errorf("sample data generation failed: %w", err)
		}
	}

	if err := u.writeDefaultConfig(); err != nil {
		return err
	}

	u.logger.Info("[Setup] Setup complete")
	return nil
}

func (u *setupUsecase) createDirectories() error {
	dirs := []string{
		filepath.Dir(u.cfg.Database.Path),
		filepath.Dir(u.cfg.DataSources.Customers),
		u.cfg.Pipeline.BackupDir,
	}
	for _, dir := range dirs {
		if dir == "." || dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create folder %s: %w", dir, err)
		}
		u.logger.Infof("[Setup] Created folder: %s", dir)
	}
	return nil
}

func (u *setupUsecase) haveSourceFiles() bool {
	for _, path := range []string{
		u.cfg.DataSources.Customers,
		u.cfg.DataSources.Loans,
		u.cfg.DataSources.Transactions,
	} {
		if _, err := os.Stat(path); err != nil {
			return false
		}
	}
	return true
}

// writeDefaultConfig persists the effective configuration, so later runs and
// the standalone binaries pick up the same paths. An existing file wins.
func (u *setupUsecase) writeDefaultConfig() error {
	if _, err := os.Stat(consts.DefaultConfigFile); err == nil {
		return nil
	}

	payload, err := json.MarshalIndent(u.cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(consts.DefaultConfigFile, payload, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	u.logger.Infof("[Setup] Wrote %s", consts.DefaultConfigFile)
	return nil
}
