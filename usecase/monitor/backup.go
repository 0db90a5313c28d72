package monitor

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// BackupDatabase copies the store file into the backup directory under a
// timestamped name and returns the backup path.
func (u *monitorUsecase) BackupDatabase() (string, error) {
	if err := os.MkdirAll(u.cfg.Pipeline.BackupDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	input, err := os.ReadFile(u.cfg.Database.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read database file: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	backupPath := filepath.Join(u.cfg.Pipeline.BackupDir, fmt.Sprintf("fintech_backup_%s.db", timestamp))
	if err := os.WriteFile(backupPath, input, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	u.logger.Infof("[Backup] Database backed up to %s", backupPath)
	return backupPath, nil
}
