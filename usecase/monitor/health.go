package monitor

import (
	"fmt"

	"github.com/finport/portfolio-etl/entity"
)

// CheckHealth lists every table in the store with its row count and reports
// data freshness via the latest transaction date.
func (u *monitorUsecase) CheckHealth() (entity.HealthReport, error) {
	report := entity.HealthReport{DatabasePath: u.cfg.Database.Path}

	tables, err := u.dao.TableNames()
	if err != nil {
		return report, fmt.Errorf("health check failed: %w", err)
	}
	u.logger.Infof("[Health] Found %d tables", len(tables))

	for _, table := range tables {
		count, err := u.dao.RowCount(table)
		if err != nil {
			return report, fmt.Errorf("health check failed on table %s: %w", table, err)
		}
		report.Tables = append(report.Tables, entity.TableRowCount{Name: table, RowCount: count})
	}

	latest, err := u.dao.LatestTransactionDate()
	if err != nil {
		// Freshness is informational; an empty or missing transactions table
		// should not fail the whole check.
		u.logger.Warnf("[Health] Could not determine latest transaction: %v", err)
	} else {
		report.LatestTransaction = latest
	}

	u.logger.Info("[Health] Database health check completed")
	return report, nil
}
