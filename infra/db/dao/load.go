package dao

import (
	"database/sql"
	"fmt"

	"github.com/finport/portfolio-etl/entity"
	"github.com/finport/portfolio-etl/infra/db/model"
)

// ReplaceTables overwrites each listed table with the given rows inside a
// single transaction. Either every table commits or none do.
func (d *dao) ReplaceTables(batches []TableBatch) error {
	tx := d.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin load transaction: %w", tx.Error)
	}

	for _, batch := range batches {
		if err := tx.Exec(fmt.Sprintf("DELETE FROM %s", batch.Name)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to clear table %s: %w", batch.Name, err)
		}
		for _, row := range batch.Rows {
			if err := tx.Create(row).Error; err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to insert into %s: %w", batch.Name, err)
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit load transaction: %w", err)
	}
	return nil
}

func (d *dao) InsertPortfolioSummary(summary entity.PortfolioSummary) error {
	row := model.PortfolioSummary{
		CalculationDate: summary.CalculationDate,
		TotalLoans:      summary.TotalLoans,
		TotalDisbursed:  summary.TotalDisbursed,
		ActiveLoans:     summary.ActiveLoans,
		AvgInterestRate: summary.AvgInterestRate,
	}
	if err := d.db.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert portfolio summary: %w", err)
	}
	return nil
}

// LoanAggregates computes the portfolio snapshot from the loans table as it
// currently stands in the store.
func (d *dao) LoanAggregates() (entity.PortfolioSummary, error) {
	var summary entity.PortfolioSummary
	row := d.db.Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(loan_amount), 0),
			COALESCE(SUM(CASE WHEN current_status = 'ACTIVE' THEN 1 ELSE 0 END), 0),
			COALESCE(AVG(interest_rate), 0)
		FROM loans`).Row()
	if err := row.Scan(
		&summary.TotalLoans,
		&summary.TotalDisbursed,
		&summary.ActiveLoans,
		&summary.AvgInterestRate,
	); err != nil {
		return summary, fmt.Errorf("failed to aggregate loans: %w", err)
	}
	return summary, nil
}

func (d *dao) LatestTransactionDate() (string, error) {
	var latest sql.NullString
	row := d.db.Raw("SELECT MAX(transaction_date) FROM transactions").Row()
	if err := row.Scan(&latest); err != nil {
		return "", fmt.Errorf("failed to fetch latest transaction date: %w", err)
	}
	if !latest.Valid {
		return "", nil
	}
	return latest.String, nil
}
