package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/finport/portfolio-etl/consts"
	"github.com/finport/portfolio-etl/entity"

	"github.com/shopspring/decimal"
)

// GenerateReport writes the JSON run report: per present table its row count,
// column count and approximate memory footprint, plus the run timestamp.
func (u *pipelineUsecase) GenerateReport(set entity.TableSet, runID string) (entity.RunReport, error) {
	report := entity.RunReport{
		RunID:     runID,
		Timestamp: time.Now().Format(time.RFC3339),
		Summary:   make(map[string]entity.TableReport),
	}

	if set.Customers.Present() {
		report.Summary[consts.DatasetCustomers] = tableReport(
			len(set.Customers.Rows), len(set.Customers.Columns), set.Customers.ApproxBytes())
	}
	if set.Loans.Present() {
		report.Summary[consts.DatasetLoans] = tableReport(
			len(set.Loans.Rows), len(set.Loans.Columns), set.Loans.ApproxBytes())
	}
	if set.Transactions.Present() {
		report.Summary[consts.DatasetTransactions] = tableReport(
			len(set.Transactions.Rows), len(set.Transactions.Columns), set.Transactions.ApproxBytes())
	}
	if set.RiskFeatures.Present() {
		report.Summary[consts.TableRiskFeatures] = tableReport(
			len(set.RiskFeatures.Rows), len(set.RiskFeatures.Columns), set.RiskFeatures.ApproxBytes())
	}

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return report, fmt.Errorf("failed to marshal run report: %w", err)
	}
	if err := os.WriteFile(u.cfg.Pipeline.ReportPath, payload, 0644); err != nil {
		return report, fmt.Errorf("failed to write run report: %w", err)
	}

	u.logger.Infof("[Report] Report generated: %s", u.cfg.Pipeline.ReportPath)
	return report, nil
}

func tableReport(rows, columns int, approxBytes int64) entity.TableReport {
	mb := decimal.NewFromFloat(float64(approxBytes) / 1024 / 1024).Round(2).InexactFloat64()
	return entity.TableReport{
		RowCount:      rows,
		ColumnCount:   columns,
		MemoryUsageMB: mb,
	}
}
