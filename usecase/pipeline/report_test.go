package pipeline

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/finport/portfolio-etl/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReportSkipsEmptyTables(t *testing.T) {
	cfg := testConfig(t)
	u := newTestUsecase(cfg)

	set := entity.TableSet{
		Customers: entity.CustomerTable{
			Columns: []string{"customer_id", "credit_score", "customer_segment"},
			Rows:    []entity.Customer{{CustomerID: "CUST000001", CreditScore: intPtr(760)}},
		},
	}

	report, err := u.GenerateReport(set, "run-123")
	require.NoError(t, err)

	assert.Equal(t, "run-123", report.RunID)
	require.Contains(t, report.Summary, "customers")
	assert.NotContains(t, report.Summary, "loans")
	assert.NotContains(t, report.Summary, "transactions")
	assert.NotContains(t, report.Summary, "risk_features")

	customers := report.Summary["customers"]
	assert.Equal(t, 1, customers.RowCount)
	assert.Equal(t, 3, customers.ColumnCount)
	assert.GreaterOrEqual(t, customers.MemoryUsageMB, 0.0)

	_, err = time.Parse(time.RFC3339, report.Timestamp)
	assert.NoError(t, err)
}

func TestGenerateReportWritesJSONFile(t *testing.T) {
	cfg := testConfig(t)
	u := newTestUsecase(cfg)

	set := entity.TableSet{
		Loans: entity.LoanTable{
			Columns: []string{"loan_id", "loan_amount"},
			Rows:    []entity.Loan{{LoanID: "LN000001", LoanAmount: floatPtr(100000)}},
		},
	}

	_, err := u.GenerateReport(set, "run-456")
	require.NoError(t, err)

	raw, err := os.ReadFile(cfg.Pipeline.ReportPath)
	require.NoError(t, err)

	var decoded struct {
		RunID     string `json:"run_id"`
		Timestamp string `json:"timestamp"`
		Summary   map[string]struct {
			RowCount      int     `json:"row_count"`
			ColumnCount   int     `json:"column_count"`
			MemoryUsageMB float64 `json:"memory_usage_mb"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "run-456", decoded.RunID)
	require.Contains(t, decoded.Summary, "loans")
	assert.Equal(t, 1, decoded.Summary["loans"].RowCount)
	assert.Equal(t, 2, decoded.Summary["loans"].ColumnCount)
}

func TestGenerateReportUnwritablePathFails(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pipeline.ReportPath = "/nonexistent-dir/etl_report.json"
	u := newTestUsecase(cfg)

	_, err := u.GenerateReport(entity.TableSet{}, "run-789")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write run report")
}
