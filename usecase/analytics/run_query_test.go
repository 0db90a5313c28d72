package analytics

import (
	"path/filepath"
	"testing"

	"github.com/finport/portfolio-etl/infra/db/dao"
	"github.com/finport/portfolio-etl/infra/db/model"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string     { return &v }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// seededUsecase opens a file-backed store, applies the schema and loads a
// small cross-referenced fixture so every catalog query has rows to work on.
func seededUsecase(t *testing.T) *analyticsUsecase {
	t.Helper()
	db, err := gorm.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	d := dao.NewDaoMethod(db)
	require.NoError(t, d.InitSchema())

	fixtures := []interface{}{
		&model.Customer{CustomerID: "CUST000001", JoiningDate: "2022-01-01", CreditScore: intPtr(760),
			AnnualIncome: floatPtr(500000), Age: intPtr(35), State: "Karnataka", CustomerSegment: strPtr("Premium")},
		&model.Customer{CustomerID: "CUST000002", JoiningDate: "2022-06-01", CreditScore: intPtr(610),
			AnnualIncome: floatPtr(250000), Age: intPtr(48), State: "Maharashtra", CustomerSegment: strPtr("Standard")},
		&model.Loan{LoanID: "LN000001", CustomerID: "CUST000001", DisbursementDate: "2023-01-01",
			LoanAmount: floatPtr(100000), InterestRate: floatPtr(11.5), TenureMonths: intPtr(24),
			LoanType: "Personal", EmiAmount: floatPtr(5000), CurrentStatus: "ACTIVE",
			RiskBand: strPtr("B"), TotalPayable: floatPtr(120000), TotalInterest: floatPtr(20000)},
		&model.Loan{LoanID: "LN000002", CustomerID: "CUST000002", DisbursementDate: "2023-03-01",
			LoanAmount: floatPtr(200000), InterestRate: floatPtr(15), TenureMonths: intPtr(36),
			LoanType: "Business", EmiAmount: floatPtr(7500), CurrentStatus: "DEFAULT",
			RiskBand: strPtr("D"), TotalPayable: floatPtr(270000), TotalInterest: floatPtr(70000)},
		&model.Transaction{TransactionID: "TXN000001", LoanID: "LN000001", TransactionDate: "2023-02-01 10:00:00",
			Amount: floatPtr(5000), PaymentMode: "UPI", Status: "SUCCESS", TransactionMonth: strPtr("2023-02")},
		&model.Transaction{TransactionID: "TXN000002", LoanID: "LN000002", TransactionDate: "2023-04-05 09:30:00",
			Amount: floatPtr(7500), PaymentMode: "NACH", Status: "FAILED", BounceFlag: 1, TransactionMonth: strPtr("2023-04")},
		&model.RiskFeature{LoanID: "LN000001", RiskScore: 96, RiskGrade: strPtr("A")},
		&model.RiskFeature{LoanID: "LN000002", RiskScore: 81, RiskGrade: strPtr("B")},
	}
	for _, row := range fixtures {
		require.NoError(t, db.Create(row).Error)
	}

	return &analyticsUsecase{dao: d, logger: log.New("test")}
}

func TestCatalogAndOrderAgree(t *testing.T) {
	assert.Len(t, queryOrder, len(queryCatalog))
	for _, name := range queryOrder {
		_, ok := queryCatalog[name]
		assert.True(t, ok, "ordered name %q missing from catalog", name)
	}
}

func TestQueryNamesReturnsCopy(t *testing.T) {
	u := &analyticsUsecase{logger: log.New("test")}
	names := u.QueryNames()
	require.NotEmpty(t, names)
	names[0] = "mutated"
	assert.NotEqual(t, "mutated", queryOrder[0])
}

func TestRunUnknownQuery(t *testing.T) {
	u := &analyticsUsecase{logger: log.New("test")}
	_, err := u.Run("no_such_query")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownQuery)
	assert.Contains(t, err.Error(), "no_such_query")
}

func TestEveryCatalogQueryExecutes(t *testing.T) {
	u := seededUsecase(t)
	for _, name := range queryOrder {
		result, err := u.Run(name)
		require.NoError(t, err, "query %q failed", name)
		assert.Equal(t, name, result.Name)
		assert.NotEmpty(t, result.Columns, "query %q returned no columns", name)
	}
}

func TestRunLoanTypeAnalysis(t *testing.T) {
	u := seededUsecase(t)
	result, err := u.Run("loan_type_analysis")
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)
	assert.Contains(t, result.Columns, "loan_type")
}

func TestRunAllSurvivesAndOrders(t *testing.T) {
	u := seededUsecase(t)
	results, err := u.RunAll()
	require.NoError(t, err)
	require.Len(t, results, len(queryOrder))
	for i, result := range results {
		assert.Equal(t, queryOrder[i], result.Name)
	}
}
