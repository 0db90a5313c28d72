package pipeline

import (
	"fmt"
	"time"

	"github.com/finport/portfolio-etl/consts"
	"github.com/finport/portfolio-etl/entity"
	"github.com/finport/portfolio-etl/infra/db/dao"
	"github.com/finport/portfolio-etl/infra/db/model"
)

// Load persists every non-empty transformed table with full-replace semantics
// inside one transaction, then appends the portfolio summary snapshot. The
// summary is best-effort: its failure is logged but does not undo the load.
func (u *pipelineUsecase) Load(set entity.TableSet) error {
	u.logger.Info("[Load] Loading data to store")

	var batches []dao.TableBatch
	if set.Customers.Present() {
		batches = append(batches, dao.TableBatch{Name: consts.DatasetCustomers, Rows: customerRows(set.Customers)})
	}
	if set.Loans.Present() {
		batches = append(batches, dao.TableBatch{Name: consts.DatasetLoans, Rows: loanRows(set.Loans)})
	}
	if set.Transactions.Present() {
		batches = append(batches, dao.TableBatch{Name: consts.DatasetTransactions, Rows: transactionRows(set.Transactions)})
	}
	if set.RiskFeatures.Present() {
		batches = append(batches, dao.TableBatch{Name: consts.TableRiskFeatures, Rows: riskFeatureRows(set.RiskFeatures)})
	}

	for _, batch := range batches {
		if err := u.checkStoreSchema(batch.Name); err != nil {
			return err
		}
	}

	if len(batches) == 0 {
		u.logger.Warn("[Load] No non-empty tables to load")
	} else {
		if err := u.dao.ReplaceTables(batches); err != nil {
			return fmt.Errorf("load failed: %w", err)
		}
		for _, batch := range batches {
			u.logger.Infof("[Load] Loaded %d rows to %s", len(batch.Rows), batch.Name)
		}
	}

	if err := u.appendPortfolioSummary(); err != nil {
		u.logger.Errorf("[Load] Failed to create portfolio summary: %v", err)
	} else {
		u.logger.Info("[Load] Portfolio summary created")
	}
	return nil
}

// checkStoreSchema verifies the store table carries every column the schema
// contract names, so drift fails fast instead of producing empty reports.
func (u *pipelineUsecase) checkStoreSchema(table string) error {
	actual, err := u.dao.TableColumns(table)
	if err != nil {
		return fmt.Errorf("failed to inspect store schema for %s: %w", table, err)
	}
	if len(actual) == 0 {
		return fmt.Errorf("%w: store table %q does not exist, run setup first", ErrSchemaMismatch, table)
	}
	for _, want := range consts.TableColumns[table] {
		if !hasColumn(actual, want) {
			return fmt.Errorf("%w: store table %q is missing column %q", ErrSchemaMismatch, table, want)
		}
	}
	return nil
}

func (u *pipelineUsecase) appendPortfolioSummary() error {
	summary, err := u.dao.LoanAggregates()
	if err != nil {
		return err
	}
	summary.CalculationDate = time.Now().Format(dateLayout)
	return u.dao.InsertPortfolioSummary(summary)
}

func customerRows(table entity.CustomerTable) []interface{} {
	rows := make([]interface{}, 0, len(table.Rows))
	for _, r := range table.Rows {
		rows = append(rows, &model.Customer{
			CustomerID:        r.CustomerID,
			JoiningDate:       r.JoiningDate,
			CreditScore:       r.CreditScore,
			AnnualIncome:      r.AnnualIncome,
			EmploymentStatus:  r.EmploymentStatus,
			ResidentialStatus: r.ResidentialStatus,
			Age:               r.Age,
			State:             r.State,
			CustomerSegment:   r.CustomerSegment,
		})
	}
	return rows
}

func loanRows(table entity.LoanTable) []interface{} {
	rows := make([]interface{}, 0, len(table.Rows))
	for _, r := range table.Rows {
		rows = append(rows, &model.Loan{
			LoanID:           r.LoanID,
			CustomerID:       r.CustomerID,
			DisbursementDate: r.DisbursementDate,
			LoanAmount:       r.LoanAmount,
			InterestRate:     r.InterestRate,
			TenureMonths:     r.TenureMonths,
			LoanType:         r.LoanType,
			EmiAmount:        r.EmiAmount,
			CurrentStatus:    r.CurrentStatus,
			RiskBand:         r.RiskBand,
			TotalPayable:     r.TotalPayable,
			TotalInterest:    r.TotalInterest,
		})
	}
	return rows
}

func transactionRows(table entity.TransactionTable) []interface{} {
	rows := make([]interface{}, 0, len(table.Rows))
	for _, r := range table.Rows {
		rows = append(rows, &model.Transaction{
			TransactionID:    r.TransactionID,
			LoanID:           r.LoanID,
			TransactionDate:  r.TransactionDate,
			Amount:           r.Amount,
			PaymentMode:      r.PaymentMode,
			Status:           r.Status,
			BounceFlag:       r.BounceFlag,
			TransactionMonth: r.TransactionMonth,
		})
	}
	return rows
}

func riskFeatureRows(table entity.RiskFeatureTable) []interface{} {
	rows := make([]interface{}, 0, len(table.Rows))
	for _, r := range table.Rows {
		rows = append(rows, &model.RiskFeature{
			LoanID:    r.LoanID,
			RiskScore: r.RiskScore,
			RiskGrade: r.RiskGrade,
		})
	}
	return rows
}
