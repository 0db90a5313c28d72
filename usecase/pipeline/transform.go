package pipeline

import (
	"fmt"
	"time"

	"github.com/finport/portfolio-etl/consts"
	"github.com/finport/portfolio-etl/entity"

	"github.com/shopspring/decimal"
)

// Transform derives the segmentation and risk columns. The three per-table
// transforms are independent of each other; risk features run last because
// they read the transformed loans and customers.
func (u *pipelineUsecase) Transform(set *entity.TableSet) error {
	u.logger.Info("[Transform] Transforming data")

	u.SegmentCustomers(&set.Customers)
	if err := u.ClassifyLoans(&set.Loans); err != nil {
		return err
	}
	u.NormalizeTransactions(&set.Transactions)

	if set.Loans.Present() && set.Customers.Present() {
		set.RiskFeatures = u.ComputeRiskFeatures(set.Loans, set.Customers)
		u.logger.Infof("[Transform] Computed %d risk features", len(set.RiskFeatures.Rows))
	} else {
		u.logger.Warn("[Transform] Skipping risk features, loans or customers table is empty")
	}

	u.logger.Info("[Transform] Data transformation completed")
	return nil
}

// SegmentCustomers derives customer_segment from credit score. No-op when the
// table is empty.
func (u *pipelineUsecase) SegmentCustomers(table *entity.CustomerTable) {
	if !table.Present() {
		return
	}
	for i := range table.Rows {
		segment := segmentForScore(table.Rows[i].CreditScore)
		table.Rows[i].CustomerSegment = &segment
	}
	table.Columns = appendColumn(table.Columns, "customer_segment")
}

// ClassifyLoans derives risk_band, total_payable and total_interest. The
// source must carry the classification columns; anything less is a schema
// mismatch because risk computation depends on them.
func (u *pipelineUsecase) ClassifyLoans(table *entity.LoanTable) error {
	if !table.Present() {
		return nil
	}
	for _, col := range consts.LoanClassificationColumns {
		if !table.HasColumn(col) {
			return fmt.Errorf("%w: loans source missing required column %q", ErrSchemaMismatch, col)
		}
	}

	for i := range table.Rows {
		row := &table.Rows[i]
		if row.InterestRate != nil {
			row.RiskBand = riskBandForRate(*row.InterestRate)
		}
		if row.EmiAmount != nil && row.TenureMonths != nil {
			payable := decimal.NewFromFloat(*row.EmiAmount).
				Mul(decimal.NewFromInt(int64(*row.TenureMonths))).
				Round(2).InexactFloat64()
			row.TotalPayable = &payable
			if row.LoanAmount != nil {
				interest := decimal.NewFromFloat(payable).
					Sub(decimal.NewFromFloat(*row.LoanAmount)).
					Round(2).InexactFloat64()
				row.TotalInterest = &interest
			}
		}
	}

	table.Columns = appendColumn(table.Columns, "risk_band")
	table.Columns = appendColumn(table.Columns, "total_payable")
	table.Columns = appendColumn(table.Columns, "total_interest")
	return nil
}

const (
	dateTimeLayout = "2006-01-02 15:04:05"
	dateLayout     = "2006-01-02"
)

// NormalizeTransactions parses transaction_date and derives the YYYY-MM
// transaction_month. Rows with unparsable dates keep null derived fields.
func (u *pipelineUsecase) NormalizeTransactions(table *entity.TransactionTable) {
	if !table.Present() {
		return
	}
	if !hasColumn(table.Columns, "transaction_date") {
		return
	}

	unparsable := 0
	for i := range table.Rows {
		row := &table.Rows[i]
		parsed, err := parseTransactionDate(row.TransactionDate)
		if err != nil {
			unparsable++
			continue
		}
		month := parsed.Format("2006-01")
		row.ParsedDate = &parsed
		row.TransactionMonth = &month
	}
	if unparsable > 0 {
		u.logger.Warnf("[Transform] %d transactions have unparsable dates, derived fields left null", unparsable)
	}

	table.Columns = appendColumn(table.Columns, "transaction_month")
}

func parseTransactionDate(raw string) (time.Time, error) {
	if t, err := time.Parse(dateTimeLayout, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(dateLayout, raw)
}

// segmentForScore bins credit score into customer segments. Unknown scores
// fall into the default segment.
func segmentForScore(score *int) string {
	switch {
	case score == nil:
		return consts.SegmentStandard
	case *score >= 750:
		return consts.SegmentPremium
	case *score >= 700:
		return consts.SegmentGold
	case *score >= 650:
		return consts.SegmentSilver
	default:
		return consts.SegmentStandard
	}
}

// riskBandForRate bins interest rate into right-closed intervals:
// (0,10] A, (10,12] B, (12,14] C, (14,16] D, (16,100] E.
func riskBandForRate(rate float64) *string {
	var band string
	switch {
	case rate <= 0 || rate > 100:
		return nil
	case rate <= 10:
		band = "A"
	case rate <= 12:
		band = "B"
	case rate <= 14:
		band = "C"
	case rate <= 16:
		band = "D"
	default:
		band = "E"
	}
	return &band
}

// riskGradeForScore bins risk score into right-closed intervals:
// (0,60] E, (60,70] D, (70,80] C, (80,90] B, (90,100] A.
func riskGradeForScore(score float64) *string {
	var grade string
	switch {
	case score <= 0 || score > 100:
		return nil
	case score <= 60:
		grade = "E"
	case score <= 70:
		grade = "D"
	case score <= 80:
		grade = "C"
	case score <= 90:
		grade = "B"
	default:
		grade = "A"
	}
	return &grade
}

func hasColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}

func appendColumn(columns []string, name string) []string {
	if hasColumn(columns, name) {
		return columns
	}
	return append(columns, name)
}
