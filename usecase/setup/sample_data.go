package setup

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/finport/portfolio-etl/consts"
)

const (
	sampleCustomers    = 1000
	sampleLoans        = 5000
	sampleTransactions = 20000
)

var (
	employmentStatuses  = []string{"Employed", "Self-Employed", "Unemployed"}
	residentialStatuses = []string{"Owned", "Rented"}
	states              = []string{"Maharashtra", "Karnataka", "Delhi", "Tamil Nadu", "Gujarat"}
	loanTypes           = []string{"Personal", "Business", "Home", "Auto", "Education"}
	loanAmounts         = []float64{50000, 100000, 200000, 500000}
	tenures             = []int{12, 24, 36, 48}
	paymentModes        = []string{"UPI", "Net Banking", "Debit Card", "NEFT"}
)

// generateSampleData writes seeded synthetic source files so the pipeline can
// run without real portfolio exports.
func (u *setupUsecase) generateSampleData() error {
	rng := rand.New(rand.NewSource(u.cfg.Pipeline.RiskSeed))

	customerIDs, err := u.writeCustomers(rng)
	if err != nil {
		return err
	}
	loanIDs, err := u.writeLoans(rng, customerIDs)
	if err != nil {
		return err
	}
	if err := u.writeTransactions(rng, loanIDs); err != nil {
		return err
	}

	u.logger.Infof("[Setup] Created sample data: %d customers, %d loans, %d transactions",
		sampleCustomers, sampleLoans, sampleTransactions)
	return nil
}

func (u *setupUsecase) writeCustomers(rng *rand.Rand) ([]string, error) {
	header := []string{
		"customer_id", "joining_date", "credit_score", "annual_income",
		"employment_status", "residential_status", "age", "state",
	}
	joinStart := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	ids := make([]string, 0, sampleCustomers)
	records := make([][]string, 0, sampleCustomers)
	for i := 1; i <= sampleCustomers; i++ {
		id := fmt.Sprintf("CUST%06d", i)
		ids = append(ids, id)
		records = append(records, []string{
			id,
			joinStart.AddDate(0, 0, i-1).Format("2006-01-02"),
			strconv.Itoa(300 + rng.Intn(600)),
			formatAmount(300000 + rng.Float64()*4700000),
			pick(rng, employmentStatuses),
			pick(rng, residentialStatuses),
			strconv.Itoa(22 + rng.Intn(48)),
			pick(rng, states),
		})
	}
	return ids, writeCSV(u.cfg.DataSources.Customers, header, records)
}

func (u *setupUsecase) writeLoans(rng *rand.Rand, customerIDs []string) ([]string, error) {
	header := []string{
		"loan_id", "customer_id", "disbursement_date", "loan_amount", "interest_rate",
		"tenure_months", "loan_type", "emi_amount", "current_status",
	}
	disburseStart := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	ids := make([]string, 0, sampleLoans)
	records := make([][]string, 0, sampleLoans)
	for i := 1; i <= sampleLoans; i++ {
		id := fmt.Sprintf("LN%06d", i)
		ids = append(ids, id)
		records = append(records, []string{
			id,
			pick(rng, customerIDs),
			disburseStart.AddDate(0, 0, i-1).Format("2006-01-02"),
			formatAmount(pickFloat(rng, loanAmounts)),
			formatAmount(8.0 + rng.Float64()*10.0),
			strconv.Itoa(pickInt(rng, tenures)),
			pick(rng, loanTypes),
			formatAmount(5000 + rng.Float64()*45000),
			sampleLoanStatus(rng),
		})
	}
	return ids, writeCSV(u.cfg.DataSources.Loans, header, records)
}

func (u *setupUsecase) writeTransactions(rng *rand.Rand, loanIDs []string) error {
	header := []string{
		"transaction_id", "loan_id", "transaction_date", "amount",
		"payment_mode", "status", "bounce_flag",
	}
	txnStart := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	records := make([][]string, 0, sampleTransactions)
	for i := 1; i <= sampleTransactions; i++ {
		status := consts.TransactionStatusSuccess
		if rng.Float64() < 0.1 {
			status = consts.TransactionStatusFailed
		}
		bounce := "0"
		if rng.Float64() < 0.05 {
			bounce = "1"
		}
		records = append(records, []string{
			fmt.Sprintf("TXN%06d", i),
			pick(rng, loanIDs),
			txnStart.Add(time.Duration(i-1) * time.Hour).Format("2006-01-02 15:04:05"),
			formatAmount(1000 + rng.Float64()*49000),
			pick(rng, paymentModes),
			status,
			bounce,
		})
	}
	return writeCSV(u.cfg.DataSources.Transactions, header, records)
}

func sampleLoanStatus(rng *rand.Rand) string {
	r := rng.Float64()
	switch {
	case r < 0.70:
		return consts.LoanStatusActive
	case r < 0.95:
		return consts.LoanStatusClosed
	default:
		return consts.LoanStatusDelinquent
	}
}

func writeCSV(path string, header []string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write rows to %s: %w", path, err)
	}
	writer.Flush()
	return writer.Error()
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

func pickInt(rng *rand.Rand, values []int) int {
	return values[rng.Intn(len(values))]
}

func pickFloat(rng *rand.Rand, values []float64) float64 {
	return values[rng.Intn(len(values))]
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
