package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/finport/portfolio-etl/consts"
	"github.com/finport/portfolio-etl/entity"
)

// Extract reads the three configured source files. A file that is missing or
// unreadable degrades to an empty table for that dataset; the run continues
// and downstream derivations treat the dataset as absent.
func (u *pipelineUsecase) Extract() entity.TableSet {
	u.logger.Info("[Extract] Reading source files")

	var set entity.TableSet
	paths := u.cfg.SourcePaths()

	if header, records, err := readCSV(paths[consts.DatasetCustomers]); err != nil {
		u.logger.Errorf("[Extract] Failed to load %s: %v, using empty table", paths[consts.DatasetCustomers], err)
	} else {
		set.Customers = parseCustomers(header, records)
		u.logger.Infof("[Extract] Loaded %d rows from %s", len(set.Customers.Rows), paths[consts.DatasetCustomers])
	}

	if header, records, err := readCSV(paths[consts.DatasetLoans]); err != nil {
		u.logger.Errorf("[Extract] Failed to load %s: %v, using empty table", paths[consts.DatasetLoans], err)
	} else {
		set.Loans = parseLoans(header, records)
		u.logger.Infof("[Extract] Loaded %d rows from %s", len(set.Loans.Rows), paths[consts.DatasetLoans])
	}

	if header, records, err := readCSV(paths[consts.DatasetTransactions]); err != nil {
		u.logger.Errorf("[Extract] Failed to load %s: %v, using empty table", paths[consts.DatasetTransactions], err)
	} else {
		set.Transactions = parseTransactions(header, records)
		u.logger.Infof("[Extract] Loaded %d rows from %s", len(set.Transactions.Rows), paths[consts.DatasetTransactions])
	}

	return set
}

func readCSV(path string) ([]string, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open source file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV from %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.TrimSpace(col)
	}
	return header, records[1:], nil
}

func indexColumns(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[col] = i
	}
	return idx
}

func fieldAt(record []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func intFieldAt(record []string, idx map[string]int, col string) *int {
	raw := fieldAt(record, idx, col)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func floatFieldAt(record []string, idx map[string]int, col string) *float64 {
	raw := fieldAt(record, idx, col)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseCustomers(header []string, records [][]string) entity.CustomerTable {
	table := entity.CustomerTable{Columns: header}
	idx := indexColumns(header)

	for _, record := range records {
		id := fieldAt(record, idx, "customer_id")
		if id == "" {
			continue
		}
		table.Rows = append(table.Rows, entity.Customer{
			CustomerID:        id,
			JoiningDate:       fieldAt(record, idx, "joining_date"),
			CreditScore:       intFieldAt(record, idx, "credit_score"),
			AnnualIncome:      floatFieldAt(record, idx, "annual_income"),
			EmploymentStatus:  fieldAt(record, idx, "employment_status"),
			ResidentialStatus: fieldAt(record, idx, "residential_status"),
			Age:               intFieldAt(record, idx, "age"),
			State:             fieldAt(record, idx, "state"),
		})
	}
	return table
}

func parseLoans(header []string, records [][]string) entity.LoanTable {
	table := entity.LoanTable{Columns: header}
	idx := indexColumns(header)

	for _, record := range records {
		id := fieldAt(record, idx, "loan_id")
		if id == "" {
			continue
		}
		table.Rows = append(table.Rows, entity.Loan{
			LoanID:           id,
			CustomerID:       fieldAt(record, idx, "customer_id"),
			DisbursementDate: fieldAt(record, idx, "disbursement_date"),
			LoanAmount:       floatFieldAt(record, idx, "loan_amount"),
			InterestRate:     floatFieldAt(record, idx, "interest_rate"),
			TenureMonths:     intFieldAt(record, idx, "tenure_months"),
			LoanType:         fieldAt(record, idx, "loan_type"),
			EmiAmount:        floatFieldAt(record, idx, "emi_amount"),
			CurrentStatus:    fieldAt(record, idx, "current_status"),
		})
	}
	return table
}

func parseTransactions(header []string, records [][]string) entity.TransactionTable {
	table := entity.TransactionTable{Columns: header}
	idx := indexColumns(header)

	for _, record := range records {
		id := fieldAt(record, idx, "transaction_id")
		if id == "" {
			continue
		}
		bounce := 0
		if b := intFieldAt(record, idx, "bounce_flag"); b != nil {
			bounce = *b
		}
		table.Rows = append(table.Rows, entity.Transaction{
			TransactionID:   id,
			LoanID:          fieldAt(record, idx, "loan_id"),
			TransactionDate: fieldAt(record, idx, "transaction_date"),
			Amount:          floatFieldAt(record, idx, "amount"),
			PaymentMode:     fieldAt(record, idx, "payment_mode"),
			Status:          fieldAt(record, idx, "status"),
			BounceFlag:      bounce,
		})
	}
	return table
}
