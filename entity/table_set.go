package entity

// Table containers pair parsed rows with the column names seen in the source
// header (plus derived columns appended by the transform engine). The column
// list drives the schema-mismatch check and the run report's column counts.

type CustomerTable struct {
	Columns []string
	Rows    []Customer
}

type LoanTable struct {
	Columns []string
	Rows    []Loan
}

type TransactionTable struct {
	Columns []string
	Rows    []Transaction
}

type RiskFeatureTable struct {
	Columns []string
	Rows    []RiskFeature
}

// TableSet is the unit of work flowing through one pipeline run.
type TableSet struct {
	Customers    CustomerTable
	Loans        LoanTable
	Transactions TransactionTable
	RiskFeatures RiskFeatureTable
}

func (t CustomerTable) Present() bool    { return len(t.Rows) > 0 }
func (t LoanTable) Present() bool        { return len(t.Rows) > 0 }
func (t TransactionTable) Present() bool { return len(t.Rows) > 0 }
func (t RiskFeatureTable) Present() bool { return len(t.Rows) > 0 }

func (t CustomerTable) HasColumn(name string) bool { return hasColumn(t.Columns, name) }
func (t LoanTable) HasColumn(name string) bool     { return hasColumn(t.Columns, name) }

func hasColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}

// ApproxBytes estimates the in-memory footprint of a table, counting a fixed
// overhead per field plus the length of every string payload.

const fieldOverheadBytes = 16

func (t CustomerTable) ApproxBytes() int64 {
	var total int64
	for _, r := range t.Rows {
		total += 9 * fieldOverheadBytes
		total += int64(len(r.CustomerID) + len(r.JoiningDate) + len(r.EmploymentStatus) +
			len(r.ResidentialStatus) + len(r.State))
		if r.CustomerSegment != nil {
			total += int64(len(*r.CustomerSegment))
		}
	}
	return total
}

func (t LoanTable) ApproxBytes() int64 {
	var total int64
	for _, r := range t.Rows {
		total += 12 * fieldOverheadBytes
		total += int64(len(r.LoanID) + len(r.CustomerID) + len(r.DisbursementDate) +
			len(r.LoanType) + len(r.CurrentStatus))
		if r.RiskBand != nil {
			total += int64(len(*r.RiskBand))
		}
	}
	return total
}

func (t TransactionTable) ApproxBytes() int64 {
	var total int64
	for _, r := range t.Rows {
		total += 8 * fieldOverheadBytes
		total += int64(len(r.TransactionID) + len(r.LoanID) + len(r.TransactionDate) +
			len(r.PaymentMode) + len(r.Status))
		if r.TransactionMonth != nil {
			total += int64(len(*r.TransactionMonth))
		}
	}
	return total
}

func (t RiskFeatureTable) ApproxBytes() int64 {
	var total int64
	for _, r := range t.Rows {
		total += 3 * fieldOverheadBytes
		total += int64(len(r.LoanID))
		if r.RiskGrade != nil {
			total += int64(len(*r.RiskGrade))
		}
	}
	return total
}
