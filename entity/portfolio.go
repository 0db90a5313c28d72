package entity

import "time"

// Row types carried between the extract and load phases. Optional values are
// pointers: a nil field means the source did not provide a usable value and
// downstream derivations must treat it as absent, not zero.

type Customer struct {
	CustomerID        string
	JoiningDate       string
	CreditScore       *int
	AnnualIncome      *float64
	EmploymentStatus  string
	ResidentialStatus string
	Age               *int
	State             string
	CustomerSegment   *string
}

type Loan struct {
	LoanID           string
	CustomerID       string
	DisbursementDate string
	LoanAmount       *float64
	InterestRate     *float64
	TenureMonths     *int
	LoanType         string
	EmiAmount        *float64
	CurrentStatus    string
	RiskBand         *string
	TotalPayable     *float64
	TotalInterest    *float64
}

type Transaction struct {
	TransactionID    string
	LoanID           string
	TransactionDate  string // raw value from the source file
	ParsedDate       *time.Time
	Amount           *float64
	PaymentMode      string
	Status           string
	BounceFlag       int
	TransactionMonth *string
}

type RiskFeature struct {
	LoanID    string
	RiskScore float64
	RiskGrade *string
}

type PortfolioSummary struct {
	CalculationDate string
	TotalLoans      int64
	TotalDisbursed  float64
	ActiveLoans     int64
	AvgInterestRate float64
}
