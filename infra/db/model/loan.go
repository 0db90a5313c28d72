package model

import "time"

type Loan struct {
	LoanID           string    `gorm:"column:loan_id;primary_key" json:"loan_id"`
	CustomerID       string    `gorm:"column:customer_id;index" json:"customer_id"`
	DisbursementDate string    `gorm:"column:disbursement_date" json:"disbursement_date"`
	LoanAmount       *float64  `gorm:"column:loan_amount" json:"loan_amount"`
	InterestRate     *float64  `gorm:"column:interest_rate" json:"interest_rate"`
	TenureMonths     *int      `gorm:"column:tenure_months" json:"tenure_months"`
	LoanType         string    `gorm:"column:loan_type" json:"loan_type"`
	EmiAmount        *float64  `gorm:"column:emi_amount" json:"emi_amount"`
	CurrentStatus    string    `gorm:"column:current_status" json:"current_status"`
	RiskBand         *string   `gorm:"column:risk_band" json:"risk_band"`
	TotalPayable     *float64  `gorm:"column:total_payable" json:"total_payable"`
	TotalInterest    *float64  `gorm:"column:total_interest" json:"total_interest"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Loan) TableName() string {
	return "loans"
}
