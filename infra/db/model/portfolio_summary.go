package model

import "time"

type PortfolioSummary struct {
	ID              int64     `gorm:"column:id;primary_key;auto_increment" json:"id"`
	CalculationDate string    `gorm:"column:calculation_date" json:"calculation_date"`
	TotalLoans      int64     `gorm:"column:total_loans" json:"total_loans"`
	TotalDisbursed  float64   `gorm:"column:total_disbursed" json:"total_disbursed"`
	ActiveLoans     int64     `gorm:"column:active_loans" json:"active_loans"`
	AvgInterestRate float64   `gorm:"column:avg_interest_rate" json:"avg_interest_rate"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
}

func (PortfolioSummary) TableName() string {
	return "portfolio_summary"
}
