package model

import "time"

type RiskFeature struct {
	LoanID    string    `gorm:"column:loan_id;primary_key" json:"loan_id"`
	RiskScore float64   `gorm:"column:risk_score" json:"risk_score"`
	RiskGrade *string   `gorm:"column:risk_grade" json:"risk_grade"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (RiskFeature) TableName() string {
	return "risk_features"
}
