package model

import "time"

type Transaction struct {
	TransactionID    string    `gorm:"column:transaction_id;primary_key" json:"transaction_id"`
	LoanID           string    `gorm:"column:loan_id;index" json:"loan_id"`
	TransactionDate  string    `gorm:"column:transaction_date" json:"transaction_date"`
	Amount           *float64  `gorm:"column:amount" json:"amount"`
	PaymentMode      string    `gorm:"column:payment_mode" json:"payment_mode"`
	Status           string    `gorm:"column:status" json:"status"`
	BounceFlag       int       `gorm:"column:bounce_flag" json:"bounce_flag"`
	TransactionMonth *string   `gorm:"column:transaction_month" json:"transaction_month"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
