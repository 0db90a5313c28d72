package model

import "time"

type Customer struct {
	CustomerID        string    `gorm:"column:customer_id;primary_key" json:"customer_id"`
	JoiningDate       string    `gorm:"column:joining_date" json:"joining_date"`
	CreditScore       *int      `gorm:"column:credit_score" json:"credit_score"`
	AnnualIncome      *float64  `gorm:"column:annual_income" json:"annual_income"`
	EmploymentStatus  string    `gorm:"column:employment_status" json:"employment_status"`
	ResidentialStatus string    `gorm:"column:residential_status" json:"residential_status"`
	Age               *int      `gorm:"column:age" json:"age"`
	State             string    `gorm:"column:state" json:"state"`
	CustomerSegment   *string   `gorm:"column:customer_segment" json:"customer_segment"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Customer) TableName() string {
	return "customers"
}
