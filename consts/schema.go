package consts

// Schema contract between the transform engine, the loader and the analytics
// query catalog. The loader verifies these columns exist in the store before
// writing, so a drifted schema fails fast instead of producing empty reports.

// Source columns loan classification cannot work without.
var LoanClassificationColumns = []string{
	"interest_rate",
	"emi_amount",
	"tenure_months",
	"loan_amount",
}

// TableColumns lists, per store table, every column the pipeline writes and
// the analytics queries read.
var TableColumns = map[string][]string{
	DatasetCustomers: {
		"customer_id",
		"joining_date",
		"credit_score",
		"annual_income",
		"employment_status",
		"residential_status",
		"age",
		"state",
		"customer_segment",
	},
	DatasetLoans: {
		"loan_id",
		"customer_id",
		"disbursement_date",
		"loan_amount",
		"interest_rate",
		"tenure_months",
		"loan_type",
		"emi_amount",
		"current_status",
		"risk_band",
		"total_payable",
		"total_interest",
	},
	DatasetTransactions: {
		"transaction_id",
		"loan_id",
		"transaction_date",
		"amount",
		"payment_mode",
		"status",
		"bounce_flag",
		"transaction_month",
	},
	TableRiskFeatures: {
		"loan_id",
		"risk_score",
		"risk_grade",
	},
	TablePortfolioSummary: {
		"id",
		"calculation_date",
		"total_loans",
		"total_disbursed",
		"active_loans",
		"avg_interest_rate",
	},
}
