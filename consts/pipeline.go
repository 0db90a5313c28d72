package consts

const (
	// Logical dataset names, also the store table names they load into
	DatasetCustomers    = "customers"
	DatasetLoans        = "loans"
	DatasetTransactions = "transactions"

	// Derived tables
	TableRiskFeatures     = "risk_features"
	TablePortfolioSummary = "portfolio_summary"

	// Loan status values
	LoanStatusActive     = "ACTIVE"
	LoanStatusClosed     = "CLOSED"
	LoanStatusDelinquent = "DELINQUENT"
	LoanStatusDefault    = "DEFAULT"

	// Transaction status values
	TransactionStatusSuccess = "SUCCESS"
	TransactionStatusFailed  = "FAILED"

	// Customer segments
	SegmentPremium  = "Premium"
	SegmentGold     = "Gold"
	SegmentSilver   = "Silver"
	SegmentStandard = "Standard"

	// Default config
	DefaultConfigFile   = "config.json"
	DefaultDatabasePath = "database/fintech_portfolio.db"
	DefaultReportPath   = "etl_report.json"
	DefaultBackupDir    = "backups"
	DefaultRiskSeed     = 42
	DefaultServerPort   = "8080"
)
