package dao

import "fmt"

// Store DDL. Foreign keys are declared for documentation and storage-engine
// checks only; the loader tolerates orphaned rows from inconsistent inputs.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id TEXT PRIMARY KEY,
		joining_date TEXT,
		credit_score INTEGER,
		annual_income REAL,
		employment_status TEXT,
		residential_status TEXT,
		age INTEGER,
		state TEXT,
		customer_segment TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS loans (
		loan_id TEXT PRIMARY KEY,
		customer_id TEXT,
		disbursement_date TEXT,
		loan_amount REAL,
		interest_rate REAL,
		tenure_months INTEGER,
		loan_type TEXT,
		emi_amount REAL,
		current_status TEXT,
		risk_band TEXT,
		total_payable REAL,
		total_interest REAL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (customer_id) REFERENCES customers(customer_id)
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		transaction_id TEXT PRIMARY KEY,
		loan_id TEXT,
		transaction_date TEXT,
		amount REAL,
		payment_mode TEXT,
		status TEXT,
		bounce_flag INTEGER DEFAULT 0,
		transaction_month TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (loan_id) REFERENCES loans(loan_id)
	)`,
	`CREATE TABLE IF NOT EXISTS risk_features (
		loan_id TEXT PRIMARY KEY,
		risk_score REAL,
		risk_grade TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (loan_id) REFERENCES loans(loan_id)
	)`,
	`CREATE TABLE IF NOT EXISTS portfolio_summary (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		calculation_date TEXT,
		total_loans INTEGER,
		total_disbursed REAL,
		active_loans INTEGER,
		avg_interest_rate REAL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// InitSchema creates the five portfolio tables if they do not exist yet.
// Safe to run on every setup.
func (d *dao) InitSchema() error {
	for _, ddl := range schemaDDL {
		if err := d.db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

func (d *dao) TableNames() ([]string, error) {
	rows, err := d.db.Raw(
		`SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name`,
	).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// TableColumns returns the column names of a store table, in schema order.
func (d *dao) TableColumns(table string) ([]string, error) {
	rows, err := d.db.Raw(fmt.Sprintf("PRAGMA table_info(%s)", table)).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to inspect table %s: %w", table, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var (
			cid         int
			name, ctype string
			notNull     int
			defaultVal  interface{}
			pk          int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &defaultVal, &pk); err != nil {
			return nil, err
		}
		columns = append(columns, name)
	}
	return columns, rows.Err()
}

func (d *dao) RowCount(table string) (int64, error) {
	var count int64
	row := d.db.Raw(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Row()
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}
