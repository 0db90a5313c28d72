package entity

// TableReport summarizes one transformed table for the run report.
type TableReport struct {
	RowCount      int     `json:"row_count"`
	ColumnCount   int     `json:"column_count"`
	MemoryUsageMB float64 `json:"memory_usage_mb"`
}

// RunReport is the JSON document written after every pipeline run.
type RunReport struct {
	RunID     string                 `json:"run_id"`
	Timestamp string                 `json:"timestamp"`
	Summary   map[string]TableReport `json:"summary"`
}

// QueryResult is the tabular output of one analytics catalog query.
type QueryResult struct {
	Name    string                   `json:"name"`
	Columns []string                 `json:"columns"`
	Rows    []map[string]interface{} `json:"rows"`
}

// HealthReport is the output of the database health check.
type HealthReport struct {
	DatabasePath      string          `json:"database_path"`
	Tables            []TableRowCount `json:"tables"`
	LatestTransaction string          `json:"latest_transaction,omitempty"`
}

type TableRowCount struct {
	Name     string `json:"name"`
	RowCount int64  `json:"row_count"`
}
