package dao

import (
	"fmt"

	"github.com/finport/portfolio-etl/entity"
)

// ExecuteQuery runs one analytics catalog query and returns its result set.
func (d *dao) ExecuteQuery(name, query string) (entity.QueryResult, error) {
	result := entity.QueryResult{Name: name}

	rows, err := d.db.Raw(query).Rows()
	if err != nil {
		return result, fmt.Errorf("query %s failed: %w", name, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return result, fmt.Errorf("query %s failed to describe columns: %w", name, err)
	}
	result.Columns = columns

	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return result, fmt.Errorf("query %s failed to scan row: %w", name, err)
		}

		record := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				record[col] = string(b)
			} else {
				record[col] = values[i]
			}
		}
		result.Rows = append(result.Rows, record)
	}
	return result, rows.Err()
}
