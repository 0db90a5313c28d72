package dao

import (
	"github.com/finport/portfolio-etl/entity"

	"github.com/jinzhu/gorm"
)

// TableBatch is one store table worth of rows to load. Rows must be pointers
// to the matching infra/db/model type.
type TableBatch struct {
	Name string
	Rows []interface{}
}

type DaoMethod interface {
	InitSchema() error
	TableNames() ([]string, error)
	TableColumns(table string) ([]string, error)
	RowCount(table string) (int64, error)
	ReplaceTables(batches []TableBatch) error
	InsertPortfolioSummary(summary entity.PortfolioSummary) error
	LoanAggregates() (entity.PortfolioSummary, error)
	LatestTransactionDate() (string, error)
	ExecuteQuery(name, query string) (entity.QueryResult, error)
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}
