package analytics

import (
	"fmt"

	"github.com/finport/portfolio-etl/entity"
)

func (u *analyticsUsecase) QueryNames() []string {
	names := make([]string, len(queryOrder))
	copy(names, queryOrder)
	return names
}

// Run executes one named catalog query against the loaded tables.
func (u *analyticsUsecase) Run(name string) (entity.QueryResult, error) {
	query, ok := queryCatalog[name]
	if !ok {
		return entity.QueryResult{}, fmt.Errorf("%w: %q", ErrUnknownQuery, name)
	}

	result, err := u.dao.ExecuteQuery(name, query)
	if err != nil {
		u.logger.Errorf("[Analytics] Query %s failed: %v", name, err)
		return result, err
	}

	u.logger.Infof("[Analytics] Query %s returned %d rows", name, len(result.Rows))
	return result, nil
}

// RunAll executes the whole catalog. Individual query failures are logged and
// skipped so one broken report does not hide the rest.
func (u *analyticsUsecase) RunAll() ([]entity.QueryResult, error) {
	results := make([]entity.QueryResult, 0, len(queryOrder))
	for _, name := range queryOrder {
		result, err := u.Run(name)
		if err != nil {
			continue
		}
		results = append(results, result)
	}
	return results, nil
}
