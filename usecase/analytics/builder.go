package analytics

import (
	"errors"

	"github.com/finport/portfolio-etl/entity"
	"github.com/finport/portfolio-etl/infra/db/dao"

	"github.com/labstack/gommon/log"
)

var ErrUnknownQuery = errors.New("unknown analytics query")

type AnalyticsUsecase interface {
	QueryNames() []string
	Run(name string) (entity.QueryResult, error)
	RunAll() ([]entity.QueryResult, error)
}

type analyticsUsecase struct {
	dao    dao.DaoMethod
	logger *log.Logger
}

func NewAnalyticsUsecase(d dao.DaoMethod) AnalyticsUsecase {
	return &analyticsUsecase{
		dao:    d,
		logger: log.New("analytics"),
	}
}
