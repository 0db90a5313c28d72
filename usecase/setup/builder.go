package setup

import (
	"github.com/finport/portfolio-etl/config"
	"github.com/finport/portfolio-etl/infra/db/dao"

	"github.com/labstack/gommon/log"
)

type SetupUsecase interface {
	Setup() error
}

type setupUsecase struct {
	cfg    *config.Config
	dao    dao.DaoMethod
	logger *log.Logger
}

func NewSetupUsecase(cfg *config.Config, d dao.DaoMethod) SetupUsecase {
	return &setupUsecase{
		cfg:    cfg,
		dao:    d,
		logger: log.New("setup"),
	}
}
