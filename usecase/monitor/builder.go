package monitor

import (
	"github.com/finport/portfolio-etl/config"
	"github.com/finport/portfolio-etl/entity"
	"github.com/finport/portfolio-etl/infra/db/dao"

	"github.com/labstack/gommon/log"
)

type MonitorUsecase interface {
	CheckHealth() (entity.HealthReport, error)
	BackupDatabase() (string, error)
}

type monitorUsecase struct {
	cfg    *config.Config
	dao    dao.DaoMethod
	logger *log.Logger
}

func NewMonitorUsecase(cfg *config.Config, d dao.DaoMethod) MonitorUsecase {
	return &monitorUsecase{
		cfg:    cfg,
		dao:    d,
		logger: log.New("monitor"),
	}
}
