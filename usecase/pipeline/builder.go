package pipeline

import (
	"context"
	"errors"

	"github.com/finport/portfolio-etl/config"
	"github.com/finport/portfolio-etl/entity"
	"github.com/finport/portfolio-etl/infra/db/dao"

	"github.com/labstack/gommon/log"
)

// ErrSchemaMismatch signals that a source file or store table is missing
// columns the pipeline depends on. Always fatal for the run.
var ErrSchemaMismatch = errors.New("schema mismatch")

type PipelineUsecase interface {
	Run(ctx context.Context) (entity.RunReport, error)
	Extract() entity.TableSet
	Transform(set *entity.TableSet) error
	Load(set entity.TableSet) error
	GenerateReport(set entity.TableSet, runID string) (entity.RunReport, error)
}

type pipelineUsecase struct {
	cfg    *config.Config
	dao    dao.DaoMethod
	logger *log.Logger
}

func NewPipelineUsecase(cfg *config.Config, d dao.DaoMethod) PipelineUsecase {
	return &pipelineUsecase{
		cfg:    cfg,
		dao:    d,
		logger: log.New("pipeline"),
	}
}
