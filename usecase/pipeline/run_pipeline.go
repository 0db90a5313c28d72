package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/finport/portfolio-etl/entity"

	"github.com/google/uuid"
)

// Run executes one Extract-Transform-Load-Report cycle, single-threaded and
// run to completion. Cancellation is honored between stages only; once the
// load starts it finishes, so the store is never left half-replaced.
func (u *pipelineUsecase) Run(ctx context.Context) (entity.RunReport, error) {
	runID := uuid.New().String()
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return entity.RunReport{}, err
	}
	u.logger.Infof("[Pipeline] Starting run %s", runID)

	set := u.Extract()

	if err := u.Transform(&set); err != nil {
		u.logger.Errorf("[Pipeline] Run %s failed in transform: %v", runID, err)
		return entity.RunReport{}, fmt.Errorf("transform stage failed: %w", err)
	}

	if err := ctx.Err(); err != nil {
		u.logger.Warnf("[Pipeline] Run %s cancelled before load: %v", runID, err)
		return entity.RunReport{}, err
	}

	if err := u.Load(set); err != nil {
		u.logger.Errorf("[Pipeline] Run %s failed in load: %v", runID, err)
		return entity.RunReport{}, fmt.Errorf("load stage failed: %w", err)
	}

	report, err := u.GenerateReport(set, runID)
	if err != nil {
		u.logger.Errorf("[Pipeline] Run %s failed in report: %v", runID, err)
		return report, fmt.Errorf("report stage failed: %w", err)
	}

	u.logger.Infof("[Pipeline] Run %s completed in %s", runID, time.Since(start))
	return report, nil
}
