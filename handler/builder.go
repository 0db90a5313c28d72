package handler

import (
	"github.com/finport/portfolio-etl/infra/locker"
	analyticsUsecase "github.com/finport/portfolio-etl/usecase/analytics"
	monitorUsecase "github.com/finport/portfolio-etl/usecase/monitor"
	pipelineUsecase "github.com/finport/portfolio-etl/usecase/pipeline"
)

// Lock key for the single in-process pipeline run.
const etlRunKey = "etl_run"

type PipelineHandler struct {
	Pipeline   pipelineUsecase.PipelineUsecase
	Analytics  analyticsUsecase.AnalyticsUsecase
	Monitor    monitorUsecase.MonitorUsecase
	Locker     *locker.Locker
	ReportPath string
}

func NewPipelineHandler(
	pipeline pipelineUsecase.PipelineUsecase,
	analytics analyticsUsecase.AnalyticsUsecase,
	monitor monitorUsecase.MonitorUsecase,
	lock *locker.Locker,
	reportPath string,
) *PipelineHandler {
	return &PipelineHandler{
		Pipeline:   pipeline,
		Analytics:  analytics,
		Monitor:    monitor,
		Locker:     lock,
		ReportPath: reportPath,
	}
}

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
