package controllers

import (
	"github.com/finport/portfolio-etl/handler"
	"github.com/finport/portfolio-etl/infra/db/dao"
	analyticsUsecase "github.com/finport/portfolio-etl/usecase/analytics"
	monitorUsecase "github.com/finport/portfolio-etl/usecase/monitor"
	pipelineUsecase "github.com/finport/portfolio-etl/usecase/pipeline"

	"github.com/gorilla/mux"
)

func (a *App) newPipelineHandler() *handler.PipelineHandler {
	d := dao.NewDaoMethod(a.DB)
	return handler.NewPipelineHandler(
		pipelineUsecase.NewPipelineUsecase(a.Config, d),
		analyticsUsecase.NewAnalyticsUsecase(d),
		monitorUsecase.NewMonitorUsecase(a.Config, d),
		a.Locker,
		a.Config.Pipeline.ReportPath,
	)
}

func RegisterPipelineRoutes(router *mux.Router, h *handler.PipelineHandler) {
	router.HandleFunc("/run_etl", h.RunETL).Methods("POST")
	router.HandleFunc("/report", h.GetReport).Methods("GET")
	router.HandleFunc("/analytics", h.ListQueries).Methods("GET")
	router.HandleFunc("/analytics/{name}", h.RunQuery).Methods("GET")
	router.HandleFunc("/health", h.Health).Methods("GET")
}
