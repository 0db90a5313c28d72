package handler

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/finport/portfolio-etl/entity"
)

// GetReport returns the report JSON of the most recent pipeline run.
func (h *PipelineHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	payload, err := os.ReadFile(h.ReportPath)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "no run report available yet",
		})
		return
	}

	var report entity.RunReport
	if err := json.Unmarshal(payload, &report); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "run report is unreadable",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   report,
	})
}
