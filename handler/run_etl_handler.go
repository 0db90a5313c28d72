package handler

import (
	"encoding/json"
	"net/http"
)

// RunETL triggers one pipeline run. Concurrent triggers are rejected with a
// conflict so two runs cannot race on table replacement within this process.
func (h *PipelineHandler) RunETL(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !h.Locker.TryAcquire(etlRunKey) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "a pipeline run is already in progress",
		})
		return
	}
	defer h.Locker.Unlock(etlRunKey)

	report, err := h.Pipeline.Run(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   report,
	})
}
