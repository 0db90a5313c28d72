package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	analyticsUsecase "github.com/finport/portfolio-etl/usecase/analytics"

	"github.com/gorilla/mux"
)

// ListQueries returns the names of the analytics catalog.
func (h *PipelineHandler) ListQueries(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   h.Analytics.QueryNames(),
	})
}

// RunQuery executes one named analytics query.
func (h *PipelineHandler) RunQuery(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	name := mux.Vars(r)["name"]
	result, err := h.Analytics.Run(name)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, analyticsUsecase.ErrUnknownQuery) {
			status = http.StatusNotFound
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   result,
	})
}
