package handler

import (
	"log/slog"
	"net/http"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:  "unhealthy",
			Message: "database unavailable",
		})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Message: "NBN TECH API",
	})
}
