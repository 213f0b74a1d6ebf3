package api

import (
	"net/http"
)

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJson(w, http.StatusOK, HealthResponse{
		Status:  "Server is running",
		Message: "Audio transcription service ready",
	})
}
