package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/adrianliechti/voicegate/config"
	"github.com/adrianliechti/voicegate/pkg/fault"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Get("/", h.handleHealth)

	r.Post("/transcribe", h.handleTranscribe)
	r.Post("/tts", h.handleSpeech)
}

func writeJson(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

// writeError emits the uniform {error} shape. Errors without a fault kind are
// logged and surfaced as a generic server fault.
func writeError(w http.ResponseWriter, err error) {
	message := err.Error()

	if fault.KindOf(err) == "" {
		slog.Error("unclassified handler error", "error", err)
		message = "internal server error"
	}

	writeJson(w, fault.Status(err), ErrorResponse{
		Error: message,
	})
}

// upstreamFault classifies a backend call error, folding context expiry into
// the upstream kind.
func upstreamFault(message string, err error) error {
	if fault.KindOf(err) != "" {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fault.Upstream(message+": backend call timed out", err)
	}

	return fault.Upstream(message+": "+err.Error(), err)
}
