package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/adrianliechti/voicegate/pkg/fault"
	"github.com/adrianliechti/voicegate/pkg/provider"
)

func (h *Handler) handleSpeech(w http.ResponseWriter, r *http.Request) {
	var req SpeechRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fault.Validation("no text provided"))
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		writeError(w, fault.Validation("empty text provided"))
		return
	}

	voice := h.Catalog.Resolve(req.Language, req.Speaker)

	slog.InfoContext(r.Context(), "generating speech", "language", voice.Language, "speaker", voice.Speaker)

	s, err := h.Synthesizer("")

	if err != nil {
		writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	synthesis, err := s.Synthesize(ctx, req.Text, &provider.SynthesizeOptions{
		Voice: voice.ID,
	})

	if err != nil {
		writeError(w, upstreamFault("speech generation failed", err))
		return
	}

	artifact, err := h.Broker.Acquire("speech", ".mp3")

	if err != nil {
		writeError(w, err)
		return
	}

	defer h.Broker.Release(artifact)

	if err := h.Broker.Write(artifact, synthesis.Content); err != nil {
		writeError(w, err)
		return
	}

	data, err := h.Broker.Read(artifact)

	if err != nil {
		writeError(w, err)
		return
	}

	contentType := synthesis.ContentType

	if contentType == "" {
		contentType = "audio/mpeg"
	}

	w.Header().Set("Content-Type", contentType)

	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
