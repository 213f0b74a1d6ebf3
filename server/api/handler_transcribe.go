package api

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/adrianliechti/voicegate/pkg/fault"
	"github.com/adrianliechti/voicegate/pkg/provider"
)

func (h *Handler) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")

	if err != nil {
		writeError(w, fault.Validation("no audio file provided"))
		return
	}

	defer file.Close()

	if header.Filename == "" {
		writeError(w, fault.Validation("no file selected"))
		return
	}

	slog.InfoContext(r.Context(), "processing audio file", "name", header.Filename)

	artifact, err := h.Broker.Acquire("upload", audioSuffix(header.Filename))

	if err != nil {
		writeError(w, err)
		return
	}

	defer h.Broker.Release(artifact)

	if _, err := h.Broker.WriteFrom(artifact, file); err != nil {
		writeError(w, err)
		return
	}

	data, err := h.Broker.Read(artifact)

	if err != nil {
		writeError(w, err)
		return
	}

	p, err := h.Transcriber("")

	if err != nil {
		writeError(w, err)
		return
	}

	contentType := header.Header.Get("Content-Type")

	if mediatype, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediatype
	}

	input := provider.File{
		Name: artifact.Name(),

		Content:     data,
		ContentType: contentType,
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	transcription, err := p.Transcribe(ctx, input, nil)

	if err != nil {
		writeError(w, upstreamFault("transcription failed", err))
		return
	}

	result := TranscriptionResponse{
		Transcription: transcription.Text,
	}

	if transcription.Language != "" {
		result.Language = &transcription.Language
	}

	writeJson(w, http.StatusOK, result)
}

// audioSuffix derives the artifact suffix from the uploaded filename; the
// extension only serves as a container hint for the backend.
func audioSuffix(name string) string {
	if ext := filepath.Ext(name); ext != "" {
		return ext
	}

	return ".webm"
}
