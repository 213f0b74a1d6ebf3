package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adrianliechti/voicegate/pkg/client"

	"github.com/stretchr/testify/require"
)

func TestSynthesesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)

		json.NewEncoder(w).Encode(map[string]string{
			"error": "empty text provided",
		})
	}))

	defer server.Close()

	c := client.New(server.URL)

	_, err := c.Syntheses.New(t.Context(), client.SynthesizeRequest{})
	require.EqualError(t, err, "empty text provided")
}

func TestTranscriptionsRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transcribe", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)

		defer file.Close()
		require.Equal(t, "clip.webm", header.Filename)

		json.NewEncoder(w).Encode(map[string]any{
			"transcription": "hello world",
			"language":      nil,
		})
	}))

	defer server.Close()

	c := client.New(server.URL)

	result, err := c.Transcriptions.New(t.Context(), client.TranscribeRequest{
		Name:   "clip.webm",
		Reader: strings.NewReader("audio"),
	})

	require.NoError(t, err)
	require.Equal(t, "hello world", result.Transcription)
	require.Nil(t, result.Language)
}
