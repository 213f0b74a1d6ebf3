// Package client is a small Go client for the voicegate HTTP surface.
package client

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

type Client struct {
	Health HealthService

	Transcriptions TranscriptionService
	Syntheses      SynthesisService
}

func New(url string, opts ...RequestOption) *Client {
	opts = append(opts, WithURL(url))

	return &Client{
		Health: NewHealthService(opts...),

		Transcriptions: NewTranscriptionService(opts...),
		Syntheses:      NewSynthesisService(opts...),
	}
}

func newRequestConfig(opts ...RequestOption) *RequestConfig {
	c := &RequestConfig{
		Client: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// convertError turns a non-200 gateway response into an error carrying the
// gateway's message.
func convertError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}

	data, _ := io.ReadAll(resp.Body)

	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		return errors.New(body.Error)
	}

	return errors.New(resp.Status)
}
