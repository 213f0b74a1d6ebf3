package provider

import (
	"context"
)

type Transcriber interface {
	Transcribe(ctx context.Context, input File, options *TranscribeOptions) (*Transcription, error)
}

type TranscribeOptions struct {
	Language string
}

type Transcription struct {
	ID    string
	Model string

	Text     string
	Language string
}
