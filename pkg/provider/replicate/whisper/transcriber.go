package whisper

import (
	"context"
	"fmt"

	"github.com/adrianliechti/voicegate/pkg/fault"
	"github.com/adrianliechti/voicegate/pkg/provider"
	"github.com/adrianliechti/voicegate/pkg/provider/replicate"

	"github.com/google/uuid"
)

var _ provider.Transcriber = (*Transcriber)(nil)

const DefaultModel = "openai/whisper"

type Transcriber struct {
	*replicate.Client
}

func NewTranscriber(model string, options ...replicate.Option) (*Transcriber, error) {
	if model == "" {
		model = DefaultModel
	}

	client, err := replicate.New(model, options...)

	if err != nil {
		return nil, err
	}

	return &Transcriber{
		Client: client,
	}, nil
}

func (t *Transcriber) Transcribe(ctx context.Context, input provider.File, options *provider.TranscribeOptions) (*provider.Transcription, error) {
	if options == nil {
		options = new(provider.TranscribeOptions)
	}

	file, err := t.UploadFile(ctx, input)

	if err != nil {
		return nil, fault.Upstream("audio upload failed: "+err.Error(), err)
	}

	fileID := file.ID
	fileURL := file.URLs["get"]

	defer func() {
		t.DeleteFile(context.Background(), fileID)
	}()

	language := options.Language

	if language == "" {
		language = "auto"
	}

	// https://replicate.com/openai/whisper/api/schema#input-schema
	// Decoding is pinned so the same audio and model version transcribe
	// reproducibly.
	in := replicate.PredictionInput{
		"audio": fileURL,

		"model":     "large-v3",
		"language":  language,
		"translate": false,

		"temperature":                0,
		"suppress_tokens":            "-1",
		"logprob_threshold":          -1.0,
		"no_speech_threshold":        0.6,
		"condition_on_previous_text": true,
	}

	output, err := t.Run(ctx, in)

	if err != nil {
		return nil, fault.Upstream("transcription failed: "+err.Error(), err)
	}

	result := convertTranscription(output)

	result.ID = uuid.NewString()
	result.Model = t.Model()

	return result, nil
}

// convertTranscription handles the loosely specified prediction output: a
// structured object, a bare string, or anything else stringified best-effort.
func convertTranscription(output replicate.PredictionOutput) *provider.Transcription {
	switch val := output.(type) {
	case map[string]any:
		result := new(provider.Transcription)

		if text, ok := val["transcription"].(string); ok {
			result.Text = text
		} else {
			result.Text = fmt.Sprint(val)
		}

		if language, ok := val["language"].(string); ok {
			result.Language = language
		}

		return result

	case string:
		return &provider.Transcription{
			Text: val,
		}

	default:
		return &provider.Transcription{
			Text: fmt.Sprint(val),
		}
	}
}
