package whisper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertTranscription(t *testing.T) {
	t.Run("structured output", func(t *testing.T) {
		result := convertTranscription(map[string]any{
			"transcription": "hello world",
			"language":      "en",
		})

		require.Equal(t, "hello world", result.Text)
		require.Equal(t, "en", result.Language)
	})

	t.Run("structured output without language", func(t *testing.T) {
		result := convertTranscription(map[string]any{
			"transcription": "hello world",
		})

		require.Equal(t, "hello world", result.Text)
		require.Empty(t, result.Language)
	})

	t.Run("plain string output", func(t *testing.T) {
		result := convertTranscription("hello world")

		require.Equal(t, "hello world", result.Text)
		require.Empty(t, result.Language)
	})

	t.Run("object without transcription field", func(t *testing.T) {
		result := convertTranscription(map[string]any{
			"text": "hello world",
		})

		// best effort: unknown shapes are stringified, never dropped
		require.NotEmpty(t, result.Text)
		require.Contains(t, result.Text, "hello world")
	})

	t.Run("unexpected output type", func(t *testing.T) {
		result := convertTranscription([]any{"hello", "world"})

		require.NotEmpty(t, result.Text)
	})
}
