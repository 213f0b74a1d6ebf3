package catalog_test

import (
	"testing"

	"github.com/adrianliechti/voicegate/pkg/catalog"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	c := catalog.Default()

	tests := []struct {
		name string

		language string
		speaker  string

		voice catalog.Voice
	}{
		{
			name:     "known language first speaker",
			language: "Hindi",
			voice:    catalog.Voice{Language: "Hindi", Speaker: "Madhur", ID: "hi-IN-MadhurNeural"},
		},
		{
			name:     "known language named speaker",
			language: "English",
			speaker:  "Guy",
			voice:    catalog.Voice{Language: "English", Speaker: "Guy", ID: "en-US-GuyNeural"},
		},
		{
			name:     "unknown language falls back",
			language: "Klingon",
			voice:    catalog.Voice{Language: "English", Speaker: "Jenny", ID: "en-US-JennyNeural"},
		},
		{
			name:     "unknown speaker falls back to first",
			language: "Tamil",
			speaker:  "Nobody",
			voice:    catalog.Voice{Language: "Tamil", Speaker: "Pallavi", ID: "ta-IN-PallaviNeural"},
		},
		{
			name:  "empty everything",
			voice: catalog.Voice{Language: "English", Speaker: "Jenny", ID: "en-US-JennyNeural"},
		},
		{
			name:     "case sensitive lookup",
			language: "english",
			voice:    catalog.Voice{Language: "English", Speaker: "Jenny", ID: "en-US-JennyNeural"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.voice, c.Resolve(tt.language, tt.speaker))
		})
	}
}

// Resolution must be total: any input pair yields a usable voice id.
func TestResolveTotal(t *testing.T) {
	c := catalog.Default()

	languages := []string{"", "English", "Klingon", "日本語", "  ", "english"}
	speakers := []string{"", "Jenny", "Worf", "\x00"}

	for _, lang := range languages {
		for _, speaker := range speakers {
			voice := c.Resolve(lang, speaker)

			require.NotEmpty(t, voice.ID)
			require.NotEmpty(t, voice.Language)
			require.NotEmpty(t, voice.Speaker)
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	c := catalog.Default()

	first := c.Resolve("Klingon", "")

	for range 16 {
		require.Equal(t, first, c.Resolve("Klingon", ""))
	}
}

func TestNew(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		_, err := catalog.New("English", nil)
		require.Error(t, err)
	})

	t.Run("language without speakers", func(t *testing.T) {
		_, err := catalog.New("English", map[string][]catalog.Speaker{
			"English": {},
		})
		require.Error(t, err)
	})

	t.Run("fallback not in table", func(t *testing.T) {
		_, err := catalog.New("German", map[string][]catalog.Speaker{
			"English": {{Name: "Jenny", Voice: "en-US-JennyNeural"}},
		})
		require.Error(t, err)
	})
}
