package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrianliechti/voicegate/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	return path
}

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	require.Equal(t, ":5100", cfg.Address)
	require.Equal(t, 60*time.Second, cfg.Timeout)
	require.NotEmpty(t, cfg.Origins)

	require.NotNil(t, cfg.Broker)
	require.NotNil(t, cfg.Catalog)
	require.Equal(t, "English", cfg.Catalog.Fallback())

	_, err = cfg.Transcriber("")
	require.Error(t, err)

	_, err = cfg.Synthesizer("")
	require.Error(t, err)
}

func TestParse(t *testing.T) {
	dir := t.TempDir()

	path := writeConfig(t, `
address: ":8085"
timeout: 30s

broker:
  dir: `+dir+`

transcriber:
  type: replicate
  token: test-token

synthesizer:
  type: edge
`)

	cfg, err := config.Parse(path)
	require.NoError(t, err)

	require.Equal(t, ":8085", cfg.Address)
	require.Equal(t, 30*time.Second, cfg.Timeout)
	require.Equal(t, dir, cfg.Broker.Dir())

	transcriber, err := cfg.Transcriber("")
	require.NoError(t, err)
	require.NotNil(t, transcriber)

	synthesizer, err := cfg.Synthesizer("")
	require.NoError(t, err)
	require.NotNil(t, synthesizer)
}

func TestParseEnvExpansion(t *testing.T) {
	t.Setenv("TEST_GATEWAY_ADDRESS", ":9000")

	path := writeConfig(t, `address: "${TEST_GATEWAY_ADDRESS}"`)

	cfg, err := config.Parse(path)
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.Address)
}

func TestParseCatalog(t *testing.T) {
	path := writeConfig(t, `
catalog:
  default: German
  languages:
    German:
      - name: Katja
        voice: de-DE-KatjaNeural
`)

	cfg, err := config.Parse(path)
	require.NoError(t, err)

	voice := cfg.Catalog.Resolve("Klingon", "")
	require.Equal(t, "de-DE-KatjaNeural", voice.ID)
}

func TestParseInvalid(t *testing.T) {
	t.Run("unknown field", func(t *testing.T) {
		_, err := config.Parse(writeConfig(t, `listen: ":8080"`))
		require.Error(t, err)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		_, err := config.Parse(writeConfig(t, `timeout: soon`))
		require.Error(t, err)
	})

	t.Run("invalid transcriber type", func(t *testing.T) {
		_, err := config.Parse(writeConfig(t, "transcriber:\n  type: telepathy"))
		require.Error(t, err)
	})

	t.Run("invalid synthesizer type", func(t *testing.T) {
		_, err := config.Parse(writeConfig(t, "synthesizer:\n  type: gramophone"))
		require.Error(t, err)
	})
}
