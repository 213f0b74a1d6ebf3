package broker_test

import (
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/adrianliechti/voicegate/pkg/broker"

	"github.com/stretchr/testify/require"
)

func newTestBroker(t *testing.T) *broker.Broker {
	t.Helper()

	b, err := broker.New(t.TempDir())
	require.NoError(t, err)

	return b
}

func TestAcquireRelease(t *testing.T) {
	b := newTestBroker(t)

	artifact, err := b.Acquire("upload", ".webm")
	require.NoError(t, err)

	require.FileExists(t, artifact.Path())
	require.True(t, strings.HasPrefix(artifact.Name(), "upload-"))
	require.True(t, strings.HasSuffix(artifact.Name(), ".webm"))

	b.Release(artifact)
	require.NoFileExists(t, artifact.Path())
}

func TestReleaseIdempotent(t *testing.T) {
	b := newTestBroker(t)

	artifact, err := b.Acquire("speech", ".mp3")
	require.NoError(t, err)

	b.Release(artifact)
	b.Release(artifact)
	b.Release(nil)

	require.NoFileExists(t, artifact.Path())
}

func TestWriteRead(t *testing.T) {
	b := newTestBroker(t)

	artifact, err := b.Acquire("speech", ".mp3")
	require.NoError(t, err)

	defer b.Release(artifact)

	require.NoError(t, b.Write(artifact, []byte("audio-bytes")))

	data, err := b.Read(artifact)
	require.NoError(t, err)
	require.Equal(t, []byte("audio-bytes"), data)
}

func TestWriteFrom(t *testing.T) {
	b := newTestBroker(t)

	artifact, err := b.Acquire("upload", ".webm")
	require.NoError(t, err)

	defer b.Release(artifact)

	n, err := b.WriteFrom(artifact, strings.NewReader("streamed body"))
	require.NoError(t, err)
	require.EqualValues(t, len("streamed body"), n)

	data, err := b.Read(artifact)
	require.NoError(t, err)
	require.Equal(t, []byte("streamed body"), data)
}

func TestAcquireConcurrent(t *testing.T) {
	b := newTestBroker(t)

	const workers = 32

	var mu sync.Mutex
	var wg sync.WaitGroup

	paths := make(map[string]bool)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			artifact, err := b.Acquire("upload", ".webm")
			require.NoError(t, err)

			mu.Lock()
			paths[artifact.Path()] = true
			mu.Unlock()
		}()
	}

	wg.Wait()
	require.Len(t, paths, workers)
}

func TestReleaseCleansStorage(t *testing.T) {
	b := newTestBroker(t)

	for range 8 {
		artifact, err := b.Acquire("upload", ".webm")
		require.NoError(t, err)

		require.NoError(t, b.Write(artifact, []byte("data")))
		b.Release(artifact)
	}

	entries, err := os.ReadDir(b.Dir())
	require.NoError(t, err)
	require.Empty(t, entries)
}
