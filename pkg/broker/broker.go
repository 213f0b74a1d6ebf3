// Package broker provides request-scoped temporary byte storage. Every
// artifact is uniquely named, owned by exactly one in-flight request, and
// removed again via Release on every exit path.
package broker

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrianliechti/voicegate/pkg/fault"

	"github.com/google/uuid"
)

type Broker struct {
	dir string
}

func New(dir string) (*Broker, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fault.Resource("artifact storage unavailable: "+err.Error(), err)
	}

	return &Broker{
		dir: dir,
	}, nil
}

func (b *Broker) Dir() string {
	return b.dir
}

// Artifact is a handle to one scoped temporary file. The handle is only
// valid between Acquire and Release.
type Artifact struct {
	path string
}

func (a *Artifact) Name() string {
	return filepath.Base(a.path)
}

func (a *Artifact) Path() string {
	return a.path
}

// Acquire creates a uniquely named artifact. Names embed a random token, so
// concurrent requests never collide and never block each other.
func (b *Broker) Acquire(purpose, suffix string) (*Artifact, error) {
	name := purpose + "-" + uuid.NewString() + suffix
	path := filepath.Join(b.dir, name)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)

	if err != nil {
		return nil, fault.Resource("cannot create artifact: "+err.Error(), err)
	}

	file.Close()

	return &Artifact{
		path: path,
	}, nil
}

func (b *Broker) Write(artifact *Artifact, data []byte) error {
	if err := os.WriteFile(artifact.path, data, 0o600); err != nil {
		return fault.Resource("cannot write artifact: "+err.Error(), err)
	}

	return nil
}

// WriteFrom streams the reader into the artifact, e.g. directly from an
// incoming request body.
func (b *Broker) WriteFrom(artifact *Artifact, reader io.Reader) (int64, error) {
	file, err := os.OpenFile(artifact.path, os.O_WRONLY|os.O_TRUNC, 0o600)

	if err != nil {
		return 0, fault.Resource("cannot open artifact: "+err.Error(), err)
	}

	defer file.Close()

	n, err := io.Copy(file, reader)

	if err != nil {
		return n, fault.Resource("cannot write artifact: "+err.Error(), err)
	}

	return n, nil
}

func (b *Broker) Read(artifact *Artifact) ([]byte, error) {
	data, err := os.ReadFile(artifact.path)

	if err != nil {
		return nil, fault.Resource("cannot read artifact: "+err.Error(), err)
	}

	return data, nil
}

// Release deletes the artifact. It is idempotent and never fails: a handle
// that was already removed is fine, anything else is logged best-effort.
func (b *Broker) Release(artifact *Artifact) {
	if artifact == nil {
		return
	}

	if err := os.Remove(artifact.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("artifact release failed", "artifact", artifact.Name(), "error", err)
	}
}
