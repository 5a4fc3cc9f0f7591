package snapshot

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked indicates another ingest run already holds the data-directory lock.
var ErrLocked = errors.New("another ingest is already running")

// IngestLock guards the data directory so concurrent ingest runs cannot
// interleave snapshot writes.
type IngestLock struct {
	lock *flock.Flock
	path string
}

// NewIngestLock builds a lock rooted in the given data directory.
func NewIngestLock(dataDir string) *IngestLock {
	path := filepath.Join(dataDir, "ingest.lock")
	return &IngestLock{lock: flock.New(path), path: path}
}

// Path returns the lock file location.
func (l *IngestLock) Path() string {
	return l.path
}

// Acquire takes the lock without blocking. It returns ErrLocked when another
// process holds it.
func (l *IngestLock) Acquire() error {
	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire ingest lock: %w", err)
	}
	if !ok {
		return ErrLocked
	}
	return nil
}

// Release drops the lock.
func (l *IngestLock) Release() error {
	return l.lock.Unlock()
}
