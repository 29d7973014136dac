package history

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockFile = "history.lock"

// Lock serializes history mutations across processes. Builds running in
// separate terminals write through the same directory, so the store and
// the latest pointer must change under one lock.
type Lock struct {
	inner   *flock.Flock
	timeout time.Duration
}

// NewLock creates a lock for the history directory
func NewLock(historyDir string, timeout time.Duration) (*Lock, error) {
	if err := os.MkdirAll(historyDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	return &Lock{
		inner:   flock.New(filepath.Join(historyDir, lockFile)),
		timeout: timeout,
	}, nil
}

// Acquire takes the lock, polling until the configured timeout
func (l *Lock) Acquire() error {
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	locked, err := l.inner.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to acquire history lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("timeout waiting for history lock")
	}
	return nil
}

// Release drops the lock
func (l *Lock) Release() error {
	return l.inner.Unlock()
}
