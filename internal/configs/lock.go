package configs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	perrors "github.com/perchhub/perch-config/internal/errors"
)

// lockRetryInterval is how often lock acquisition is retried within the
// bounded wait.
const lockRetryInterval = 50 * time.Millisecond

// LockPath returns the lock marker path for a config file. The marker is a
// sibling of the config file; it is only ever locked, never parsed.
func LockPath(configPath string) string {
	return configPath + ".lock"
}

// withLock runs fn while holding the exclusive advisory lock for the
// store's config file. Acquisition waits at most LockTimeout; on timeout
// the operation aborts with ErrLockBusy. The lock is released on every
// exit path, including a panic inside fn.
func (s *Store) withLock(fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.ConfigPath), 0o755); err != nil {
		return err
	}

	timeout := s.LockTimeout
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}

	lock := flock.New(LockPath(s.ConfigPath))
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	locked, err := lock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s", perrors.ErrLockBusy, LockPath(s.ConfigPath))
		}
		return fmt.Errorf("acquiring config lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", perrors.ErrLockBusy, LockPath(s.ConfigPath))
	}
	defer func() {
		_ = lock.Unlock()
	}()

	return fn()
}
