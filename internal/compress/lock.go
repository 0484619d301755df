package compress

import (
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"

	"vidcompress/internal/logging"
)

const lockSuffix = ".lock"

// outputLock is an advisory lock next to the artifact so two processes never
// overwrite the same output concurrently. The lock file outlives the lock;
// deleting it would let a waiter on the old inode and a fresh opener both win.
type outputLock struct {
	path string
	lock *flock.Flock
}

func acquireOutputLock(outputPath string) (*outputLock, error) {
	path := outputPath + lockSuffix
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, wrap(ErrOutputLocked, "acquire output lock", path, err)
	}
	if !ok {
		return nil, wrap(ErrOutputLocked, "acquire output lock", fmt.Sprintf("another job is writing %s", outputPath), nil)
	}
	return &outputLock{path: path, lock: fl}, nil
}

func (l *outputLock) release(logger *slog.Logger) {
	if l == nil {
		return
	}
	if err := l.lock.Unlock(); err != nil {
		logger.Warn("failed to release output lock", logging.String("lock_path", l.path), logging.Error(err))
	}
}
