package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/briandowns/spinner"

	"github.com/perchhub/perch-config/internal/configs"
	perrors "github.com/perchhub/perch-config/internal/errors"
)

// writeError decorates persistence errors with the messaging users need:
// the validation bypass hint, or which lock file is busy. The sentinel
// stays in the chain for errors.Is.
func writeError(err error) error {
	switch {
	case errors.Is(err, perrors.ErrValidationFailed):
		return fmt.Errorf("%w\nYou can still apply this change without validation by re-running your command with the --no-validate flag", err)
	case errors.Is(err, perrors.ErrLockBusy):
		return fmt.Errorf("another instance of perch-config holds the lock %s: %w", configs.LockPath(configPath), err)
	default:
		return err
	}
}

// startSpinner shows a progress spinner unless verbose or debug logging
// would interleave with it. The returned cleanup stops the spinner.
func startSpinner(message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	if !verbose && !debug {
		s.Start()
	} else {
		Logger.Infof("%s", message)
	}

	return s, func() { s.Stop() }
}
