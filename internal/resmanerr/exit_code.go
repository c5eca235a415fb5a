package resmanerr

import (
	"errors"

	"github.com/frantjc/resman/android"
	xos "github.com/frantjc/x/os"
)

const (
	ExitCodeFailure    = 1
	ExitCodeNotFound   = 2
	ExitCodeResolution = 3
	ExitCodeLibraries  = 4
)

// ExitCodeError wraps err so that xos.ExitFromError exits with exitCode.
func ExitCodeError(err error, exitCode int) error {
	if err == nil {
		return nil
	}

	if exitCode <= 0 || 125 < exitCode {
		exitCode = ExitCodeFailure
	}

	return xos.NewExitCodeError(err, exitCode)
}

// ExitCode returns the exit code that err was wrapped with by
// ExitCodeError or, failing that, the exit code that corresponds
// to the android sentinel error that err wraps.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	ecerr := &xos.ExitCodeError{}
	if errors.As(err, &ecerr) {
		return xos.ErrorExitCode(err)
	}

	switch {
	case errors.Is(err, android.ErrLibraryCycle), errors.Is(err, android.ErrLibraryDepth):
		return ExitCodeLibraries
	case errors.Is(err, android.ErrNotFound):
		return ExitCodeNotFound
	case errors.Is(err, android.ErrResolution):
		return ExitCodeResolution
	}

	return ExitCodeFailure
}

// WithExitCode wraps err with the exit code ExitCode derives for it.
func WithExitCode(err error) error {
	return ExitCodeError(err, ExitCode(err))
}
