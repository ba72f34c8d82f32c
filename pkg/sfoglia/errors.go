package sfoglia

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNoEnvironment indicates that Init was called without a navigation
	// environment to run against.
	ErrNoEnvironment = errors.New("no navigation environment provided")
)

// InitError represents a failure while building the navigator: the content
// bundle could not be assembled, the environment was unusable, and so on.
// The consuming page cannot recover from these at the navigation level;
// Bootstrap surfaces them through the error panel.
type InitError struct {
	Op  string // Operation that failed (e.g., "build_content")
	Err error  // Underlying error
}

func (e *InitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sfoglia: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sfoglia: %s", e.Op)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// NewInitError creates a new initialization error.
func NewInitError(op string, err error) *InitError {
	return &InitError{Op: op, Err: err}
}

// IsInitError checks if an error is an initialization error.
func IsInitError(err error) bool {
	var initErr *InitError
	return errors.As(err, &initErr)
}
