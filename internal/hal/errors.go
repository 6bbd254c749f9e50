package hal

import (
	"errors"
	"fmt"
)

// ErrDisplayNotFound is returned by Display.Begin when no panel answers.
var ErrDisplayNotFound = errors.New("display not detected")

// InitError reports a driver that failed to initialise. It is fatal: the
// controller has no recovery path.
type InitError struct {
	// Device names the failed driver (e.g. "display")
	Device string
	// Underlying error
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("%s initialization failed: %v", e.Device, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
