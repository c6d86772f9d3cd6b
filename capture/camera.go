// Package capture models the camera capability and the single suspension
// point of the system: acquiring the device, grabbing a frame, and running
// the descriptor extractor, releasing the stream on every exit path.
package capture

import (
	"context"
	"errors"

	"github.com/smarttech/storefront/biometric"
)

var (
	// ErrPermissionDenied means the operator refused camera access.
	ErrPermissionDenied = errors.New("camera permission denied")

	// ErrNoDevice means no camera hardware is available.
	ErrNoDevice = errors.New("no camera device")
)

// Constraints describe the requested capture mode.
type Constraints struct {
	Width  int
	Height int
}

// Stream is an acquired camera stream. Close stops the underlying tracks and
// must be called on every exit path, including flow abandonment.
type Stream interface {
	Frame(ctx context.Context) (biometric.Frame, error)
	Close() error
}

// Camera is the capability boundary to the capture device. Acquire is a
// cancelable wait: no timeout is imposed here, so a hung permission prompt
// blocks until the operator abandons the flow through ctx.
type Camera interface {
	Acquire(ctx context.Context, c Constraints) (Stream, error)
}
