package capture

import (
	"context"
	"fmt"

	"github.com/smarttech/storefront/biometric"
	"github.com/smarttech/storefront/logging"
)

// Session drives one capture flow: camera to frame to descriptor.
type Session struct {
	camera      Camera
	extractor   biometric.Extractor
	constraints Constraints
	log         logging.Logger
}

func NewSession(camera Camera, extractor biometric.Extractor, constraints Constraints, log logging.Logger) *Session {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Session{camera: camera, extractor: extractor, constraints: constraints, log: log}
}

// Capture acquires the camera, grabs one frame and extracts a descriptor.
// The stream is released before Capture returns, whatever the outcome.
// Cancelling ctx abandons the acquisition wait; extraction itself runs to
// completion once started.
func (s *Session) Capture(ctx context.Context) (biometric.Descriptor, error) {
	stream, err := s.camera.Acquire(ctx, s.constraints)
	if err != nil {
		return nil, fmt.Errorf("camera acquisition failed: %w", err)
	}
	defer func() {
		if cerr := stream.Close(); cerr != nil {
			s.log.Warn(ctx, "camera stream close failed", "error", cerr)
		}
	}()

	frame, err := stream.Frame(ctx)
	if err != nil {
		return nil, fmt.Errorf("frame capture failed: %w", err)
	}

	descriptor, err := s.extractor.Extract(ctx, frame)
	if err != nil {
		return nil, fmt.Errorf("descriptor extraction failed: %w", err)
	}

	s.log.Info(ctx, "biometric capture complete", "dimensions", len(descriptor))
	return descriptor, nil
}
