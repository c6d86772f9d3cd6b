package biometric

import (
	"context"
	"errors"
)

var (
	// ErrNoFaceFound means the frame contained no detectable face.
	ErrNoFaceFound = errors.New("no face found")

	// ErrProcessing means the extractor failed while computing the embedding.
	ErrProcessing = errors.New("descriptor processing error")
)

// Frame is one captured image, opaque to the core.
type Frame []byte

// Extractor is the capability boundary to the face-embedding model. Given a
// captured frame it returns a fixed-length descriptor or one of the sentinel
// errors above. The core never inspects how the vector is produced.
// Extraction is a bounded step with no external cancellation once started.
type Extractor interface {
	Extract(ctx context.Context, frame Frame) (Descriptor, error)
}
