// Package biometric implements the identity-matching core: fixed-length face
// descriptors, Euclidean distance between them, and the threshold decision
// rule picking the best enrolled candidate for a live capture.
package biometric

import (
	"errors"
	"math"
)

// DefaultThreshold is the maximum Euclidean distance between two descriptors
// still considered the same identity. It is a tunable accuracy knob, exposed
// through config rather than inlined into the matching logic.
const DefaultThreshold = 0.6

// ErrDimensionMismatch is returned when two descriptors of different lengths
// are compared. Descriptors are only comparable within one extractor model.
var ErrDimensionMismatch = errors.New("descriptor dimension mismatch")

// Descriptor is a fixed-length numeric vector representing a face's
// distinguishing features. The reference extractor emits 128 dimensions.
type Descriptor []float64

// Distance returns the Euclidean distance between a and b. It is symmetric
// and zero for identical descriptors.
func Distance(a, b Descriptor) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}
