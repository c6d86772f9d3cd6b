package capture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarttech/storefront/biometric"
)

// ---- fakes ----

type fakeStream struct {
	frame    biometric.Frame
	frameErr error
	closed   bool
}

func (s *fakeStream) Frame(ctx context.Context) (biometric.Frame, error) {
	return s.frame, s.frameErr
}

func (s *fakeStream) Close() error {
	s.closed = true
	return nil
}

type fakeCamera struct {
	stream     *fakeStream
	acquireErr error
	waitForCtx bool
}

func (c *fakeCamera) Acquire(ctx context.Context, _ Constraints) (Stream, error) {
	if c.waitForCtx {
		// Simulates a permission prompt nobody answers: only ctx gets us out.
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if c.acquireErr != nil {
		return nil, c.acquireErr
	}
	return c.stream, nil
}

type fakeExtractor struct {
	descriptor biometric.Descriptor
	err        error
}

func (e *fakeExtractor) Extract(ctx context.Context, frame biometric.Frame) (biometric.Descriptor, error) {
	return e.descriptor, e.err
}

func newSession(cam Camera, ext biometric.Extractor) *Session {
	return NewSession(cam, ext, Constraints{Width: 640, Height: 480}, nil)
}

// ---- tests ----

func TestCapture_Success_ReleasesStream(t *testing.T) {
	stream := &fakeStream{frame: biometric.Frame{1, 2, 3}}
	cam := &fakeCamera{stream: stream}
	ext := &fakeExtractor{descriptor: biometric.Descriptor{0.1, 0.2}}

	d, err := newSession(cam, ext).Capture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, biometric.Descriptor{0.1, 0.2}, d)
	assert.True(t, stream.closed)
}

func TestCapture_PermissionDenied(t *testing.T) {
	cam := &fakeCamera{acquireErr: ErrPermissionDenied}

	_, err := newSession(cam, &fakeExtractor{}).Capture(context.Background())
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCapture_NoDevice(t *testing.T) {
	cam := &fakeCamera{acquireErr: ErrNoDevice}

	_, err := newSession(cam, &fakeExtractor{}).Capture(context.Background())
	require.ErrorIs(t, err, ErrNoDevice)
}

func TestCapture_AbandonedDuringAcquisition(t *testing.T) {
	cam := &fakeCamera{waitForCtx: true}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newSession(cam, &fakeExtractor{}).Capture(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCapture_NoFaceFound_StillReleasesStream(t *testing.T) {
	stream := &fakeStream{frame: biometric.Frame{1}}
	cam := &fakeCamera{stream: stream}
	ext := &fakeExtractor{err: biometric.ErrNoFaceFound}

	_, err := newSession(cam, ext).Capture(context.Background())
	require.ErrorIs(t, err, biometric.ErrNoFaceFound)
	assert.True(t, stream.closed)
}

func TestCapture_ExtractorProcessingError_StillReleasesStream(t *testing.T) {
	stream := &fakeStream{frame: biometric.Frame{1}}
	cam := &fakeCamera{stream: stream}
	ext := &fakeExtractor{err: biometric.ErrProcessing}

	_, err := newSession(cam, ext).Capture(context.Background())
	require.ErrorIs(t, err, biometric.ErrProcessing)
	assert.True(t, stream.closed)
}
