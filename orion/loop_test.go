package orion

import (
	"errors"
	"testing"

	"github.com/oliverbestmann/gfxboot/pulse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	err          error
	renders      int
	reconfigured int
}

func (r *fakeRenderer) Render() error {
	r.renders++
	return r.err
}

func (r *fakeRenderer) Reconfigure() {
	r.reconfigured++
}

func surfaceError(status pulse.SurfaceStatus) error {
	return &pulse.SurfaceError{Status: status, Err: errors.New(status.String())}
}

func TestLoopOnceRendersFrame(t *testing.T) {
	renderer := &fakeRenderer{}
	loopState := &LoopState{Renderer: renderer}

	require.NoError(t, loopOnce(loopState))

	assert.Equal(t, 1, renderer.renders)
	assert.Equal(t, uint64(1), loopState.Times.FrameCount)
	assert.Zero(t, loopState.SkippedFrames)
}

func TestLoopOnceReconfiguresLostSurface(t *testing.T) {
	renderer := &fakeRenderer{err: surfaceError(pulse.SurfaceStatusLost)}
	loopState := &LoopState{Renderer: renderer}

	require.NoError(t, loopOnce(loopState))

	assert.Equal(t, 1, renderer.reconfigured)
	assert.Equal(t, uint64(1), loopState.SkippedFrames)
	assert.Zero(t, loopState.Times.FrameCount)
}

func TestLoopOnceSkipsTransientErrors(t *testing.T) {
	for _, status := range []pulse.SurfaceStatus{pulse.SurfaceStatusOutdated, pulse.SurfaceStatusTimeout} {
		renderer := &fakeRenderer{err: surfaceError(status)}
		loopState := &LoopState{Renderer: renderer}

		require.NoError(t, loopOnce(loopState), status.String())

		assert.Zero(t, renderer.reconfigured, status.String())
		assert.Equal(t, uint64(1), loopState.SkippedFrames, status.String())
	}
}

func TestLoopOnceFailsOnFatalErrors(t *testing.T) {
	fatal := []error{
		surfaceError(pulse.SurfaceStatusOutOfMemory),
		surfaceError(pulse.SurfaceStatusUnknown),
		errors.New("submit commands: validation error"),
	}

	for _, cause := range fatal {
		renderer := &fakeRenderer{err: cause}
		loopState := &LoopState{Renderer: renderer}

		err := loopOnce(loopState)

		assert.ErrorIs(t, err, cause)
		assert.Zero(t, renderer.reconfigured)
		assert.Zero(t, loopState.SkippedFrames)
	}
}
