package orion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/gfxboot/pulse"
)

// Renderer renders frames to a surface, see pulse.GraphicsState.
type Renderer interface {
	Render() error

	// Reconfigure reconfigures the surface with the current window size.
	Reconfigure()
}

type LoopState struct {
	Renderer Renderer
	Times    FrameTimes

	// Number of frames that were skipped because no surface
	// texture could be acquired
	SkippedFrames uint64
}

// loopOnce renders one frame. Surface errors that can be recovered from
// are handled here, all other errors are returned.
func loopOnce(loopState *LoopState) error {
	err := loopState.Renderer.Render()
	if err == nil {
		if loopState.Times.Tick() {
			slog.Debug("Frame statistics",
				slog.Uint64("frames", loopState.Times.FrameCount),
				slog.Uint64("skipped", loopState.SkippedFrames),
				slog.Float64("fps", loopState.Times.FPS()),
				slog.Duration("maxFrameTime", loopState.Times.MaxDuration),
			)
		}

		return nil
	}

	var surfaceErr *pulse.SurfaceError
	if !errors.As(err, &surfaceErr) {
		return fmt.Errorf("render frame: %w", err)
	}

	switch {
	case surfaceErr.Status == pulse.SurfaceStatusLost:
		slog.Warn("Surface lost, reconfiguring", slog.Any("error", surfaceErr.Err))
		loopState.Renderer.Reconfigure()

	case surfaceErr.Status.Recoverable():
		slog.Debug("Skipping frame", slog.String("status", surfaceErr.Status.String()))

	default:
		return fmt.Errorf("render frame: %w", err)
	}

	loopState.SkippedFrames += 1

	return nil
}
