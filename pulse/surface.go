package pulse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

var ErrNoSurfaceFormat = errors.New("surface reports no texture formats")

// SelectSurfaceFormat picks the first srgb format reported by the surface.
// If the surface does not support any srgb format, the first format is used.
func SelectSurfaceFormat(formats []wgpu.TextureFormat) (wgpu.TextureFormat, error) {
	if len(formats) == 0 {
		return wgpu.TextureFormatUndefined, ErrNoSurfaceFormat
	}

	for _, format := range formats {
		if isSRGB(format) {
			return format, nil
		}
	}

	return formats[0], nil
}

func isSRGB(format wgpu.TextureFormat) bool {
	return strings.HasSuffix(format.String(), "-srgb")
}

// SurfaceStatus describes why the next frame could not be acquired.
type SurfaceStatus uint8

const (
	SurfaceStatusUnknown SurfaceStatus = iota
	SurfaceStatusTimeout
	SurfaceStatusOutdated
	SurfaceStatusLost
	SurfaceStatusOutOfMemory
)

func (s SurfaceStatus) String() string {
	switch s {
	case SurfaceStatusTimeout:
		return "timeout"
	case SurfaceStatusOutdated:
		return "outdated"
	case SurfaceStatusLost:
		return "lost"
	case SurfaceStatusOutOfMemory:
		return "out of memory"
	default:
		return "unknown"
	}
}

// Recoverable reports whether skipping the frame and trying again
// with the next one is enough to recover.
func (s SurfaceStatus) Recoverable() bool {
	return s == SurfaceStatusTimeout || s == SurfaceStatusOutdated
}

// SurfaceError is returned by GraphicsState.Render if the next surface
// texture could not be acquired. It is up to the caller to recover,
// e.g. by reconfiguring a lost surface.
type SurfaceError struct {
	Status SurfaceStatus
	Err    error
}

func newSurfaceError(err error) *SurfaceError {
	return &SurfaceError{Status: classifySurfaceError(err), Err: err}
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("acquire surface texture (%s): %s", e.Status, e.Err)
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}

// classifySurfaceError maps the error reported by the binding when acquiring
// a surface texture to a SurfaceStatus. The binding drops the acquire status
// and only forwards validation messages, so this is a best effort match on
// the message text.
func classifySurfaceError(err error) SurfaceStatus {
	if err == nil {
		return SurfaceStatusUnknown
	}

	msg := strings.ToLower(err.Error())
	msg = strings.NewReplacer("_", "", " ", "").Replace(msg)

	switch {
	case strings.Contains(msg, "devicelost"):
		return SurfaceStatusUnknown
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "timedout"):
		return SurfaceStatusTimeout
	case strings.Contains(msg, "outdated"), strings.Contains(msg, "notconfigured"):
		return SurfaceStatusOutdated
	case strings.Contains(msg, "lost"):
		return SurfaceStatusLost
	case strings.Contains(msg, "outofmemory"):
		return SurfaceStatusOutOfMemory
	default:
		return SurfaceStatusUnknown
	}
}
