package glimpse

import "github.com/cogentcore/webgpu/wgpu"

// Window is a platform window (or canvas) that a surface can be created for.
type Window interface {
	// GetSize returns the size of the drawable area in pixels.
	GetSize() (uint32, uint32)

	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// OnResize registers a callback that is invoked with the new size
	// in pixels whenever the drawable area changes.
	OnResize(callback func(width, height uint32))

	// Run calls frame until the window is closed or frame returns an error.
	Run(frame func() error) error

	Terminate()
}
