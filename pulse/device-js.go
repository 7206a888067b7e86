//go:build js

package pulse

import "github.com/cogentcore/webgpu/wgpu"

// deviceDescriptor requests a device with limits that a browser
// running on webgl2 level hardware can satisfy.
func deviceDescriptor() *wgpu.DeviceDescriptor {
	limits := wgpu.DefaultLimits()
	limits.MaxTextureDimension1D = 2048
	limits.MaxTextureDimension2D = 2048
	limits.MaxTextureDimension3D = 256
	limits.MaxStorageBuffersPerShaderStage = 0
	limits.MaxStorageTexturesPerShaderStage = 0

	return &wgpu.DeviceDescriptor{
		Label: "Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: limits,
		},
	}
}
