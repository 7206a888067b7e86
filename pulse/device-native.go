//go:build !js

package pulse

import "github.com/cogentcore/webgpu/wgpu"

// deviceDescriptor requests a device with the default features and limits.
func deviceDescriptor() *wgpu.DeviceDescriptor {
	return nil
}
