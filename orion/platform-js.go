//go:build js

package orion

import "github.com/cogentcore/webgpu/wgpu"

type stopper interface{ Stop() }

type noopStopper struct{}

func (noopStopper) Stop() {}

// startProfile does nothing in the browser, use the browsers profiler instead.
func startProfile(mode string) stopper {
	return noopStopper{}
}

// setWGPULogLevel does nothing, the browser implementation logs to the console.
func setWGPULogLevel(level wgpu.LogLevel) {
}
