//go:build !js

package orion

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/pkg/profile"
)

type stopper interface{ Stop() }

type noopStopper struct{}

func (noopStopper) Stop() {}

// startProfile starts the profiling mode configured in Config.Profile.
func startProfile(mode string) stopper {
	switch mode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.NoShutdownHook)
	case "mem":
		return profile.Start(profile.MemProfile, profile.NoShutdownHook)
	case "trace":
		return profile.Start(profile.TraceProfile, profile.NoShutdownHook)
	default:
		return noopStopper{}
	}
}

func setWGPULogLevel(level wgpu.LogLevel) {
	wgpu.SetLogLevel(level)
}
