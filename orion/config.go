package orion

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/joho/godotenv"
)

// Config holds the process level settings. They are read from the
// environment, which may be populated from a .env file.
type Config struct {
	// Log level of the native wgpu library, WGPU_LOG_LEVEL
	WGPULogLevel wgpu.LogLevel

	// Use the software fallback adapter, WGPU_FORCE_FALLBACK_ADAPTER=1
	ForceFallbackAdapter bool

	// Level of the application logger, GFXBOOT_LOG_LEVEL
	LogLevel slog.Level

	// Profiling mode (cpu, mem or trace), GFXBOOT_PROFILE. Empty disables profiling.
	Profile string
}

// LoadConfig reads the Config from the environment. Values from the given
// .env files are added to the environment first, without overriding
// variables that are already set. Missing files are ignored.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %q: %w", file, err)
		}
	}

	return ParseConfig(os.Getenv)
}

// ParseConfig builds a Config from the variables returned by getenv.
func ParseConfig(getenv func(string) string) (Config, error) {
	conf := Config{
		WGPULogLevel: wgpu.LogLevelWarn,
		LogLevel:     slog.LevelInfo,
	}

	if value := getenv("WGPU_LOG_LEVEL"); value != "" {
		level, ok := wgpuLogLevels[strings.ToUpper(value)]
		if !ok {
			return Config{}, fmt.Errorf("unknown WGPU_LOG_LEVEL %q", value)
		}

		conf.WGPULogLevel = level
	}

	switch value := getenv("WGPU_FORCE_FALLBACK_ADAPTER"); value {
	case "", "0":
	case "1":
		conf.ForceFallbackAdapter = true
	default:
		return Config{}, fmt.Errorf("invalid WGPU_FORCE_FALLBACK_ADAPTER %q", value)
	}

	if value := getenv("GFXBOOT_LOG_LEVEL"); value != "" {
		if err := conf.LogLevel.UnmarshalText([]byte(value)); err != nil {
			return Config{}, fmt.Errorf("parse GFXBOOT_LOG_LEVEL: %w", err)
		}
	}

	switch value := strings.ToLower(getenv("GFXBOOT_PROFILE")); value {
	case "", "cpu", "mem", "trace":
		conf.Profile = value
	default:
		return Config{}, fmt.Errorf("unknown GFXBOOT_PROFILE %q", value)
	}

	return conf, nil
}

var wgpuLogLevels = map[string]wgpu.LogLevel{
	"OFF":   wgpu.LogLevelOff,
	"ERROR": wgpu.LogLevelError,
	"WARN":  wgpu.LogLevelWarn,
	"INFO":  wgpu.LogLevelInfo,
	"DEBUG": wgpu.LogLevelDebug,
	"TRACE": wgpu.LogLevelTrace,
}
