package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/gfxboot/glimpse"
	"github.com/oliverbestmann/gfxboot/pulse"
)

type RunOptions struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// .env files to load the configuration from, defaults to ".env"
	EnvFiles []string
}

func (opts RunOptions) withDefaults() RunOptions {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = 1000
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "gfxboot"
	}

	if opts.EnvFiles == nil {
		opts.EnvFiles = []string{".env"}
	}

	return opts
}

// Run opens a window and renders the placeholder scene until the window is closed.
func Run(opts RunOptions) error {
	opts = opts.withDefaults()

	conf, err := LoadConfig(opts.EnvFiles...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	slog.SetLogLoggerLevel(conf.LogLevel)
	setWGPULogLevel(conf.WGPULogLevel)

	prof := startProfile(conf.Profile)
	defer prof.Stop()

	// create a new window (or canvas)
	win, err := glimpse.NewWindow(
		opts.WindowWidth,
		opts.WindowHeight,
		opts.WindowTitle,
	)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	// the window must outlive the graphics state
	defer win.Terminate()

	// initialize the webgpu device
	st, err := pulse.New(win, pulse.Options{
		ForceFallbackAdapter: conf.ForceFallbackAdapter,
	})
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	defer st.Release()

	win.OnResize(func(width, height uint32) {
		slog.Debug("Resize surface",
			slog.Int("width", int(width)),
			slog.Int("height", int(height)),
		)

		st.Resize(width, height)
	})

	loopState := &LoopState{Renderer: st}

	return win.Run(func() error {
		return loopOnce(loopState)
	})
}
