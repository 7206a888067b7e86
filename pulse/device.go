package pulse

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/gfxboot/pulse/shaders"
)

var errSurfaceNotConfigured = errors.New("surface is not configured for the current window size")

func init() {
	runtime.LockOSThread()
}

// Window is the part of a platform window the graphics state needs.
// The window must outlive the GraphicsState created from it.
type Window interface {
	GetSize() (uint32, uint32)
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
}

type Options struct {
	// Request the software fallback adapter instead of a hardware adapter.
	ForceFallbackAdapter bool
}

// GraphicsState encapsulates the low level state of the webgpu context,
// this includes the Device, the Surface of the window, the active
// Adapter and the one render pipeline drawn each frame.
type GraphicsState struct {
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
	Device  *wgpu.Device
	Queue   *wgpu.Queue

	window     Window
	config     wgpu.SurfaceConfiguration
	configured bool
	target     surfaceTarget

	pipelines *PipelineCache[placeholderPipeline]
	pipeline  *RenderPipeline
}

func New(win Window, opts Options) (st *GraphicsState, err error) {
	defer func() {
		if err != nil && st != nil {
			st.Release()
			st = nil
		}
	}()

	st = &GraphicsState{window: win}

	// create the webgpu instance
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	// create a Surface based on the window
	st.Surface = instance.CreateSurface(win.SurfaceDescriptor())

	// create an adapter that can render to the Surface
	// TODO enumerate adapters to select one by required features
	st.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
		CompatibleSurface:    st.Surface,
	})

	if err != nil {
		return st, fmt.Errorf("find an appropriate adapter: %w", err)
	}

	st.Device, err = st.Adapter.RequestDevice(deviceDescriptor())
	if err != nil {
		return st, fmt.Errorf("create device and queue: %w", err)
	}

	st.Queue = st.Device.GetQueue()

	caps := st.Surface.GetCapabilities(st.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	format, err := SelectSurfaceFormat(caps.Formats)
	if err != nil {
		return st, fmt.Errorf("select surface format: %w", err)
	}

	if len(caps.PresentModes) == 0 || len(caps.AlphaModes) == 0 {
		return st, errors.New("surface reports no present or alpha modes")
	}

	width, height := win.GetSize()

	st.config = wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       width,
		Height:      height,
		PresentMode: caps.PresentModes[0],
		AlphaMode:   caps.AlphaModes[0],
	}

	st.target = &wgpuSurface{
		surface: st.Surface,
		adapter: st.Adapter,
		device:  st.Device,
		queue:   st.Queue,
	}

	if width > 0 && height > 0 {
		st.target.configure(&st.config)
		st.configured = true
	}

	st.pipelines = NewPipelineCache[placeholderPipeline](st.Device)

	st.pipeline, err = st.pipelines.Get(placeholderPipeline{Format: format})
	if err != nil {
		return st, err
	}

	slog.Info("Graphics state initialized",
		slog.Any("format", format),
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	return st, nil
}

// Config returns a copy of the current surface configuration.
func (st *GraphicsState) Config() wgpu.SurfaceConfiguration {
	return st.config
}

// Resize reconfigures the surface to the given size. A size with a zero
// dimension is ignored, as reported by minimized windows.
func (st *GraphicsState) Resize(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}

	st.config.Width = width
	st.config.Height = height
	st.target.configure(&st.config)
	st.configured = true
}

// Reconfigure applies the current size of the window to the surface.
// Use this to recover from a lost surface.
func (st *GraphicsState) Reconfigure() {
	st.Resize(st.window.GetSize())
}

// Render clears the next surface texture and draws the placeholder
// triangle into it. If no texture can be acquired, a *SurfaceError is returned.
// As long as the surface was never configured or the window has a zero
// size, no texture is acquired and the error reports an outdated surface.
func (st *GraphicsState) Render() error {
	if width, height := st.window.GetSize(); !st.configured || width == 0 || height == 0 {
		return &SurfaceError{Status: SurfaceStatusOutdated, Err: errSurfaceNotConfigured}
	}

	fr, err := st.target.acquire()
	if err != nil {
		return err
	}

	defer fr.release()

	pass := fr.beginRenderPass("Placeholder render pass", ColorCornflowerBlue.ToWGPU())
	pass.setPipeline(st.pipeline)

	// vertices are generated by the shader
	pass.draw(3, 1, 0, 0)

	if err := pass.end(); err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	if err := fr.submit(); err != nil {
		return fmt.Errorf("submit commands: %w", err)
	}

	fr.present()

	return nil
}

func (st *GraphicsState) Release() {
	st.pipeline = nil

	if st.pipelines != nil {
		st.pipelines.Purge()
		st.pipelines = nil
	}

	if st.Queue != nil {
		st.Queue.Release()
		st.Queue = nil
	}

	if st.Device != nil {
		st.Device.Release()
		st.Device = nil
	}

	if st.Adapter != nil {
		st.Adapter.Release()
		st.Adapter = nil
	}

	if st.Surface != nil {
		st.Surface.Release()
		st.Surface = nil
	}

	st.target = nil
}

// placeholderPipeline draws the placeholder triangle into a target of the given format.
type placeholderPipeline struct {
	Format wgpu.TextureFormat
}

func (p placeholderPipeline) Specialize(device *wgpu.Device) (*RenderPipeline, error) {
	vertexShader, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Placeholder vertex shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.Placeholder},
	})

	if err != nil {
		return nil, fmt.Errorf("compile vertex shader: %w", err)
	}

	defer vertexShader.Release()

	fragmentShader, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Placeholder fragment shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.Placeholder},
	})

	if err != nil {
		return nil, fmt.Errorf("compile fragment shader: %w", err)
	}

	defer fragmentShader.Release()

	layout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: "Placeholder pipeline layout",
	})

	if err != nil {
		return nil, fmt.Errorf("create pipeline layout: %w", err)
	}

	defer layout.Release()

	return p.builder(vertexShader, fragmentShader, layout).Build(device)
}

func (p placeholderPipeline) builder(vertexShader, fragmentShader *wgpu.ShaderModule, layout *wgpu.PipelineLayout) MultisamplePipelineBuilder {
	return NewRenderPipelineBuilder("Placeholder pipeline").
		VertexState(vertexShader, shaders.VertexEntryPoint, nil).
		PrimitiveState(wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		}).
		MultisampleState(wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		}).
		FragmentState(fragmentShader, shaders.FragmentEntryPoint, []wgpu.ColorTargetState{
			{
				Format:    p.Format,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			},
		}).
		Layout(layout)
}
