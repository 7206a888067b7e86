package pulse

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// surfaceTarget is the presentable surface as seen by GraphicsState.
type surfaceTarget interface {
	configure(config *wgpu.SurfaceConfiguration)

	// acquire returns the next frame to render into, or a *SurfaceError.
	acquire() (frame, error)
}

// frame records the commands for one surface texture.
type frame interface {
	beginRenderPass(label string, clear wgpu.Color) renderPass
	submit() error
	present()
	release()
}

type renderPass interface {
	setPipeline(pipeline *RenderPipeline)
	draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
	end() error
}

type wgpuSurface struct {
	surface *wgpu.Surface
	adapter *wgpu.Adapter
	device  *wgpu.Device
	queue   *wgpu.Queue
}

func (s *wgpuSurface) configure(config *wgpu.SurfaceConfiguration) {
	s.surface.Configure(s.adapter, s.device, config)
}

func (s *wgpuSurface) acquire() (frame, error) {
	texture, err := s.surface.GetCurrentTexture()
	if err != nil {
		return nil, newSurfaceError(err)
	}

	textureGuard := NewReleaseGuard(texture)
	defer textureGuard.Release()

	view, err := texture.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("create surface view: %w", err)
	}

	viewGuard := NewReleaseGuard(view)
	defer viewGuard.Release()

	encoder, err := s.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Placeholder encoder",
	})

	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}

	fr := &wgpuFrame{
		surface: s.surface,
		queue:   s.queue,
		texture: texture,
		view:    view,
		encoder: encoder,
	}

	// the frame owns the resources now
	textureGuard.Keep()
	viewGuard.Keep()

	return fr, nil
}

type wgpuFrame struct {
	surface *wgpu.Surface
	queue   *wgpu.Queue

	texture *wgpu.Texture
	view    *wgpu.TextureView
	encoder *wgpu.CommandEncoder

	presented bool
}

func (f *wgpuFrame) beginRenderPass(label string, clear wgpu.Color) renderPass {
	pass := f.encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: label,
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       f.view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: clear,
			},
		},
	})

	return &wgpuRenderPass{pass: pass}
}

func (f *wgpuFrame) submit() error {
	buf, err := f.encoder.Finish(&wgpu.CommandBufferDescriptor{Label: "Placeholder commands"})
	if err != nil {
		return err
	}

	defer buf.Release()

	f.queue.Submit(buf)

	return nil
}

func (f *wgpuFrame) present() {
	f.surface.Present()
	f.presented = true
}

func (f *wgpuFrame) release() {
	f.encoder.Release()
	f.view.Release()

	// we do not need to release the texture if present was successful
	if !f.presented {
		f.texture.Release()
	}
}

type wgpuRenderPass struct {
	pass *wgpu.RenderPassEncoder
}

func (r *wgpuRenderPass) setPipeline(pipeline *RenderPipeline) {
	r.pass.SetPipeline(pipeline.Pipeline())
}

func (r *wgpuRenderPass) draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	r.pass.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
}

func (r *wgpuRenderPass) end() error {
	// must release pass before finishing the encoder
	defer r.pass.Release()
	return r.pass.End()
}
