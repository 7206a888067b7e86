package pulse

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// ErrIncompletePipeline is returned by Build if the builder was not obtained
// by walking through all mandatory stages, e.g. when it is a zero value.
var ErrIncompletePipeline = errors.New("render pipeline builder is missing a mandatory stage")

// RenderPipeline wraps exactly one compiled render pipeline.
type RenderPipeline struct {
	pipeline *wgpu.RenderPipeline
}

// Pipeline returns the underlying wgpu pipeline.
func (p *RenderPipeline) Pipeline() *wgpu.RenderPipeline {
	return p.pipeline
}

func (p *RenderPipeline) Release() {
	if p.pipeline != nil {
		p.pipeline.Release()
		p.pipeline = nil
	}
}

// pipelineState collects the values of a render pipeline descriptor while
// the builder moves through its stages. Shader modules and the layout are
// borrowed; the builder never releases them.
type pipelineState struct {
	label       string
	layout      *wgpu.PipelineLayout
	vertex      wgpu.VertexState
	primitive   wgpu.PrimitiveState
	multisample wgpu.MultisampleState
	fragment    *wgpu.FragmentState

	// mandatory stages that were provided so far
	stages pipelineStages
}

type pipelineStages uint8

const (
	stageVertex pipelineStages = 1 << iota
	stagePrimitive
	stageMultisample

	stagesComplete = stageVertex | stagePrimitive | stageMultisample
)

// The stages of a render pipeline builder. Each stage only offers the method
// that leads to the next stage, which makes it impossible to call Build
// before vertex, primitive and multisample state have been provided:
//
//	NewRenderPipelineBuilder(label).
//		VertexState(...).
//		PrimitiveState(...).
//		MultisampleState(...).
//		Build(device)
//
// The zero size marker fields give every stage its own underlying type,
// so one stage can not be converted into another.
type (
	LabeledPipelineBuilder struct {
		_     [0]labeledStage
		state pipelineState
	}

	VertexPipelineBuilder struct {
		_     [0]vertexStage
		state pipelineState
	}

	PrimitivePipelineBuilder struct {
		_     [0]primitiveStage
		state pipelineState
	}

	MultisamplePipelineBuilder struct {
		_     [0]multisampleStage
		state pipelineState
	}
)

type (
	labeledStage     struct{}
	vertexStage      struct{}
	primitiveStage   struct{}
	multisampleStage struct{}
)

// NewRenderPipelineBuilder starts building a new render pipeline with the given label.
func NewRenderPipelineBuilder(label string) LabeledPipelineBuilder {
	return LabeledPipelineBuilder{state: pipelineState{label: label}}
}

func (b LabeledPipelineBuilder) VertexState(
	module *wgpu.ShaderModule,
	entryPoint string,
	buffers []wgpu.VertexBufferLayout,
) VertexPipelineBuilder {
	b.state.vertex = wgpu.VertexState{
		Module:     module,
		EntryPoint: entryPoint,
		Buffers:    buffers,
	}

	b.state.stages |= stageVertex

	return VertexPipelineBuilder{state: b.state}
}

func (b VertexPipelineBuilder) PrimitiveState(state wgpu.PrimitiveState) PrimitivePipelineBuilder {
	b.state.primitive = state
	b.state.stages |= stagePrimitive
	return PrimitivePipelineBuilder{state: b.state}
}

func (b PrimitivePipelineBuilder) MultisampleState(state wgpu.MultisampleState) MultisamplePipelineBuilder {
	b.state.multisample = state
	b.state.stages |= stageMultisample
	return MultisamplePipelineBuilder{state: b.state}
}

func (b MultisamplePipelineBuilder) Layout(layout *wgpu.PipelineLayout) MultisamplePipelineBuilder {
	b.state.layout = layout
	return b
}

func (b MultisamplePipelineBuilder) FragmentState(
	module *wgpu.ShaderModule,
	entryPoint string,
	targets []wgpu.ColorTargetState,
) MultisamplePipelineBuilder {
	b.state.fragment = &wgpu.FragmentState{
		Module:     module,
		EntryPoint: entryPoint,
		Targets:    targets,
	}

	return b
}

// DepthStencilState is not supported yet and panics when called.
func (b MultisamplePipelineBuilder) DepthStencilState() MultisamplePipelineBuilder {
	panic("pulse: depth stencil state is not supported yet")
}

// Multiview is not supported yet and panics when called.
func (b MultisamplePipelineBuilder) Multiview() MultisamplePipelineBuilder {
	panic("pulse: multiview is not supported yet")
}

// Build compiles the render pipeline on the given device.
func (b MultisamplePipelineBuilder) Build(device *wgpu.Device) (*RenderPipeline, error) {
	if b.state.stages != stagesComplete {
		return nil, fmt.Errorf("build render pipeline %q: %w", b.state.label, ErrIncompletePipeline)
	}

	pipeline, err := device.CreateRenderPipeline(b.descriptor())
	if err != nil {
		return nil, fmt.Errorf("create render pipeline %q: %w", b.state.label, err)
	}

	return &RenderPipeline{pipeline: pipeline}, nil
}

func (b MultisamplePipelineBuilder) descriptor() *wgpu.RenderPipelineDescriptor {
	return &wgpu.RenderPipelineDescriptor{
		Label:       b.state.label,
		Layout:      b.state.layout,
		Vertex:      b.state.vertex,
		Primitive:   b.state.primitive,
		Multisample: b.state.multisample,
		Fragment:    b.state.fragment,
	}
}
