package pulse

import (
	"reflect"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderStagesExposeOnlyTheNextStage(t *testing.T) {
	stages := []struct {
		builder any
		methods []string
	}{
		{LabeledPipelineBuilder{}, []string{"VertexState"}},
		{VertexPipelineBuilder{}, []string{"PrimitiveState"}},
		{PrimitivePipelineBuilder{}, []string{"MultisampleState"}},
		{MultisamplePipelineBuilder{}, []string{"Build", "DepthStencilState", "FragmentState", "Layout", "Multiview"}},
	}

	for _, stage := range stages {
		typ := reflect.TypeOf(stage.builder)

		var methods []string
		for idx := range typ.NumMethod() {
			methods = append(methods, typ.Method(idx).Name)
		}

		assert.Equal(t, stage.methods, methods, typ.Name())
	}
}

func TestBuilderStagesAreNotConvertible(t *testing.T) {
	stages := []reflect.Type{
		reflect.TypeOf(LabeledPipelineBuilder{}),
		reflect.TypeOf(VertexPipelineBuilder{}),
		reflect.TypeOf(PrimitivePipelineBuilder{}),
		reflect.TypeOf(MultisamplePipelineBuilder{}),
	}

	for _, from := range stages {
		for _, to := range stages {
			if from == to {
				continue
			}

			assert.False(t, from.ConvertibleTo(to), "%s -> %s", from.Name(), to.Name())
		}
	}
}

func TestBuilderRejectsSkippedStages(t *testing.T) {
	builders := map[string]MultisamplePipelineBuilder{
		"zero value": {},

		"without vertex state": VertexPipelineBuilder{}.
			PrimitiveState(wgpu.PrimitiveState{}).
			MultisampleState(wgpu.MultisampleState{Count: 1}),

		"without primitive state": PrimitivePipelineBuilder{}.
			MultisampleState(wgpu.MultisampleState{Count: 1}),
	}

	for name, builder := range builders {
		t.Run(name, func(t *testing.T) {
			// the device is never touched for an incomplete builder
			pipeline, err := builder.Build(nil)
			assert.Nil(t, pipeline)
			assert.ErrorIs(t, err, ErrIncompletePipeline)
		})
	}
}

func TestBuilderCompletesAllStages(t *testing.T) {
	// the label is not a mandatory stage
	builder := LabeledPipelineBuilder{}.
		VertexState(nil, "main", nil).
		PrimitiveState(wgpu.PrimitiveState{}).
		MultisampleState(wgpu.MultisampleState{Count: 1}).
		FragmentState(nil, "main", nil)

	assert.Equal(t, stagesComplete, builder.state.stages)
}

func TestBuilderCollectsDescriptor(t *testing.T) {
	vertexShader := &wgpu.ShaderModule{}
	fragmentShader := &wgpu.ShaderModule{}
	layout := &wgpu.PipelineLayout{}

	builder := placeholderPipeline{Format: wgpu.TextureFormatBGRA8UnormSrgb}.
		builder(vertexShader, fragmentShader, layout)

	desc := builder.descriptor()

	assert.Equal(t, "Placeholder pipeline", desc.Label)
	assert.Same(t, layout, desc.Layout)

	assert.Same(t, vertexShader, desc.Vertex.Module)
	assert.Equal(t, "vs_main", desc.Vertex.EntryPoint)
	assert.Empty(t, desc.Vertex.Buffers)

	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, desc.Primitive.Topology)
	assert.Equal(t, wgpu.FrontFaceCCW, desc.Primitive.FrontFace)
	assert.Equal(t, wgpu.CullModeBack, desc.Primitive.CullMode)

	assert.Equal(t, uint32(1), desc.Multisample.Count)
	assert.Equal(t, uint32(0xFFFFFFFF), desc.Multisample.Mask)
	assert.False(t, desc.Multisample.AlphaToCoverageEnabled)

	require.NotNil(t, desc.Fragment)
	assert.Same(t, fragmentShader, desc.Fragment.Module)
	assert.Equal(t, "fs_main", desc.Fragment.EntryPoint)
	require.Len(t, desc.Fragment.Targets, 1)
	assert.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb, desc.Fragment.Targets[0].Format)
	assert.Equal(t, wgpu.ColorWriteMaskAll, desc.Fragment.Targets[0].WriteMask)
	require.NotNil(t, desc.Fragment.Targets[0].Blend)
	assert.Equal(t, wgpu.BlendStateReplace, *desc.Fragment.Targets[0].Blend)

	assert.Nil(t, desc.DepthStencil)
}

func TestBuilderWithoutOptionalStages(t *testing.T) {
	desc := NewRenderPipelineBuilder("Minimal").
		VertexState(nil, "main", nil).
		PrimitiveState(wgpu.PrimitiveState{Topology: wgpu.PrimitiveTopologyPointList}).
		MultisampleState(wgpu.MultisampleState{Count: 4}).
		descriptor()

	assert.Equal(t, "Minimal", desc.Label)
	assert.Nil(t, desc.Layout)
	assert.Nil(t, desc.Fragment)
	assert.Equal(t, wgpu.PrimitiveTopologyPointList, desc.Primitive.Topology)
	assert.Equal(t, uint32(4), desc.Multisample.Count)
}

func TestBuilderStagesDoNotShareState(t *testing.T) {
	base := NewRenderPipelineBuilder("Shared").
		VertexState(nil, "main", nil).
		PrimitiveState(wgpu.PrimitiveState{}).
		MultisampleState(wgpu.MultisampleState{Count: 1})

	withLayout := base.Layout(&wgpu.PipelineLayout{})

	assert.Nil(t, base.descriptor().Layout)
	assert.NotNil(t, withLayout.descriptor().Layout)
}

func TestBuilderUnsupportedStagesPanic(t *testing.T) {
	builder := NewRenderPipelineBuilder("Unsupported").
		VertexState(nil, "main", nil).
		PrimitiveState(wgpu.PrimitiveState{}).
		MultisampleState(wgpu.MultisampleState{Count: 1})

	assert.PanicsWithValue(t, "pulse: depth stencil state is not supported yet", func() {
		builder.DepthStencilState()
	})

	assert.PanicsWithValue(t, "pulse: multiview is not supported yet", func() {
		builder.Multiview()
	})
}
