package pulse

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/hashicorp/golang-lru/v2"
)

type PipelineConfig interface {
	comparable

	// Specialize creates a specialized pipeline for the
	// current PipelineConfig
	Specialize(device *wgpu.Device) (*RenderPipeline, error)
}

// PipelineCache keeps the most recently used pipelines per config. Pipelines
// evicted from the cache are released.
type PipelineCache[C PipelineConfig] struct {
	device *wgpu.Device
	cache  *lru.Cache[C, *RenderPipeline]
}

func NewPipelineCache[C PipelineConfig](device *wgpu.Device) *PipelineCache[C] {
	cache, _ := lru.NewWithEvict[C, *RenderPipeline](16, releasePipelineOnEviction[C])

	return &PipelineCache[C]{
		device: device,
		cache:  cache,
	}
}

func (p *PipelineCache[C]) Get(conf C) (*RenderPipeline, error) {
	cached, ok := p.cache.Get(conf)
	if ok {
		return cached, nil
	}

	pipeline, err := conf.Specialize(p.device)
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}

	p.cache.Add(conf, pipeline)

	return pipeline, nil
}

// Len returns the number of cached pipelines.
func (p *PipelineCache[C]) Len() int {
	return p.cache.Len()
}

// Purge releases all cached pipelines.
func (p *PipelineCache[C]) Purge() {
	p.cache.Purge()
}

func releasePipelineOnEviction[C any](config C, pipe *RenderPipeline) {
	slog.Debug("Release render pipeline", slog.Any("config", config))
	pipe.Release()
}
