// Package shaders holds the WGSL sources compiled into the binary.
package shaders

import _ "embed"

// Placeholder draws a single triangle without any vertex buffers. The
// vertex positions are derived from the vertex index.
//
//go:embed placeholder.wgsl
var Placeholder string

const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)
