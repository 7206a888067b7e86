package shaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderEntryPoints(t *testing.T) {
	assert.Contains(t, Placeholder, "fn "+VertexEntryPoint+"(")
	assert.Contains(t, Placeholder, "fn "+FragmentEntryPoint+"(")
	assert.Contains(t, Placeholder, "@vertex")
	assert.Contains(t, Placeholder, "@fragment")
}
