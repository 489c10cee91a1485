package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeEnterLeaveTracksDepth(t *testing.T) {
	rt := NewRuntime()
	rt.MaxDepth = 2
	assert.True(t, rt.enter())
	assert.True(t, rt.enter())
	assert.False(t, rt.enter())
	rt.leave()
	rt.leave()
	assert.True(t, rt.enter())
}

func TestNewRuntimeDefaults(t *testing.T) {
	rt := NewRuntime()
	assert.Equal(t, DefaultMaxCallDepth, rt.MaxDepth)
	assert.IsType(t, FileLoader{}, rt.Loader)
}
