package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ReturnsSharedLogger(t *testing.T) {
	first := Get()
	require.NotNil(t, first)

	second := Get()
	assert.Same(t, first, second)
}

func TestInit_AfterGetIsNoop(t *testing.T) {
	first := Get()
	Init(0, nil)
	assert.Same(t, first, Get())
}
