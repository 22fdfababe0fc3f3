package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialIDGenerator(t *testing.T) {
	g := NewSequentialIDGenerator("act")
	assert.Equal(t, "act-1", g.Generate())
	assert.Equal(t, "act-2", g.Generate())
}

func TestSequentialIDGenerator_DefaultPrefix(t *testing.T) {
	g := NewSequentialIDGenerator("")
	assert.Equal(t, "test-action-1", g.Generate())
}
