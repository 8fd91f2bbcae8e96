package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlmostEqual(t *testing.T) {
	assert.True(t, AlmostEqual(100.0, 100.5, 0.01))
	assert.False(t, AlmostEqual(100.0, 102.0, 0.01))
	assert.True(t, AlmostEqual(-100.0, -100.5, 0.01), "negative values should compare by magnitude")
	assert.True(t, AlmostEqual(0.0, 0.0, 0.01))
	assert.False(t, AlmostEqual(0.0, 0.1, 0.01))
}
