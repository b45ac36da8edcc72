package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_PressureAt(t *testing.T) {
	assert.Equal(t, DefaultPressure, PressureAt(0))
	assert.InDelta(t, 89.996, PressureAt(1000), 0.001)

	assert.Less(t, PressureAt(2000), PressureAt(1000))
	assert.Greater(t, PressureAt(-400), DefaultPressure)
}

func Test_WithElevation(t *testing.T) {
	p := NewParametersBuilder().WithElevation(1000).Build()
	assert.Equal(t, PressureAt(1000), p.Pressure)
}
