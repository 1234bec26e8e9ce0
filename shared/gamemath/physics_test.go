package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFriction(t *testing.T) {
	assert.Equal(t, 1.5, ApplyFriction(2, 0.5))
	assert.Equal(t, -1.5, ApplyFriction(-2, 0.5))
	assert.Equal(t, 0.0, ApplyFriction(0.3, 0.5))
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 3.0, ClampSpeed(5, 3))
	assert.Equal(t, -3.0, ClampSpeed(-5, 3))
	assert.Equal(t, 1.0, ClampSpeed(1, 3))
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4)
	assert.InDelta(t, 0.6, x, 1e-9)
	assert.InDelta(t, 0.8, y, 1e-9)

	x, y = Normalize(0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestStepCarriesRemainder(t *testing.T) {
	var rem float64
	assert.Equal(t, int32(0), Step(0.5, &rem))
	assert.Equal(t, int32(1), Step(0.5, &rem))
	assert.InDelta(t, 0, rem, 1e-9)

	rem = 0
	assert.Equal(t, int32(-2), Step(-2.25, &rem))
	assert.InDelta(t, -0.25, rem, 1e-9)
}
