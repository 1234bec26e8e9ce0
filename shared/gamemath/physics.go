package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Normalize scales (x, y) to unit length. The zero vector is returned as is.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// Step splits a fractional move into whole pixels, carrying the remainder to
// the next frame.
func Step(speed float64, remainder *float64) int32 {
	*remainder += speed
	whole := math.Trunc(*remainder)
	*remainder -= whole
	return int32(whole)
}
