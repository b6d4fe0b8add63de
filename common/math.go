package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

var (
	// WorldUp is the global up axis (+Y).
	WorldUp = mgl32.Vec3{0, 1, 0}
	// WorldRight is the global right axis (+X).
	WorldRight = mgl32.Vec3{1, 0, 0}
	// WorldForward is the default viewing direction (-Z).
	WorldForward = mgl32.Vec3{0, 0, -1}
)

// Signum returns 1 for values >= 0 (including +0) and -1 for negative values.
// Zero maps to 1 so that callers can multiply by it without losing a direction.
//
// Parameters:
//   - v: the value to inspect
//
// Returns:
//   - float32: 1 or -1
func Signum(v float32) float32 {
	if math.Signbit(float64(v)) {
		return -1
	}
	return 1
}

// Abs returns the absolute value of v.
func Abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

// Clamp restricts v to [lo, hi]. The lower bound is applied first and the upper bound last,
// so an inverted pair (hi < lo) collapses to hi.
//
// Parameters:
//   - v: value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: the clamped value
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v is zero-length
// or not finite.
//
// Parameters:
//   - v: vector to normalize
//
// Returns:
//   - mgl32.Vec3: unit vector or zero
func NormalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 1e-8 || math.IsNaN(float64(l)) || math.IsInf(float64(l), 0) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// MulElem2 multiplies two 2D vectors component-wise.
func MulElem2(a, b mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{a[0] * b[0], a[1] * b[1]}
}

// DivElem2 divides a by b component-wise.
func DivElem2(a, b mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{a[0] / b[0], a[1] / b[1]}
}

// IsZero2 reports whether both components of v are zero.
func IsZero2(v mgl32.Vec2) bool {
	return v[0] == 0 && v[1] == 0
}

// Mat4ToArray copies an mgl32 matrix into the flat column-major layout used for GPU uploads.
//
// Parameters:
//   - m: the source matrix
//
// Returns:
//   - [16]float32: column-major copy of m
func Mat4ToArray(m mgl32.Mat4) [16]float32 {
	return [16]float32(m)
}
