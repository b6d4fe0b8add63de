package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// referenceFrameTime is the frame duration at which smoothness s moves a fraction (1 - s) per frame.
	referenceFrameTime float32 = 1.0 / 60.0
	// snapEpsilon is the distance under which interpolation jumps straight to the target.
	snapEpsilon float32 = 0.001
)

// smoothingFactor is the fraction of the remaining distance covered in a frame of duration dt.
func smoothingFactor(smoothness, dt float32) float32 {
	if smoothness <= 0 {
		return 1
	}
	if smoothness >= 1 {
		return 0
	}
	if dt <= 0 {
		dt = referenceFrameTime
	}
	return 1 - float32(math.Pow(float64(smoothness), float64(dt/referenceFrameTime)))
}

// LerpAndSnap moves from towards to by an exponential step derived from smoothness and the frame
// duration, snapping to to once within snapEpsilon, or once the step is too small to change a float32
// of from's magnitude. Smoothness 0 returns to immediately; smoothness at or above 1 never moves.
//
// Parameters:
//   - from: the current value
//   - to: the target value
//   - smoothness: damping in [0, 1)
//   - dt: frame duration in seconds (<= 0 means one 60 Hz frame)
//
// Returns:
//   - float32: the next value
func LerpAndSnap(from, to, smoothness, dt float32) float32 {
	t := smoothingFactor(smoothness, dt)
	v := from + (to-from)*t
	if smoothness >= 1 {
		return v
	}
	// At large magnitudes the step can round away entirely.
	if v == from || float32(math.Abs(float64(v-to))) < snapEpsilon {
		v = to
	}
	return v
}

// LerpAndSnapVec3 applies LerpAndSnap to each component.
//
// Parameters:
//   - from: the current vector
//   - to: the target vector
//   - smoothness: damping in [0, 1)
//   - dt: frame duration in seconds
//
// Returns:
//   - mgl32.Vec3: the next vector
func LerpAndSnapVec3(from, to mgl32.Vec3, smoothness, dt float32) mgl32.Vec3 {
	return mgl32.Vec3{
		LerpAndSnap(from[0], to[0], smoothness, dt),
		LerpAndSnap(from[1], to[1], smoothness, dt),
		LerpAndSnap(from[2], to[2], smoothness, dt),
	}
}
