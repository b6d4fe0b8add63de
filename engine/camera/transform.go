package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a camera's world-space placement. With an identity rotation the camera
// looks down -Z with +Y up.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// NewTransform creates a Transform at pos with an identity rotation.
func NewTransform(pos mgl32.Vec3) Transform {
	return Transform{Position: pos, Rotation: mgl32.QuatIdent()}
}

// LookingAt returns a Transform at pos rotated so that it faces target with the given up hint.
// If pos and target coincide, or up is parallel to the viewing direction, the rotation is identity.
//
// Parameters:
//   - pos: world-space position
//   - target: world-space point to face
//   - up: up hint, typically common.WorldUp
//
// Returns:
//   - Transform: the oriented transform
func LookingAt(pos, target, up mgl32.Vec3) Transform {
	back := common.NormalizeOrZero(pos.Sub(target))
	right := common.NormalizeOrZero(up.Cross(back))
	if back.Len() == 0 || right.Len() == 0 {
		return NewTransform(pos)
	}
	trueUp := back.Cross(right)
	rot := mgl32.Mat4ToQuat(mgl32.Mat3FromCols(right, trueUp, back).Mat4()).Normalize()
	return Transform{Position: pos, Rotation: rot}
}

// Right returns the camera's local +X axis in world space.
func (t Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(common.WorldRight)
}

// Up returns the camera's local +Y axis in world space.
func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(common.WorldUp)
}

// Forward returns the camera's viewing direction (local -Z) in world space.
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(common.WorldForward)
}

// Matrix returns the local-to-world matrix.
func (t Transform) Matrix() mgl32.Mat4 {
	p := t.Position
	return mgl32.Translate3D(p[0], p[1], p[2]).Mul4(t.Rotation.Mat4())
}

// ViewMatrix returns the world-to-view matrix (inverse of Matrix).
func (t Transform) ViewMatrix() mgl32.Mat4 {
	p := t.Position
	return t.Rotation.Conjugate().Mat4().Mul4(mgl32.Translate3D(-p[0], -p[1], -p[2]))
}
