package orbit

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// orbitRotation is the camera orientation for the given angles: alpha around world Y, then beta
// tilting around the resulting local X axis.
func orbitRotation(alpha, beta float32) mgl32.Quat {
	return mgl32.QuatRotate(alpha, common.WorldUp).Mul(mgl32.QuatRotate(-beta, common.WorldRight))
}

// SphericalToTransform places a camera on the sphere of the given radius around focus, looking back
// at focus. With alpha = beta = 0 the camera sits on +Z and looks down -Z with +Y up.
//
// Parameters:
//   - alpha: rotation around world Y in radians
//   - beta: rotation around local X in radians
//   - radius: distance from focus
//   - focus: the orbit center
//
// Returns:
//   - camera.Transform: the camera transform
func SphericalToTransform(alpha, beta, radius float32, focus mgl32.Vec3) camera.Transform {
	rot := orbitRotation(alpha, beta)
	return camera.Transform{
		Position: focus.Add(rot.Rotate(mgl32.Vec3{0, 0, radius})),
		Rotation: rot,
	}
}

// CartesianToSpherical recovers alpha, beta and radius for a camera at position orbiting focus.
// It is the inverse of SphericalToTransform for beta in [-pi/2, pi/2]. When position equals focus the
// radius is MinZoom and both angles are zero.
//
// Parameters:
//   - position: camera world position
//   - focus: the orbit center
//
// Returns:
//   - alpha, beta: angles in radians
//   - radius: distance from focus
func CartesianToSpherical(position, focus mgl32.Vec3) (alpha, beta, radius float32) {
	v := position.Sub(focus)
	radius = v.Len()
	if radius == 0 {
		return 0, 0, MinZoom
	}
	if v[0] != 0 || v[2] != 0 {
		alpha = float32(math.Atan2(float64(v[0]), float64(v[2])))
	}
	beta = float32(math.Asin(float64(common.Clamp(v[1]/radius, -1, 1))))
	return alpha, beta, radius
}
