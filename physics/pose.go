package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Pose is a rigid transform: rotation followed by translation.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// IdentityPose returns the identity transform.
func IdentityPose() Pose {
	return Pose{Rotation: mgl64.QuatIdent()}
}

// Mul composes two poses: (p.Mul(q)).Apply(v) == p.Apply(q.Apply(v)).
func (p Pose) Mul(q Pose) Pose {
	return Pose{
		Position: p.Rotation.Rotate(q.Position).Add(p.Position),
		Rotation: p.Rotation.Mul(q.Rotation).Normalize(),
	}
}

// Apply transforms a point by the pose.
func (p Pose) Apply(v mgl64.Vec3) mgl64.Vec3 {
	return p.Rotation.Rotate(v).Add(p.Position)
}

// Inverse returns the pose q with p.Mul(q) == identity.
func (p Pose) Inverse() Pose {
	inv := p.Rotation.Inverse()
	return Pose{
		Position: inv.Rotate(p.Position.Mul(-1)),
		Rotation: inv,
	}
}

// Delta returns the world-frame transform carrying prev onto p, so that
// p.Delta(prev).Mul(prev) reproduces p.
func (p Pose) Delta(prev Pose) Pose {
	return p.Mul(prev.Inverse())
}

// ApproxEqual reports whether two poses match within tol, treating q and -q
// as the same rotation.
func (p Pose) ApproxEqual(q Pose, tol float64) bool {
	if !p.Position.ApproxEqualThreshold(q.Position, tol) {
		return false
	}
	d := p.Rotation.Dot(q.Rotation)
	return math.Abs(math.Abs(d)-1) < tol
}

// YawAngle extracts the rotation of q about the world up axis, in radians.
// When the rotated forward axis is near-vertical the right axis is used
// instead, avoiding an undefined atan2.
func YawAngle(q mgl64.Quat) float64 {
	fwd := q.Rotate(mgl64.Vec3{0, 0, 1})
	if math.Hypot(fwd.X(), fwd.Z()) < 1e-9 {
		right := q.Rotate(mgl64.Vec3{1, 0, 0})
		return math.Atan2(-right.Z(), right.X())
	}
	return math.Atan2(fwd.X(), fwd.Z())
}

// YawQuat builds a rotation of yaw radians about the world up axis.
func YawQuat(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0})
}
