// Package gamemath holds the headless 3D math behind the locomotion
// controller. Nothing here touches the ECS or the engine interface, so every
// rule is testable in isolation.
package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/wandermere/verse/mathutil"
)

// Up is the world up axis.
var Up = mgl64.Vec3{0, 1, 0}

// SlopeAngleDeg returns the angle between a surface normal and world up, in
// degrees. A zero-length normal reports 0 (treated as flat).
func SlopeAngleDeg(n mgl64.Vec3) float64 {
	l := n.Len()
	if l < 1e-12 {
		return 0
	}
	d := mathutil.ClampFloat(n.Y()/l, -1, 1)
	return math.Acos(d) * 180 / math.Pi
}

// ProjectOnPlane removes from v its component along the unit normal n.
func ProjectOnPlane(v, n mgl64.Vec3) mgl64.Vec3 {
	return v.Sub(n.Mul(v.Dot(n)))
}

// DampAlongPlane damps only the component of v parallel to the plane with
// unit normal n, leaving the perpendicular (surface-relative "up") component
// untouched. The damping factor is clamped so a large drag·dt can stop the
// parallel motion but never reverse it.
func DampAlongPlane(v, n mgl64.Vec3, drag, dt float64) mgl64.Vec3 {
	perp := n.Mul(v.Dot(n))
	par := v.Sub(perp)
	f := 1 - drag*dt
	if f < 0 {
		f = 0
	}
	return perp.Add(par.Mul(f))
}

// AlignToPlane rotates a horizontal direction into the plane with unit
// normal n, renormalized, so ramp-walking pushes along the surface. When the
// projection degenerates (direction parallel to the normal) the input is
// returned unchanged.
func AlignToPlane(dir, n mgl64.Vec3) mgl64.Vec3 {
	proj := ProjectOnPlane(dir, n)
	l := proj.Len()
	if l < 1e-9 {
		return dir
	}
	return proj.Mul(1 / l)
}

// JumpLaunchSpeed is the vertical launch velocity for a jump of the given
// apex height: sqrt(2·g·h), scaled by 1/sqrt(mass) so jump height is
// independent of body mass.
func JumpLaunchSpeed(gravity, height, mass float64) float64 {
	if gravity <= 0 || height <= 0 || mass <= 0 {
		return 0
	}
	return math.Sqrt(2*gravity*height) / math.Sqrt(mass)
}

// IsFinite reports whether every component of v is a finite number.
func IsFinite(v mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			return false
		}
	}
	return true
}

// Horizontal returns v with its vertical component removed.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}
