// Package physics defines the capability surface the locomotion controller
// consumes from the rigid-body engine collaborator. The engine itself
// (collision detection, constraint solving, integration) lives behind this
// interface; the controller only queries geometry and mutates velocity/forces.
package physics

import "github.com/go-gl/mathgl/mgl64"

// ForceMode selects how AddForce is interpreted by the engine.
type ForceMode int

const (
	// ForceContinuous is integrated over the step (newtons).
	ForceContinuous ForceMode = iota
	// ForceImpulse changes momentum instantaneously.
	ForceImpulse
)

// CombineMode is the rule merging two contacting materials' friction and
// restitution into one effective value.
type CombineMode int

const (
	CombineMin CombineMode = iota
	CombineMax
)

// ActorKind classifies how an actor is simulated.
type ActorKind int

const (
	KindStatic ActorKind = iota
	KindKinematic
	KindDynamic
)

// LayerMask filters geometry queries by collision layer.
type LayerMask uint32

const (
	LayerEnvironment LayerMask = 1 << iota
	LayerProp
	LayerTool
	LayerAvatar
)

// LayerGround is what the downward ground sweep tests against.
const LayerGround = LayerEnvironment | LayerProp

// LayerSupport is what the platform raycast tests against. Props and tools
// are excluded so the avatar never "rides" a carried object.
const LayerSupport = LayerEnvironment

// ActorID identifies an engine actor by slot index plus a generation token.
// Engines reuse slots, so holders must re-validate through the engine on every
// dereference instead of trusting a cached handle.
type ActorID struct {
	Index      uint32
	Generation uint32
}

// NoActor is the zero ActorID; it never resolves.
var NoActor = ActorID{}

// Valid reports whether a ever referenced an actor. It says nothing about
// whether the actor still exists; use Engine.ActorPose for that.
func (a ActorID) Valid() bool {
	return a != NoActor
}

// SweepHit is the first contact of a shape swept along a path.
type SweepHit struct {
	Normal   mgl64.Vec3
	Distance float64
	Actor    ActorID
}

// RaycastHit is the first actor intersected by a ray.
type RaycastHit struct {
	Actor ActorID
	Point mgl64.Vec3
}

// Engine is the query/mutator interface onto the rigid-body engine. All
// methods are synchronous and must only be called from the physics phase.
// Lookups on destroyed or recycled actors report ok=false; that is a normal
// result, not an error.
type Engine interface {
	// CreateCapsuleBody registers a dynamic upright capsule and returns its
	// handle. The returned pose position is the capsule center.
	CreateCapsuleBody(radius, height, mass float64) (ActorID, error)
	// AttachAuxiliarySphere adds a small sphere collider at the capsule top,
	// mitigating head-on raycast tunneling against thin geometry.
	AttachAuxiliarySphere(body ActorID, radius float64) error
	RemoveBody(body ActorID)

	LinearVelocity(body ActorID) mgl64.Vec3
	SetLinearVelocity(body ActorID, v mgl64.Vec3)
	// AddForce accepts bodies and bare actors (e.g. a dynamic platform).
	AddForce(target ActorID, f mgl64.Vec3, mode ForceMode)

	SweepSphere(radius float64, origin, dir mgl64.Vec3, maxDist float64, mask LayerMask) (SweepHit, bool)
	Raycast(origin, dir mgl64.Vec3, maxDist float64, mask LayerMask) (RaycastHit, bool)

	ActorPose(a ActorID) (Pose, bool)
	SetGlobalPose(a ActorID, p Pose)
	ActorKind(a ActorID) (ActorKind, bool)

	SetFrictionCombine(body ActorID, mode CombineMode)

	// Step advances the simulation by dt seconds.
	Step(dt float64)
}
