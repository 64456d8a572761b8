// Package physicstest provides a minimal, scriptable physics.Engine used by
// the controller tests and the offline demo world. Dynamic bodies integrate
// with explicit Euler steps; geometry queries answer from registered ground
// planes unless a test installs its own hook.
//
// The engine applies no gravity of its own; the locomotion controller owns
// gravity, exactly as it does against a production engine configured with
// per-body gravity disabled.
package physicstest

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/wandermere/verse/physics"
)

// AppliedForce records a single AddForce call for assertions.
type AppliedForce struct {
	Target physics.ActorID
	Force  mgl64.Vec3
	Mode   physics.ForceMode
}

// Actor is one simulated body.
type Actor struct {
	ID       physics.ActorID
	Kind     physics.ActorKind
	Mask     physics.LayerMask
	Pose     physics.Pose
	Velocity mgl64.Vec3
	Mass     float64

	Radius, Height float64
	AuxSphere      float64
	Combine        physics.CombineMode

	force mgl64.Vec3 // accumulated continuous force, cleared each Step
}

// GroundPlane is a horizontal support surface answering sweeps and raycasts.
type GroundPlane struct {
	Actor  physics.ActorID
	Y      float64
	Normal mgl64.Vec3
	Mask   physics.LayerMask
}

// Engine implements physics.Engine.
type Engine struct {
	nextIndex uint32
	actors    map[physics.ActorID]*Actor
	planes    []GroundPlane

	// Forces collects every AddForce call in order.
	Forces []AppliedForce
	// Steps counts Step invocations.
	Steps int

	// SweepFn and RaycastFn override the default plane-based answers when
	// non-nil.
	SweepFn   func(radius float64, origin, dir mgl64.Vec3, maxDist float64, mask physics.LayerMask) (physics.SweepHit, bool)
	RaycastFn func(origin, dir mgl64.Vec3, maxDist float64, mask physics.LayerMask) (physics.RaycastHit, bool)
}

func New() *Engine {
	return &Engine{actors: make(map[physics.ActorID]*Actor)}
}

func (e *Engine) allocate(kind physics.ActorKind, mask physics.LayerMask) *Actor {
	e.nextIndex++
	a := &Actor{
		ID:   physics.ActorID{Index: e.nextIndex, Generation: 1},
		Kind: kind,
		Mask: mask,
		Pose: physics.IdentityPose(),
	}
	e.actors[a.ID] = a
	return a
}

// AddActor registers a non-capsule actor (platform, prop) and returns it.
func (e *Engine) AddActor(kind physics.ActorKind, mask physics.LayerMask, pose physics.Pose) *Actor {
	a := e.allocate(kind, mask)
	a.Pose = pose
	a.Mass = 1
	return a
}

// AddGroundPlane registers an infinite horizontal plane owned by actor.
func (e *Engine) AddGroundPlane(actor physics.ActorID, y float64, normal mgl64.Vec3, mask physics.LayerMask) {
	e.planes = append(e.planes, GroundPlane{Actor: actor, Y: y, Normal: normal, Mask: mask})
}

// Destroy removes an actor. Its ActorID becomes stale: every later lookup
// reports ok=false, matching engines that recycle handle slots.
func (e *Engine) Destroy(id physics.ActorID) {
	delete(e.actors, id)
}

// Actor returns the live actor for id, or nil if the handle is stale.
func (e *Engine) Actor(id physics.ActorID) *Actor {
	return e.actors[id]
}

func (e *Engine) CreateCapsuleBody(radius, height, mass float64) (physics.ActorID, error) {
	if radius <= 0 || height <= 0 || mass <= 0 {
		return physics.NoActor, fmt.Errorf("invalid capsule dimensions r=%v h=%v m=%v", radius, height, mass)
	}
	a := e.allocate(physics.KindDynamic, physics.LayerAvatar)
	a.Radius = radius
	a.Height = height
	a.Mass = mass
	return a.ID, nil
}

func (e *Engine) AttachAuxiliarySphere(body physics.ActorID, radius float64) error {
	a := e.actors[body]
	if a == nil {
		return fmt.Errorf("stale body handle %v", body)
	}
	a.AuxSphere = radius
	return nil
}

func (e *Engine) RemoveBody(body physics.ActorID) {
	e.Destroy(body)
}

func (e *Engine) LinearVelocity(body physics.ActorID) mgl64.Vec3 {
	if a := e.actors[body]; a != nil {
		return a.Velocity
	}
	return mgl64.Vec3{}
}

func (e *Engine) SetLinearVelocity(body physics.ActorID, v mgl64.Vec3) {
	if a := e.actors[body]; a != nil {
		a.Velocity = v
	}
}

func (e *Engine) AddForce(target physics.ActorID, f mgl64.Vec3, mode physics.ForceMode) {
	a := e.actors[target]
	if a == nil {
		return
	}
	e.Forces = append(e.Forces, AppliedForce{Target: target, Force: f, Mode: mode})
	switch mode {
	case physics.ForceImpulse:
		a.Velocity = a.Velocity.Add(f.Mul(1 / a.Mass))
	default:
		a.force = a.force.Add(f)
	}
}

func (e *Engine) SweepSphere(radius float64, origin, dir mgl64.Vec3, maxDist float64, mask physics.LayerMask) (physics.SweepHit, bool) {
	if e.SweepFn != nil {
		return e.SweepFn(radius, origin, dir, maxDist, mask)
	}
	// Default: straight-down sweeps against registered planes.
	if dir.Y() >= 0 {
		return physics.SweepHit{}, false
	}
	best := physics.SweepHit{Distance: maxDist + 1}
	found := false
	for _, p := range e.planes {
		if p.Mask&mask == 0 {
			continue
		}
		dist := origin.Y() - radius - e.planeHeight(p)
		if dist < 0 {
			dist = 0
		}
		if dist <= maxDist && dist < best.Distance {
			best = physics.SweepHit{Normal: p.Normal, Distance: dist, Actor: p.Actor}
			found = true
		}
	}
	return best, found
}

func (e *Engine) Raycast(origin, dir mgl64.Vec3, maxDist float64, mask physics.LayerMask) (physics.RaycastHit, bool) {
	if e.RaycastFn != nil {
		return e.RaycastFn(origin, dir, maxDist, mask)
	}
	if dir.Y() >= 0 {
		return physics.RaycastHit{}, false
	}
	var best physics.RaycastHit
	bestDist := maxDist + 1
	found := false
	for _, p := range e.planes {
		if p.Mask&mask == 0 {
			continue
		}
		y := e.planeHeight(p)
		dist := origin.Y() - y
		if dist >= 0 && dist <= maxDist && dist < bestDist {
			point := origin
			point[1] = y
			best = physics.RaycastHit{Actor: p.Actor, Point: point}
			bestDist = dist
			found = true
		}
	}
	return best, found
}

// planeHeight offsets the registered height by the owner actor's current Y,
// so tween-driven platforms carry their support surface with them.
func (e *Engine) planeHeight(p GroundPlane) float64 {
	if a := e.actors[p.Actor]; a != nil {
		return p.Y + a.Pose.Position.Y()
	}
	return p.Y
}

func (e *Engine) ActorPose(id physics.ActorID) (physics.Pose, bool) {
	if a := e.actors[id]; a != nil {
		return a.Pose, true
	}
	return physics.Pose{}, false
}

func (e *Engine) SetGlobalPose(id physics.ActorID, p physics.Pose) {
	if a := e.actors[id]; a != nil {
		a.Pose = p
	}
}

func (e *Engine) ActorKind(id physics.ActorID) (physics.ActorKind, bool) {
	if a := e.actors[id]; a != nil {
		return a.Kind, true
	}
	return 0, false
}

func (e *Engine) SetFrictionCombine(body physics.ActorID, mode physics.CombineMode) {
	if a := e.actors[body]; a != nil {
		a.Combine = mode
	}
}

// Step integrates dynamic actors: v += (F/m)·dt, then p += v·dt.
func (e *Engine) Step(dt float64) {
	e.Steps++
	for _, a := range e.actors {
		if a.Kind != physics.KindDynamic {
			a.force = mgl64.Vec3{}
			continue
		}
		a.Velocity = a.Velocity.Add(a.force.Mul(dt / a.Mass))
		a.Pose.Position = a.Pose.Position.Add(a.Velocity.Mul(dt))
		a.force = mgl64.Vec3{}
	}
}
