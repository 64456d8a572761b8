package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPoseMulInverseIsIdentity(t *testing.T) {
	p := Pose{
		Position: mgl64.Vec3{3, -1, 7},
		Rotation: mgl64.QuatRotate(0.8, mgl64.Vec3{1, 2, 0.5}.Normalize()),
	}

	id := p.Mul(p.Inverse())
	if !id.ApproxEqual(IdentityPose(), 1e-9) {
		t.Errorf("p * p^-1 = %v, want identity", id)
	}
}

func TestPoseDeltaRoundTrip(t *testing.T) {
	prev := Pose{
		Position: mgl64.Vec3{10, 2, -4},
		Rotation: mgl64.QuatRotate(0.3, mgl64.Vec3{0, 1, 0}),
	}
	cur := Pose{
		Position: mgl64.Vec3{11.5, 2.25, -4},
		Rotation: mgl64.QuatRotate(0.45, mgl64.Vec3{0, 1, 0}),
	}

	delta := cur.Delta(prev)
	back := delta.Mul(prev)
	if !back.ApproxEqual(cur, 1e-9) {
		t.Errorf("delta * prev = %v, want %v", back, cur)
	}
}

func TestPoseDeltaOfUnchangedPoseIsIdentity(t *testing.T) {
	p := Pose{
		Position: mgl64.Vec3{-2, 5, 1},
		Rotation: mgl64.QuatRotate(1.1, mgl64.Vec3{0.2, 1, 0}.Normalize()),
	}

	delta := p.Delta(p)
	if !delta.ApproxEqual(IdentityPose(), 1e-9) {
		t.Errorf("delta of unchanged pose = %v, want identity", delta)
	}
}

func TestYawAngle(t *testing.T) {
	tests := []struct {
		name string
		quat mgl64.Quat
		want float64
	}{
		{"identity", mgl64.QuatIdent(), 0},
		{"quarter turn", YawQuat(math.Pi / 2), math.Pi / 2},
		{"negative turn", YawQuat(-0.7), -0.7},
		{"yaw survives pitch", YawQuat(0.5).Mul(mgl64.QuatRotate(0.4, mgl64.Vec3{1, 0, 0})), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YawAngle(tt.quat)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("YawAngle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestYawAngleVerticalForward(t *testing.T) {
	// Pitch forward straight down: forward axis becomes vertical, yaw must
	// still come out of the right axis without NaN.
	q := YawQuat(1.2).Mul(mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0}))
	got := YawAngle(q)
	if math.IsNaN(got) {
		t.Fatal("YawAngle returned NaN for vertical forward axis")
	}
	if math.Abs(got-1.2) > 1e-6 {
		t.Errorf("YawAngle = %v, want 1.2", got)
	}
}

func TestActorIDValid(t *testing.T) {
	if NoActor.Valid() {
		t.Error("NoActor should not be valid")
	}
	if !(ActorID{Index: 1, Generation: 1}).Valid() {
		t.Error("non-zero ActorID should be valid")
	}
}
