package netcomponents

import (
	"math"

	"github.com/yohamta/donburi"
)

type NetPoseData struct {
	X, Y, Z             float64 // world position
	QX, QY, QZ, QW      float64 // facing quaternion
	Emote               string
	LastUpdateTimestamp int64   // client unix millis of the latest movement update
}

var NetPose = donburi.NewComponentType[NetPoseData]()

// LerpNetPose interpolates between two avatar poses. Positions are lerped;
// quaternions use normalized lerp with hemisphere correction, which is stable
// for the small per-snapshot rotation deltas avatars produce.
func LerpNetPose(from, to NetPoseData, t float64) *NetPoseData {
	qx, qy, qz, qw := to.QX, to.QY, to.QZ, to.QW
	dot := from.QX*qx + from.QY*qy + from.QZ*qz + from.QW*qw
	if dot < 0 {
		qx, qy, qz, qw = -qx, -qy, -qz, -qw
	}

	qx = from.QX + (qx-from.QX)*t
	qy = from.QY + (qy-from.QY)*t
	qz = from.QZ + (qz-from.QZ)*t
	qw = from.QW + (qw-from.QW)*t
	if n := math.Sqrt(qx*qx + qy*qy + qz*qz + qw*qw); n > 1e-12 {
		qx, qy, qz, qw = qx/n, qy/n, qz/n, qw/n
	} else {
		qx, qy, qz, qw = 0, 0, 0, 1
	}

	return &NetPoseData{
		X:                   from.X + (to.X-from.X)*t,
		Y:                   from.Y + (to.Y-from.Y)*t,
		Z:                   from.Z + (to.Z-from.Z)*t,
		QX:                  qx,
		QY:                  qy,
		QZ:                  qz,
		QW:                  qw,
		Emote:               to.Emote,
		LastUpdateTimestamp: to.LastUpdateTimestamp,
	}
}
