package protocol

import (
	"github.com/leap-fish/necs/esync"
	"github.com/wandermere/verse/shared/netcomponents"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPose uint = 10
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPose uint8 = 10
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	return esync.RegisterComponent(
		SyncIDNetPose,
		netcomponents.NetPoseData{},
		netcomponents.NetPose,
		esync.WithInterpFn(InterpIDNetPose, netcomponents.LerpNetPose),
	)
}
