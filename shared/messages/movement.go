package messages

import "github.com/leap-fish/necs/esync"

// MovementUpdate carries a client's avatar transform and emote to the server.
// Sent at the configured send rate, not per frame.
type MovementUpdate struct {
	ID        esync.NetworkId
	Position  [3]float64 // world position (x, y, z)
	Rotation  [4]float64 // facing quaternion (x, y, z, w)
	Emote     string
	Timestamp int64 // client unix millis at send time
}
