package messages

import "github.com/leap-fish/necs/esync"

// JoinRequest opens the handshake. ReconnectToken is empty on a first
// connect and carries the previously issued token on a resume.
type JoinRequest struct {
	Version        string
	PlayerName     string
	ReconnectToken string
}

// JoinAccepted completes the handshake. NetworkID is the id of the entity
// the server created for this client; TickRate drives client-side
// interpolation of remote poses.
type JoinAccepted struct {
	NetworkID      esync.NetworkId
	ReconnectToken string
	ServerName     string
	TickRate       int
}

// JoinRejected terminates the handshake with a human-readable reason.
type JoinRejected struct {
	Reason string
}
