package components

import "github.com/yohamta/donburi"

// EmitterData throttles outbound movement updates for the local avatar.
type EmitterData struct {
	Accum float64 // seconds since the last update was sent
}

var Emitter = donburi.NewComponentType[EmitterData]()
