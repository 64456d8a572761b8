// Package netconfig defines lightweight types shared between client and
// server for network serialization. It must have zero dependencies on ebiten
// or any graphics library so the dedicated server binary stays headless.
package netconfig

// EmoteID identifies the avatar's animation emote.
type EmoteID int

const (
	EmoteIdle EmoteID = iota
	EmoteWalk
	EmoteRun
	EmoteFall
	EmoteJump
)

var emoteNames = map[EmoteID]string{
	EmoteIdle: "idle",
	EmoteWalk: "walk",
	EmoteRun:  "run",
	EmoteFall: "fall",
	EmoteJump: "jump",
}

func (e EmoteID) String() string {
	if name, ok := emoteNames[e]; ok {
		return name
	}
	return "unknown"
}

// EmoteFor picks the single active emote from the movement state.
// Priority: jumping > falling > moving (run over walk) > idle.
func EmoteFor(jumping, falling, moving, running bool) EmoteID {
	switch {
	case jumping:
		return EmoteJump
	case falling:
		return EmoteFall
	case moving && running:
		return EmoteRun
	case moving:
		return EmoteWalk
	default:
		return EmoteIdle
	}
}
