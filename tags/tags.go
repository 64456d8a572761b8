package tags

import "github.com/yohamta/donburi"

var (
	Avatar       = donburi.NewTag().SetName("Avatar")
	RemoteAvatar = donburi.NewTag().SetName("RemoteAvatar")
	Platform     = donburi.NewTag().SetName("Platform")
)
