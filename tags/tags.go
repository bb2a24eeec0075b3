package tags

import "github.com/yohamta/donburi"

var (
	Cat    = donburi.NewTag().SetName("Cat")
	Cursor = donburi.NewTag().SetName("Cursor")
)

// Resolv tags for click queries
const (
	ResolvCat    = "cat"
	ResolvCursor = "cursor"
)
