package components

import (
	cfg "github.com/automoto/meowwww/config"
	"github.com/yohamta/donburi"
)

// CatData is the per-cat state that is not held by the resolv object.
type CatData struct {
	Tier      cfg.CatTier
	VelocityX float64
	VelocityY float64
	Flip      bool // mirrored horizontally, set when walking left

	// EnteredScreen latches once the cat's box has been fully inside the
	// field. Only cats that entered can be lost off the edge.
	EnteredScreen bool
}

var Cat = donburi.NewComponentType[CatData]()
