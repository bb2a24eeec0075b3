package components

import (
	"github.com/automoto/meowwww/assets/animations"
	cfg "github.com/automoto/meowwww/config"
	"github.com/yohamta/donburi"
)

// AnimationData owns an entity's private copy of an animation.
type AnimationData struct {
	Animation *animations.Animation
}

// Frame returns the current frame or nil when there is no animation.
func (a *AnimationData) Frame() *animations.Frame {
	if a.Animation == nil {
		return nil
	}
	return a.Animation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()

// SheetsData holds the animation templates loaded at startup, keyed by sheet.
// Cats copy a template when they spawn.
type SheetsData struct {
	Sheets map[cfg.SheetID]*animations.Animation
}

var Sheets = donburi.NewComponentType[SheetsData]()
