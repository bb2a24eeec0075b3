package components

import (
	"image"

	cfg "github.com/automoto/meowwww/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions, plus this frame's pointer state.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	Cursor     image.Point
	Clicked    bool // catch button went down this frame
	MouseDown  bool // any mouse button went down this frame
	AnyPressed bool // any mouse button or key went down this frame
}

var Input = donburi.NewComponentType[InputData]()
