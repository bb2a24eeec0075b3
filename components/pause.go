package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PauseData stores the frozen field image and the overlay fade
type PauseData struct {
	// Background is a copy of the last field frame drawn before pausing.
	// Nil until the first pause, in which case the field colour is drawn.
	Background *ebiten.Image
	Fade       *gween.Tween
	Alpha      float32 // current overlay alpha, 0..1 of the configured colour
}

var Pause = donburi.NewComponentType[PauseData]()

// CanvasData is the off-screen target the field layer is rendered into.
type CanvasData struct {
	Image *ebiten.Image
}

var Canvas = donburi.NewComponentType[CanvasData]()
