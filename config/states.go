package config

import "github.com/yohamta/donburi/ecs"

// Mode is the game session's top-level state
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game-over"
	}
	return "unknown"
}

// Render layers. The field layer is drawn into an off-screen canvas so it can
// be snapshotted when pausing; the overlay layer is drawn straight to the screen.
const (
	LayerField ecs.LayerID = iota
	LayerOverlay
)

// Default is the layer new entities are created on.
const Default = LayerField
