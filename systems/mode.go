package systems

import (
	cfg "github.com/automoto/meowwww/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMenu starts the first session on any mouse button press.
func UpdateMenu(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	if session.Mode != cfg.ModeMenu {
		return
	}
	if getOrCreateInput(ecs).MouseDown {
		StartSession(ecs)
	}
}

// UpdateGameOver restarts on any click or key press.
func UpdateGameOver(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	if session.Mode != cfg.ModeGameOver {
		return
	}
	if getOrCreateInput(ecs).AnyPressed {
		StartSession(ecs)
	}
}
