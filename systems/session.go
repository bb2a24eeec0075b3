package systems

import (
	"github.com/automoto/meowwww/components"
	cfg "github.com/automoto/meowwww/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSession returns the singleton Session component, creating it in
// menu mode with a full set of lives if needed.
func GetOrCreateSession(ecs *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Session))
		components.Session.SetValue(entry, components.SessionData{
			Mode:  cfg.ModeMenu,
			Lives: cfg.Session.StartingLives,
			Combo: 1,
		})
	}
	return components.Session.Get(entry)
}

// UpdateClock advances the session clock by one fixed step while playing.
func UpdateClock(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	if session.Mode != cfg.ModePlaying {
		return
	}
	session.Now += cfg.C.FrameStep()
}

// RegisterCatch awards points for a caught cat.
// A catch more than the combo window after the previous one resets the
// combo to 1 first; the award uses the combo before it is incremented.
func RegisterCatch(session *components.SessionData, points int) {
	if session.HasCaught && session.Now-session.LastCatch > cfg.Session.ComboWindow {
		session.Combo = 1
	}
	session.Score += points * session.Combo
	session.Combo++
	session.LastCatch = session.Now
	session.HasCaught = true

	if session.Score > session.HighScore {
		session.HighScore = session.Score
	}
}

// ActivateSlowdown starts (or restarts) the slowdown window.
func ActivateSlowdown(session *components.SessionData) {
	session.SlowdownUntil = session.Now + cfg.Session.SlowdownDuration
}

func SlowdownActive(session *components.SessionData) bool {
	return session.Now < session.SlowdownUntil
}

// SlowFactor is the multiplier applied to cat movement and animation.
func SlowFactor(session *components.SessionData) float64 {
	if SlowdownActive(session) {
		return cfg.Session.SlowdownFactor
	}
	return 1.0
}

// LoseLife deducts one life, never going below zero. Running out of lives
// ends the game.
func LoseLife(session *components.SessionData) {
	if session.Lives > 0 {
		session.Lives--
	}
	if session.Lives == 0 && session.Mode == cfg.ModePlaying {
		session.Mode = cfg.ModeGameOver
	}
}

// StartSession switches to playing with fresh lives, score and combo, an
// empty field and a reset spawner. The high score and clock carry over.
func StartSession(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	session.Lives = cfg.Session.StartingLives
	session.Score = 0
	session.Combo = 1
	session.HasCaught = false
	session.LastCatch = 0
	session.SlowdownUntil = session.Now
	session.Mode = cfg.ModePlaying

	RemoveAllCats(ecs)
	ResetSpawner(ecs)
}

// RemoveAllCats deletes every cat entity and its resolv object.
func RemoveAllCats(ecs *ecs.ECS) {
	var cats []*donburi.Entry
	components.Cat.Each(ecs.World, func(e *donburi.Entry) {
		cats = append(cats, e)
	})
	for _, e := range cats {
		removeCat(ecs, e)
	}
}

func removeCat(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	e.Remove()
}
