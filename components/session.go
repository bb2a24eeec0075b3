package components

import (
	"math/rand"
	"time"

	cfg "github.com/automoto/meowwww/config"
	"github.com/yohamta/donburi"
)

// SessionData is the state of one play session. It is a singleton component
// read and written by every gameplay system.
type SessionData struct {
	Mode cfg.Mode

	Lives     int
	Score     int
	Combo     int
	HighScore int

	// Now is the session clock. It advances one fixed step per playing tick
	// and stands still in every other mode.
	Now           time.Duration
	LastCatch     time.Duration
	HasCaught     bool
	SlowdownUntil time.Duration
}

var Session = donburi.NewComponentType[SessionData]()

// SpawnerData drives cat spawning and the difficulty curve.
type SpawnerData struct {
	Interval       time.Duration
	LastSpawn      time.Duration
	LastEscalation time.Duration
	BaseSpeed      int
	SpriteSize     int
	Rand           *rand.Rand
}

var Spawner = donburi.NewComponentType[SpawnerData]()
