package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/meowwww/components"
	cfg "github.com/automoto/meowwww/config"
	"github.com/automoto/meowwww/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// Edge is the side of the field a cat enters from.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// GetOrCreateSpawner returns the singleton Spawner component, creating it
// with a time-seeded random source if needed.
func GetOrCreateSpawner(ecs *ecs.ECS) *components.SpawnerData {
	entry, ok := components.Spawner.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Spawner))
		components.Spawner.SetValue(entry, components.SpawnerData{
			Interval:   cfg.Spawner.InitialInterval,
			BaseSpeed:  cfg.Spawner.BaseSpeed,
			SpriteSize: cfg.SpriteSize(),
			Rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
		})
	}
	return components.Spawner.Get(entry)
}

// ResetSpawner restores the initial interval and restarts both timers at the
// current session time.
func ResetSpawner(ecs *ecs.ECS) {
	spawner := GetOrCreateSpawner(ecs)
	now := GetOrCreateSession(ecs).Now
	spawner.Interval = cfg.Spawner.InitialInterval
	spawner.LastSpawn = now
	spawner.LastEscalation = now
}

// HandleSpawn spawns a cat once the interval has elapsed and shortens the
// interval every escalation period, down to the configured minimum.
func HandleSpawn(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	if session.Mode != cfg.ModePlaying {
		return
	}
	spawner := GetOrCreateSpawner(ecs)
	now := session.Now

	if now-spawner.LastSpawn > spawner.Interval {
		SpawnCat(ecs, spawner)
		spawner.LastSpawn = now
	}
	if now-spawner.LastEscalation > cfg.Spawner.EscalationPeriod {
		spawner.LastEscalation = now
		spawner.Interval = max(cfg.Spawner.MinInterval, spawner.Interval-cfg.Spawner.IntervalStep)
	}
}

// SpawnCat creates one cat of a random tier on a random edge.
func SpawnCat(ecs *ecs.ECS, spawner *components.SpawnerData) {
	x, y, vx, vy := ChooseLocation(spawner)
	tier := RollTier(spawner.Rand)

	var flip bool
	switch {
	case vx < 0:
		flip = true
	case vx > 0:
		flip = false
	default:
		flip = spawner.Rand.Intn(2) == 0
	}

	factory.CreateCat(ecs, tier, x, y, vx, vy, flip)
}

// RollTier picks black and gold with their configured percentage each and
// orange otherwise.
func RollTier(r *rand.Rand) cfg.CatTier {
	roll := r.Intn(100)
	switch {
	case roll < cfg.Cat.Tiers[cfg.TierBlack].SpawnChance:
		return cfg.TierBlack
	case roll >= 100-cfg.Cat.Tiers[cfg.TierGold].SpawnChance:
		return cfg.TierGold
	}
	return cfg.TierOrange
}

// ChooseLocation places a cat just outside a random edge. The speed across
// the field is drawn from the spawner's speed range; the speed along the
// edge steers the cat towards a target that avoids a band of half a sprite
// around its starting coordinate.
func ChooseLocation(spawner *components.SpawnerData) (x, y, vx, vy float64) {
	edge := Edge(spawner.Rand.Intn(4))
	return chooseFromEdge(spawner, edge)
}

func chooseFromEdge(spawner *components.SpawnerData, edge Edge) (x, y, vx, vy float64) {
	r := spawner.Rand
	size := spawner.SpriteSize
	width, height := cfg.C.Width, cfg.C.Height
	speed := float64(randInclusive(r, spawner.BaseSpeed, spawner.BaseSpeed+cfg.Spawner.SpeedSpread))

	switch edge {
	case EdgeLeft, EdgeRight:
		if edge == EdgeLeft {
			x, vx = float64(-size), speed
		} else {
			x, vx = float64(width), -speed
		}
		start := randInclusive(r, 0, height-size)
		y = float64(start)
		dy := float64(avoidBand(r, start, size, height-size) - start)
		vy = dy * speed / float64(width)
	default:
		if edge == EdgeTop {
			y, vy = float64(-size), speed
		} else {
			y, vy = float64(height), -speed
		}
		start := randInclusive(r, 0, width-size)
		x = float64(start)
		dx := float64(avoidBand(r, start, size, width-size) - start)
		vx = dx * speed / float64(height)
	}
	return x, y, vx, vy
}

// avoidBand returns a target in [0, limit] outside (start-size/2, start+size/2).
// When both sides are available one is chosen at random.
func avoidBand(r *rand.Rand, start, size, limit int) int {
	offset := float64(size) / 2
	below := float64(start) - offset
	above := float64(start) + offset

	lowOK := below >= 0
	highOK := above <= float64(limit)
	switch {
	case lowOK && highOK:
		if r.Intn(2) == 0 {
			return randInclusive(r, 0, int(below))
		}
		return randInclusive(r, int(above), limit)
	case !lowOK:
		return randInclusive(r, int(above), limit)
	default:
		return randInclusive(r, 0, int(below))
	}
}

// randInclusive returns a uniform integer in [lo, hi]. An empty range yields lo.
func randInclusive(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
