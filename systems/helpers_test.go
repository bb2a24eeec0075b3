package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/meowwww/assets/animations"
	"github.com/automoto/meowwww/components"
	cfg "github.com/automoto/meowwww/config"
	"github.com/automoto/meowwww/mask"
	"github.com/automoto/meowwww/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testCatSize = 120

// solidFrame is a fully opaque frame with no GPU image.
func solidFrame(w, h int) *animations.Frame {
	m := mask.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y)
		}
	}
	return &animations.Frame{Mask: m, Width: w, Height: h}
}

// leftHalfFrame is opaque only in its left half.
func leftHalfFrame(w, h int) *animations.Frame {
	m := mask.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w/2; x++ {
			m.Set(x, y)
		}
	}
	return &animations.Frame{Mask: m, Width: w, Height: h}
}

func testSheets(frames ...*animations.Frame) map[cfg.SheetID]*animations.Animation {
	if len(frames) == 0 {
		frames = []*animations.Frame{solidFrame(testCatSize, testCatSize), solidFrame(testCatSize, testCatSize)}
	}
	return map[cfg.SheetID]*animations.Animation{
		cfg.SheetWalk:  animations.NewAnimation(frames, 5, true),
		cfg.SheetBlack: animations.NewAnimation(frames, 5, true),
	}
}

// newTestECS builds a world like the game scene's, minus anything that needs
// a GPU, with a seeded spawner and the session in playing mode.
func newTestECS(t *testing.T, frames ...*animations.Frame) *ecs.ECS {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 40, 40)
	factory.CreateCursor(e)
	factory.CreateSheets(e, testSheets(frames...))
	GetOrCreateAudio(e)

	GetOrCreateSpawner(e).Rand = rand.New(rand.NewSource(1))
	StartSession(e)
	return e
}

func countCats(e *ecs.ECS) int {
	n := 0
	components.Cat.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

// catAlive checks the entity id rather than a held *Entry, which donburi
// rebinds when the id is recycled.
func catAlive(e *ecs.ECS, id donburi.Entity) bool {
	return e.World.Valid(id) && e.World.Entry(id).HasComponent(components.Cat)
}

func click(e *ecs.ECS, x, y int) {
	input := getOrCreateInput(e)
	input.Cursor.X, input.Cursor.Y = x, y
	input.Clicked = true
	input.MouseDown = true
	input.AnyPressed = true
}

func releaseInput(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Clicked = false
	input.MouseDown = false
	input.AnyPressed = false
}

func pressPause(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionPause] = true
}

func releasePause(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
}
