package systems

import (
	"image"
	"testing"

	"github.com/automoto/meowwww/components"
	cfg "github.com/automoto/meowwww/config"
	"github.com/automoto/meowwww/systems/factory"
	"github.com/automoto/meowwww/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCatCrossingFieldCostsOneLife(t *testing.T) {
	e := newTestECS(t)
	session := GetOrCreateSession(e)
	cat := factory.CreateCat(e, cfg.TierOrange, -testCatSize, 240, 5, 0, false)
	id := cat.Entity()

	entered := false
	for i := 0; i < 400 && catAlive(e, id); i++ {
		UpdateCats(e)
		if !catAlive(e, id) {
			break
		}
		if components.Cat.Get(cat).EnteredScreen {
			entered = true
		}
		assert.Equal(t, cfg.Session.StartingLives, session.Lives)
	}

	assert.True(t, entered)
	assert.False(t, catAlive(e, id), "cat is removed once it leaves")
	assert.Equal(t, cfg.Session.StartingLives-1, session.Lives)
	assert.Equal(t, 0, countCats(e))
}

func TestCatLeavingWithoutEnteringIsFree(t *testing.T) {
	e := newTestECS(t)
	session := GetOrCreateSession(e)
	cat := factory.CreateCat(e, cfg.TierOrange, -testCatSize, 240, 2, 0, false)

	// Peek halfway in, then walk back out
	for i := 0; i < 30; i++ {
		UpdateCats(e)
	}
	components.Cat.Get(cat).VelocityX = -2
	for i := 0; i < 60; i++ {
		UpdateCats(e)
	}

	require.True(t, catAlive(e, cat.Entity()))
	assert.False(t, components.Cat.Get(cat).EnteredScreen)
	assert.Less(t, components.Object.Get(cat).X, float64(-testCatSize)+1)
	assert.Equal(t, cfg.Session.StartingLives, session.Lives)
}

func TestStrayCatDroppedWithoutLosingLife(t *testing.T) {
	e := newTestECS(t)
	session := GetOrCreateSession(e)
	id := factory.CreateCat(e, cfg.TierOrange, -testCatSize, 240, -5, 0, false).Entity()

	for i := 0; i < 30 && catAlive(e, id); i++ {
		UpdateCats(e)
	}

	assert.False(t, catAlive(e, id))
	assert.Equal(t, 0, countCats(e))
	spaceEntry, ok := components.Space.First(e.World)
	require.True(t, ok)
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		assert.False(t, obj.HasTags(tags.ResolvCat), "resolv object leaves the space too")
	}
	assert.Equal(t, cfg.Session.StartingLives, session.Lives)
}

func TestSpawnPointsAreNotStrays(t *testing.T) {
	e := newTestECS(t)
	spawner := GetOrCreateSpawner(e)
	field := image.Rect(0, 0, cfg.C.Width, cfg.C.Height)

	for _, edge := range []Edge{EdgeLeft, EdgeRight, EdgeTop, EdgeBottom} {
		for i := 0; i < 200; i++ {
			x, y, _, _ := chooseFromEdge(spawner, edge)
			obj := resolv.NewObject(x, y, float64(spawner.SpriteSize), float64(spawner.SpriteSize))
			require.False(t, strayed(obj, field), "edge %d at (%v, %v)", edge, x, y)
		}
	}
}

func TestCatLostWhenOnlyTransparentPixelsRemain(t *testing.T) {
	e := newTestECS(t, leftHalfFrame(testCatSize, testCatSize))
	session := GetOrCreateSession(e)

	// Opaque half is past the left edge, only the transparent half is on screen
	cat := factory.CreateCat(e, cfg.TierOrange, -testCatSize/2, 240, 0, 0, false)
	components.Cat.Get(cat).EnteredScreen = true
	id := cat.Entity()

	UpdateCats(e)
	assert.False(t, catAlive(e, id))
	assert.Equal(t, cfg.Session.StartingLives-1, session.Lives)

	flipped := factory.CreateCat(e, cfg.TierOrange, -testCatSize/2, 240, 0, 0, true)
	components.Cat.Get(flipped).EnteredScreen = true

	UpdateCats(e)
	assert.True(t, catAlive(e, flipped.Entity()), "mirrored frame keeps its opaque half on screen")
	assert.Equal(t, cfg.Session.StartingLives-1, session.Lives)
}

func TestSlowdownHalvesCatSpeedAndAnimation(t *testing.T) {
	e := newTestECS(t)
	session := GetOrCreateSession(e)
	cat := factory.CreateCat(e, cfg.TierOrange, 100, 100, 4, 2, false)

	ActivateSlowdown(session)
	UpdateCats(e)

	obj := components.Object.Get(cat)
	assert.InDelta(t, 102.0, obj.X, 1e-9)
	assert.InDelta(t, 101.0, obj.Y, 1e-9)
	assert.InDelta(t, 0.5, components.Animation.Get(cat).Animation.Cursor, 1e-9)

	session.Now += cfg.Session.SlowdownDuration
	UpdateCats(e)
	assert.InDelta(t, 106.0, obj.X, 1e-9)
	assert.InDelta(t, 1.5, components.Animation.Get(cat).Animation.Cursor, 1e-9)
}

func TestCatsOwnTheirAnimation(t *testing.T) {
	e := newTestECS(t)
	a := factory.CreateCat(e, cfg.TierOrange, 100, 100, 0, 0, false)
	b := factory.CreateCat(e, cfg.TierOrange, 300, 100, 0, 0, false)

	UpdateCats(e)

	animA := components.Animation.Get(a).Animation
	animB := components.Animation.Get(b).Animation
	assert.NotSame(t, animA, animB)
	assert.InDelta(t, 1.0, animA.Cursor, 1e-9)
	assert.InDelta(t, 1.0, animB.Cursor, 1e-9)
}

func TestUpdateCatsIdleOutsidePlaying(t *testing.T) {
	e := newTestECS(t)
	cat := factory.CreateCat(e, cfg.TierOrange, 100, 100, 4, 0, false)
	GetOrCreateSession(e).Mode = cfg.ModePaused

	UpdateCats(e)

	assert.Equal(t, 100.0, components.Object.Get(cat).X)
}

func TestClickCatchesCat(t *testing.T) {
	e := newTestECS(t)
	session := GetOrCreateSession(e)
	id := factory.CreateCat(e, cfg.TierOrange, 100, 100, 0, 0, false).Entity()

	click(e, 150, 150)
	HandleClicks(e)

	assert.False(t, catAlive(e, id))
	assert.Equal(t, 1, session.Score)
	assert.Equal(t, 2, session.Combo)
	assert.Len(t, GetOrCreateAudio(e).PendingSFX, 1)
	assert.Contains(t, cfg.MeowSounds, GetOrCreateAudio(e).PendingSFX[0])
}

func TestClickMissesCat(t *testing.T) {
	e := newTestECS(t)
	session := GetOrCreateSession(e)
	cat := factory.CreateCat(e, cfg.TierOrange, 100, 100, 0, 0, false)

	click(e, 50, 50)
	HandleClicks(e)

	assert.True(t, catAlive(e, cat.Entity()))
	assert.Equal(t, 0, session.Score)
	assert.Empty(t, GetOrCreateAudio(e).PendingSFX)
}

func TestClickUsesSilhouette(t *testing.T) {
	e := newTestECS(t, leftHalfFrame(testCatSize, testCatSize))
	facingRight := factory.CreateCat(e, cfg.TierOrange, 100, 100, 0, 0, false)

	// Right half is transparent
	click(e, 100+testCatSize-10, 150)
	HandleClicks(e)
	assert.True(t, catAlive(e, facingRight.Entity()))

	facingLeft := factory.CreateCat(e, cfg.TierOrange, 400, 100, 0, 0, true).Entity()
	click(e, 400+testCatSize-10, 150)
	HandleClicks(e)
	assert.False(t, catAlive(e, facingLeft), "mirrored frame is opaque on the right")
}

func TestClickCatchesOverlappingCats(t *testing.T) {
	e := newTestECS(t)
	session := GetOrCreateSession(e)
	a := factory.CreateCat(e, cfg.TierOrange, 100, 100, 0, 0, false).Entity()
	b := factory.CreateCat(e, cfg.TierOrange, 150, 120, 0, 0, false).Entity()

	click(e, 200, 180)
	HandleClicks(e)

	assert.False(t, catAlive(e, a))
	assert.False(t, catAlive(e, b))
	assert.Equal(t, 3, session.Score)
	assert.Len(t, GetOrCreateAudio(e).PendingSFX, 2)
}

func TestClickGoldCatStartsSlowdown(t *testing.T) {
	e := newTestECS(t)
	session := GetOrCreateSession(e)
	factory.CreateCat(e, cfg.TierGold, 100, 100, 0, 0, false)

	click(e, 150, 150)
	HandleClicks(e)

	assert.Equal(t, 10, session.Score)
	assert.True(t, SlowdownActive(session))
	assert.Equal(t, session.Now+cfg.Session.SlowdownDuration, session.SlowdownUntil)
}

func TestClickIgnoredOutsidePlaying(t *testing.T) {
	e := newTestECS(t)
	session := GetOrCreateSession(e)
	cat := factory.CreateCat(e, cfg.TierOrange, 100, 100, 0, 0, false)
	session.Mode = cfg.ModePaused

	click(e, 150, 150)
	HandleClicks(e)

	assert.True(t, catAlive(e, cat.Entity()))
	assert.Equal(t, 0, session.Score)
}

func TestClickFollowsMovingCat(t *testing.T) {
	e := newTestECS(t)
	id := factory.CreateCat(e, cfg.TierBlack, 100, 100, 5, 0, false).Entity()

	for i := 0; i < 40; i++ {
		UpdateCats(e)
	}
	// Now at x=300, well away from its spawn cells
	click(e, 350, 150)
	HandleClicks(e)

	assert.False(t, catAlive(e, id))
	assert.Equal(t, 5, GetOrCreateSession(e).Score)
}

// The world here has no audio singleton yet, so the catch creates it.
func TestCatchWithLazySingletons(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 40, 40)
	factory.CreateCursor(e)
	factory.CreateSheets(e, testSheets())
	StartSession(e)
	id := factory.CreateCat(e, cfg.TierOrange, 100, 100, 0, 0, false).Entity()

	click(e, 150, 150)
	HandleClicks(e)

	assert.False(t, catAlive(e, id))
	assert.Equal(t, 0, countCats(e))
	assert.Equal(t, 1, GetOrCreateSession(e).Score)
	assert.Len(t, GetOrCreateAudio(e).PendingSFX, 1)
}
