package systems

import (
	"image"
	"math"

	"github.com/automoto/meowwww/assets/animations"
	"github.com/automoto/meowwww/components"
	cfg "github.com/automoto/meowwww/config"
	"github.com/automoto/meowwww/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCats moves and animates every cat, latches the entered flag and
// removes cats that left the field after entering it, costing a life each.
// Cats that drift away without ever entering are dropped for free.
func UpdateCats(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	if session.Mode != cfg.ModePlaying {
		return
	}
	factor := SlowFactor(session)
	field := image.Rect(0, 0, cfg.C.Width, cfg.C.Height)

	var escaped, strays []*donburi.Entry
	tags.Cat.Each(ecs.World, func(e *donburi.Entry) {
		cat := components.Cat.Get(e)
		obj := components.Object.Get(e)
		anim := components.Animation.Get(e)

		if anim.Animation != nil {
			anim.Animation.Advance(factor)
		}
		obj.X += cat.VelocityX * factor
		obj.Y += cat.VelocityY * factor
		obj.Update()

		if obj.X > 0 && obj.X < float64(cfg.C.Width)-obj.W &&
			obj.Y > 0 && obj.Y < float64(cfg.C.Height)-obj.H {
			cat.EnteredScreen = true
		}

		switch {
		case cat.EnteredScreen && !visibleIn(anim.Frame(), obj.X, obj.Y, cat.Flip, field):
			escaped = append(escaped, e)
		case !cat.EnteredScreen && strayed(obj.Object, field):
			strays = append(strays, e)
		}
	})

	for _, e := range escaped {
		removeCat(ecs, e)
		LoseLife(session)
	}
	for _, e := range strays {
		removeCat(ecs, e)
	}
}

// strayed reports whether obj is more than its own size outside r. Spawn
// points sit at most one sprite past an edge, so such a cat is moving away.
func strayed(obj *resolv.Object, r image.Rectangle) bool {
	margin := int(math.Ceil(math.Max(obj.W, obj.H)))
	box := image.Rect(
		int(math.Floor(obj.X)), int(math.Floor(obj.Y)),
		int(math.Floor(obj.X+obj.W)), int(math.Floor(obj.Y+obj.H)),
	)
	return !box.Overlaps(r.Inset(-margin))
}

// visibleIn reports whether any opaque pixel of frame drawn at (x, y) lies
// inside r. A frame without a mask counts as its full box.
func visibleIn(frame *animations.Frame, x, y float64, flip bool, r image.Rectangle) bool {
	if frame == nil {
		return false
	}
	ox, oy := int(math.Floor(x)), int(math.Floor(y))
	if frame.Mask == nil {
		return image.Rect(ox, oy, ox+frame.Width, oy+frame.Height).Overlaps(r)
	}
	return frame.Mask.OverlapsRect(ox, oy, r, flip)
}

// hitAt reports whether the frame drawn at (x, y) is opaque at point p.
func hitAt(frame *animations.Frame, x, y float64, flip bool, p image.Point) bool {
	if frame == nil {
		return false
	}
	lx := p.X - int(math.Floor(x))
	ly := p.Y - int(math.Floor(y))
	if frame.Mask == nil {
		return lx >= 0 && ly >= 0 && lx < frame.Width && ly < frame.Height
	}
	return frame.Mask.AtFlipped(lx, ly, flip)
}

// HandleClicks catches every cat whose silhouette is under the pointer when
// the catch button goes down.
func HandleClicks(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	if session.Mode != cfg.ModePlaying {
		return
	}
	input := getOrCreateInput(ecs)
	if !input.Clicked {
		return
	}

	hits := catsUnder(ecs, input.Cursor)
	if len(hits) == 0 {
		return
	}
	// No entity may be created once a cat is removed
	spawner := GetOrCreateSpawner(ecs)
	GetOrCreateAudio(ecs)

	for _, e := range hits {
		cat := components.Cat.Get(e)
		tier := cfg.Cat.Tiers[cat.Tier]

		removeCat(ecs, e)
		RegisterCatch(session, tier.Points)
		if tier.SlowsTime {
			ActivateSlowdown(session)
		}
		PlaySFX(ecs, RandomMeow(spawner.Rand))
	}
}

// catsUnder returns the cats whose current frame is opaque at p. Candidates
// come from the resolv cursor probe when one exists, otherwise every cat is
// tested.
func catsUnder(ecs *ecs.ECS, p image.Point) []*donburi.Entry {
	var candidates []*donburi.Entry
	if cursorEntry, ok := tags.Cursor.First(ecs.World); ok {
		cursor := components.Object.Get(cursorEntry)
		cursor.X, cursor.Y = float64(p.X), float64(p.Y)
		cursor.Update()
		if check := cursor.Check(0, 0, tags.ResolvCat); check != nil {
			seen := make(map[donburi.Entity]bool)
			for _, obj := range check.ObjectsByTags(tags.ResolvCat) {
				e, ok := obj.Data.(*donburi.Entry)
				if !ok || !e.Valid() || seen[e.Entity()] {
					continue
				}
				seen[e.Entity()] = true
				candidates = append(candidates, e)
			}
		}
	} else {
		tags.Cat.Each(ecs.World, func(e *donburi.Entry) {
			candidates = append(candidates, e)
		})
	}

	hits := candidates[:0]
	for _, e := range candidates {
		cat := components.Cat.Get(e)
		obj := components.Object.Get(e)
		if hitAt(components.Animation.Get(e).Frame(), obj.X, obj.Y, cat.Flip, p) {
			hits = append(hits, e)
		}
	}
	return hits
}
