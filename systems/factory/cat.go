package factory

import (
	"fmt"

	"github.com/automoto/meowwww/archetypes"
	"github.com/automoto/meowwww/components"
	cfg "github.com/automoto/meowwww/config"
	"github.com/automoto/meowwww/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCat spawns a cat of the given tier at (x, y) moving by (vx, vy) per
// tick. The cat gets its own copy of the tier's animation and is registered
// in the resolv space when one exists.
func CreateCat(ecs *ecs.ECS, tier cfg.CatTier, x, y, vx, vy float64, flip bool) *donburi.Entry {
	tierCfg := cfg.Cat.Tiers[tier]

	sheetsEntry, ok := components.Sheets.First(ecs.World)
	if !ok {
		panic("Cat sprite sheets not loaded")
	}
	template, ok := components.Sheets.Get(sheetsEntry).Sheets[tierCfg.Sheet]
	if !ok || template.Length() == 0 {
		panic(fmt.Sprintf("No sprite sheet for %s cat", tier))
	}
	anim := template.Copy()
	frame := anim.Frame()

	cat := archetypes.Cat.Spawn(ecs)

	obj := resolv.NewObject(x, y, float64(frame.Width), float64(frame.Height), tags.ResolvCat)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(frame.Width), float64(frame.Height)))
	obj.Data = cat
	components.Object.SetValue(cat, components.ObjectData{Object: obj})

	components.Cat.SetValue(cat, components.CatData{
		Tier:      tier,
		VelocityX: vx,
		VelocityY: vy,
		Flip:      flip,
	})
	components.Animation.SetValue(cat, components.AnimationData{Animation: anim})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return cat
}
