package archetypes

import (
	"github.com/automoto/meowwww/components"
	cfg "github.com/automoto/meowwww/config"
	"github.com/automoto/meowwww/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Cat = newArchetype(
		tags.Cat,
		components.Cat,
		components.Object,
		components.Animation,
	)
	Cursor = newArchetype(
		tags.Cursor,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	return ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
}
