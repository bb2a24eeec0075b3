package factory

import (
	"github.com/automoto/meowwww/archetypes"
	"github.com/automoto/meowwww/components"
	"github.com/automoto/meowwww/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateCursor adds the one-pixel probe object used to query cats under the
// pointer.
func CreateCursor(ecs *ecs.ECS) *donburi.Entry {
	cursor := archetypes.Cursor.Spawn(ecs)

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvCursor)
	obj.SetShape(resolv.NewRectangle(0, 0, 1, 1))
	obj.Data = cursor
	components.Object.SetValue(cursor, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return cursor
}
