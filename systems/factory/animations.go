package factory

import (
	"github.com/automoto/meowwww/assets/animations"
	"github.com/automoto/meowwww/components"
	cfg "github.com/automoto/meowwww/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSheets stores the loaded animation templates in the world so
// CreateCat can copy them.
func CreateSheets(ecs *ecs.ECS, sheets map[cfg.SheetID]*animations.Animation) *donburi.Entry {
	entry, ok := components.Sheets.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Sheets))
	}
	components.Sheets.SetValue(entry, components.SheetsData{Sheets: sheets})
	return entry
}
