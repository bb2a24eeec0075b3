package config

// SheetID identifies a cat sprite sheet
type SheetID int

const (
	SheetWalk SheetID = iota
	SheetBlack
)

// SheetDef describes how a sprite sheet is sliced and played back.
// Sheets are a single row of equally sized cells.
type SheetDef struct {
	Path          string
	CellWidth     int
	CellHeight    int
	Scale         float64
	FrameDuration float64 // ticks per frame
	Loop          bool
}

// CatSheets maps each sheet to its file and playback parameters.
var CatSheets = map[SheetID]SheetDef{
	SheetWalk:  {Path: "Walk.png", CellWidth: 48, CellHeight: 48, Scale: 2.5, FrameDuration: 5, Loop: true},
	SheetBlack: {Path: "black_cat.png", CellWidth: 48, CellHeight: 48, Scale: 2.5, FrameDuration: 5, Loop: true},
}

// SpriteSize returns the scaled cell width of the walk sheet. The spawner
// uses it as the distance cats start outside the field.
func SpriteSize() int {
	def := CatSheets[SheetWalk]
	return int(float64(def.CellWidth) * def.Scale)
}
