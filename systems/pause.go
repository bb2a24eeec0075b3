package systems

import (
	"github.com/automoto/meowwww/components"
	cfg "github.com/automoto/meowwww/config"
	"github.com/automoto/meowwww/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // HUD faces are freetype font.Face
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdatePause toggles between playing and paused and runs the overlay fade.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		switch session.Mode {
		case cfg.ModePlaying:
			session.Mode = cfg.ModePaused
			snapshotField(ecs, pause)
			pause.Fade = gween.New(0, 1, cfg.Pause.FadeSeconds, ease.OutQuad)
			pause.Alpha = 0
		case cfg.ModePaused:
			session.Mode = cfg.ModePlaying
			pause.Fade = nil
		}
	}

	if session.Mode == cfg.ModePaused && pause.Fade != nil {
		alpha, done := pause.Fade.Update(1 / float32(cfg.C.TPS))
		pause.Alpha = alpha
		if done {
			pause.Alpha = 1
			pause.Fade = nil
		}
	}
}

// snapshotField copies the last rendered field into the pause background.
func snapshotField(ecs *ecs.ECS, pause *components.PauseData) {
	canvas, ok := components.Canvas.First(ecs.World)
	if !ok {
		return
	}
	src := components.Canvas.Get(canvas).Image
	if src == nil {
		return
	}
	if pause.Background == nil || pause.Background.Bounds() != src.Bounds() {
		pause.Background = ebiten.NewImage(src.Bounds().Dx(), src.Bounds().Dy())
	}
	pause.Background.Clear()
	pause.Background.DrawImage(src, nil)
}

var pauseDrawOp = &ebiten.DrawImageOptions{}

// DrawPause renders the frozen field, the dimming overlay and the label.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if GetOrCreateSession(ecs).Mode != cfg.ModePaused {
		return
	}
	pause := GetOrCreatePause(ecs)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	if pause.Background != nil {
		pauseDrawOp.GeoM.Reset()
		screen.DrawImage(pause.Background, pauseDrawOp)
	} else {
		vector.FillRect(screen, 0, 0, width, height, cfg.HUD.FieldColor, false)
	}

	overlay := cfg.Pause.OverlayColor
	overlay.A = uint8(float32(overlay.A) * pause.Alpha)
	vector.FillRect(screen, 0, 0, width, height, overlay, false)

	face := fonts.HUD.Get()
	bounds, _ := font.BoundString(face, cfg.Pause.Label)
	textWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	textHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()
	x := (int(width) - textWidth) / 2
	y := (int(height)-textHeight)/2 - bounds.Min.Y.Ceil()
	text.Draw(screen, cfg.Pause.Label, face, x, y, cfg.Pause.TextColor)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
