package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/meowwww/assets"
	"github.com/automoto/meowwww/components"
	cfg "github.com/automoto/meowwww/config"
	"github.com/automoto/meowwww/fonts"
	"github.com/automoto/meowwww/systems"
	"github.com/automoto/meowwww/systems/factory"
	"github.com/automoto/meowwww/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Resolv cell size for the play field
const spaceCellSize = 40

// GameScene runs every mode of the game in one ECS world.
type GameScene struct {
	ecs       *ecs.ECS
	pack      *assets.Pack
	store     *systems.ScoreStore
	highScore int
	once      sync.Once

	menu     *ui.MenuUI
	gameOver *ui.GameOverUI
}

func NewGameScene(pack *assets.Pack, store *systems.ScoreStore, highScore int) *GameScene {
	return &GameScene{pack: pack, store: store, highScore: highScore}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	session := systems.GetOrCreateSession(gs.ecs)
	switch session.Mode {
	case cfg.ModeMenu:
		gs.menu.Update()
	case cfg.ModeGameOver:
		gs.gameOver.SetScore(session.Score)
		gs.gameOver.Update()
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}

	switch systems.GetOrCreateSession(gs.ecs).Mode {
	case cfg.ModeMenu:
		gs.menu.Draw(screen)
	case cfg.ModePlaying:
		canvas := gs.canvas()
		canvas.Clear()
		gs.ecs.DrawLayer(cfg.LayerField, canvas)
		screen.DrawImage(canvas, nil)
	case cfg.ModePaused:
		gs.ecs.DrawLayer(cfg.LayerOverlay, screen)
	case cfg.ModeGameOver:
		gs.gameOver.Draw(screen)
	}
}

// Quit persists the high score. Called once when the window is closing.
func (gs *GameScene) Quit() {
	if gs.ecs == nil {
		return
	}
	systems.SaveHighScore(gs.ecs, gs.store)
}

func (gs *GameScene) canvas() *ebiten.Image {
	entry, _ := components.Canvas.First(gs.ecs.World)
	return components.Canvas.Get(entry).Image
}

func (gs *GameScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not compile tint shader, using colour matrix: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Mode transitions read this tick's input before gameplay runs
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateMenu)
	ecs.AddSystem(systems.UpdateGameOver)
	ecs.AddSystem(systems.UpdateDebug)

	// Gameplay systems only act while playing
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.HandleClicks)
	ecs.AddSystem(systems.UpdateCats)
	ecs.AddSystem(systems.HandleSpawn)
	ecs.AddSystem(systems.UpdateAudio)

	// Field layer is drawn into the canvas so pausing can freeze it
	ecs.AddRenderer(cfg.LayerField, systems.DrawField)
	ecs.AddRenderer(cfg.LayerField, systems.DrawHUD)
	ecs.AddRenderer(cfg.LayerField, systems.DrawDebug)
	ecs.AddRenderer(cfg.LayerOverlay, systems.DrawPause)

	gs.ecs = ecs

	factory.CreateSpace(ecs, cfg.C.Width, cfg.C.Height, spaceCellSize, spaceCellSize)
	factory.CreateCursor(ecs)
	factory.CreateSheets(ecs, gs.pack.Sheets)

	// Singletons exist before the first tick so no entity is created mid-update
	systems.GetOrCreateSpawner(ecs)
	systems.GetOrCreateAudio(ecs)

	canvas := ecs.World.Entry(ecs.World.Create(components.Canvas))
	components.Canvas.SetValue(canvas, components.CanvasData{
		Image: ebiten.NewImage(cfg.C.Width, cfg.C.Height),
	})

	session := systems.GetOrCreateSession(ecs)
	session.HighScore = gs.highScore

	systems.SetHeartIcon(gs.pack.Heart)

	face := fonts.Face(cfg.Assets.FontSize)
	gs.menu = ui.NewMenuUI(face)
	gs.gameOver = ui.NewGameOverUI(face)
}
