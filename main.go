package main

import (
	"image"
	"log"
	"os"

	"github.com/automoto/meowwww/assets"
	cfg "github.com/automoto/meowwww/config"
	"github.com/automoto/meowwww/fonts"
	"github.com/automoto/meowwww/scenes"
	"github.com/automoto/meowwww/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Quit()
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.scene.Quit()
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	assetFS := os.DirFS(assets.ResolveDir(cfg.Assets.Dir))
	pack := assets.MustLoad(assetFS)

	if err := fonts.LoadFontWithSize(fonts.HUD, pack.Font, cfg.Assets.FontSize); err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	if err := fonts.LoadSource(pack.Font); err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	if err := systems.InitAudio(assetFS); err != nil {
		log.Fatalf("Failed to load sounds: %v", err)
	}

	// The game still runs without save data, it just forgets the high score
	store, err := systems.OpenScoreStore(cfg.Assets.SaveApp)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	highScore := store.Load()

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowIcon([]image.Image{pack.Icon})
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.C.TPS)

	if err := ebiten.RunGame(NewGame(scenes.NewGameScene(pack, store, highScore))); err != nil {
		log.Fatal(err)
	}
}
