package systems

import (
	"fmt"

	cfg "github.com/automoto/meowwww/config"
	"github.com/automoto/meowwww/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // HUD faces are freetype font.Face
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var heartIcon *ebiten.Image
var hudDrawOp = &ebiten.DrawImageOptions{}

// SetHeartIcon sets the image drawn once per remaining life.
func SetHeartIcon(img *ebiten.Image) {
	heartIcon = img
}

// ScoreLine is the HUD text for the score and the next catch's multiplier.
func ScoreLine(score, combo int) string {
	return fmt.Sprintf("Score: %d  Combo: x%d", score, combo)
}

// HeartX returns the left edge of the i-th heart, counting from the right.
func HeartX(i, heartWidth, screenWidth int) float64 {
	return float64(screenWidth) - float64(i+1)*float64(heartWidth)*cfg.HUD.HeartSpacing
}

// DrawHUD renders high score, score and combo, the lives row and the
// slowdown tint.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(ecs)
	face := fonts.HUD.Get()
	ascent := face.Metrics().Ascent.Ceil()

	text.Draw(screen, fmt.Sprintf("Highscore: %d", session.HighScore), face,
		cfg.HUD.HighScoreX, cfg.HUD.HighScoreY+ascent, cfg.HUD.TextColor)
	text.Draw(screen, ScoreLine(session.Score, session.Combo), face,
		cfg.HUD.ScoreX, cfg.HUD.ScoreY+ascent, cfg.HUD.TextColor)

	if heartIcon != nil {
		heartWidth := heartIcon.Bounds().Dx()
		for i := 0; i < session.Lives; i++ {
			hudDrawOp.GeoM.Reset()
			hudDrawOp.GeoM.Translate(HeartX(i, heartWidth, screen.Bounds().Dx()), cfg.HUD.HeartY)
			screen.DrawImage(heartIcon, hudDrawOp)
		}
	}

	if SlowdownActive(session) {
		vector.FillRect(screen, 0, 0,
			float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
			cfg.HUD.SlowdownTint, false)
	}
}
