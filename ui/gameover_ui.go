package ui

import (
	"fmt"

	cfg "github.com/automoto/meowwww/config"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameOverUI shows the final score and waits for a restart.
type GameOverUI struct {
	*textScreen
	score int
}

func NewGameOverUI(face text.Face) *GameOverUI {
	return &GameOverUI{
		textScreen: newTextScreen(face, cfg.GameOver.BackgroundColor, []line{
			{Text: cfg.GameOver.Title, Y: cfg.GameOver.TitleY, Color: cfg.GameOver.TitleColor},
			{Text: FinalScoreText(0), Y: cfg.GameOver.ScoreY, Color: cfg.GameOver.TextColor},
			{Text: cfg.GameOver.Prompt, Y: cfg.GameOver.PromptY, Color: cfg.GameOver.TextColor},
		}),
	}
}

// SetScore updates the final score label.
func (g *GameOverUI) SetScore(score int) {
	if g.score == score {
		return
	}
	g.score = score
	g.labels[1].Label = FinalScoreText(score)
}

func FinalScoreText(score int) string {
	return fmt.Sprintf(cfg.GameOver.ScoreFormat, score)
}
