package ui

import (
	cfg "github.com/automoto/meowwww/config"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MenuUI is the title screen shown before the first session.
type MenuUI struct {
	*textScreen
}

func NewMenuUI(face text.Face) *MenuUI {
	return &MenuUI{
		textScreen: newTextScreen(face, cfg.Menu.BackgroundColor, []line{
			{Text: cfg.Menu.Title, Y: cfg.Menu.TitleY, Color: cfg.Menu.TitleColor},
			{Text: cfg.Menu.Prompt, Y: cfg.Menu.PromptY, Color: cfg.Menu.PromptColor},
		}),
	}
}
