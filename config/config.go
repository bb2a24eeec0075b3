package config

import (
	"image/color"
	"time"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// FrameStep is the session clock advance for one update tick.
func (c *Config) FrameStep() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// CatTier identifies a cat variant. The tier decides points, sprite sheet and tint.
type CatTier int

const (
	TierOrange CatTier = iota
	TierBlack
	TierGold
)

func (t CatTier) String() string {
	switch t {
	case TierOrange:
		return "orange"
	case TierBlack:
		return "black"
	case TierGold:
		return "gold"
	}
	return "unknown"
}

// CatTierConfig contains per-tier values
type CatTierConfig struct {
	Points      int
	Sheet       SheetID
	Tinted      bool // additive gold tint when drawn
	SlowsTime   bool // catching it starts the slowdown effect
	SpawnChance int  // percent, only used for the rare tiers
}

// CatConfig contains cat entity configuration
type CatConfig struct {
	Tiers map[CatTier]CatTierConfig
	Tint  color.RGBA // added to RGB of gold cats
}

// SpawnerConfig contains the spawn cadence and difficulty curve
type SpawnerConfig struct {
	InitialInterval  time.Duration
	MinInterval      time.Duration
	IntervalStep     time.Duration
	EscalationPeriod time.Duration
	BaseSpeed        int
	SpeedSpread      int // horizontal/vertical speed is drawn from [BaseSpeed, BaseSpeed+SpeedSpread]
}

// SessionConfig contains scoring and life rules
type SessionConfig struct {
	StartingLives    int
	ComboWindow      time.Duration
	SlowdownDuration time.Duration
	SlowdownFactor   float64
}

// HUDConfig contains heads-up display layout values
type HUDConfig struct {
	TextColor    color.RGBA
	HighScoreX   int
	HighScoreY   int
	ScoreX       int
	ScoreY       int
	HeartY       float64
	HeartSpacing float64 // multiple of the heart width
	SlowdownTint color.RGBA
	FieldColor   color.RGBA
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	FadeSeconds  float32
	TextColor    color.RGBA
	Label        string
}

// MenuConfig contains title screen configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	PromptColor     color.RGBA
	Title           string
	Prompt          string
	TitleY          int
	PromptY         int
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	Title           string
	ScoreFormat     string
	Prompt          string
	TitleY          int
	ScoreY          int
	PromptY         int
}

// Global configuration instances
var C *Config
var Cat CatConfig
var Spawner SpawnerConfig
var Session SessionConfig
var HUD HUDConfig
var Pause PauseConfig
var Menu MenuConfig
var GameOver GameOverConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Navy         = color.RGBA{R: 0, G: 0, B: 100, A: 255}
	Grass        = color.RGBA{R: 100, G: 200, B: 100, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Teal         = color.RGBA{R: 0, G: 150, B: 150, A: 50}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 150}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "MEOWWWW",
		TPS:    60,
	}

	Cat = CatConfig{
		Tiers: map[CatTier]CatTierConfig{
			TierOrange: {Points: 1, Sheet: SheetWalk},
			TierBlack:  {Points: 5, Sheet: SheetBlack, SpawnChance: 5},
			TierGold:   {Points: 10, Sheet: SheetWalk, Tinted: true, SlowsTime: true, SpawnChance: 5},
		},
		Tint: Gold,
	}

	Spawner = SpawnerConfig{
		InitialInterval:  2000 * time.Millisecond,
		MinInterval:      750 * time.Millisecond,
		IntervalStep:     400 * time.Millisecond,
		EscalationPeriod: 4000 * time.Millisecond,
		BaseSpeed:        3,
		SpeedSpread:      2,
	}

	Session = SessionConfig{
		StartingLives:    9,
		ComboWindow:      2000 * time.Millisecond,
		SlowdownDuration: 5000 * time.Millisecond,
		SlowdownFactor:   0.5,
	}

	HUD = HUDConfig{
		TextColor:    White,
		HighScoreX:   10,
		HighScoreY:   10,
		ScoreX:       10,
		ScoreY:       50,
		HeartY:       10,
		HeartSpacing: 1.1,
		SlowdownTint: Teal,
		FieldColor:   Grass,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		FadeSeconds:  0.2,
		TextColor:    White,
		Label:        "PAUSED",
	}

	Menu = MenuConfig{
		BackgroundColor: Navy,
		TitleColor:      Yellow,
		PromptColor:     White,
		Title:           "Welcome to MEOWWWW!",
		Prompt:          "Click anywhere to start",
		TitleY:          150,
		PromptY:         300,
	}

	GameOver = GameOverConfig{
		BackgroundColor: Black,
		TitleColor:      Red,
		TextColor:       White,
		Title:           "GAME OVER",
		ScoreFormat:     "Final Score: %d",
		Prompt:          "Click to Restart",
		TitleY:          150,
		ScoreY:          220,
		PromptY:         300,
	}
}
