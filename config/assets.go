package config

// AssetsConfig names the files the game reads at startup
type AssetsConfig struct {
	Dir       string // relative to the executable, then the working directory
	Font      string
	FontSize  float64
	Heart     string
	Icon      string
	SaveApp   string // gdata application name
	HighScore string // gdata item key
}

var Assets AssetsConfig

func init() {
	Assets = AssetsConfig{
		Dir:       "assets",
		Font:      "font.ttf",
		FontSize:  20,
		Heart:     "heart.png",
		Icon:      "icon_png.png",
		SaveApp:   "meowwww",
		HighScore: "highscore",
	}
}
