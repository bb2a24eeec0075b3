package fonts

import (
	"bytes"
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
)

type FontName string

const (
	// HUD is the in-game face for score, high score and the pause label.
	HUD FontName = "hud"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}

	// source backs the text/v2 faces used by the ebitenui screens.
	source *text.GoTextFaceSource
)

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// LoadSource parses ttf for text/v2 rendering.
func LoadSource(ttf []byte) error {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return fmt.Errorf("failed to parse font source: %w", err)
	}
	source = s
	return nil
}

// Face returns a text/v2 face of the given size from the loaded source.
func Face(size float64) text.Face {
	if source == nil {
		panic("Font source not loaded")
	}
	return &text.GoTextFace{Source: source, Size: size}
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
