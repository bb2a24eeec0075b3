package mask_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/automoto/meowwww/mask"
	"github.com/stretchr/testify/assert"
)

// leftHalf returns a w×h image whose left half is opaque.
func leftHalf(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w/2; x++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	img := leftHalf(130, 4)
	img.Set(129, 0, color.RGBA{A: 100}) // below threshold

	m := mask.FromImage(img)

	assert.Equal(t, 130, m.Width())
	assert.Equal(t, 4, m.Height())
	assert.Equal(t, 65*4, m.Count())
	assert.True(t, m.At(0, 0))
	assert.True(t, m.At(64, 3))
	assert.False(t, m.At(65, 0))
	assert.False(t, m.At(129, 0))
	assert.False(t, m.At(-1, 0))
	assert.False(t, m.At(0, 4))
}

func TestFromImageUsesBoundsOrigin(t *testing.T) {
	img := leftHalf(20, 10).SubImage(image.Rect(5, 2, 15, 6))
	m := mask.FromImage(img)

	assert.Equal(t, 10, m.Width())
	assert.Equal(t, 4, m.Height())
	assert.True(t, m.At(4, 0))
	assert.False(t, m.At(5, 0))
}

func TestAtFlipped(t *testing.T) {
	m := mask.FromImage(leftHalf(10, 2))

	assert.True(t, m.AtFlipped(0, 0, false))
	assert.False(t, m.AtFlipped(0, 0, true))
	assert.True(t, m.AtFlipped(9, 1, true))
}

func TestOverlapsRect(t *testing.T) {
	screen := image.Rect(0, 0, 800, 600)
	m := mask.FromImage(leftHalf(120, 120))

	t.Run("fully inside", func(t *testing.T) {
		assert.True(t, m.OverlapsRect(100, 100, screen, false))
	})

	t.Run("fully outside", func(t *testing.T) {
		assert.False(t, m.OverlapsRect(801, 0, screen, false))
		assert.False(t, m.OverlapsRect(-121, 0, screen, false))
		assert.False(t, m.OverlapsRect(0, 600, screen, false))
	})

	t.Run("only transparent half inside", func(t *testing.T) {
		// Opaque columns 0..59 sit left of the screen, transparent ones inside.
		assert.False(t, m.OverlapsRect(-60, 0, screen, false))
		// Mirrored, the opaque half is on the right and becomes visible.
		assert.True(t, m.OverlapsRect(-60, 0, screen, true))
	})

	t.Run("one opaque column inside", func(t *testing.T) {
		assert.True(t, m.OverlapsRect(-59, 0, screen, false))
	})
}

func TestNewClampsNegativeSize(t *testing.T) {
	m := mask.New(-3, -1)
	assert.Equal(t, 0, m.Width())
	assert.Equal(t, 0, m.Count())
	assert.False(t, m.OverlapsRect(0, 0, image.Rect(0, 0, 10, 10), false))
}
