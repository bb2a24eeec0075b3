// Package mask provides per-pixel occupancy bitmaps for silhouette hit tests.
package mask

import (
	"image"
	"math/bits"
)

// DefaultThreshold is the alpha value a pixel must exceed to count as solid.
const DefaultThreshold = 127

// Mask is a width×height bitmap where a set bit marks an opaque pixel.
type Mask struct {
	width  int
	height int
	stride int // words per row
	words  []uint64
}

// New returns an empty mask.
func New(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := (width + 63) / 64
	return &Mask{
		width:  width,
		height: height,
		stride: stride,
		words:  make([]uint64, stride*height),
	}
}

// FromImage builds a mask from img's alpha channel using DefaultThreshold.
func FromImage(img image.Image) *Mask {
	return FromImageThreshold(img, DefaultThreshold)
}

// FromImageThreshold sets every pixel whose 8-bit alpha is above threshold.
// Mask coordinates are relative to img.Bounds().Min.
func FromImageThreshold(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if uint8(a>>8) > threshold {
				m.Set(x-b.Min.X, y-b.Min.Y)
			}
		}
	}
	return m
}

func (m *Mask) Width() int  { return m.width }
func (m *Mask) Height() int { return m.height }

// Set marks (x, y) as solid. Out of range coordinates are ignored.
func (m *Mask) Set(x, y int) {
	if !m.inside(x, y) {
		return
	}
	m.words[y*m.stride+x/64] |= 1 << uint(x%64)
}

// At reports whether (x, y) is solid. Out of range coordinates are empty.
func (m *Mask) At(x, y int) bool {
	if !m.inside(x, y) {
		return false
	}
	return m.words[y*m.stride+x/64]&(1<<uint(x%64)) != 0
}

// AtFlipped is At on the horizontally mirrored mask.
func (m *Mask) AtFlipped(x, y int, flipX bool) bool {
	if flipX {
		x = m.width - 1 - x
	}
	return m.At(x, y)
}

// Count returns the number of solid pixels.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// OverlapsRect reports whether any solid pixel lies inside r once the mask is
// placed with its top-left corner at (offX, offY). flipX mirrors the mask
// horizontally first, matching how the sprite is drawn.
func (m *Mask) OverlapsRect(offX, offY int, r image.Rectangle, flipX bool) bool {
	local := r.Sub(image.Pt(offX, offY)).Intersect(image.Rect(0, 0, m.width, m.height))
	if local.Empty() {
		return false
	}
	if flipX {
		local = image.Rect(m.width-local.Max.X, local.Min.Y, m.width-local.Min.X, local.Max.Y)
	}
	for y := local.Min.Y; y < local.Max.Y; y++ {
		row := m.words[y*m.stride : (y+1)*m.stride]
		for x := local.Min.X; x < local.Max.X; {
			w := row[x/64]
			if w == 0 {
				x = (x/64 + 1) * 64
				continue
			}
			if w&(1<<uint(x%64)) != 0 {
				return true
			}
			x++
		}
	}
	return false
}

func (m *Mask) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}
