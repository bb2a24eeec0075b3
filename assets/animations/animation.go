package animations

import (
	"math"

	"github.com/automoto/meowwww/mask"
	"github.com/hajimehoshi/ebiten/v2"
)

// Frame is one cell of a sprite sheet together with its silhouette.
type Frame struct {
	Image  *ebiten.Image
	Mask   *mask.Mask
	Width  int
	Height int
}

// Animation plays a sequence of frames. Cursor counts ticks, each frame is
// shown for FrameDuration ticks, and Advance may move it by fractional amounts.
type Animation struct {
	Frames        []*Frame
	FrameDuration float64
	Loop          bool
	Cursor        float64
	Done          bool // set once a non-looping animation reaches its last tick
}

func NewAnimation(frames []*Frame, frameDuration float64, loop bool) *Animation {
	return &Animation{
		Frames:        frames,
		FrameDuration: frameDuration,
		Loop:          loop,
	}
}

// Copy returns an animation over the same frames starting from the beginning.
func (a *Animation) Copy() *Animation {
	return NewAnimation(a.Frames, a.FrameDuration, a.Loop)
}

// Length is the total number of ticks in one pass.
func (a *Animation) Length() float64 {
	return a.FrameDuration * float64(len(a.Frames))
}

// Advance moves the cursor by multiplier ticks.
func (a *Animation) Advance(multiplier float64) {
	length := a.Length()
	if length <= 0 {
		return
	}
	if a.Loop {
		a.Cursor = math.Mod(a.Cursor+multiplier, length)
		return
	}
	a.Cursor = math.Min(a.Cursor+multiplier, length-1)
	if a.Cursor >= length-1 {
		a.Done = true
	}
}

// Index returns the index of the frame under the cursor.
func (a *Animation) Index() int {
	if len(a.Frames) == 0 || a.FrameDuration <= 0 {
		return 0
	}
	i := int(a.Cursor / a.FrameDuration)
	if i >= len(a.Frames) {
		i = len(a.Frames) - 1
	}
	return i
}

// Frame returns the frame under the cursor, or nil for an empty animation.
func (a *Animation) Frame() *Frame {
	if len(a.Frames) == 0 {
		return nil
	}
	return a.Frames[a.Index()]
}

// Restart rewinds the cursor and clears Done.
func (a *Animation) Restart() {
	a.Cursor = 0
	a.Done = false
}
