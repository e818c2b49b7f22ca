package demo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kgrime/linsncore/internal/surface"
)

func solidFrames(n int) []surface.Image {
	frames := make([]surface.Image, n)
	for i := range frames {
		frames[i] = surface.Image{Width: 1, Height: 1, Pixels: []surface.RGBA{{R: byte(i), A: 255}}}
	}
	return frames
}

func TestAnimatedSprite_LoopWrapsToStart(t *testing.T) {
	s := NewAnimatedSprite(solidFrames(3), 1000, Loop, 1)
	s.lastUpdate = time.Now().Add(-time.Hour)

	s.advance()
	assert.Equal(t, 1, s.current)
	s.advance()
	assert.Equal(t, 2, s.current)
	s.advance()
	assert.Equal(t, 0, s.current, "loop mode should wrap back to frame 0")
}

func TestAnimatedSprite_PingPongReversesAtEnds(t *testing.T) {
	s := NewAnimatedSprite(solidFrames(3), 1000, PingPong, 1)

	s.advance()
	assert.Equal(t, 1, s.current)
	s.advance()
	assert.Equal(t, 2, s.current)
	s.advance()
	assert.Equal(t, 1, s.current, "ping-pong should reverse direction at the last frame")
	s.advance()
	assert.Equal(t, 0, s.current)
	s.advance()
	assert.Equal(t, 1, s.current, "ping-pong should reverse direction at the first frame")
}

func TestAnimatedSprite_DrawDoesNotAdvanceBeforeFrameInterval(t *testing.T) {
	s := NewAnimatedSprite(solidFrames(3), 1, Loop, 1) // 1 fps, 1s per frame
	dst := surface.New(1, 1, false, false)

	s.Draw(dst, 0, 0)
	assert.Equal(t, 0, s.current, "a fresh sprite should not advance on its first draw within the interval")
}

func TestAnimatedSprite_SetScaleIgnoresNonPositive(t *testing.T) {
	s := NewAnimatedSprite(solidFrames(1), 30, Loop, 2)
	s.SetScale(0)
	s.SetScale(-1)
	assert.Equal(t, 2.0, s.scale)
	s.SetScale(4)
	assert.Equal(t, 4.0, s.scale)
}

func TestAnimatedSprite_FlipHorizontalToggles(t *testing.T) {
	s := NewAnimatedSprite(solidFrames(1), 30, Loop, 1)
	assert.False(t, s.flipX)
	s.FlipHorizontal()
	assert.True(t, s.flipX)
	s.FlipHorizontal()
	assert.False(t, s.flipX)
}
