// Package demo provides procedurally generated animated sprites for
// exercising the send pipeline without depending on any PNG sprite
// loading, which is out of scope for this core (see SPEC_FULL.md).
// The animation semantics (frame-duration gating, loop and ping-pong
// playback, optional horizontal flip) mirror the original
// AnimatedSprite from the Rust reference implementation.
package demo

import (
	"time"

	"github.com/kgrime/linsncore/internal/surface"
)

// LoopMode selects how an AnimatedSprite advances between frames.
type LoopMode int

const (
	// Loop always advances forward, wrapping to frame 0 at the end.
	Loop LoopMode = iota
	// PingPong advances forward then backward, reversing at either end.
	PingPong
)

// AnimatedSprite steps through a fixed sequence of procedurally
// generated frames at a fixed frame rate.
type AnimatedSprite struct {
	frames    []surface.Image
	frameTime time.Duration
	loopMode  LoopMode
	scale     float64
	flipX     bool

	lastUpdate time.Time
	current    int
	direction  int
}

// NewAnimatedSprite builds a sprite from frames, advancing at
// framesPerSecond and playing back in loopMode. frames must be
// non-empty.
func NewAnimatedSprite(frames []surface.Image, framesPerSecond float64, loopMode LoopMode, scale float64) *AnimatedSprite {
	return &AnimatedSprite{
		frames:     frames,
		frameTime:  time.Duration(float64(time.Second) / framesPerSecond),
		loopMode:   loopMode,
		scale:      scale,
		direction:  1,
		lastUpdate: time.Now(),
	}
}

// SetScale changes the draw scale; non-positive values are ignored.
func (s *AnimatedSprite) SetScale(scale float64) {
	if scale <= 0 {
		return
	}
	s.scale = scale
}

// FlipHorizontal toggles the sprite's horizontal mirroring.
func (s *AnimatedSprite) FlipHorizontal() {
	s.flipX = !s.flipX
}

// Draw advances the animation if a frame interval has elapsed, then
// blits the current frame onto dst at (x, y).
func (s *AnimatedSprite) Draw(dst *surface.Surface, x, y int) {
	now := time.Now()
	if now.Sub(s.lastUpdate) >= s.frameTime {
		s.lastUpdate = now
		s.advance()
	}
	dst.DrawImage(x, y, s.frames[s.current], s.scale, s.flipX, false)
}

func (s *AnimatedSprite) advance() {
	switch s.loopMode {
	case Loop:
		s.current = (s.current + 1) % len(s.frames)
	case PingPong:
		next := s.current + s.direction
		if next < 0 || next >= len(s.frames) {
			s.direction = -s.direction
			next = s.current + s.direction
		}
		s.current = next
	}
}
