package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kgrime/linsncore/internal/surface"
)

func TestSolidDisc_CenterIsFilledCornerIsNot(t *testing.T) {
	red := surface.RGBA{R: 255, A: 255}
	img := SolidDisc(10, 4, red)

	assert.Equal(t, red, img.At(5, 5))
	assert.Equal(t, surface.RGBA{}, img.At(0, 0))
}

func TestPulseFrames_RadiusGrowsMonotonically(t *testing.T) {
	red := surface.RGBA{R: 255, A: 255}
	frames := PulseFrames(20, 5, 1, 9, red)
	assert.Len(t, frames, 5)

	countLit := func(img surface.Image) int {
		n := 0
		for _, p := range img.Pixels {
			if p.A != 0 {
				n++
			}
		}
		return n
	}

	prev := countLit(frames[0])
	for _, f := range frames[1:] {
		n := countLit(f)
		assert.GreaterOrEqual(t, n, prev)
		prev = n
	}
}

func TestCheckerboard_AlternatesCells(t *testing.T) {
	a := surface.RGBA{R: 1, A: 255}
	b := surface.RGBA{B: 1, A: 255}
	img := Checkerboard(4, 4, 2, a, b)

	assert.Equal(t, a, img.At(0, 0))
	assert.Equal(t, b, img.At(2, 0))
	assert.Equal(t, b, img.At(0, 2))
	assert.Equal(t, a, img.At(2, 2))
}

func TestScrollingBarFrames_BarMovesRight(t *testing.T) {
	c := surface.RGBA{G: 255, A: 255}
	frames := ScrollingBarFrames(10, 2, 2, 5, c)
	assert.Len(t, frames, 5)

	firstLitX := func(img surface.Image) int {
		for x := 0; x < img.Width; x++ {
			if img.At(x, 0).A != 0 {
				return x
			}
		}
		return -1
	}

	assert.Equal(t, 0, firstLitX(frames[0]))
	assert.Greater(t, firstLitX(frames[4]), firstLitX(frames[0]))
}
