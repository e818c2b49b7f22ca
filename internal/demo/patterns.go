package demo

import "github.com/kgrime/linsncore/internal/surface"

// SolidDisc returns a size x size square image with a filled circle of
// the given color against a transparent background, used as one
// animation frame of a pulsing-dot sprite.
func SolidDisc(size int, radius float64, c surface.RGBA) surface.Image {
	img := surface.Image{Width: size, Height: size, Pixels: make([]surface.RGBA, size*size)}
	cx, cy := float64(size)/2, float64(size)/2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= radius*radius {
				img.Pixels[y*size+x] = c
			}
		}
	}
	return img
}

// PulseFrames builds a sequence of frameCount SolidDisc images whose
// radius grows linearly from minRadius to maxRadius, suitable for
// driving an AnimatedSprite in PingPong mode as a breathing indicator.
func PulseFrames(size, frameCount int, minRadius, maxRadius float64, c surface.RGBA) []surface.Image {
	frames := make([]surface.Image, frameCount)
	for i := 0; i < frameCount; i++ {
		t := float64(i) / float64(frameCount-1)
		radius := minRadius + t*(maxRadius-minRadius)
		frames[i] = SolidDisc(size, radius, c)
	}
	return frames
}

// Checkerboard returns a width x height image tiled with square cells
// of the given size, alternating between a and b.
func Checkerboard(width, height, cell int, a, b surface.RGBA) surface.Image {
	img := surface.Image{Width: width, Height: height, Pixels: make([]surface.RGBA, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cx, cy := x/cell, y/cell
			c := a
			if (cx+cy)%2 == 1 {
				c = b
			}
			img.Pixels[y*width+x] = c
		}
	}
	return img
}

// ScrollingBarFrames builds frameCount frames of a single vertical bar
// of width barWidth sweeping left to right across a width x height
// canvas, suitable for Loop playback.
func ScrollingBarFrames(width, height, barWidth, frameCount int, c surface.RGBA) []surface.Image {
	frames := make([]surface.Image, frameCount)
	for i := 0; i < frameCount; i++ {
		img := surface.Image{Width: width, Height: height, Pixels: make([]surface.RGBA, width*height)}
		barX := i * width / frameCount
		for y := 0; y < height; y++ {
			for x := barX; x < barX+barWidth && x < width; x++ {
				img.Pixels[y*width+x] = c
			}
		}
		frames[i] = img
	}
	return frames
}
