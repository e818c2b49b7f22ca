// Package surface implements the compositing surface a frame producer
// renders into: a fixed 1024x512 physical pixel buffer addressed
// through a smaller logical width/height, with clear, set-pixel and
// scaled-image-blit operations.
package surface

import "github.com/kgrime/linsncore/internal/wire"

// Buffer is the physical 1024x512 backing store of a Linsn frame.
type Buffer struct {
	pixels [wire.FramePixels]wire.Pixel
}

// NewBuffer returns a Buffer filled with opaque black.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Pixels returns the buffer's contents as a flat, row-major slice
// ready to be handed to a packet socket.
func (b *Buffer) Pixels() []wire.Pixel {
	return b.pixels[:]
}

func (b *Buffer) at(x, y int) wire.Pixel {
	return b.pixels[y*wire.FrameWidth+x]
}

func (b *Buffer) set(x, y int, p wire.Pixel) {
	b.pixels[y*wire.FrameWidth+x] = p
}

func (b *Buffer) fill(p wire.Pixel) {
	for i := range b.pixels {
		b.pixels[i] = p
	}
}
