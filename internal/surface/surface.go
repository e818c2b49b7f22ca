package surface

import (
	"errors"

	"github.com/kgrime/linsncore/internal/socket"
	"github.com/kgrime/linsncore/internal/wire"
)

// errDoubleBufferedSendUnimplemented is returned by Send when called
// on a double-buffered Surface. The double-buffering branch of send is
// intentionally left unimplemented pending a decision on how it
// should interact with Exchange-driven transmission; see DESIGN.md.
var errDoubleBufferedSendUnimplemented = errors.New("surface: Send is not implemented for double-buffered surfaces")

// Surface is a logical width x height compositing surface backed by a
// fixed 1024x512 physical buffer so the wire mapping is direct.
type Surface struct {
	width, height int

	doubleBuffering bool
	flipY           bool

	active   *Buffer
	inactive *Buffer
}

// New creates a Surface of the given logical dimensions. Both physical
// buffers are allocated once, up front, and never reallocated.
func New(width, height int, doubleBuffering, flipY bool) *Surface {
	s := &Surface{
		width:            width,
		height:           height,
		doubleBuffering:  doubleBuffering,
		flipY:            flipY,
		active:           NewBuffer(),
		inactive:         NewBuffer(),
	}
	return s
}

// target returns the buffer writes land in: inactive when double
// buffering, otherwise active.
func (s *Surface) target() *Buffer {
	if s.doubleBuffering {
		return s.inactive
	}
	return s.active
}

// ActiveBuffer returns the buffer currently considered "front"; callers
// driving an Exchange publish this buffer's pixels once a frame is
// complete.
func (s *Surface) ActiveBuffer() *Buffer {
	return s.active
}

// InactiveBuffer returns the buffer a double-buffered Surface writes
// into.
func (s *Surface) InactiveBuffer() *Buffer {
	return s.inactive
}

// Clear fills the logical rectangle with opaque black.
func (s *Surface) Clear() {
	black := RGBA{A: 0xFF}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.SetPixel(x, y, black)
		}
	}
}

// SetPixel writes rgba at logical (x, y). It is a no-op if the
// coordinates are out of bounds or alpha is zero. Alpha 255 overwrites
// directly; intermediate alpha alpha-composites against the existing
// pixel. The physical row written is y+1, honouring the Linsn frame's
// reserved first row.
func (s *Surface) SetPixel(x, y int, rgba RGBA) {
	if x < 0 || y < 0 || x >= s.width || y > s.height {
		return
	}
	if rgba.A == 0 {
		return
	}

	row := y + 1
	buf := s.target()

	if rgba.A == 0xFF {
		buf.set(x, row, wire.Pixel{R: rgba.R, G: rgba.G, B: rgba.B})
		return
	}

	old := buf.at(x, row)
	factor := float32(rgba.A) / 0xFF
	blend := func(oldC, newC byte) byte {
		return byte(float32(oldC)*(1-factor) + float32(newC)*factor)
	}
	buf.set(x, row, wire.Pixel{
		R: blend(old.R, rgba.R),
		G: blend(old.G, rgba.G),
		B: blend(old.B, rgba.B),
	})
}

// DrawImage nearest-neighbour rescales src to (src.Width*scale,
// src.Height*scale), optionally flips it horizontally, flips it
// vertically XOR'd with the surface's global flip, then blits every
// pixel through SetPixel. A rescale that produces a zero-sized image
// is skipped entirely.
func (s *Surface) DrawImage(x, y int, src Image, scale float64, flipX, flipYArg bool) {
	newWidth := int(float64(src.Width) * scale)
	newHeight := int(float64(src.Height) * scale)
	if newWidth <= 0 || newHeight <= 0 {
		return
	}

	img := resizeNearest(src, newWidth, newHeight)

	if flipX {
		img = flipHorizontal(img)
	}

	if flipYArg != s.flipY {
		img = flipVertical(img)
	}

	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			s.SetPixel(x+col, y+row, img.At(col, row))
		}
	}
}

// Send transmits the active buffer's pixels via sender. Double-
// buffered mode is not implemented for this call; invoking it in that
// mode is a hard error, per the unimplemented branch this behavior was
// inherited from.
func (s *Surface) Send(sender socket.Sender, dst wire.MAC) error {
	if s.doubleBuffering {
		return errDoubleBufferedSendUnimplemented
	}
	return sender.Send(s.active.Pixels(), dst)
}
