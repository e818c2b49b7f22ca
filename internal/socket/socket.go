// Package socket owns the raw link-layer socket Linsn frames are
// transmitted through, exposing a single Sender capability behind two
// interchangeable implementations: a simple per-packet sender and a
// batched, vectored-I/O sender.
package socket

import (
	"errors"

	"github.com/kgrime/linsncore/internal/wire"
)

// ErrUnsupportedPlatform is returned by sender constructors on
// platforms without AF_PACKET/SOCK_RAW support.
var ErrUnsupportedPlatform = errors.New("socket: AF_PACKET raw sockets are not supported on this platform")

// Sender transmits one full frame of pixels to dst as a sequence of
// Linsn packets. Implementations never block the caller beyond what
// the kernel send buffer absorbs, never retry, and log rather than
// return transient send failures: the next frame corrects for any
// loss, so Send itself does not return a per-packet error.
type Sender interface {
	Send(frame []wire.Pixel, dst wire.MAC) error
	// Close releases the underlying socket. Safe to call once.
	Close() error
}
