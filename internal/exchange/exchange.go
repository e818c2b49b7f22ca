// Package exchange implements the double-buffered hand-off between a
// frame producer and the send loop consuming completed frames: two
// owned buffers and an atomic flip flag, so the consumer never tears a
// frame and the producer never blocks on the consumer's pace.
package exchange

import (
	"sync"
	"sync/atomic"

	"github.com/kgrime/linsncore/internal/surface"
)

// Exchange holds the two buffers of a double-buffered frame hand-off.
// Only the producer writes to the buffer returned by BeginWrite; only
// the consumer reads the buffer returned by Active. Swap exchanges
// ownership of the two buffer pointers; it never copies pixel data.
type Exchange struct {
	// mu is held by the producer for the duration of one write (from
	// BeginWrite to Publish) and briefly by the consumer during Swap
	// and Active. This is what makes the safety invariant hold: a
	// swap can never hand the consumer a buffer the producer is still
	// mutating, since the two can't be inside their critical sections
	// at once. The producer's own critical section is uncontended in
	// the common case (Swap and Active are two-pointer-exchange
	// operations), so this does not throttle the producer to the
	// consumer's pace.
	mu       sync.Mutex
	active   *surface.Buffer
	inactive *surface.Buffer

	flip atomic.Bool

	// droppedFrames counts producer writes that completed while the
	// prior publish had not yet been picked up by the consumer: a
	// diagnostic counter, not a correctness signal.
	droppedFrames atomic.Uint64
}

// New builds an Exchange with two freshly allocated buffers.
func New() *Exchange {
	return &Exchange{
		active:   surface.NewBuffer(),
		inactive: surface.NewBuffer(),
	}
}

// BeginWrite is called once by the producer at the start of a frame.
// It returns the buffer to render into and must be paired with a
// later call to Publish; no other Exchange method may be called by
// the producer in between.
func (e *Exchange) BeginWrite() *surface.Buffer {
	e.mu.Lock()
	return e.inactive
}

// Publish marks the buffer obtained from BeginWrite as ready for the
// consumer and releases it for Swap to observe. If the previous
// publish was never picked up (the flip flag was already set), that
// earlier, now-overwritten frame is counted as dropped.
func (e *Exchange) Publish() {
	if e.flip.Swap(true) {
		e.droppedFrames.Add(1)
	}
	e.mu.Unlock()
}

// Swap is called by the consumer. If a new frame has been published,
// it exchanges the active and inactive buffer pointers and clears the
// flip flag, returning true. Otherwise it returns false and the
// consumer should keep transmitting the current active buffer.
func (e *Exchange) Swap() bool {
	if !e.flip.Load() {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.flip.Load() {
		return false
	}

	e.active, e.inactive = e.inactive, e.active
	e.flip.Store(false)
	return true
}

// Active returns the buffer the consumer should transmit from.
func (e *Exchange) Active() *surface.Buffer {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// DroppedFrames returns the number of producer frames that were
// overwritten before the consumer picked them up.
func (e *Exchange) DroppedFrames() uint64 {
	return e.droppedFrames.Load()
}
