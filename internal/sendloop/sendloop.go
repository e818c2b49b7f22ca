// Package sendloop drives the steady-state transmit loop: swap in a
// freshly published frame when one is ready, otherwise keep
// retransmitting whatever is already active, and hand the active
// buffer to a socket.Sender every iteration.
package sendloop

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kgrime/linsncore/internal/exchange"
	"github.com/kgrime/linsncore/internal/socket"
	"github.com/kgrime/linsncore/internal/wire"
)

// Loop repeatedly transmits the active frame from an Exchange through
// a socket.Sender. It never waits for the producer to publish: if no
// new frame has been published since the last iteration, it retransmits
// the frame it already has. Fetching the active buffer does wait for a
// producer write already in progress, since Exchange holds its lock
// from BeginWrite to Publish.
type Loop struct {
	exchange *exchange.Exchange
	sender   socket.Sender
	dst      wire.MAC
	logger   *log.Logger

	// budget is the target duration of one send iteration, used only
	// for the overrun diagnostic below; the loop itself never sleeps
	// or throttles to it.
	budget time.Duration

	sentFrames atomic.Uint64
}

// New builds a Loop. logger may be nil, in which case log.Default()
// is used. budget of zero disables the frame-budget-overrun log.
func New(ex *exchange.Exchange, sender socket.Sender, dst wire.MAC, budget time.Duration, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.Default()
	}
	return &Loop{
		exchange: ex,
		sender:   sender,
		dst:      dst,
		logger:   logger,
		budget:   budget,
	}
}

// Run transmits frames until ctx is cancelled. Each iteration: swap in
// a newly published frame if one is ready, then send the active
// buffer. Send errors are logged, not returned: a lost or malformed
// packet is corrected by the next frame, matching the one-shot,
// no-retry transmission model the frame format is designed around.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		start := time.Now()

		l.exchange.Swap()
		buf := l.exchange.Active()

		if err := l.sender.Send(buf.Pixels(), l.dst); err != nil {
			l.logger.Error("frame send failed", "err", err)
			continue
		}

		l.sentFrames.Add(1)

		if l.budget > 0 {
			if elapsed := time.Since(start); elapsed > l.budget {
				l.logger.Warn("send loop exceeded frame budget",
					"budget", l.budget, "elapsed", elapsed,
					"dropped_frames", l.exchange.DroppedFrames())
			}
		}
	}
}

// SentFrames returns the number of frames successfully handed to the
// sender, for diagnostics.
func (l *Loop) SentFrames() uint64 {
	return l.sentFrames.Load()
}
