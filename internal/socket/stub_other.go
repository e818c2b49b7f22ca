//go:build !linux

package socket

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/kgrime/linsncore/internal/wire"
)

// SimpleSender is unavailable outside Linux: AF_PACKET raw sockets are
// a Linux-specific facility.
type SimpleSender struct{}

func NewSimpleSender(iface string, logger *log.Logger) (*SimpleSender, error) {
	return nil, ErrUnsupportedPlatform
}

func (s *SimpleSender) Send(frame []wire.Pixel, dst wire.MAC) error { return ErrUnsupportedPlatform }
func (s *SimpleSender) Close() error                                { return nil }

// BatchedSender is unavailable outside Linux.
type BatchedSender struct{}

func NewBatchedSender(iface string, frameBudget time.Duration, logger *log.Logger) (*BatchedSender, error) {
	return nil, ErrUnsupportedPlatform
}

func (s *BatchedSender) Send(frame []wire.Pixel, dst wire.MAC) error { return ErrUnsupportedPlatform }
func (s *BatchedSender) Close() error                                { return nil }
