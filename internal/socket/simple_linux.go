//go:build linux

package socket

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/kgrime/linsncore/internal/wire"
	"golang.org/x/sys/unix"
)

// SimpleSender opens a link-layer socket and submits one Ethernet
// frame per packet through a per-packet send call. It is a latency-
// bound reference implementation, used when the batched vectored-send
// path is unavailable.
type SimpleSender struct {
	mu     sync.Mutex
	fd     int
	ifindex int
	srcMAC wire.MAC
	log    *log.Logger
	closed bool
}

// NewSimpleSender opens an AF_PACKET/SOCK_RAW socket bound to iface.
// Socket creation failure is fatal: the caller should abort the
// process on a non-nil error.
func NewSimpleSender(iface string, logger *log.Logger) (*SimpleSender, error) {
	if logger == nil {
		logger = log.Default()
	}

	ifindex, srcMAC, err := resolveInterface(iface)
	if err != nil {
		return nil, err
	}

	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW, int(htons(wire.EthernetTypeSender)))
	if err != nil {
		return nil, fmt.Errorf("socket: failed to open raw socket on %q: %w", iface, err)
	}

	if err := bindPacketSocket(fd, ifindex); err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("socket: failed to bind raw socket to %q: %w", iface, err)
	}

	return &SimpleSender{fd: fd, ifindex: ifindex, srcMAC: srcMAC, log: logger}, nil
}

// Send builds one Ethernet frame per chunk of frame and submits each
// with an individual sendto(2) call, in package-ID order.
func (s *SimpleSender) Send(frame []wire.Pixel, dst wire.MAC) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	chunks := wire.Chunks(frame, s.srcMAC)
	addr := &unix.SockaddrLinklayer{
		Protocol: htons(wire.EthernetTypeSender),
		Ifindex:  s.ifindex,
		Halen:    6,
	}
	copy(addr.Addr[:6], dst[:])

	for i, chunk := range chunks {
		ethFrame := wire.EthernetFrame(chunk.Header, chunk.Payload, s.srcMAC, dst, wire.EthernetTypeSender)
		if err := unix.Sendto(s.fd, ethFrame, 0, addr); err != nil {
			s.log.Error("transient send failure", "packet", i, "err", err)
		}
	}
	return nil
}

// Close releases the socket file descriptor. Safe to call once.
func (s *SimpleSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return unix.Close(s.fd)
}
