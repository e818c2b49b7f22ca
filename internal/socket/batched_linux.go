//go:build linux

package socket

import (
	"fmt"
	"sync"
	"time"
	"unsafe"

	"github.com/charmbracelet/log"
	"github.com/kgrime/linsncore/internal/wire"
	"golang.org/x/sys/unix"
)

// targetSendBuffer is the kernel send buffer size this sender asks for
// at construction. The OS may grant less; whatever it actually grants
// is accepted.
const targetSendBuffer = 1 << 30 // 1 GiB

const ethernetFrameLen = wire.EthernetHeaderLen + wire.HeaderSize + wire.PayloadSize

// BatchedSender opens an AF_PACKET/SOCK_RAW socket and submits an
// entire frame's packets in a single sendmmsg(2) syscall. The Ethernet
// frame bodies, iovecs and message headers live in scratch arrays sized
// once at construction and reused on every call; the chunk list and
// each packet's intermediate Ethernet frame are still allocated anew on
// every Send.
type BatchedSender struct {
	mu      sync.Mutex
	fd      int
	ifindex int
	srcMAC  wire.MAC
	log     *log.Logger
	closed  bool

	// Scratch space for one Send call, sized once at construction and
	// reused on every frame.
	frameBodies [wire.MaxChunks][ethernetFrameLen]byte
	iovecs      [wire.MaxChunks]unix.Iovec
	msgs        [wire.MaxChunks]unix.Mmsghdr
	rawAddr     unix.RawSockaddrLinklayer

	frameBudget time.Duration
}

// NewBatchedSender opens a raw packet socket bound to iface and raises
// its send buffer toward targetSendBuffer. frameBudget is the
// inter-frame time budget (e.g. 16.6ms at 60Hz); a Send call exceeding
// it is logged, not corrected. Socket creation failure is fatal.
func NewBatchedSender(iface string, frameBudget time.Duration, logger *log.Logger) (*BatchedSender, error) {
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

	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_SNDBUF, targetSendBuffer); err != nil {
		logger.Warn("could not raise send buffer to target, using whatever the kernel granted", "target", targetSendBuffer, "err", err)
	}

	s := &BatchedSender{
		fd:          fd,
		ifindex:     ifindex,
		srcMAC:      srcMAC,
		log:         logger,
		frameBudget: frameBudget,
	}
	s.rawAddr.Family = unix.AF_PACKET
	s.rawAddr.Protocol = htons(wire.EthernetTypeSender)
	s.rawAddr.Ifindex = int32(ifindex)
	s.rawAddr.Halen = 6

	for i := range s.iovecs {
		s.iovecs[i].Base = &s.frameBodies[i][0]
		s.iovecs[i].SetLen(ethernetFrameLen)

		s.msgs[i].Hdr.Name = (*byte)(unsafe.Pointer(&s.rawAddr))
		s.msgs[i].Hdr.Namelen = unix.SizeofSockaddrLinklayer
		s.msgs[i].Hdr.Iov = &s.iovecs[i]
		s.msgs[i].Hdr.SetIovlen(1)
	}

	return s, nil
}

// Send builds up to MaxChunks Ethernet frames for frame's chunks into
// the sender's scratch arrays and submits them with a single
// sendmmsg(2) call. Packets are submitted in package-ID order. A short
// count (not all packets queued) is logged as a transient loss, not
// retried: the next frame overwrites the panel regardless.
func (s *BatchedSender) Send(frame []wire.Pixel, dst wire.MAC) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()

	chunks := wire.Chunks(frame, s.srcMAC)
	copy(s.rawAddr.Addr[:6], dst[:])

	for i, chunk := range chunks {
		eth := wire.EthernetFrame(chunk.Header, chunk.Payload, s.srcMAC, dst, wire.EthernetTypeSender)
		copy(s.frameBodies[i][:], eth)
	}

	n, err := unix.Sendmmsg(s.fd, s.msgs[:len(chunks)], 0)
	if err != nil {
		s.log.Error("transient send failure", "err", err)
	} else if n != len(chunks) {
		s.log.Warn("short send, frame dropped", "queued", n, "expected", len(chunks))
	}

	if elapsed := time.Since(start); s.frameBudget > 0 && elapsed > s.frameBudget {
		s.log.Warn("frame send exceeded inter-frame budget", "elapsed", elapsed, "budget", s.frameBudget)
	}

	return nil
}

// Close releases the socket file descriptor. Safe to call once.
func (s *BatchedSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return unix.Close(s.fd)
}
