//go:build linux

package socket

import (
	"fmt"
	"net"

	"github.com/kgrime/linsncore/internal/wire"
	"golang.org/x/sys/unix"
)

// resolveInterface looks up iface by name and returns its kernel index
// and MAC address (BroadcastMAC if the interface reports none).
func resolveInterface(iface string) (index int, mac wire.MAC, err error) {
	ni, err := net.InterfaceByName(iface)
	if err != nil {
		return 0, wire.MAC{}, fmt.Errorf("socket: interface %q not found: %w", iface, err)
	}
	if ni.Index == 0 {
		return 0, wire.MAC{}, fmt.Errorf("socket: if_nametoindex returned 0 for %q", iface)
	}

	mac = wire.BroadcastMAC
	if len(ni.HardwareAddr) == 6 {
		copy(mac[:], ni.HardwareAddr)
	}

	return ni.Index, mac, nil
}

// htons converts a 16-bit value from host to network byte order.
func htons(v uint16) uint16 {
	return (v<<8)&0xff00 | v>>8
}

func bindPacketSocket(fd, ifindex int) error {
	sa := &unix.SockaddrLinklayer{
		Protocol: htons(wire.EthernetTypeSender),
		Ifindex:  ifindex,
	}
	return unix.Bind(fd, sa)
}
