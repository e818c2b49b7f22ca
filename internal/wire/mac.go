package wire

import (
	"fmt"
)

// MAC is a 6-byte Ethernet hardware address.
type MAC [6]byte

// BroadcastMAC is ff:ff:ff:ff:ff:ff, the default source address used
// when the host NIC's MAC cannot be determined.
var BroadcastMAC = MAC{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

// ZeroMAC is the all-zero address Linsn controllers accept as a
// destination.
var ZeroMAC = MAC{}

func (m MAC) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", m[0], m[1], m[2], m[3], m[4], m[5])
}

// ParseMAC parses a colon- or hyphen-separated hex MAC address, e.g.
// "aa:bb:cc:dd:ee:ff" or "aa-bb-cc-dd-ee-ff".
func ParseMAC(s string) (MAC, error) {
	var m MAC
	var parsed [6]int
	n, err := fmt.Sscanf(normalizeMACSeparators(s), "%x:%x:%x:%x:%x:%x",
		&parsed[0], &parsed[1], &parsed[2], &parsed[3], &parsed[4], &parsed[5])
	if err != nil || n != 6 {
		return m, fmt.Errorf("wire: invalid MAC address %q", s)
	}
	for i, v := range parsed {
		if v < 0 || v > 0xff {
			return MAC{}, fmt.Errorf("wire: invalid MAC address %q", s)
		}
		m[i] = byte(v)
	}
	return m, nil
}

func normalizeMACSeparators(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c == '-' {
			out[i] = ':'
		}
	}
	return string(out)
}
