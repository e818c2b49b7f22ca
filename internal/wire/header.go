// Package wire implements the Linsn LED-controller binary wire format:
// the 32-byte packet header, its checksum, pixel channel reordering, and
// the Ethernet II framing used to put a chunk of pixels on the wire.
package wire

import "encoding/binary"

// HeaderSize is the fixed size, in bytes, of a Linsn packet header.
const HeaderSize = 32

// Command identifies the purpose of a Linsn packet header.
type Command byte

const (
	// CmdNone marks an ordinary pixel-data chunk.
	CmdNone Command = 0x00
	// CmdConfig is defined for wire compatibility but never issued by
	// this sender.
	CmdConfig Command = 0x61
	// CmdAnnounce marks the first packet of a frame and carries the
	// sender's MAC address in CommandData.
	CmdAnnounce Command = 0x96
)

// announceSignature is the fixed, undocumented prefix of an announce
// packet's CommandData, verbatim from the Linsn wire protocol. The
// trailing 6 bytes are filled in with the sender's MAC address.
var announceSignature = [16]byte{
	0x00, 0x00, 0x00, 0x85, 0x1f, 0xff, 0xff, 0xff,
	0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// Header is the 32-byte header prefixing every Linsn sender packet.
type Header struct {
	PackageID   uint32
	Unknown     [4]byte
	Command     Command
	CommandData [22]byte
	Checksum    byte
}

// checksum computes the header checksum: the low byte of the two's
// complement of the byte sum of Unknown, Command and CommandData. The
// sum is accumulated in a 32-bit accumulator to avoid any risk of
// overflow before the final mask.
func checksum(unknown [4]byte, cmd Command, cmdData [22]byte) byte {
	var sum uint32
	for _, b := range unknown {
		sum += uint32(b)
	}
	sum += uint32(cmd)
	for _, b := range cmdData {
		sum += uint32(b)
	}
	return byte((0x100 - (sum & 0xFF)) & 0xFF)
}

// NewHeader builds a header with Unknown fixed at zero and a freshly
// computed checksum over cmd and cmdData.
func NewHeader(packageID uint32, cmd Command, cmdData [22]byte) Header {
	var unknown [4]byte
	return Header{
		PackageID:   packageID,
		Unknown:     unknown,
		Command:     cmd,
		CommandData: cmdData,
		Checksum:    checksum(unknown, cmd, cmdData),
	}
}

// EmptyHeader builds the header carried by every non-first packet of a
// frame: CmdNone, all-zero CommandData, checksum zero.
func EmptyHeader(packageID uint32) Header {
	return NewHeader(packageID, CmdNone, [22]byte{})
}

// AnnounceHeader builds the header carried by the first packet of a
// frame: CmdAnnounce, with the fixed announce signature followed by
// srcMAC in CommandData.
func AnnounceHeader(packageID uint32, srcMAC MAC) Header {
	var cmdData [22]byte
	copy(cmdData[:16], announceSignature[:])
	copy(cmdData[16:22], srcMAC[:])
	return NewHeader(packageID, CmdAnnounce, cmdData)
}

// ChunkStartHeader is AnnounceHeader with PackageID fixed at zero, the
// header every frame's first packet carries.
func ChunkStartHeader(srcMAC MAC) Header {
	return AnnounceHeader(0, srcMAC)
}

// MarshalBinary serializes the header to its 32-byte little-endian wire
// form.
func (h Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], h.PackageID)
	copy(buf[4:8], h.Unknown[:])
	buf[8] = byte(h.Command)
	copy(buf[9:31], h.CommandData[:])
	buf[31] = h.Checksum
	return buf, nil
}

// UnmarshalBinary parses a 32-byte Linsn header. It does not recompute
// or validate the checksum; callers that need to verify wire integrity
// should compare against checksum() themselves.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) != HeaderSize {
		return errInvalidHeaderLength(len(data))
	}
	h.PackageID = binary.LittleEndian.Uint32(data[0:4])
	copy(h.Unknown[:], data[4:8])
	h.Command = Command(data[8])
	copy(h.CommandData[:], data[9:31])
	h.Checksum = data[31]
	return nil
}
