package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPacketCount_FullFrame(t *testing.T) {
	assert.Equal(t, 1093, PacketCount(FramePixels))
}

func TestChunks_FullFrame(t *testing.T) {
	frame := make([]Pixel, FramePixels)
	for i := range frame {
		frame[i] = Pixel{R: 0xFF, G: 0xFF, B: 0xFF}
	}
	mac := MAC{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}

	chunks := Chunks(frame, mac)

	assert.Len(t, chunks, 1093)

	assert.Equal(t, CmdAnnounce, chunks[0].Header.Command)
	assert.Equal(t, mac[:], chunks[0].Header.CommandData[16:22])
	assert.Equal(t, uint32(0), chunks[0].Header.PackageID)

	for i := 1; i < len(chunks); i++ {
		assert.Equal(t, CmdNone, chunks[i].Header.Command, "packet %d", i)
		assert.Equal(t, uint32(i), chunks[i].Header.PackageID, "packet %d", i)
	}

	// Every packet carries exactly PayloadSize bytes of payload.
	for i, c := range chunks {
		assert.Len(t, c.Payload, PayloadSize, "packet %d", i)
	}

	// Last chunk is short (128 pixels) and zero-padded.
	lastFullPixels := FramePixels - 1092*ChunkPixels
	assert.Equal(t, 128, lastFullPixels)
	last := chunks[1092].Payload
	for i := lastFullPixels * BytesPerPixel; i < PayloadSize; i++ {
		assert.Equal(t, byte(0), last[i], "padding byte %d", i)
	}
}

func TestChunkPayload_BRGOrder(t *testing.T) {
	pixels := []Pixel{{R: 10, G: 20, B: 30}, {R: 40, G: 50, B: 60}}

	payload := ChunkPayload(pixels)

	assert.Equal(t, byte(30), payload[0])
	assert.Equal(t, byte(10), payload[1])
	assert.Equal(t, byte(20), payload[2])
	assert.Equal(t, byte(60), payload[3])
	assert.Equal(t, byte(40), payload[4])
	assert.Equal(t, byte(50), payload[5])
}

func TestChunkPayload_PanicsOnOversizedChunk(t *testing.T) {
	pixels := make([]Pixel, ChunkPixels+1)
	assert.Panics(t, func() { ChunkPayload(pixels) })
}

func TestChunks_PanicsAboveMaxChunks(t *testing.T) {
	frame := make([]Pixel, (MaxChunks+1)*ChunkPixels)
	assert.Panics(t, func() { Chunks(frame, MAC{}) })
}

func TestEthernetFrame_Layout(t *testing.T) {
	h := EmptyHeader(3)
	var payload [PayloadSize]byte
	src := MAC{1, 1, 1, 1, 1, 1}
	dst := ZeroMAC

	frame := EthernetFrame(h, payload, src, dst, EthernetTypeSender)

	assert.Len(t, frame, EthernetHeaderLen+HeaderSize+PayloadSize)
	assert.Equal(t, dst[:], frame[0:6])
	assert.Equal(t, src[:], frame[6:12])
	assert.Equal(t, byte(0xAA), frame[12])
	assert.Equal(t, byte(0x55), frame[13])

	headerBytes, _ := h.MarshalBinary()
	assert.Equal(t, headerBytes, frame[14:14+HeaderSize])
}

func TestPacketCount_Invariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 4096).Draw(t, "pixelCount")

		count := PacketCount(n)

		if n == 0 {
			assert.Equal(t, 0, count)
			return
		}
		assert.GreaterOrEqual(t, count*ChunkPixels, n)
		assert.Less(t, (count-1)*ChunkPixels, n)
	})
}
