package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixelBytes_Orderings(t *testing.T) {
	p := Pixel{R: 1, G: 2, B: 3}

	assert.Equal(t, [3]byte{1, 2, 3}, PixelBytes(RGB, p))
	assert.Equal(t, [3]byte{2, 3, 1}, PixelBytes(GBR, p))
	assert.Equal(t, [3]byte{3, 1, 2}, PixelBytes(BRG, p))
	assert.Equal(t, [3]byte{3, 2, 1}, PixelBytes(BGR, p))
}
