package surface

// RGBA is a non-premultiplied 8-bit-per-channel color, the input type
// to SetPixel and the pixel type of an Image blitted by DrawImage.
type RGBA struct {
	R, G, B, A byte
}

// Image is a rectangular, row-major source of RGBA pixels. It is the
// caller's job to populate one; this package does not decode image
// files (PNG decoding and sprite loading from the filesystem are
// handled, if at all, outside the core).
type Image struct {
	Width, Height int
	Pixels        []RGBA // row-major, len == Width*Height
}

// At returns the pixel at (x, y). It panics if out of bounds, since an
// Image is always constructed with a matching Pixels slice.
func (img Image) At(x, y int) RGBA {
	return img.Pixels[y*img.Width+x]
}

// resizeNearest rescales img to newWidth x newHeight using
// nearest-neighbour sampling.
func resizeNearest(img Image, newWidth, newHeight int) Image {
	out := Image{Width: newWidth, Height: newHeight, Pixels: make([]RGBA, newWidth*newHeight)}
	if img.Width == 0 || img.Height == 0 {
		return out
	}
	for y := 0; y < newHeight; y++ {
		srcY := y * img.Height / newHeight
		for x := 0; x < newWidth; x++ {
			srcX := x * img.Width / newWidth
			out.Pixels[y*newWidth+x] = img.At(srcX, srcY)
		}
	}
	return out
}

// flipHorizontal mirrors img left-to-right.
func flipHorizontal(img Image) Image {
	out := Image{Width: img.Width, Height: img.Height, Pixels: make([]RGBA, len(img.Pixels))}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			out.Pixels[y*img.Width+x] = img.At(img.Width-1-x, y)
		}
	}
	return out
}

// flipVertical mirrors img top-to-bottom.
func flipVertical(img Image) Image {
	out := Image{Width: img.Width, Height: img.Height, Pixels: make([]RGBA, len(img.Pixels))}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			out.Pixels[y*img.Width+x] = img.At(x, img.Height-1-y)
		}
	}
	return out
}
