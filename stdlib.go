package pep

import "image"

// ImageFromStdlib flattens a standard library image.Image into the
// row-major RGBA pixel slice Compress expects. The result is always in
// FormatRGBA order.
func ImageFromStdlib(img image.Image) (pixels []uint32, width, height int) {
	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	pixels = make([]uint32, width*height)

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			pixels[i] = uint32(r>>8) | uint32(g>>8)<<8 | uint32(b>>8)<<16 | uint32(a>>8)<<24
			i++
		}
	}
	return pixels, width, height
}

// ToStdlib packs a row-major FormatRGBA pixel slice into an
// *image.NRGBA, suitable for png.Encode or further stdlib processing.
func ToStdlib(pixels []uint32, width, height int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, p := range pixels {
		off := i * 4
		out.Pix[off] = byte(p)
		out.Pix[off+1] = byte(p >> 8)
		out.Pix[off+2] = byte(p >> 16)
		out.Pix[off+3] = byte(p >> 24)
	}
	return out
}
