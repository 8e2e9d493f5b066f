package pep

// Compress builds a palettized, PPM/arithmetic-coded Image from raw
// pixels in in-format row-major order. It never returns an error: a
// nil buffer or zero area yields a zero-value Image, per spec.md §7.
func Compress(pixels []uint32, width, height int, in Format, bits ChannelBits) Image {
	area := width * height
	if pixels == nil || area == 0 || width <= 0 || height <= 0 {
		return Image{}
	}

	var img Image
	img.Width = uint16(width)
	img.Height = uint16(height)
	img.Format = in
	img.ChannelBits = bits
	img.Palette, img.PaletteSize = buildPalette(pixels[:area])

	bitsPerIndex, indicesPerByte := indexLayout(int(img.PaletteSize))

	order0 := newOrder0()
	contexts := newOrder2Contexts()
	rescale := newRescaleState(img.PaletteSize)

	ac := newAcEncoder(area*4*2)
	var ctxID uint64

	groups := packedSymbolCount(area, indicesPerByte)
	pos := 0
	for g := 0; g < groups; g++ {
		var symbol uint32
		for slot := uint8(0); slot < indicesPerByte && pos < area; slot++ {
			idx := paletteIndex(img.Palette, img.PaletteSize, pixels[pos])
			symbol |= uint32(idx) << (slot * bitsPerIndex)
			pos++
		}

		ctxRef := &contexts[ctxID%contextsMax]
		encodeSymbol(ac, ctxRef, order0, rescale, symbol)
		ctxID = (ctxID << 8) | uint64(symbol)
	}

	ac.flush()
	img.Bytes = ac.out
	return img
}
