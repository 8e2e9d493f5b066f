package pep

// Decompress reconstructs pixels from img in outFormat. transparentFirst
// zeroes the alpha of the first palette entry before decoding (so every
// pixel using palette id 0 comes out transparent); preMultiply applies
// the rounding rule from spec.md §6.1 to every output pixel. Decompress
// never returns an error: a malformed or empty Image yields nil pixels.
func (img Image) Decompress(outFormat Format, transparentFirst, preMultiply bool) []uint32 {
	if len(img.Bytes) == 0 || img.Width == 0 || img.Height == 0 {
		return nil
	}

	area := int(img.Width) * int(img.Height)
	bitsPerIndex, indicesPerByte := indexLayout(int(img.PaletteSize))
	indexMask := uint32(1<<bitsPerIndex) - 1

	palette := img.Palette
	if transparentFirst {
		palette[0] = zeroAlpha(palette[0], img.Format)
	}

	order0 := newOrder0()
	contexts := newOrder2Contexts()
	rescale := newRescaleState(img.PaletteSize)

	ac := newAcDecoder(img.Bytes)
	var ctxID uint64

	out := make([]uint32, area)
	pos := 0

	groups := packedSymbolCount(area, indicesPerByte)
	for g := 0; g < groups; g++ {
		ctxRef := &contexts[ctxID%contextsMax]
		symbol := decodeSymbol(ac, ctxRef, order0, rescale)

		for slot := uint8(0); slot < indicesPerByte && pos < area; slot++ {
			idx := (symbol >> (slot * bitsPerIndex)) & indexMask
			pixel := Reformat(palette[idx], img.Format, outFormat)
			if preMultiply {
				pixel = PreMultiply(pixel, outFormat)
			}
			out[pos] = pixel
			pos++
		}

		ctxID = (ctxID << 8) | uint64(symbol)
	}

	return out
}
