package pep

// buildPalette scans pixels in row-major order, assigning a palette id
// to each unique color, capped at 255 entries (a color is appended only
// while size+1 < 256). Identical consecutive pixels are skipped cheaply
// without a palette lookup. Colors beyond the 255th unique value are a
// documented, lossy collapse: they are left unmatched here, and
// paletteIndex below maps them to id 0.
func buildPalette(pixels []uint32) (palette [256]uint32, size uint8) {
	var last uint32
	for i, p := range pixels {
		if i > 0 && p == last {
			last = p
			continue
		}
		last = p

		found := false
		for n := 0; n < int(size); n++ {
			if palette[n] == p {
				found = true
				break
			}
		}
		if !found && int(size)+1 < 256 {
			palette[size] = p
			size++
		}
	}
	return palette, size
}

// paletteIndex linear-searches palette[:size] for pixel, returning its
// id. If pixel isn't present (palette overflow at encode time, see
// buildPalette), it silently collapses to id 0 — the documented,
// non-error behavior from spec.md §4.2/§7.
func paletteIndex(palette [256]uint32, size uint8, pixel uint32) uint8 {
	for i := 0; i < int(size); i++ {
		if palette[i] == pixel {
			return uint8(i)
		}
	}
	return 0
}

// packedSymbolCount is the number of packed-symbol bytes the index
// packer produces (and the PPM coder must code) for an image of the
// given pixel area. Per the tail-group policy in SPEC_FULL.md §4, this
// is a ceiling division so the decoder reads back every symbol the
// encoder wrote, including a final partial group.
func packedSymbolCount(area int, indicesPerByte uint8) int {
	ipb := int(indicesPerByte)
	return (area + ipb - 1) / ipb
}
