package pep

// Reformat converts a packed 32-bit pixel between the four supported
// channel orders. It is a pure byte-permutation with no rounding, and
// is intentionally outside the core codec scope (spec.md §1): pep can
// store pixels in one order and hand them back in another.
func Reformat(color uint32, in, out Format) uint32 {
	if in == out {
		return color
	}

	switch {
	case in <= FormatBGRA && out <= FormatBGRA:
		// RGBA <-> BGRA: swap the R and B bytes.
		return (color & 0xff00ff00) | ((color & 0x000000ff) << 16) | ((color & 0x00ff0000) >> 16)

	case in >= FormatABGR && out >= FormatABGR:
		// ABGR <-> ARGB: swap the R and B bytes.
		return (color & 0x00ff00ff) | ((color & 0x0000ff00) << 16) | ((color & 0xff000000) >> 16)

	case (in ^ out) == 2:
		// Full byte reversal: RGBA <-> ABGR or BGRA <-> ARGB.
		return ((color & 0x000000ff) << 24) | ((color & 0x0000ff00) << 8) |
			((color & 0x00ff0000) >> 8) | ((color & 0xff000000) >> 24)

	case in < out:
		// RGBA/BGRA -> ABGR/ARGB.
		return ((color & 0xff000000) >> 24) | ((color & 0x00ffffff) << 8)

	default:
		// ABGR/ARGB -> RGBA/BGRA.
		return ((color & 0x000000ff) << 24) | ((color & 0xffffff00) >> 8)
	}
}

// alphaByteIndex returns which of the pixel's four bytes (0 = least
// significant) holds the alpha channel for format.
func alphaByteIndex(format Format) uint {
	if format <= FormatBGRA {
		return 3
	}
	return 0
}

// zeroAlpha clears the alpha byte of color, for the "first palette
// entry is transparent" option (spec.md §6.1).
func zeroAlpha(color uint32, format Format) uint32 {
	if format <= FormatBGRA {
		return color & 0x00ffffff
	}
	return color & 0xffffff00
}

// PreMultiply applies pep's rounding rule c' = (c*a*257+32896)>>16 to
// a pixel in the given format. It is a direct, byte-exact port of
// original_source/pep.h's _pep_pre_multiply, including which three of
// the four bytes it scales for each format — that choice is the
// authoritative, specified behavior (spec.md §6.1), not a bug to fix.
func PreMultiply(color uint32, format Format) uint32 {
	b := [4]byte{
		byte(color),
		byte(color >> 8),
		byte(color >> 16),
		byte(color >> 24),
	}

	if format <= FormatBGRA {
		scaledA := uint32(b[3]) * 257
		b[1] = byte((uint32(b[1])*scaledA + 32896) >> 16)
		b[2] = byte((uint32(b[2])*scaledA + 32896) >> 16)
		b[3] = byte((uint32(b[3])*scaledA + 32896) >> 16)
	} else {
		scaledA := uint32(b[0]) * 257
		b[0] = byte((uint32(b[0])*scaledA + 32896) >> 16)
		b[1] = byte((uint32(b[1])*scaledA + 32896) >> 16)
		b[2] = byte((uint32(b[2])*scaledA + 32896) >> 16)
	}

	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
