package pep

// prob is a cumulative-frequency interval (cum_low, cum_high) out of a
// context's total (scale), as returned by the PPM model and consumed
// by the arithmetic coder.
type prob struct {
	low, high, scale uint32
}

// acEncoder is a 32-bit renormalizing range coder. All arithmetic is
// on unsigned 32-bit registers, matching original_source/pep.h's
// _pep_ac_encode bit for bit.
type acEncoder struct {
	out   []byte
	low   uint32
	rng   uint32
}

func newAcEncoder(capacity int) *acEncoder {
	return &acEncoder{
		out: make([]byte, 0, capacity),
		rng: 0xFFFFFFFF,
	}
}

// encode scales the current range by the symbol's cumulative interval.
func (e *acEncoder) encode(p prob) {
	e.rng /= p.scale
	e.low += p.low * e.rng
	e.rng *= p.high - p.low
}

// normalize renormalizes low/range, emitting one byte per shift.
func (e *acEncoder) normalize() {
	for {
		if (e.low ^ (e.low + e.rng)) >= codeMaxValue {
			if e.rng >= probMaxValue {
				break
			}
			e.rng = probMaxValue - (e.low & (probMaxValue - 1))
		}
		e.out = append(e.out, byte(e.low>>codeBits))
		e.low <<= codeBitsInv
		e.rng <<= codeBitsInv
	}
}

// flush emits the final four bytes of low, after the last symbol.
func (e *acEncoder) flush() {
	for i := 0; i < 4; i++ {
		e.out = append(e.out, byte(e.low>>codeBits))
		e.low <<= codeBitsInv
	}
}

// acDecoder is the symmetric inverse of acEncoder.
type acDecoder struct {
	in   []byte
	pos  int
	low  uint32
	rng  uint32
	code uint32
}

func newAcDecoder(in []byte) *acDecoder {
	d := &acDecoder{in: in, rng: 0xFFFFFFFF}
	for i := 0; i < 4; i++ {
		d.code = (d.code << 8) | uint32(d.nextByte())
	}
	return d
}

// nextByte returns the next input byte, or zero past the end of the
// buffer. Reading past the end is defined behavior (spec.md §7): it
// lets the decoder terminate after exactly the intended number of
// packed symbols regardless of stream length.
func (d *acDecoder) nextByte() byte {
	if d.pos >= len(d.in) {
		return 0
	}
	b := d.in[d.pos]
	d.pos++
	return b
}

// currFreq queries the target cumulative frequency for the given
// context total, by reverse-transforming low/code/range.
func (d *acDecoder) currFreq(scale uint32) uint32 {
	d.rng /= scale
	return (d.code - d.low) / d.rng
}

// update advances low/range/code once the model has resolved a
// symbol's (low, high) interval, then renormalizes.
func (d *acDecoder) update(p prob) {
	d.low += d.rng * p.low
	d.rng *= p.high - p.low

	for {
		if (d.low ^ (d.low + d.rng)) >= codeMaxValue {
			if d.rng < probMaxValue {
				d.rng = probMaxValue - (d.low & (probMaxValue - 1))
			} else {
				break
			}
		}
		d.code = (d.code << 8) | uint32(d.nextByte())
		d.rng <<= 8
		d.low <<= 8
	}
}
