package pep

// context holds the running frequency table and its sum for one PPM
// context: either one of the 256 order-2 contexts (keyed by the low
// byte of the packed-symbol history) or the single order-0 fallback.
//
// A context is "virgin" iff sum == 0: it has never coded a symbol.
type context struct {
	freq [freqN]uint16
	sum  uint32
}

// newOrder0 builds the order-0 context, seeded uniformly so every
// symbol (including escape) starts with frequency 1.
func newOrder0() *context {
	c := &context{}
	for i := range c.freq {
		c.freq[i] = 1
	}
	c.sum = freqN
	return c
}

// newOrder2Contexts allocates the 256 order-2 contexts, all virgin.
// Per-call allocation (rather than the original's static buffer) is
// what makes Compress/Decompress safe for concurrent use on disjoint
// arguments.
func newOrder2Contexts() []context {
	return make([]context, contextsMax)
}

// cumFreq returns the cumulative (low, high) interval for symbol in
// ctx, and the context's current total.
func cumFreq(ctx *context, symbol uint32) prob {
	var p prob
	p.scale = ctx.sum
	for i := uint32(0); i < symbol; i++ {
		p.low += uint32(ctx.freq[i])
	}
	p.high = p.low + uint32(ctx.freq[symbol])
	return p
}

// symbolFromFreq walks ctx's frequency table to find the symbol whose
// cumulative interval contains targetFreq, as produced by the decoder
// from the coder's current code window.
func symbolFromFreq(ctx *context, targetFreq uint32) (symbol uint32, p prob) {
	var freq uint32
	var s uint32
	for s = 0; s <= freqEnd; s++ {
		freq += uint32(ctx.freq[s])
		if freq > targetFreq {
			break
		}
	}
	p.high = freq
	p.low = freq - uint32(ctx.freq[s])
	p.scale = ctx.sum
	return s, p
}

// rescaleState carries the single freqMax threshold shared across all
// rescale decisions within one encode/decode operation. It
// monotonically grows, so images with fewer colors (a larger
// (256 - paletteSize) / 2 delta) rescale less aggressively.
type rescaleState struct {
	freqMax     uint16
	paletteSize uint16
}

func newRescaleState(paletteSize uint8) *rescaleState {
	return &rescaleState{freqMax: freqMaxInit, paletteSize: uint16(paletteSize)}
}

// update increments ctx's frequency for symbol by 2 and rescales
// (halving every non-zero frequency, and growing freqMax by the
// palette-sensitive delta) once freqMax or PROB_MAX is reached.
func (r *rescaleState) update(ctx *context, symbol uint32) {
	ctx.freq[symbol] += 2
	ctx.sum += 2

	if ctx.freq[symbol] >= r.freqMax || ctx.sum >= probMaxValue {
		r.freqMax += (freqEnd - r.paletteSize) / 2
		ctx.sum = 0
		for i := range ctx.freq {
			f := ctx.freq[i]
			if f == 0 {
				continue
			}
			scaled := (f + 1) / 2
			ctx.freq[i] = scaled
			ctx.sum += uint32(scaled)
		}
	}
}

// encodeSymbol codes one packed-symbol byte against the order-2
// context ctxRef (falling back to order0 on a miss), per spec.md
// §4.4's "Encoding a symbol" algorithm.
func encodeSymbol(ac *acEncoder, ctxRef, order0 *context, r *rescaleState, symbol uint32) {
	if ctxRef.sum != 0 && ctxRef.freq[symbol] != 0 {
		ac.encode(cumFreq(ctxRef, symbol))
		r.update(ctxRef, symbol)
		ac.normalize()
		return
	}

	if ctxRef.sum != 0 {
		ac.encode(cumFreq(ctxRef, freqEnd))
		ac.normalize()
		ctxRef.freq[freqEnd]++
		ctxRef.sum++
	}

	ac.encode(cumFreq(order0, symbol))

	if ctxRef.sum == 0 {
		ctxRef.freq[freqEnd] = 1
		ctxRef.sum = 1
	}
	ctxRef.freq[symbol] = 1
	ctxRef.sum++
	r.update(order0, symbol)

	ac.normalize()
}

// decodeSymbol is the symmetric inverse of encodeSymbol.
func decodeSymbol(ac *acDecoder, ctxRef, order0 *context, r *rescaleState) uint32 {
	if ctxRef.sum != 0 {
		target := ac.currFreq(ctxRef.sum)
		symbol, p := symbolFromFreq(ctxRef, target)
		ac.update(p)

		if symbol != freqEnd {
			r.update(ctxRef, symbol)
			return symbol
		}

		ctxRef.freq[freqEnd]++
		ctxRef.sum++
	}

	target := ac.currFreq(order0.sum)
	symbol, p := symbolFromFreq(order0, target)
	ac.update(p)

	if ctxRef.sum == 0 {
		ctxRef.freq[freqEnd] = 1
		ctxRef.sum = 1
	}
	ctxRef.freq[symbol] = 1
	ctxRef.sum++
	r.update(order0, symbol)

	return symbol
}
