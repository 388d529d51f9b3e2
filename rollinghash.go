package godelta

// rollingHash maintains the Adler-style (a, b) window sum used by Fossil's
// delta format: a is the sum of the bytes currently in the window, b is
// the sum of those bytes each weighted by their distance from the front
// of the window. Both accumulators wrap modulo 2^16 via plain uint16
// arithmetic rather than explicit masking.
//
// It is not a cryptographic hash: it exists to give the encoder an O(1)
// sliding fingerprint to probe the source index with.
type rollingHash struct {
	window []byte // ring buffer of the W most recent bytes, read order
	pos    int    // index of the oldest byte in window
	w      int    // window size W
	a, b   uint16
}

// newRollingHash primes a rolling hash over z, which must hold exactly w
// bytes. w must be a power of two (enforced by the caller).
func newRollingHash(w int, z []byte) *rollingHash {
	h := &rollingHash{window: make([]byte, w), w: w}
	h.init(z)
	return h
}

// init (re)primes the hash over z[0:w), discarding any prior state.
func (h *rollingHash) init(z []byte) {
	copy(h.window, z[:h.w])
	h.pos = 0
	var a, b uint16
	for i := 0; i < h.w; i++ {
		c := uint16(z[i])
		a += c
		b += uint16(h.w-i) * c
	}
	h.a, h.b = a, b
}

// next slides the window forward by one byte, admitting c and evicting the
// oldest byte currently held.
func (h *rollingHash) next(c byte) {
	old := uint16(h.window[h.pos])
	h.window[h.pos] = c
	h.pos = (h.pos + 1) % h.w
	h.a = h.a - old + uint16(c)
	h.b = h.b - uint16(h.w)*old + h.a
}

// value returns the composite 32-bit hash for the current window.
func (h *rollingHash) value() uint32 {
	return uint32(h.b)<<16 | uint32(h.a)
}

// oneShotHash returns the value value() would report for a rollingHash
// init'd on z[0:w), without allocating a rollingHash.
func oneShotHash(w int, z []byte) uint32 {
	var a, b uint16
	for i := 0; i < w; i++ {
		c := uint16(z[i])
		a += c
		b += uint16(w-i) * c
	}
	return uint32(b)<<16 | uint32(a)
}
