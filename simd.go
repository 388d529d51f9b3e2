package godelta

import (
	"bytes"
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// simdWide reports whether this process can assume the runtime's bulk
// byte-equality routine is backed by 128-bit-wide vector instructions.
// Both SSE2 and ASIMD guarantee the underlying hardware moves 16-byte
// lanes natively, including unaligned ones, so bytes.Equal's generated
// code (which the Go compiler already lowers to vector instructions on
// these architectures) can be trusted to compare a full word without a
// manual alignment check. Where neither holds, forwardExtend falls back
// to an 8-byte and then a scalar loop, so a mismatch is still pinpointed
// exactly without hand-written assembly.
var simdWide = cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD

// forwardExtend returns the number of leading bytes that match between a
// and b, up to min(len(a), len(b)). It walks in 16-byte words when
// simdWide, then 8-byte words, then a scalar tail — always pinpointing
// the exact index of the first mismatch rather than just detecting that
// one exists.
func forwardExtend(a, b []byte) int {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	n := 0
	if simdWide {
		for n+16 <= limit && bytes.Equal(a[n:n+16], b[n:n+16]) {
			n += 16
		}
	}
	for n+8 <= limit {
		wa := binary.LittleEndian.Uint64(a[n:])
		wb := binary.LittleEndian.Uint64(b[n:])
		if wa != wb {
			return n + bits.TrailingZeros64(wa^wb)/8
		}
		n += 8
	}
	for n < limit && a[n] == b[n] {
		n++
	}
	return n
}

// backwardExtend returns the number of trailing bytes that match between
// a and b when compared from their respective ends, up to max. a and b
// are the full slices preceding the verified window on the source and
// target sides; the caller has already bounded max by both iSrc and the
// scan offset i (encoder.go), so no further bounds checking happens here.
func backwardExtend(a, b []byte, max int) int {
	n := 0
	for n < max && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}
