package godelta

import "encoding/binary"

// checksum computes the delta trailer's 32-bit corruption check: the
// wrapping sum of target read as successive big-endian 4-byte words, with
// the final partial word zero-padded. This is a detector, not a MAC, and
// must never be treated as cryptographic integrity.
func checksum(target []byte) uint32 {
	var sum uint32
	var tail [4]byte
	i := 0
	for ; i+4 <= len(target); i += 4 {
		sum += binary.BigEndian.Uint32(target[i : i+4])
	}
	if rem := len(target) - i; rem > 0 {
		tail = [4]byte{}
		copy(tail[:], target[i:])
		sum += binary.BigEndian.Uint32(tail[:])
	}
	return sum
}
