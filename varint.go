package godelta

import "encoding/binary"

// Varint tag bytes. Values below 0xfd are encoded inline as a single byte;
// 0xfd/0xfe/0xff introduce a fixed-width little-endian follow-on of 2, 4 or
// 8 bytes respectively. Values in [0, 2^32) use the 1/3/5-byte forms; only
// larger values (a length or offset of 4 GiB or more) use the 9-byte form.
const (
	varintTag16 = 0xfd
	varintTag32 = 0xfe
	varintTag64 = 0xff

	varintInlineMax = 0xfc
)

// varintSize returns the number of bytes putUvarint would write for v.
func varintSize(v uint64) int {
	switch {
	case v <= varintInlineMax:
		return 1
	case v <= 0xffff:
		return 3
	case v <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// putUvarint writes v into dst in the self-delimiting tagged form and
// returns the number of bytes written. dst must have at least
// varintSize(v) bytes of capacity.
func putUvarint(dst []byte, v uint64) int {
	switch {
	case v <= varintInlineMax:
		dst[0] = byte(v)
		return 1
	case v <= 0xffff:
		dst[0] = varintTag16
		binary.LittleEndian.PutUint16(dst[1:], uint16(v))
		return 3
	case v <= 0xffffffff:
		dst[0] = varintTag32
		binary.LittleEndian.PutUint32(dst[1:], uint32(v))
		return 5
	default:
		dst[0] = varintTag64
		binary.LittleEndian.PutUint64(dst[1:], v)
		return 9
	}
}

// appendUvarint appends the tagged encoding of v to dst and returns the
// extended slice.
func appendUvarint(dst []byte, v uint64) []byte {
	var buf [9]byte
	n := putUvarint(buf[:], v)
	return append(dst, buf[:n]...)
}

// uvarint decodes a tagged varint from the front of src, returning the
// value and the number of bytes consumed. It returns (0, 0) if src does
// not hold a complete encoding (too short for the tag's follow-on).
func uvarint(src []byte) (uint64, int) {
	if len(src) == 0 {
		return 0, 0
	}
	tag := src[0]
	switch tag {
	case varintTag16:
		if len(src) < 3 {
			return 0, 0
		}
		return uint64(binary.LittleEndian.Uint16(src[1:3])), 3
	case varintTag32:
		if len(src) < 5 {
			return 0, 0
		}
		return uint64(binary.LittleEndian.Uint32(src[1:5])), 5
	case varintTag64:
		if len(src) < 9 {
			return 0, 0
		}
		return binary.LittleEndian.Uint64(src[1:9]), 9
	default:
		return uint64(tag), 1
	}
}
