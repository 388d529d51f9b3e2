package godelta

import (
	"bytes"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic is the four-byte frame magic every Zstandard frame begins
// with. apply sniffs exactly these bytes to decide whether to
// decompress before handing the buffer to the decoder.
var zstdMagic = [4]byte{0x28, 0xb5, 0x2f, 0xfd}

// hasZstdMagic reports whether buf begins with the Zstandard frame magic.
func hasZstdMagic(buf []byte) bool {
	return len(buf) >= 4 && bytes.Equal(buf[:4], zstdMagic[:])
}

// compressDelta wraps a finished command stream (header, body, trailer)
// in a single Zstd frame at the fastest encoder level (the library's
// equivalent of Zstd level 1).
func compressDelta(body []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(body, make([]byte, 0, len(body))), nil
}

// decompressDelta reverses compressDelta. It bounds the decoder's working
// memory so a corrupt frame claiming an enormous content size fails fast
// as ErrDecompressionFailure rather than attempting to satisfy it.
func decompressDelta(buf []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecoderMemory))
	if err != nil {
		return nil, ErrDecompressionFailure
	}
	defer dec.Close()
	out, err := dec.DecodeAll(buf, nil)
	if err != nil {
		return nil, ErrDecompressionFailure
	}
	return out, nil
}

// maxDecoderMemory bounds the zstd window/content size the decoder will
// attempt to satisfy before giving up. Deltas are bounded by buffer sizes
// callers already hold in memory, so a frame demanding more than this is
// necessarily corrupt or adversarial.
const maxDecoderMemory = 1 << 32
