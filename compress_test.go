package godelta

import (
	"bytes"
	"errors"
	"testing"
)

func TestHasZstdMagic(t *testing.T) {
	if !hasZstdMagic([]byte{0x28, 0xb5, 0x2f, 0xfd, 0x00}) {
		t.Fatalf("expected magic to be recognized")
	}
	if hasZstdMagic([]byte{0x00, 0xb5, 0x2f, 0xfd}) {
		t.Fatalf("did not expect magic match")
	}
	if hasZstdMagic([]byte{0x28, 0xb5, 0x2f}) {
		t.Fatalf("too-short buffer must not match")
	}
}

func TestCompressRoundTrip(t *testing.T) {
	body := bytes.Repeat([]byte("the quick brown fox "), 200)
	compressed, err := compressDelta(body)
	if err != nil {
		t.Fatalf("compressDelta: %v", err)
	}
	if !hasZstdMagic(compressed) {
		t.Fatalf("compressed buffer missing zstd magic")
	}
	out, err := decompressDelta(compressed)
	if err != nil {
		t.Fatalf("decompressDelta: %v", err)
	}
	if !bytes.Equal(out, body) {
		t.Fatalf("round-trip mismatch")
	}
}

func TestDecompressCorruptFrame(t *testing.T) {
	corrupt := []byte{0x28, 0xb5, 0x2f, 0xfd, 0xff, 0xff, 0xff, 0xff}
	_, err := decompressDelta(corrupt)
	if !errors.Is(err, ErrDecompressionFailure) {
		t.Fatalf("got %v, want ErrDecompressionFailure", err)
	}
}
