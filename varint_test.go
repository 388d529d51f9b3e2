package godelta

import "testing"

func TestVarintRoundTrip(t *testing.T) {
	cases := []uint64{
		0, 1, 0xfc, 0xfd, 0xfe, 0xff, 0x100, 0xffff,
		0x10000, 0xffffffff, 1 << 20, 1<<32 - 1,
	}
	for _, v := range cases {
		buf := make([]byte, varintSize(v))
		n := putUvarint(buf, v)
		if n != len(buf) {
			t.Fatalf("putUvarint(%d): wrote %d, sizer said %d", v, n, len(buf))
		}
		got, consumed := uvarint(buf)
		if consumed != n {
			t.Fatalf("uvarint(%d): consumed %d, want %d", v, consumed, n)
		}
		if got != v {
			t.Fatalf("uvarint(%d): got %d", v, got)
		}
	}
}

func TestVarintSizing(t *testing.T) {
	cases := []struct {
		v    uint64
		size int
	}{
		{0, 1},
		{0xfc, 1},
		{0xfd, 3},
		{0xffff, 3},
		{0x10000, 5},
		{0xffffffff, 5},
	}
	for _, c := range cases {
		if got := varintSize(c.v); got != c.size {
			t.Fatalf("varintSize(%d) = %d, want %d", c.v, got, c.size)
		}
	}
}

func TestUvarintTruncated(t *testing.T) {
	cases := [][]byte{
		{},
		{varintTag16},
		{varintTag16, 0x01},
		{varintTag32, 0x01, 0x02, 0x03},
		{varintTag64, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
	}
	for _, c := range cases {
		if _, n := uvarint(c); n != 0 {
			t.Fatalf("uvarint(%v): expected truncation failure, got n=%d", c, n)
		}
	}
}

func TestAppendUvarint(t *testing.T) {
	var out []byte
	out = appendUvarint(out, 5)
	out = appendUvarint(out, 0xffff)
	v1, n1 := uvarint(out)
	if v1 != 5 || n1 != 1 {
		t.Fatalf("first value: got %d,%d", v1, n1)
	}
	v2, n2 := uvarint(out[n1:])
	if v2 != 0xffff || n2 != 3 {
		t.Fatalf("second value: got %d,%d", v2, n2)
	}
}
