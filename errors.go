package godelta

import "errors"

// Sentinel errors returned by Apply, ApplyBatch and their async variants,
// compared with errors.Is by callers.
var (
	// ErrMalformedDelta means the command stream could not be parsed:
	// a bad varint, an unknown operator byte, a missing separator, an
	// unterminated stream, or a trailer whose declared length disagrees
	// with what was actually produced.
	ErrMalformedDelta = errors.New("godelta: malformed delta")

	// ErrSourceMismatch means a copy record referenced bytes outside the
	// source buffer, or would write past the delta's declared length.
	ErrSourceMismatch = errors.New("godelta: source mismatch")

	// ErrDecompressionFailure means the delta carried a valid Zstd magic
	// prefix but the frame body failed to decompress.
	ErrDecompressionFailure = errors.New("godelta: decompression failure")

	// ErrAllocationFailure is the error class for a heap request that
	// cannot be satisfied. No function in this package returns it: a
	// declared target length larger than the delta body can produce is
	// rejected by the command-stream checks (ErrMalformedDelta or
	// ErrSourceMismatch), and a compressed frame that fails to decompress,
	// whatever content size it declares, yields ErrDecompressionFailure.
	ErrAllocationFailure = errors.New("godelta: allocation failure")
)
