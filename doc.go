// Package godelta implements a binary delta codec: given two byte
// sequences, source and target, Create produces a compact delta such
// that Apply(source, delta) reconstructs target byte-for-byte.
//
// # Overview
//
// The format is a derivative of the Fossil SCM delta format, with three
// changes: integers are encoded with a general-purpose tagged varint
// scheme rather than Fossil's base-64 digits, forward-match extension
// compares in 128-bit-wide words when the host CPU supports it, and the
// encoded delta may optionally be wrapped in a Zstandard frame, detected
// transparently on Apply via its magic bytes.
//
// Create builds a content-defined index over non-overlapping windows of
// source, then walks target maintaining a rolling hash, probing the
// index for candidate matches, verifying each byte-exact, and extending
// it in both directions before deciding whether a copy instruction pays
// for its own framing overhead. Apply is a single pass over the
// resulting copy/insert/checksum command stream.
//
// # When to Use godelta
//
// godelta is a good fit for:
//   - Versioning large, mostly-similar binary blobs (build artifacts,
//     database snapshots, VM images)
//   - Replicating a sequence of small edits to a large document without
//     resending it in full
//   - Any producer/consumer pair that can hold both buffers in memory
//
// # When NOT to Use godelta
//
// godelta is not suitable for:
//   - Streaming transforms where source or target cannot be fully
//     buffered
//   - Cryptographic integrity — the embedded checksum catches
//     corruption, not tampering
//   - Minimizing edit distance or detecting semantic changes; the
//     encoder is greedy and byte-oriented, not a diff/patch tool for
//     human review
//
// # Basic Usage
//
//	delta, err := godelta.Create(source, target, godelta.Options{})
//	if err != nil {
//	    // only from the Zstandard encoder; any byte buffers admit a valid delta
//	}
//	got, err := godelta.Apply(source, delta, godelta.Options{})
//	// got == target
//
//	// Wrap the delta in a Zstandard frame:
//	compressed, _ := godelta.Create(source, target, godelta.Options{Compressed: true})
//	got, _ = godelta.Apply(source, compressed, godelta.Options{}) // auto-detected
//
//	// Apply a chain of deltas produced against successive versions:
//	result, err := godelta.ApplyBatch(v0, [][]byte{delta1, delta2, delta3}, godelta.Options{})
//
// # Performance Characteristics
//
// Create is O(len(target)) amortized: each probed candidate costs a
// fixed-size byte-exact verification plus a linear extension bounded by
// the match itself. Apply is a single linear pass with no re-reads of
// already-copied source bytes. Typical deltas for low-mutation inputs
// (≤10% point edits) are well under half the size of target.
package godelta
