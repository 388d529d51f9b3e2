package godelta

import (
	"context"
	"fmt"
)

// Default tuning values. SearchDepth of 250 is the chosen public default;
// see DESIGN.md's open-question decisions for why 250 rather than 64.
const (
	DefaultHashWindowSize = 16
	DefaultSearchDepth    = 250
)

// Options configures Create and Apply. The zero value is valid: every
// field defaults as documented.
type Options struct {
	// HashWindowSize is the rolling-hash window W, which must be a power
	// of two. A non-power-of-two value is silently replaced with
	// DefaultHashWindowSize rather than returning an error.
	HashWindowSize int

	// SearchDepth bounds how many collision-chain candidates the encoder
	// examines per probe. Non-positive values default to DefaultSearchDepth.
	SearchDepth int

	// Compressed requests the Zstandard wrapper on Create. On Apply it
	// is advisory only — the decoder always auto-detects via magic
	// bytes regardless of this field.
	Compressed bool
}

func (o Options) resolve() (window, depth int) {
	window = o.HashWindowSize
	if window <= 0 || window&(window-1) != 0 {
		window = DefaultHashWindowSize
	}
	depth = o.SearchDepth
	if depth <= 0 {
		depth = DefaultSearchDepth
	}
	return window, depth
}

// Create produces a delta that, applied to source via Apply, reproduces
// target byte-for-byte. Any pair of byte buffers admits a valid delta, in
// the worst case a single insert of the whole target; the only error it
// returns comes from creating the Zstandard encoder when opts.Compressed
// is set.
func Create(source, target []byte, opts Options) ([]byte, error) {
	window, depth := opts.resolve()
	body := encode(source, target, window, depth)
	if opts.Compressed {
		return compressDelta(body)
	}
	return body, nil
}

// Apply reconstructs target from source and a delta produced by Create.
// opts.Compressed is ignored: compression is always auto-detected from
// the delta's own magic bytes.
func Apply(source, delta []byte, opts Options) ([]byte, error) {
	return decode(source, delta)
}

// OutputSize returns the target length a delta declares it will produce,
// without materialising it. It fails with ErrMalformedDelta if the
// header cannot be decoded.
func OutputSize(delta []byte) (int, error) {
	return outputSize(delta)
}

// Result carries the outcome of an asynchronous Create/Apply/ApplyBatch
// call, delivered over the channel returned by the *Async variants.
type Result struct {
	Data []byte
	Err  error
}

// CreateAsync dispatches Create to a goroutine and reports the result on
// the returned channel. The core itself is synchronous; this exists only
// for interface parity with hosts that dispatch encode/decode off an
// event loop. Go has no event loop to protect, so this is a thin
// convenience, not a requirement.
func CreateAsync(ctx context.Context, source, target []byte, opts Options) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		if err := ctx.Err(); err != nil {
			ch <- Result{Err: err}
			return
		}
		data, err := Create(source, target, opts)
		ch <- Result{Data: data, Err: err}
	}()
	return ch
}

// ApplyAsync is the asynchronous counterpart to Apply.
func ApplyAsync(ctx context.Context, source, delta []byte, opts Options) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		if err := ctx.Err(); err != nil {
			ch <- Result{Err: err}
			return
		}
		data, err := Apply(source, delta, opts)
		ch <- Result{Data: data, Err: err}
	}()
	return ch
}

// ApplyBatch folds Apply over a sequence of deltas, applying delta[0] to
// source, delta[1] to that result, and so on. It halts on the first
// error and reports it wrapped with the index of the step that failed.
func ApplyBatch(source []byte, deltas [][]byte, opts Options) ([]byte, error) {
	cur := source
	for i, d := range deltas {
		out, err := Apply(cur, d, opts)
		if err != nil {
			return nil, fmt.Errorf("godelta: step %d: %w", i, err)
		}
		cur = out
	}
	return cur, nil
}

// ApplyBatchAsync is the asynchronous counterpart to ApplyBatch.
func ApplyBatchAsync(ctx context.Context, source []byte, deltas [][]byte, opts Options) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		if err := ctx.Err(); err != nil {
			ch <- Result{Err: err}
			return
		}
		data, err := ApplyBatch(source, deltas, opts)
		ch <- Result{Data: data, Err: err}
	}()
	return ch
}
