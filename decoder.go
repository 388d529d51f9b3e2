package godelta

// decodeHeader decodes and returns the declared target length from a
// (possibly already-decompressed) delta body, along with the number of
// header bytes consumed.
func decodeHeader(body []byte) (length uint64, n int, err error) {
	length, n = uvarint(body)
	if n == 0 {
		return 0, 0, ErrMalformedDelta
	}
	return length, n, nil
}

// maybeDecompress returns body ready for decoding: if delta begins with
// the Zstandard magic it is decompressed first, otherwise it is returned
// unchanged. Detection is always by magic bytes; the Compressed option
// on Apply is advisory only.
func maybeDecompress(delta []byte) ([]byte, error) {
	if hasZstdMagic(delta) {
		return decompressDelta(delta)
	}
	return delta, nil
}

// outputSize implements the output_size query: the declared target
// length of delta, without materialising the target.
func outputSize(delta []byte) (int, error) {
	body, err := maybeDecompress(delta)
	if err != nil {
		return 0, err
	}
	length, _, err := decodeHeader(body)
	if err != nil {
		return 0, err
	}
	return int(length), nil
}

// decode makes a single pass over delta's command stream, copying from
// source or reading inline literals into a freshly allocated output
// buffer, verifying the declared length and the trailing checksum before
// returning.
func decode(source, delta []byte) ([]byte, error) {
	body, err := maybeDecompress(delta)
	if err != nil {
		return nil, err
	}

	length, n, err := decodeHeader(body)
	if err != nil {
		return nil, err
	}
	pos := n

	// A copy record takes at least four bytes and yields at most
	// len(source) bytes; an insert yields only its own payload. A declared
	// length beyond what body can produce is not preallocated: such a
	// stream fails a record check or the trailer's length check.
	capacity := length
	if limit := uint64(len(body)/4)*uint64(len(source)) + uint64(len(body)); capacity > limit {
		capacity = limit
	}
	out := make([]byte, 0, capacity)
	var total uint64

	for {
		if pos >= len(body) {
			return nil, ErrMalformedDelta
		}
		val, n := uvarint(body[pos:])
		if n == 0 {
			return nil, ErrMalformedDelta
		}
		pos += n

		if pos >= len(body) {
			return nil, ErrMalformedDelta
		}
		op := body[pos]
		pos++

		switch op {
		case '@':
			ofst, n := uvarint(body[pos:])
			if n == 0 {
				return nil, ErrMalformedDelta
			}
			pos += n
			if pos >= len(body) || body[pos] != ',' {
				return nil, ErrMalformedDelta
			}
			pos++

			cnt := val
			if cnt > length-total {
				return nil, ErrSourceMismatch
			}
			if ofst > uint64(len(source)) || cnt > uint64(len(source))-ofst {
				return nil, ErrSourceMismatch
			}
			out = append(out, source[ofst:ofst+cnt]...)
			total += cnt

		case ':':
			cnt := val
			if cnt > uint64(len(body)-pos) {
				return nil, ErrMalformedDelta
			}
			if total+cnt > length {
				return nil, ErrSourceMismatch
			}
			out = append(out, body[pos:pos+int(cnt)]...)
			pos += int(cnt)
			total += cnt

		case ';':
			if total != length {
				return nil, ErrMalformedDelta
			}
			if checksum(out) != uint32(val) {
				return nil, ErrMalformedDelta
			}
			return out, nil

		default:
			return nil, ErrMalformedDelta
		}
	}
}
