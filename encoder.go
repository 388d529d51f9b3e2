package godelta

// encode scans target against a block index built over source, emitting
// a self-describing copy/insert command stream that reproduces target
// byte-for-byte when applied to source. w is the hash window (already
// validated as a power of two) and searchDepth bounds how many
// collision-chain candidates are examined per probe.
//
// The output buffer is pre-sized to len(target)+1024: every emitted
// record is either a copy (strictly smaller than the span it replaces
// once framing overhead is paid for) or an insert (at most len(target)
// literal bytes plus per-record overhead).
func encode(source, target []byte, w, searchDepth int) []byte {
	out := make([]byte, 0, len(target)+1024)

	if len(target) == 0 {
		out = appendUvarint(out, 0)
		return appendTrailer(out, checksum(target))
	}

	out = appendUvarint(out, uint64(len(target)))

	if len(source) <= w {
		out = appendInsert(out, target)
		return appendTrailer(out, checksum(target))
	}

	idx := buildSourceIndex(source, w)
	base := 0

	for base+w < len(target) {
		rh := newRollingHash(w, target[base:base+w])
		i := 0

		for {
			var bestCnt, bestOfst, bestLit int
			found := false

			candidate := idx.probe(rh.value())
			for depth := 0; candidate != -1 && depth < searchDepth; depth++ {
				iSrc := candidate * w
				y := base + i

				if bytesEqualWindow(source[iSrc:iSrc+w], target[y:y+w]) {
					fwdMax := min(len(source)-iSrc-w, len(target)-y-w)
					fwd := forwardExtend(source[iSrc+w:iSrc+w+fwdMax], target[y+w:y+w+fwdMax])

					bwdMax := min(iSrc, i)
					bwd := backwardExtend(source[:iSrc], target[base:y], bwdMax)

					ofst := iSrc - bwd
					cnt := bwd + w + fwd
					litsz := i - bwd
					cost := varintSize(uint64(litsz)) + varintSize(uint64(cnt)) + varintSize(uint64(ofst)) + 3

					if cnt >= cost && cnt > bestCnt {
						bestCnt, bestOfst, bestLit = cnt, ofst, litsz
						found = true
					}
				}

				candidate = idx.next(candidate)
			}

			if found {
				if bestLit > 0 {
					out = appendInsert(out, target[base:base+bestLit])
				}
				out = appendCopy(out, bestCnt, bestOfst)
				base += bestLit + bestCnt
				break
			}

			if base+i+w >= len(target) {
				out = appendInsert(out, target[base:])
				base = len(target)
				break
			}

			rh.next(target[base+i+w])
			i++
		}
	}

	if base < len(target) {
		out = appendInsert(out, target[base:])
	}

	return appendTrailer(out, checksum(target))
}

// bytesEqualWindow does the byte-exact verification required before
// trusting a hash match: the index does not rule out collisions.
func bytesEqualWindow(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func appendInsert(out []byte, lit []byte) []byte {
	out = appendUvarint(out, uint64(len(lit)))
	out = append(out, ':')
	out = append(out, lit...)
	return out
}

func appendCopy(out []byte, cnt, ofst int) []byte {
	out = appendUvarint(out, uint64(cnt))
	out = append(out, '@')
	out = appendUvarint(out, uint64(ofst))
	out = append(out, ',')
	return out
}

func appendTrailer(out []byte, sum uint32) []byte {
	out = appendUvarint(out, uint64(sum))
	out = append(out, ';')
	return out
}
