package value

// Folding splits a single logical value into physical lines so that
// "key = first-fragment" and every continuation line stay within the
// requested width. Breaks are placed at whitespace whenever one fits,
// a token wider than the width is emitted whole rather than cut inside
// the word. Unfolding is plain concatenation: the breaking whitespace
// character leads the next fragment, and a continuation line which
// would otherwise start with a non-blank character gets a single
// synthetic space so it cannot be confused with a fresh value.

// Width of the " = " separator between key and value.
const foldingOverhead = 3

// fold derives the physical line fragments of buf and stores them in out,
// replacing whatever out held before. The first line has keyLen and the
// separator subtracted from its width. Repeated calls with the same input
// produce the same fragments.
func fold(buf []byte, keyLen, boundary int, out *Fragments) {
	out.Reset()

	// make sure there is at least one character to fold
	if boundary < 1 {
		boundary = 1
	}

	var (
		start  int // first byte of the fragment being assembled
		resume int // scan position; the breaking whitespace is rescanned
		done   bool
	)
	for !done {
		// width available on the current physical line
		best := boundary
		if out.Len() == 0 {
			if boundary > keyLen+foldingOverhead {
				best = boundary - keyLen - foldingOverhead
			} else {
				best = 0
			}
		}

		candidate := start // rightmost break opportunity within the width
		next := start      // most recent break opportunity
		best += start

		for i := resume; i <= len(buf); i++ {
			if i == len(buf) {
				next = i
				done = true
			} else if buf[i] == ' ' || buf[i] == '\t' || (best == 0 && i == 0) {
				// whitespace, or the first line has no room at all
				next = i
			} else {
				continue
			}

			// Fold when the break opportunity is past the width, or right
			// away when the first line has no room for anything. A break
			// at the very start of the fragment is not a fold opportunity,
			// it only yields an empty line without consuming anything.
			if next > best || (best == 0 && i == 0) {
				cut := candidate
				if candidate == start && next != 0 {
					// the first break found is already past the
					// width, keep the oversized token intact
					cut = next
				}
				save(out, buf[start:cut])
				start = cut
				resume = next
				break
			}
			candidate = next
		}

		if done {
			// remaining bytes form the last fragment; an empty remainder
			// after a fragment was already emitted carries no content
			if rest := buf[start:]; len(rest) != 0 || out.Len() == 0 {
				save(out, rest)
			}
		}
	}
}

// save appends one folded fragment, prepending a single space to a
// continuation line which is not empty and does not start with a blank.
func save(out *Fragments, frag []byte) {
	if len(frag) == 0 || frag[0] == ' ' || frag[0] == '\t' || out.Len() == 0 {
		out.Append(frag)
		return
	}
	adjusted := make([]byte, 0, len(frag)+1)
	adjusted = append(adjusted, ' ')
	out.push(append(adjusted, frag...))
}

// unfold concatenates all fragments back into the single logical value.
func unfold(frags *Fragments) []byte {
	var total int
	for _, p := range frags.parts {
		total += len(p)
	}
	buf := make([]byte, 0, total)
	for _, p := range frags.parts {
		buf = append(buf, p...)
	}
	return buf
}
