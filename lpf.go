package lz77

import "math"

// debug gates internal consistency checks on emitted references.
const debug = false

// An LPFFactorizer computes an exact Lempel-Ziv 77 factorization of its
// input by simulating a scan of the longest previous factor (LPF) array.
//
// The factorizer first builds the suffix array, its inverse and the LCP
// array of the input, and then derives the greedy parse from them: at each
// position it emits the longest factor that also occurs earlier in the text,
// or a literal if no previous occurrence of sufficient length exists.
//
// When more than one source is eligible for a factor, the tie is broken in
// favor of the lexicographically smaller source suffix, so the factorization
// is neither leftmost nor rightmost.
//
// A single LPFFactorizer must not be used for concurrent Factorize calls;
// distinct instances are independent.
type LPFFactorizer struct {
	minRefLen int
}

// NewLPFFactorizer returns a factorizer with a minimum reference length
// of 2.
func NewLPFFactorizer() *LPFFactorizer {
	return &LPFFactorizer{minRefLen: 2}
}

// MinReferenceLength reports the minimum length of a referencing factor.
// If the longest previous factor at a position is shorter than this length,
// a literal factor is emitted instead.
func (f *LPFFactorizer) MinReferenceLength() int { return f.minRefLen }

// SetMinReferenceLength sets the minimum length of a referencing factor.
// Values below 1 are treated as 1.
func (f *LPFFactorizer) SetMinReferenceLength(m int) {
	if m < 1 {
		m = 1
	}
	f.minRefLen = m
}

// Factorize computes the factorization of text and delivers the factors to
// sink, in the order of the text positions they cover. The concatenation of
// the emitted factors reproduces text exactly; an empty input produces no
// factors.
//
// Factorize keeps three index arrays of len(text) elements alive for the
// duration of the call. Their element width is 32 bits for inputs shorter
// than 2³¹ bytes and 64 bits otherwise.
func (f *LPFFactorizer) Factorize(text []byte, sink Sink) {
	n := len(text)
	if n == 0 {
		return
	}
	sa := make([]int, n)
	buildSuffixArray(text, sa)
	if int64(n) <= math.MaxInt32 {
		parse[int32](text, sa, f.minRefLen, sink)
	} else {
		parse[int64](text, sa, f.minRefLen, sink)
	}
}

// parse emits the greedy LZ77 parse of t given its suffix array. For each
// cursor position it locates the nearest rank above and below the current
// suffix whose text position is smaller (PSV/NSV); the minimum LCP along the
// walked window is the length of the match to that witness.
func parse[I index](t []byte, suf []int, minRefLen int, sink Sink) {
	n := len(t)

	sa := make([]I, n)
	for k, p := range suf {
		sa[k] = I(p)
	}

	plcp := make([]I, n)
	buildPLCP(t, sa, plcp)
	lcp := make([]I, n)
	buildLCP(plcp, sa, lcp)

	// PLCP is dead once the LCP array is filled; its buffer becomes the
	// inverse suffix array.
	isa := plcp
	for k, p := range sa {
		isa[p] = I(k)
	}

	for i := 0; i < n; {
		cur := int(isa[i])

		// PSV: walk toward smaller ranks. The running minimum folds in the
		// LCP at the current rank and at every rank passed over, but not at
		// the terminal rank. LCP[0] is zero, so running off the front of
		// the array leaves the minimum at zero.
		psvLCP := int(lcp[cur])
		psvPos := cur - 1
		if psvLCP > 0 {
			for psvPos >= 0 && int(sa[psvPos]) > int(sa[cur]) {
				if l := int(lcp[psvPos]); l < psvLCP {
					psvLCP = l
				}
				psvPos--
			}
		}

		// NSV: walk toward larger ranks. Here the LCP at each visited rank
		// is folded in before the position test, including at the terminal
		// rank. A walk that runs off the end of the array found no witness
		// and contributes nothing.
		nsvLCP := 0
		nsvPos := cur + 1
		if nsvPos < n {
			nsvLCP = math.MaxInt
			for {
				if l := int(lcp[nsvPos]); l < nsvLCP {
					nsvLCP = l
				}
				if int(sa[nsvPos]) < int(sa[cur]) {
					break
				}
				nsvPos++
				if nsvPos >= n {
					nsvLCP = 0
					break
				}
			}
		}

		// Ties go to the PSV witness, the lexicographically smaller source.
		maxLCP, maxPos := psvLCP, psvPos
		if nsvLCP > psvLCP {
			maxLCP, maxPos = nsvLCP, nsvPos
		}

		if maxLCP >= minRefLen {
			if debug {
				if maxPos < 0 || maxPos >= n {
					panic("lz77: witness rank out of range")
				}
				if int(sa[maxPos]) >= i {
					panic("lz77: witness does not precede the factor")
				}
			}
			sink.Emit(Factor{Src: i - int(sa[maxPos]), Len: maxLCP})
			i += maxLCP
		} else {
			sink.Emit(Factor{Src: int(t[i])})
			i++
		}
	}
}
