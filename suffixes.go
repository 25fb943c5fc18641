package lz77

import "github.com/jgallagher/gosaca"

// index is the element type of the suffix, inverse and LCP arrays. Inputs
// shorter than 2³¹ bytes use int32 to halve the working set.
type index interface {
	~int32 | ~int64
}

// buildSuffixArray fills sa with the suffix array of text: sa[k] is the
// starting position of the k-th smallest suffix in lexicographic order.
// The sorting itself is delegated to gosaca's induced-sorting implementation.
func buildSuffixArray(text []byte, sa []int) {
	ws := &gosaca.WorkSpace{}
	ws.ComputeSuffixArray(text, sa)
}

// buildPLCP fills plcp with the permuted LCP array: plcp[i] is the length of
// the longest common prefix of the suffix at i and its lexicographic
// predecessor (zero for the smallest suffix).
//
// The buffer first holds Phi, the text position of each suffix's
// predecessor, and is consumed in place. Scanning in text order lets each
// LCP value start from the previous one minus one, which bounds the total
// comparison work by O(n).
func buildPLCP[I index](text []byte, sa, plcp []I) {
	n := len(text)
	plcp[sa[0]] = -1
	for k := 1; k < n; k++ {
		plcp[sa[k]] = sa[k-1]
	}
	l := 0
	for i := 0; i < n; i++ {
		j := int(plcp[i])
		if j < 0 {
			plcp[i] = 0
			l = 0
			continue
		}
		for i+l < n && j+l < n && text[i+l] == text[j+l] {
			l++
		}
		plcp[i] = I(l)
		if l > 0 {
			l--
		}
	}
}

// buildLCP fills lcp with the rank-ordered LCP array: lcp[k] is the longest
// common prefix of the suffixes at ranks k and k-1. lcp[0] is zero via the
// Phi sentinel.
func buildLCP[I index](plcp, sa, lcp []I) {
	for k, p := range sa {
		lcp[k] = plcp[p]
	}
}
