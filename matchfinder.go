package lz77

import "github.com/andybalholm/pack"

// MatchFinder is an implementation of the pack.MatchFinder interface
// (github.com/andybalholm/pack) backed by the exact LPF factorization.
// Unlike hash-based matchfinders it does not search approximately: every
// match it reports comes from a reference of the exact greedy factorization,
// split at MaxLength where needed. A reference whose source lies beyond
// MaxDistance is reported as unmatched bytes; no shorter, closer match is
// searched for in its place. Each block is
// factorized as a whole, so it pairs best with large block sizes.
type MatchFinder struct {
	// MinLength is the length of the shortest match to report.
	// The default is 4.
	MinLength int

	// MaxLength is the length of the longest match to report; longer
	// repeats are split into several matches at the same distance.
	// 0 means no limit.
	MaxLength int

	// MaxDistance is the maximum distance (in bytes) to look back for a
	// match. Matches that reach farther back are reported as unmatched
	// bytes instead. The default is 65535.
	MaxDistance int

	factors Factors
}

func (q *MatchFinder) Reset() {
	q.factors = q.factors[:0]
}

// FindMatches looks for matches in src, appends them to dst, and returns dst.
func (q *MatchFinder) FindMatches(dst []pack.Match, src []byte) []pack.Match {
	if q.MinLength == 0 {
		q.MinLength = 4
	}
	if q.MaxDistance == 0 {
		q.MaxDistance = 65535
	}

	f := LPFFactorizer{minRefLen: q.MinLength}
	q.factors = q.factors[:0]
	f.Factorize(src, &q.factors)

	unmatched := 0
	for _, fc := range q.factors {
		if fc.IsLiteral() || fc.Src > q.MaxDistance {
			unmatched += fc.NumLiterals()
			continue
		}
		length := fc.Len
		for q.MaxLength > 0 && length > q.MaxLength {
			chunk := q.MaxLength
			if length-chunk < q.MinLength {
				// Keep the tail long enough to stand as a match of its own.
				chunk = length - q.MinLength
			}
			dst = append(dst, pack.Match{
				Unmatched: unmatched,
				Length:    chunk,
				Distance:  fc.Src,
			})
			unmatched = 0
			length -= chunk
		}
		dst = append(dst, pack.Match{
			Unmatched: unmatched,
			Length:    length,
			Distance:  fc.Src,
		})
		unmatched = 0
	}
	if unmatched > 0 {
		dst = append(dst, pack.Match{Unmatched: unmatched})
	}
	return dst
}
