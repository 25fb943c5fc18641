// Package lz77 computes exact Lempel-Ziv 77 factorizations.
//
// Most LZ77 compressors look for repeats approximately, with hash tables
// over a bounded window. This package instead computes the exact greedy
// parse of the whole input: every referencing factor is the longest match
// available at its position, no matter how far back the source lies. The
// factorization is derived from the suffix array, its inverse and the LCP
// array of the input (the longest previous factor method), so the input must
// be held in memory in full.
//
// A factorization is a sequence of factors delivered to a Sink in input
// order. Concatenating the factors reproduces the input: a literal factor
// contributes one byte, and a referencing factor copies Len bytes starting
// Src positions back from the current end of the output.
package lz77

import "fmt"

// A Factor is the basic unit of an LZ77 parse. It describes either a
// reference (copy Len bytes from Src positions ago) or a literal factor:
// if Len is zero, Src holds a single byte value.
//
// Factor is a contract for communicating parses, not a space-efficient way
// to store them.
type Factor struct {
	// Src is the copy distance of a referencing factor, or the byte value
	// of a literal factor.
	Src int

	// Len is the length of a referencing factor, or zero to indicate that
	// this is a literal factor.
	Len int
}

// IsLiteral reports whether f is a literal factor.
func (f Factor) IsLiteral() bool { return f.Len == 0 }

// IsReference reports whether f is a referencing factor.
func (f Factor) IsReference() bool { return f.Len > 0 }

// Literal returns the byte value of f. It is only meaningful if IsLiteral
// reports true.
func (f Factor) Literal() byte { return byte(f.Src) }

// NumLiterals returns the number of input bytes f stands for: the length of
// a referencing factor, or one for a literal.
func (f Factor) NumLiterals() int {
	if f.Len == 0 {
		return 1
	}
	return f.Len
}

func (f Factor) String() string {
	if f.IsReference() {
		return fmt.Sprintf("<%d,%d>", f.Len, f.Src)
	}
	return fmt.Sprintf("%q", f.Literal())
}

// A Sink receives the factors of a parse, one call per factor, in the order
// they are emitted.
type Sink interface {
	Emit(f Factor)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Factor)

func (s SinkFunc) Emit(f Factor) { s(f) }

// Factors is a Sink that appends every factor it receives to itself.
type Factors []Factor

func (fs *Factors) Emit(f Factor) { *fs = append(*fs, f) }
