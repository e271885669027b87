// Package compare checks RSA public-key components for byte-exact equality.
//
// A mismatch is an ordinary Result, never an error. Errors are reserved for
// reference input that cannot be decoded.
package compare

import (
	"github.com/jsdraven/rsa-keycheck/pkg/hexcodec"
)

// Mismatch is one index where both sequences have a byte and the bytes differ.
type Mismatch struct {
	Index     int
	Candidate byte
	Reference byte
}

// Result is the outcome of a modulus comparison.
type Result struct {
	Equal           bool
	CandidateLength int
	ReferenceLength int
	// Mismatches is ordered by Index and bounded by the shorter length.
	Mismatches []Mismatch
}

// LengthMismatch reports whether the two sequences differ in length.
func (r Result) LengthMismatch() bool {
	return r.CandidateLength != r.ReferenceLength
}

// Surplus returns the half-open index range present on only one side.
// candidateLonger says which side owns it. ok is false when lengths match.
func (r Result) Surplus() (from, to int, candidateLonger, ok bool) {
	switch {
	case r.CandidateLength > r.ReferenceLength:
		return r.ReferenceLength, r.CandidateLength, true, true
	case r.ReferenceLength > r.CandidateLength:
		return r.CandidateLength, r.ReferenceLength, false, true
	default:
		return 0, 0, false, false
	}
}

// CompareModulus decodes referenceHex and compares it with candidate.
func CompareModulus(candidate []byte, referenceHex string) (Result, error) {
	ref, err := hexcodec.HexToBytes(referenceHex)
	if err != nil {
		return Result{}, err
	}
	return CompareBytes(candidate, ref), nil
}

// CompareBytes compares two decoded sequences.
func CompareBytes(candidate, reference []byte) Result {
	res := Result{
		CandidateLength: len(candidate),
		ReferenceLength: len(reference),
	}
	n := min(len(candidate), len(reference))
	for i := 0; i < n; i++ {
		if candidate[i] != reference[i] {
			res.Mismatches = append(res.Mismatches, Mismatch{
				Index:     i,
				Candidate: candidate[i],
				Reference: reference[i],
			})
		}
	}
	res.Equal = len(res.Mismatches) == 0 && !res.LengthMismatch()
	return res
}

// CompareExponent reports whether two public exponents are equal.
func CompareExponent(candidate, reference uint64) bool {
	return candidate == reference
}
