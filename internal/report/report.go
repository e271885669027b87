// Package report runs the key checks and keeps their outcome as data.
// Turning that data into text lives in render.go.
package report

import (
	"fmt"

	"github.com/jsdraven/rsa-keycheck/internal/keydata"
	"github.com/jsdraven/rsa-keycheck/pkg/compare"
	"github.com/jsdraven/rsa-keycheck/pkg/hexcodec"
)

// Check names, in report order.
const (
	CheckModulus  = "modulus"
	CheckExponent = "exponent"
	CheckOpenSSL  = "openssl"
)

// Input names used in format errors.
const (
	InputModulusHex  = "modulus_hex"
	InputOpenSSLDump = "openssl_dump"
)

// headBytes is how many leading bytes are shown side by side on mismatch.
const headBytes = 16

// Exit statuses.
const (
	ExitOK          = 0
	ExitMismatch    = 1
	ExitFormatError = 2
)

// ExponentDetail holds both sides of the exponent comparison.
type ExponentDetail struct {
	Candidate uint64
	Reference uint64
}

// Check is the outcome of one verification. Exactly one of Err, Modulus or
// Exponent is set.
type Check struct {
	Name   string
	Passed bool
	Err    error

	Modulus       *compare.Result
	CandidateHead []byte
	ReferenceHead []byte
	Fingerprint   string

	Exponent *ExponentDetail

	// KeyTableDump is the key table rendered the way OpenSSL prints a
	// modulus. Only the openssl check carries it.
	KeyTableDump string
}

// Report is the outcome of one run. Passed is true when every check passed.
type Report struct {
	Checks []Check
	Passed bool
}

// Build runs every check against in. A malformed input fails the checks that
// read it; the others still run. The returned error is the first format
// error, and the report is complete either way.
func Build(in keydata.Inputs) (*Report, error) {
	rep := &Report{}

	dump, dumpErr := hexcodec.DecodeOpenSSLDump(in.OpenSSLDump)
	dumpErr = hexcodec.Named(dumpErr, InputOpenSSLDump)

	rep.add(modulusCheck(CheckModulus, in.Modulus, in.ModulusHex))
	rep.add(exponentCheck(in.Exponent, in.Reference.Exponent))
	if dumpErr != nil {
		rep.add(Check{Name: CheckOpenSSL, Err: dumpErr})
	} else {
		c := modulusCheck(CheckOpenSSL, dump, in.ModulusHex)
		if c.Err == nil {
			rendered, err := hexcodec.FormatOpenSSLDump(in.Modulus)
			if err != nil {
				c = Check{Name: CheckOpenSSL, Err: fmt.Errorf("render key table: %w", err)}
			} else {
				c.KeyTableDump = rendered
			}
		}
		rep.add(c)
	}

	rep.Passed = len(rep.Failed()) == 0
	return rep, rep.Err()
}

func (r *Report) add(c Check) { r.Checks = append(r.Checks, c) }

// Failed lists the names of failed checks in report order.
func (r *Report) Failed() []string {
	var out []string
	for _, c := range r.Checks {
		if !c.Passed {
			out = append(out, c.Name)
		}
	}
	return out
}

// Err returns the first format error recorded in the report.
func (r *Report) Err() error {
	for _, c := range r.Checks {
		if c.Err != nil {
			return c.Err
		}
	}
	return nil
}

// ExitCode maps the report to a process exit status.
func (r *Report) ExitCode() int {
	switch {
	case r.Err() != nil:
		return ExitFormatError
	case !r.Passed:
		return ExitMismatch
	default:
		return ExitOK
	}
}

func modulusCheck(name string, candidate []byte, referenceHex string) Check {
	ref, err := hexcodec.HexToBytes(referenceHex)
	if err != nil {
		return Check{Name: name, Err: hexcodec.Named(err, InputModulusHex)}
	}
	res := compare.CompareBytes(candidate, ref)
	c := Check{
		Name:        name,
		Passed:      res.Equal,
		Modulus:     &res,
		Fingerprint: sha256SumHex(candidate),
	}
	if !res.Equal {
		c.CandidateHead = head(candidate)
		c.ReferenceHead = head(ref)
	}
	return c
}

func exponentCheck(candidate, reference uint64) Check {
	return Check{
		Name:     CheckExponent,
		Passed:   compare.CompareExponent(candidate, reference),
		Exponent: &ExponentDetail{Candidate: candidate, Reference: reference},
	}
}

func head(b []byte) []byte {
	return append([]byte(nil), b[:min(len(b), headBytes)]...)
}
