// Package hexcodec converts RSA modulus bytes to and from the textual forms
// they are published in: plain hex strings and OpenSSL colon dumps.
//
// SPDX-License-Identifier: AGPL-3.0-or-later
package hexcodec

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOddLength is the reason for hex input with an odd number of digits.
	ErrOddLength = errors.New("odd length")
	// ErrInvalidChar is the reason for hex input containing a non-hex character.
	ErrInvalidChar = errors.New("invalid hex character")
)

// FormatError reports malformed hex input. Input names the value that failed
// to parse and is filled in by the caller that knows it.
type FormatError struct {
	Input  string
	Offset int
	Reason error
}

func (e *FormatError) Error() string {
	name := e.Input
	if name == "" {
		name = "hex input"
	}
	return fmt.Sprintf("%s: %v at offset %d", name, e.Reason, e.Offset)
}

func (e *FormatError) Unwrap() error { return e.Reason }

// Named returns a copy of err with Input set when err is a *FormatError.
// Other errors are returned unchanged.
func Named(err error, input string) error {
	var fe *FormatError
	if !errors.As(err, &fe) {
		return err
	}
	cp := *fe
	cp.Input = input
	return &cp
}

// HexToBytes decodes a case-insensitive hex string with no separators.
func HexToBytes(s string) ([]byte, error) {
	if i := invalidHexAt(s); i >= 0 {
		return nil, &FormatError{Offset: i, Reason: ErrInvalidChar}
	}
	if len(s)%2 != 0 {
		return nil, &FormatError{Offset: len(s), Reason: ErrOddLength}
	}
	return hex.DecodeString(s)
}

// BytesToHex encodes b as uppercase hex, two digits per byte.
func BytesToHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// invalidHexAt returns the index of the first non-hex byte in s, or -1.
func invalidHexAt(s string) int {
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return i
		}
	}
	return -1
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
