package hexcodec

import (
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// dumpBytesPerLine matches the wrapping of `openssl rsa -text`.
const dumpBytesPerLine = 15

// NormalizeOpenSSLDump turns a colon-delimited dump into a canonical uppercase
// hex string. Colons and whitespace are dropped and one leading "00"
// sign-padding pair is removed. Offsets in a returned *FormatError refer to
// the raw dump.
func NormalizeOpenSSLDump(raw string) (string, error) {
	var clean strings.Builder
	clean.Grow(len(raw))
	for i, r := range raw {
		if r == ':' || unicode.IsSpace(r) {
			continue
		}
		if r >= utf8.RuneSelf || !isHexDigit(byte(r)) {
			return "", &FormatError{Offset: i, Reason: ErrInvalidChar}
		}
		clean.WriteByte(byte(unicode.ToUpper(r)))
	}

	s := clean.String()
	if len(s)%2 != 0 {
		return "", &FormatError{Offset: len(raw), Reason: ErrOddLength}
	}
	if strings.HasPrefix(s, "00") {
		s = s[2:]
	}
	return s, nil
}

// DecodeOpenSSLDump normalizes raw and decodes it into bytes.
func DecodeOpenSSLDump(raw string) ([]byte, error) {
	s, err := NormalizeOpenSSLDump(raw)
	if err != nil {
		return nil, err
	}
	return HexToBytes(s)
}

// FormatOpenSSLDump renders b as an unsigned ASN.1 INTEGER in the layout
// OpenSSL prints moduli with. A 00 pad is present iff the high bit of the
// first significant byte is set.
func FormatOpenSSLDump(b []byte) (string, error) {
	bld := cryptobyte.NewBuilder(nil)
	bld.AddASN1BigInt(new(big.Int).SetBytes(b))
	der, err := bld.Bytes()
	if err != nil {
		return "", err
	}

	in := cryptobyte.String(der)
	var content cryptobyte.String
	if !in.ReadASN1(&content, asn1.INTEGER) || !in.Empty() {
		return "", errors.New("hexcodec: malformed INTEGER encoding")
	}

	var out strings.Builder
	for i, c := range content {
		if i%dumpBytesPerLine == 0 {
			if i > 0 {
				out.WriteByte('\n')
			}
			out.WriteString("    ")
		}
		out.WriteString(hex.EncodeToString([]byte{c}))
		if i < len(content)-1 {
			out.WriteByte(':')
		}
	}
	return out.String(), nil
}
