package hexcodec_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsdraven/rsa-keycheck/pkg/hexcodec"
)

func TestHexToBytes(t *testing.T) {
	got, err := hexcodec.HexToBytes("C0862e5B")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xC0, 0x86, 0x2E, 0x5B}, got)

	got, err = hexcodec.HexToBytes("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHexToBytes_FormatErrors(t *testing.T) {
	cases := []struct {
		in     string
		reason error
		offset int
	}{
		{"ABC", hexcodec.ErrOddLength, 3},
		{"A", hexcodec.ErrOddLength, 1},
		{"ABZZ", hexcodec.ErrInvalidChar, 2},
		{"AB CD", hexcodec.ErrInvalidChar, 2},
		{"0x10", hexcodec.ErrInvalidChar, 1},
		{"ABé", hexcodec.ErrInvalidChar, 2},
	}
	for _, tc := range cases {
		_, err := hexcodec.HexToBytes(tc.in)
		var fe *hexcodec.FormatError
		require.True(t, errors.As(err, &fe), "HexToBytes(%q) should fail with FormatError", tc.in)
		assert.ErrorIs(t, err, tc.reason, tc.in)
		assert.Equal(t, tc.offset, fe.Offset, tc.in)
	}
}

func TestBytesToHex(t *testing.T) {
	assert.Equal(t, "00010AFF", hexcodec.BytesToHex([]byte{0x00, 0x01, 0x0A, 0xFF}))
	assert.Equal(t, "", hexcodec.BytesToHex(nil))
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 300; n += 7 {
		b := make([]byte, n)
		rng.Read(b)
		s := hexcodec.BytesToHex(b)
		require.Len(t, s, 2*n)
		got, err := hexcodec.HexToBytes(s)
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
}

func TestCaseInsensitive(t *testing.T) {
	for _, s := range []string{"c0862e5be3b6", "C0862E5BE3B6", "c0862E5bE3b6", "00ff"} {
		mixed, err := hexcodec.HexToBytes(s)
		require.NoError(t, err)
		upper, err := hexcodec.HexToBytes(strings.ToUpper(s))
		require.NoError(t, err)
		lower, err := hexcodec.HexToBytes(strings.ToLower(s))
		require.NoError(t, err)
		assert.Equal(t, mixed, upper)
		assert.Equal(t, mixed, lower)
		assert.Equal(t, strings.ToUpper(s), hexcodec.BytesToHex(mixed))
	}
}

func TestFormatError_Message(t *testing.T) {
	_, err := hexcodec.HexToBytes("ABC")
	require.Error(t, err)
	assert.Equal(t, "hex input: odd length at offset 3", err.Error())

	named := hexcodec.Named(err, "modulus_hex")
	assert.Equal(t, "modulus_hex: odd length at offset 3", named.Error())
	assert.ErrorIs(t, named, hexcodec.ErrOddLength)
	assert.Equal(t, "hex input: odd length at offset 3", err.Error(), "Named must not mutate the original")

	plain := errors.New("boom")
	assert.Same(t, plain, hexcodec.Named(plain, "x"))
}
