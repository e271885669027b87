// Package report: small helpers shared by Build and Render.
package report

import (
	"crypto/sha256"
	"encoding/hex"
)

func sha256SumHex(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:16]) // 128-bit prefix
}
