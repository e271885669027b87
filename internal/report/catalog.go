package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// English strings double as catalog keys, so English needs no entries.
var vietnamese = map[string]string{
	"RSA KEY ARRAY CHECK":          "KIỂM TRA RSA KEY ARRAYS",
	"SUMMARY:":                     "KẾT QUẢ TỔNG QUAN:",
	"ALL CHECKS PASSED":            "TẤT CẢ ARRAYS ĐỀU ĐÚNG!",
	"CHECKS FAILED:":               "CÓ LỖI TRONG ARRAYS:",
	"=== RSA MODULUS CHECK ===":    "=== KIỂM TRA RSA MODULUS ===",
	"=== RSA EXPONENT CHECK ===":   "=== KIỂM TRA RSA EXPONENT ===",
	"=== OPENSSL FORMAT CHECK ===": "=== KIỂM TRA VỚI OPENSSL FORMAT ===",

	"key table":     "C file",
	"reference hex": "hex tham chiếu",
	"reference":     "giá trị tham chiếu",

	"MODULUS OK":                                "MODULUS ĐÚNG!",
	"MODULUS MISMATCH":                          "MODULUS SAI!",
	"EXPONENT OK":                               "EXPONENT ĐÚNG!",
	"EXPONENT MISMATCH":                         "EXPONENT SAI!",
	"OpenSSL dump matches the reference":        "OpenSSL format khớp với giá trị tham chiếu!",
	"OpenSSL dump does not match the reference": "OpenSSL format không khớp!",

	"RSA modulus":     "RSA Modulus sai",
	"RSA exponent":    "RSA Exponent sai",
	"OpenSSL modulus": "OpenSSL Modulus sai",

	"Input could not be parsed: %s":                       "Không thể phân tích dữ liệu đầu vào: %s",
	"Exponent in %s: %s\n":                                "Exponent trong %s: %s\n",
	"Modulus length in %s: %s bytes\n":                    "Độ dài modulus trong %s: %s bytes\n",
	"SHA-256 of %s (128-bit prefix): %s\n":                "SHA-256 của %s (128 bit đầu): %s\n",
	"Length mismatch: bytes %s to %s exist only in %s\n": "Độ dài không khớp: byte %s đến %s chỉ có trong %s\n",
	"Byte differences (%s):\n":                            "So sánh chi tiết (%s byte khác nhau):\n",
	"First %s bytes:\n":                                   "%s bytes đầu tiên:\n",
	"Key table in OpenSSL form:\n":                        "C file theo định dạng OpenSSL:\n",
}

func newCatalog() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range vietnamese {
		if err := b.SetString(language.Vietnamese, key, msg); err != nil {
			return nil, err
		}
	}
	return b, nil
}
