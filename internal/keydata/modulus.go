package keydata

// Modulus returns the RSA-2048 public modulus as it is hard-coded in the
// firmware key table, big-endian. Each call returns a fresh slice.
func Modulus() []byte {
	return []byte{
		0xC0, 0x86, 0x2E, 0x5B, 0xE3, 0xB6, 0x83, 0xBE, 0xEC, 0x15, 0x41, 0x19, 0x0F, 0x3E, 0xEB, 0x79,
		0x65, 0xF0, 0xD7, 0xE2, 0xB8, 0xA7, 0x64, 0xCF, 0x38, 0xBC, 0x86, 0xF6, 0x7F, 0x62, 0xF4, 0xE2,
		0x26, 0xCF, 0x81, 0xEF, 0x3A, 0xCC, 0xCB, 0x12, 0xC9, 0x67, 0x1B, 0x42, 0xEF, 0xA9, 0xB9, 0xD2,
		0x54, 0x43, 0x4E, 0x14, 0xEE, 0x94, 0x69, 0xD5, 0xC3, 0x67, 0xF0, 0x32, 0xC7, 0x29, 0xB9, 0x11,
		0x2F, 0x07, 0xBA, 0x8C, 0xDF, 0x00, 0x04, 0xA6, 0x9D, 0x69, 0xF2, 0x5D, 0x30, 0x81, 0xF0, 0xE2,
		0x14, 0x40, 0x96, 0xAE, 0x34, 0xBB, 0xE0, 0xF6, 0xEE, 0xA2, 0x1F, 0x23, 0x61, 0x0B, 0x6B, 0xB0,
		0x20, 0xA3, 0x87, 0x6A, 0xE3, 0x4C, 0xED, 0x51, 0x3F, 0x36, 0x1E, 0x78, 0xBB, 0xB5, 0xB5, 0x20,
		0xEB, 0xE5, 0xF4, 0xE2, 0x01, 0xC5, 0x0D, 0x7E, 0x18, 0xAB, 0x02, 0xB8, 0xF5, 0xFC, 0x9B, 0x1D,
		0x12, 0xAD, 0xD0, 0x99, 0x4E, 0x2B, 0x55, 0x10, 0x54, 0x49, 0x91, 0x16, 0xC1, 0xD0, 0x2C, 0x96,
		0x98, 0x68, 0xED, 0x77, 0x30, 0xCB, 0x75, 0xAA, 0x4B, 0x98, 0x37, 0x7E, 0x8B, 0xB0, 0x6E, 0x2D,
		0x17, 0x36, 0xD3, 0x2B, 0x0F, 0xB7, 0x75, 0x5F, 0x8D, 0x03, 0x21, 0xC2, 0x88, 0x10, 0x26, 0x35,
		0x76, 0x19, 0xF0, 0x6A, 0xCB, 0x3A, 0x94, 0x37, 0xAF, 0x41, 0xB6, 0x9A, 0xD2, 0x29, 0xE5, 0x7B,
		0xFA, 0xBE, 0xB7, 0x87, 0x38, 0x61, 0x24, 0xEE, 0x4B, 0xEF, 0x3E, 0x52, 0x47, 0x0C, 0x46, 0xA3,
		0x94, 0xBC, 0xC8, 0x76, 0xE7, 0xAD, 0x28, 0xEF, 0x24, 0x8B, 0x7B, 0x0D, 0xE1, 0xF5, 0x16, 0x58,
		0x11, 0x99, 0x55, 0x56, 0x58, 0xED, 0x56, 0x8D, 0xD1, 0x61, 0x54, 0x0D, 0x32, 0x8F, 0xD4, 0xFD,
		0x58, 0x65, 0x22, 0xDB, 0xAB, 0x15, 0x64, 0x3B, 0xD9, 0x89, 0xC7, 0x6B, 0x69, 0x4B, 0x99, 0x97,
	}
}

// Exponent returns the public exponent from the firmware key table.
func Exponent() uint64 { return 0x10001 }
