// Package bitfield provides the pack/unpack primitives used by record
// layouts whose fields do not start or end on a byte boundary.
package bitfield

// Uint40Size is the number of bytes in a 40-bit little-endian word.
const Uint40Size = 5

// Mask64 returns a value with the low width bits set.
func Mask64(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

// Mask8 returns a byte with the low width bits set.
func Mask8(width uint) byte {
	if width >= 8 {
		return 0xFF
	}
	return byte((1 << width) - 1)
}

// Get8 extracts the width-bit field starting at bit shift of b.
func Get8(b byte, shift, width uint) byte {
	return (b >> shift) & Mask8(width)
}

// Set8 replaces the width-bit field starting at bit shift of b with v.
// Bits of v above width are discarded and bits of b outside the field are
// left untouched.
func Set8(b byte, shift, width uint, v byte) byte {
	m := Mask8(width) << shift
	return (b &^ m) | ((v << shift) & m)
}

// Uint40 decodes a 40-bit little-endian word from b[0:5].
func Uint40(b []byte) uint64 {
	_ = b[4] // bounds check hint to compiler
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 |
		uint64(b[3])<<24 | uint64(b[4])<<32
}

// PutUint40 encodes the low 40 bits of v into b[0:5], little-endian.
func PutUint40(b []byte, v uint64) {
	_ = b[4] // bounds check hint to compiler
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
}
