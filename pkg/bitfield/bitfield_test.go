package bitfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask64(t *testing.T) {
	assert.Equal(t, uint64(0), Mask64(0))
	assert.Equal(t, uint64(1), Mask64(1))
	assert.Equal(t, uint64(0x3FF), Mask64(10))
	assert.Equal(t, uint64(0x3FFFFFFFFF), Mask64(38))
	assert.Equal(t, ^uint64(0), Mask64(64))
	assert.Equal(t, ^uint64(0), Mask64(70))
}

func TestMask8(t *testing.T) {
	assert.Equal(t, byte(0), Mask8(0))
	assert.Equal(t, byte(0x03), Mask8(2))
	assert.Equal(t, byte(0x7F), Mask8(7))
	assert.Equal(t, byte(0xFF), Mask8(8))
}

func TestGet8(t *testing.T) {
	testCases := []struct {
		name  string
		b     byte
		shift uint
		width uint
		want  byte
	}{
		{"top two bits", 0xC0, 6, 2, 0x03},
		{"top bit only", 0x80, 6, 2, 0x02},
		{"low nibble", 0xAB, 0, 4, 0x0B},
		{"high nibble", 0xAB, 4, 4, 0x0A},
		{"whole byte", 0x5A, 0, 8, 0x5A},
		{"empty field", 0x3F, 6, 2, 0x00},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Get8(tc.b, tc.shift, tc.width))
		})
	}
}

func TestSet8(t *testing.T) {
	t.Run("preserves bits outside the field", func(t *testing.T) {
		got := Set8(0x3F, 6, 2, 0x03)
		assert.Equal(t, byte(0xFF), got)

		got = Set8(0xFF, 6, 2, 0x00)
		assert.Equal(t, byte(0x3F), got)
	})

	t.Run("discards value bits above width", func(t *testing.T) {
		got := Set8(0x00, 6, 2, 0xFD)
		assert.Equal(t, byte(0x40), got)
	})

	t.Run("get after set", func(t *testing.T) {
		for v := byte(0); v < 4; v++ {
			b := Set8(0x15, 6, 2, v)
			assert.Equal(t, v, Get8(b, 6, 2))
			assert.Equal(t, byte(0x15), b&0x3F)
		}
	})
}

func TestUint40(t *testing.T) {
	b := make([]byte, Uint40Size)
	PutUint40(b, 0x0102030405)
	assert.Equal(t, []byte{0x05, 0x04, 0x03, 0x02, 0x01}, b)
	assert.Equal(t, uint64(0x0102030405), Uint40(b))

	// bits above 40 are dropped
	PutUint40(b, 0xFFFF_FF_FFFFFFFF)
	assert.Equal(t, uint64(0xFFFFFFFFFF), Uint40(b))

	PutUint40(b, 0)
	assert.Equal(t, uint64(0), Uint40(b))
}
