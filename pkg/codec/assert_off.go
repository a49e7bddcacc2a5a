//go:build !codecassert

package codec

const assertRanges = false
