//go:build codecassert

package codec

// assertRanges makes WriteEntry validate every record before encoding it.
const assertRanges = true
