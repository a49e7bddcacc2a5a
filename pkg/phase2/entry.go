// Package phase2 defines the on-disk record of the second plotting phase.
//
//	Entry  [key:4][pos:4][off:2]  10 bytes, little-endian
//
// Unlike phase 1 there is no sub-byte packing: off keeps its 10 bits in a
// full 16-bit slot.
package phase2

import (
	"encoding/binary"
	"fmt"
)

// EntrySize is the encoded size of an Entry
const EntrySize = 10

// OffBits is the width of the off field in bits
const OffBits = 10

// Entry is a phase 2 record
type Entry struct {
	Key uint32
	Pos uint32
	Off uint16 // 10 bit
}

// DiskSize returns the encoded size of an Entry
func (e *Entry) DiskSize() int { return EntrySize }

// Encode writes key, pos and off into buf
func (e *Entry) Encode(buf []byte) int {
	binary.LittleEndian.PutUint32(buf[0:], e.Key)
	binary.LittleEndian.PutUint32(buf[4:], e.Pos)
	binary.LittleEndian.PutUint16(buf[8:], e.Off)
	return EntrySize
}

// Decode reads key, pos and off from buf
func (e *Entry) Decode(buf []byte) int {
	e.Key = binary.LittleEndian.Uint32(buf[0:])
	e.Pos = binary.LittleEndian.Uint32(buf[4:])
	e.Off = binary.LittleEndian.Uint16(buf[8:])
	return EntrySize
}

// Position returns pos
func (e *Entry) Position() uint64 { return uint64(e.Pos) }

// Validate reports whether off fits its bit budget
func (e *Entry) Validate() error {
	if e.Off >= 1<<OffBits {
		return fmt.Errorf("off %d exceeds %d bits", e.Off, OffBits)
	}
	return nil
}
