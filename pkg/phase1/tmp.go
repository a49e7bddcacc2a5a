package phase1

import (
	"encoding/binary"
	"fmt"
)

// Projection sizes
const (
	TmpEntry1Size = 4
	TmpEntrySize  = 6
)

// TmpEntry1 keeps only x of an Entry1, for passes where y has already been
// used for bucket placement.
type TmpEntry1 struct {
	X uint32 // 32 bit
}

// Assign copies x from entry
func (t *TmpEntry1) Assign(entry *Entry1) {
	t.X = entry.X
}

// DiskSize returns the encoded width of a TmpEntry1
func (t *TmpEntry1) DiskSize() int { return TmpEntry1Size }

// Encode writes x into buf
func (t *TmpEntry1) Encode(buf []byte) int {
	binary.LittleEndian.PutUint32(buf, t.X)
	return TmpEntry1Size
}

// Decode reads x from buf
func (t *TmpEntry1) Decode(buf []byte) int {
	t.X = binary.LittleEndian.Uint32(buf)
	return TmpEntry1Size
}

// TmpEntry keeps only the pos/off back-reference of an Entry.
type TmpEntry struct {
	Pos uint32 // 32 bit
	Off uint16 // 10 bit
}

// Assign copies pos and off from entry
func (t *TmpEntry) Assign(entry *Entry) {
	t.Pos = entry.Pos
	t.Off = entry.Off
}

// DiskSize returns the encoded width of a TmpEntry
func (t *TmpEntry) DiskSize() int { return TmpEntrySize }

// Encode writes pos and then off into buf
func (t *TmpEntry) Encode(buf []byte) int {
	binary.LittleEndian.PutUint32(buf[0:], t.Pos)
	binary.LittleEndian.PutUint16(buf[4:], t.Off)
	return TmpEntrySize
}

// Decode reads pos and off from buf
func (t *TmpEntry) Decode(buf []byte) int {
	t.Pos = binary.LittleEndian.Uint32(buf[0:])
	t.Off = binary.LittleEndian.Uint16(buf[4:])
	return TmpEntrySize
}

// Position returns pos
func (t *TmpEntry) Position() uint64 { return uint64(t.Pos) }

// Validate reports whether off fits its bit budget
func (t *TmpEntry) Validate() error {
	if t.Off > offMask {
		return fmt.Errorf("off %d exceeds %d bits", t.Off, OffBits)
	}
	return nil
}
