// Package phase1 defines the on-disk records of the first plotting phase:
// the table 1 entry, the bit-packed entries of tables 2 to 6, the empty
// terminal entry of table 7 and the compact projections used once y has been
// consumed for bucket placement.
//
// Layouts (little-endian):
//
//	Entry1        [y:5][x:4]                                   9 bytes
//	EntryMetaN    [y:38 bits|off lo:2 bits][off hi:1][pos:4][meta:4N]  10+4N bytes
//	Entry7        (empty)                                      0 bytes
//	TmpEntry1     [x:4]                                        4 bytes
//	TmpEntry      [pos:4][off:2]                               6 bytes
package phase1

import (
	"encoding/binary"
	"fmt"

	"github.com/ssargent/plotentry/pkg/bitfield"
)

// Field widths in bits
const (
	YBits   = 38
	OffBits = 10
)

// Layout of the off field split across the top of the y word and its own byte.
// The low offLowBits of off live in bits offLowShift.. of byte offSharedByte,
// the remaining bits of off fill byte offHighByte.
const (
	offLowBits    = 2
	offLowShift   = 6
	offSharedByte = 4
	offHighByte   = 5
)

// Disk sizes
const (
	Entry1Size = 9
	Entry7Size = 0
	// entryHeaderSize is the packed y/off/pos prefix of every EntryMetaN
	entryHeaderSize = 10
)

const (
	yMask   = (uint64(1) << YBits) - 1
	offMask = (uint16(1) << OffBits) - 1
)

// Entry1 is a table 1 record: the 38-bit y key and the x value that produced it.
type Entry1 struct {
	Y uint64 // 38 bit
	X uint32 // 32 bit
}

// DiskSize returns the encoded size of an Entry1
func (e *Entry1) DiskSize() int { return Entry1Size }

// Encode writes the low 5 bytes of y and then x into buf
func (e *Entry1) Encode(buf []byte) int {
	bitfield.PutUint40(buf[0:], e.Y)
	binary.LittleEndian.PutUint32(buf[5:], e.X)
	return Entry1Size
}

// Decode reads an Entry1 from buf
func (e *Entry1) Decode(buf []byte) int {
	e.Y = bitfield.Uint40(buf[0:])
	e.X = binary.LittleEndian.Uint32(buf[5:])
	return Entry1Size
}

// SortKey returns y
func (e *Entry1) SortKey() uint64 { return e.Y }

// Position is always zero, table 1 has no back-reference
func (e *Entry1) Position() uint64 { return 0 }

// Offset is always zero, table 1 has no back-reference
func (e *Entry1) Offset() uint16 { return 0 }

// MetaSize returns the width of the metadata carried forward from table 1
func (e *Entry1) MetaSize() int { return 4 }

// GetMeta writes x as 4 big-endian bytes. In table 1 x itself is the payload
// carried into table 2, and the matching function expects it in network
// byte order.
func (e *Entry1) GetMeta(dst []byte) int {
	binary.BigEndian.PutUint32(dst, e.X)
	return 4
}

// Validate reports whether y fits its bit budget
func (e *Entry1) Validate() error {
	if e.Y > yMask {
		return fmt.Errorf("y %#x exceeds %d bits", e.Y, YBits)
	}
	return nil
}

// Entry is the shape shared by the records of tables 2 to 7.
type Entry struct {
	Y   uint64 // 38 bit
	Pos uint32 // 32 bit
	Off uint16 // 10 bit
}

// SortKey returns y
func (e *Entry) SortKey() uint64 { return e.Y }

// Position returns pos
func (e *Entry) Position() uint64 { return uint64(e.Pos) }

// Offset returns off
func (e *Entry) Offset() uint16 { return e.Off }

// Validate reports whether y and off fit their bit budgets
func (e *Entry) Validate() error {
	if e.Y > yMask {
		return fmt.Errorf("y %#x exceeds %d bits", e.Y, YBits)
	}
	if e.Off > offMask {
		return fmt.Errorf("off %d exceeds %d bits", e.Off, OffBits)
	}
	return nil
}

// encodeHeader packs y, off and pos into buf[0:10].
func (e *Entry) encodeHeader(buf []byte) {
	bitfield.PutUint40(buf[0:], e.Y&yMask)
	buf[offSharedByte] = bitfield.Set8(buf[offSharedByte], offLowShift, offLowBits, byte(e.Off))
	buf[offHighByte] = byte(e.Off >> offLowBits)
	binary.LittleEndian.PutUint32(buf[6:], e.Pos)
}

// decodeHeader unpacks y, off and pos from buf[0:10].
func (e *Entry) decodeHeader(buf []byte) {
	e.Y = bitfield.Uint40(buf[0:]) & yMask
	e.Off = uint16(bitfield.Get8(buf[offSharedByte], offLowShift, offLowBits)) |
		uint16(buf[offHighByte])<<offLowBits
	e.Pos = binary.LittleEndian.Uint32(buf[6:])
}

// Entry7 is a table 7 record. Everything table 7 needs is already tracked
// upstream, so it encodes to nothing.
type Entry7 struct {
	Entry
}

// DiskSize returns zero
func (e *Entry7) DiskSize() int { return Entry7Size }

// Encode writes nothing
func (e *Entry7) Encode(buf []byte) int { return 0 }

// Decode reads nothing
func (e *Entry7) Decode(buf []byte) int { return 0 }

// MetaSize returns zero, table 7 carries no metadata
func (e *Entry7) MetaSize() int { return 0 }

// GetMeta copies nothing
func (e *Entry7) GetMeta(dst []byte) int { return 0 }

// SetMeta accepts and discards any metadata
func (e *Entry7) SetMeta(src []byte) error { return nil }
