package phase1

import "github.com/ssargent/plotentry/pkg/codec"

// Metadata widths in bytes
const (
	Meta2Size = 2 * 4
	Meta3Size = 3 * 4
	Meta4Size = 4 * 4
)

// Disk sizes of the metadata-carrying entries
const (
	EntryMeta2Size = entryHeaderSize + Meta2Size
	EntryMeta3Size = entryHeaderSize + Meta3Size
	EntryMeta4Size = entryHeaderSize + Meta4Size
)

// Table aliases. Each table level instantiates the metadata width the next
// match step consumes.
type (
	Entry2 = EntryMeta2
	Entry3 = EntryMeta4
	Entry4 = EntryMeta4
	Entry5 = EntryMeta3
	Entry6 = EntryMeta2
)

// EntryMeta2 is an Entry carrying 8 bytes of metadata
type EntryMeta2 struct {
	Entry
	Meta [Meta2Size]byte
}

// DiskSize returns the encoded width of an EntryMeta2
func (e *EntryMeta2) DiskSize() int { return EntryMeta2Size }

// Encode writes the packed header followed by the metadata block
func (e *EntryMeta2) Encode(buf []byte) int { return encodeMeta(buf, &e.Entry, e.Meta[:]) }

// Decode reads the packed header and the metadata block
func (e *EntryMeta2) Decode(buf []byte) int { return decodeMeta(buf, &e.Entry, e.Meta[:]) }

// MetaSize returns the width of the metadata block
func (e *EntryMeta2) MetaSize() int { return Meta2Size }

// GetMeta copies the metadata block verbatim into dst
func (e *EntryMeta2) GetMeta(dst []byte) int { return copy(dst[:Meta2Size], e.Meta[:]) }

// SetMeta replaces the metadata block. src must be exactly Meta2Size bytes.
func (e *EntryMeta2) SetMeta(src []byte) error { return setMeta(e.Meta[:], src) }

// EntryMeta3 is an Entry carrying 12 bytes of metadata
type EntryMeta3 struct {
	Entry
	Meta [Meta3Size]byte
}

// DiskSize returns the encoded width of an EntryMeta3
func (e *EntryMeta3) DiskSize() int { return EntryMeta3Size }

// Encode writes the packed header followed by the metadata block
func (e *EntryMeta3) Encode(buf []byte) int { return encodeMeta(buf, &e.Entry, e.Meta[:]) }

// Decode reads the packed header and the metadata block
func (e *EntryMeta3) Decode(buf []byte) int { return decodeMeta(buf, &e.Entry, e.Meta[:]) }

// MetaSize returns the width of the metadata block
func (e *EntryMeta3) MetaSize() int { return Meta3Size }

// GetMeta copies the metadata block verbatim into dst
func (e *EntryMeta3) GetMeta(dst []byte) int { return copy(dst[:Meta3Size], e.Meta[:]) }

// SetMeta replaces the metadata block. src must be exactly Meta3Size bytes.
func (e *EntryMeta3) SetMeta(src []byte) error { return setMeta(e.Meta[:], src) }

// EntryMeta4 is an Entry carrying 16 bytes of metadata
type EntryMeta4 struct {
	Entry
	Meta [Meta4Size]byte
}

// DiskSize returns the encoded width of an EntryMeta4
func (e *EntryMeta4) DiskSize() int { return EntryMeta4Size }

// Encode writes the packed header followed by the metadata block
func (e *EntryMeta4) Encode(buf []byte) int { return encodeMeta(buf, &e.Entry, e.Meta[:]) }

// Decode reads the packed header and the metadata block
func (e *EntryMeta4) Decode(buf []byte) int { return decodeMeta(buf, &e.Entry, e.Meta[:]) }

// MetaSize returns the width of the metadata block
func (e *EntryMeta4) MetaSize() int { return Meta4Size }

// GetMeta copies the metadata block verbatim into dst
func (e *EntryMeta4) GetMeta(dst []byte) int { return copy(dst[:Meta4Size], e.Meta[:]) }

// SetMeta replaces the metadata block. src must be exactly Meta4Size bytes.
func (e *EntryMeta4) SetMeta(src []byte) error { return setMeta(e.Meta[:], src) }

func encodeMeta(buf []byte, e *Entry, meta []byte) int {
	e.encodeHeader(buf)
	copy(buf[entryHeaderSize:], meta)
	return entryHeaderSize + len(meta)
}

func decodeMeta(buf []byte, e *Entry, meta []byte) int {
	e.decodeHeader(buf)
	copy(meta, buf[entryHeaderSize:entryHeaderSize+len(meta)])
	return entryHeaderSize + len(meta)
}

func setMeta(meta, src []byte) error {
	if len(src) != len(meta) {
		return codec.MetaSizeError(len(src), len(meta))
	}
	copy(meta, src)
	return nil
}
