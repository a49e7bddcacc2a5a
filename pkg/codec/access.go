package codec

// Keyed is implemented by records carrying a y sort key
type Keyed interface {
	SortKey() uint64
}

// Positioned is implemented by records carrying a pos back-reference
type Positioned interface {
	Position() uint64
}

// MetaGetter is implemented by records whose metadata can be extracted
type MetaGetter interface {
	MetaSize() int
	GetMeta(dst []byte) int
}

// MetaSetter is implemented by records whose metadata can be injected
type MetaSetter interface {
	SetMeta(src []byte) error
}

// GetY returns the y key of e.
func GetY[T Keyed](e T) uint64 {
	return e.SortKey()
}

// GetPos returns the pos back-reference of e.
func GetPos[T Positioned](e T) uint64 {
	return e.Position()
}

// GetMeta copies the metadata of e into dst and returns the number of bytes
// copied. dst must hold at least e.MetaSize() bytes.
func GetMeta[T MetaGetter](e T, dst []byte) int {
	return e.GetMeta(dst)
}

// SetMeta copies src into the metadata of e. The error wraps
// ErrMetaSizeMismatch when len(src) is not the width e declares.
func SetMeta[T MetaSetter](e T, src []byte) error {
	return e.SetMeta(src)
}

// AppendMeta appends the metadata of e to dst.
func AppendMeta[T MetaGetter](dst []byte, e T) []byte {
	n := len(dst)
	size := e.MetaSize()
	if cap(dst)-n < size {
		grown := make([]byte, n, n+size)
		copy(grown, dst)
		dst = grown
	}
	dst = dst[:n+size]
	e.GetMeta(dst[n:])
	return dst
}
