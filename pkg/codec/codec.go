package codec

import (
	"errors"
	"fmt"
	"io"
)

// Errors
var (
	ErrShortRead        = errors.New("short record read")
	ErrShortWrite       = errors.New("short record write")
	ErrMetaSizeMismatch = errors.New("meta data size mismatch")
)

// Encoder is implemented by record types that can be written to disk
type Encoder interface {
	DiskSize() int
	Encode(buf []byte) int
}

// Decoder is implemented by record types that can be read back from disk
type Decoder interface {
	DiskSize() int
	Decode(buf []byte) int
}

// Record is a fixed-width record that can be both written and read
type Record interface {
	Encoder
	Decoder
}

// Validator is implemented by records that can check their own bit budgets
type Validator interface {
	Validate() error
}

// WriteEntry encodes e into a buffer of exactly DiskSize bytes and performs a
// single write of that buffer to w.
func WriteEntry[T Encoder](w io.Writer, e T) error {
	if assertRanges {
		mustValidate(e)
	}

	size := e.DiskSize()
	buf := make([]byte, size)
	e.Encode(buf)

	n, err := w.Write(buf)
	if err != nil {
		return fmt.Errorf("%w: %d of %d bytes: %w", ErrShortWrite, n, size, err)
	}
	if n != size {
		return fmt.Errorf("%w: %d of %d bytes", ErrShortWrite, n, size)
	}
	return nil
}

// ReadEntry reads exactly DiskSize bytes from r and decodes them into e.
// If fewer bytes are available e is left unmodified.
func ReadEntry[T Decoder](r io.Reader, e T) error {
	size := e.DiskSize()
	buf := make([]byte, size)

	n, err := io.ReadFull(r, buf)
	if err != nil {
		return fmt.Errorf("%w: %d of %d bytes: %w", ErrShortRead, n, size, err)
	}

	e.Decode(buf)
	return nil
}

// MetaSizeError builds the error returned when metadata of the wrong width is
// injected into a record.
func MetaSizeError(got, want int) error {
	return fmt.Errorf("%w: got %d bytes, want %d", ErrMetaSizeMismatch, got, want)
}

func mustValidate(e any) {
	v, ok := e.(Validator)
	if !ok {
		return
	}
	if err := v.Validate(); err != nil {
		panic(fmt.Sprintf("codec: refusing to encode out-of-range record: %v", err))
	}
}
