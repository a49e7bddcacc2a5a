package tablefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ssargent/plotentry/pkg/codec"
	"github.com/ssargent/plotentry/pkg/table"
)

// Reader provides sequential and random access to the records of a table file
type Reader struct {
	file   *os.File
	reader *bufio.Reader
	config ReaderConfig
	size   int
	index  int64 // Index of the next record ReadNext returns
}

// NewReader opens the table file described by config
func NewReader(config ReaderConfig) (*Reader, error) {
	if !config.Kind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrKindInvalid, config.Kind)
	}
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultBufferSize
	}

	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, err
	}

	r := &Reader{
		file:   file,
		config: config,
		size:   config.Kind.DiskSize(),
	}
	if err := r.SeekRecord(config.StartRecord); err != nil {
		file.Close()
		return nil, err
	}
	return r, nil
}

// ReadNext reads the next record. It returns io.EOF after the last complete
// record and ErrTruncated if the file ends partway through a record.
// Zero-size kinds store nothing, so ReadNext returns io.EOF immediately.
func (r *Reader) ReadNext() (codec.Record, error) {
	rec := r.config.Kind.New()
	if err := r.ReadInto(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ReadInto decodes the next record into rec, which must match the reader's kind
func (r *Reader) ReadInto(rec codec.Decoder) error {
	if rec.DiskSize() != r.size {
		return fmt.Errorf("%w: %d byte record in %s table", ErrKindMismatch, rec.DiskSize(), r.config.Kind)
	}
	if r.size == 0 {
		return io.EOF
	}

	if err := codec.ReadEntry(r.reader, rec); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: record %d: %w", ErrTruncated, r.index, err)
		}
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return err
	}

	r.index++
	return nil
}

// ReadAt reads the record at index without moving the sequential position
func (r *Reader) ReadAt(index int64) (codec.Record, error) {
	if index < 0 || r.size == 0 {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}

	rec := r.config.Kind.New()
	section := io.NewSectionReader(r.file, index*int64(r.size), int64(r.size))
	if err := codec.ReadEntry(section, rec); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %d", ErrOutOfRange, index)
		}
		return nil, err
	}
	return rec, nil
}

// SeekRecord positions the reader before the record at index
func (r *Reader) SeekRecord(index int64) error {
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	if _, err := r.file.Seek(index*int64(r.size), io.SeekStart); err != nil {
		return err
	}

	r.reader = bufio.NewReaderSize(r.file, r.config.BufferSize) // Recreate reader to clear buffer
	r.index = index
	return nil
}

// Index returns the index of the next record ReadNext returns
func (r *Reader) Index() int64 {
	return r.index
}

// Kind returns the record kind of the file
func (r *Reader) Kind() table.Kind {
	return r.config.Kind
}

// Iterator returns a streaming iterator over the remaining records
func (r *Reader) Iterator() RecordIterator {
	return &recordIterator{reader: r}
}

// Close closes the table file
func (r *Reader) Close() error {
	return r.file.Close()
}

// recordIterator implements RecordIterator for streaming access
type recordIterator struct {
	reader *Reader
	record codec.Record
	err    error
}

func (it *recordIterator) Next() bool {
	it.record, it.err = it.reader.ReadNext()
	return it.err == nil
}

func (it *recordIterator) Record() codec.Record {
	return it.record
}

// Err returns the error that stopped iteration, or nil at a clean end of file
func (it *recordIterator) Err() error {
	if errors.Is(it.err, io.EOF) {
		return nil
	}
	return it.err
}

// Stat reports how many complete records of kind a table file holds
func Stat(path string, kind table.Kind) (Stats, error) {
	if !kind.Valid() {
		return Stats{}, fmt.Errorf("%w: %s", ErrKindInvalid, kind)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Kind: kind, Size: info.Size()}
	size := int64(kind.DiskSize())
	if size == 0 {
		stats.TrailingBytes = stats.Size
		return stats, nil
	}
	stats.Records = stats.Size / size
	stats.TrailingBytes = stats.Size % size
	return stats, nil
}
