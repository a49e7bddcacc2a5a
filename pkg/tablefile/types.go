// Package tablefile reads and writes headerless table files: records of a
// single kind laid end to end, each moved with codec.ReadEntry or
// codec.WriteEntry.
package tablefile

import (
	"errors"

	"github.com/ssargent/plotentry/pkg/codec"
	"github.com/ssargent/plotentry/pkg/table"
)

// DefaultBufferSize is used when a config leaves BufferSize unset
const DefaultBufferSize = 64 * 1024

// WriterConfig holds configuration for a table writer
type WriterConfig struct {
	FilePath   string     // Path to the table file
	Kind       table.Kind // Record type stored in the file
	BufferSize int        // Write buffer size
	Truncate   bool       // Start a new file instead of appending
}

// ReaderConfig holds configuration for a table reader
type ReaderConfig struct {
	FilePath    string     // Path to the table file
	Kind        table.Kind // Record type stored in the file
	BufferSize  int        // Read buffer size
	StartRecord int64      // Index of the first record to read
}

// Stats describes the contents of a table file
type Stats struct {
	Kind          table.Kind
	Size          int64 // File size in bytes
	Records       int64 // Complete records
	TrailingBytes int64 // Bytes of an incomplete final record
}

// RecordIterator provides streaming access to records
type RecordIterator interface {
	Next() bool
	Record() codec.Record
	Err() error
}

// Errors
var (
	ErrTruncated    = errors.New("table file ends with a partial record")
	ErrKindInvalid  = errors.New("invalid record kind for table file")
	ErrOutOfRange   = errors.New("record index out of range")
	ErrKindMismatch = errors.New("record does not match table kind")
)
