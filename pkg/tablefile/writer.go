package tablefile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ssargent/plotentry/pkg/codec"
)

// Writer appends records of one kind to a table file
type Writer struct {
	file   *os.File
	writer *bufio.Writer
	config WriterConfig
	size   int
	mutex  sync.Mutex
	count  int64 // Records in the file, including buffered ones
}

// NewWriter opens or creates the table file described by config
func NewWriter(config WriterConfig) (*Writer, error) {
	if !config.Kind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrKindInvalid, config.Kind)
	}
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultBufferSize
	}

	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0750); err != nil {
		return nil, err
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if config.Truncate {
		flags |= os.O_TRUNC
	}
	file, err := os.OpenFile(config.FilePath, flags, 0600)
	if err != nil {
		return nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	size := config.Kind.DiskSize()
	var count int64
	if size > 0 {
		if stat.Size()%int64(size) != 0 {
			file.Close()
			return nil, fmt.Errorf("%w: %s has %d trailing bytes", ErrTruncated, config.FilePath, stat.Size()%int64(size))
		}
		count = stat.Size() / int64(size)
	}

	return &Writer{
		file:   file,
		writer: bufio.NewWriterSize(file, config.BufferSize),
		config: config,
		size:   size,
		count:  count,
	}, nil
}

// Append writes one record and returns its index in the file. Zero-size
// kinds store nothing, so they are not counted and every index is 0.
func (w *Writer) Append(rec codec.Encoder) (int64, error) {
	if rec.DiskSize() != w.size {
		return 0, fmt.Errorf("%w: %d byte record in %s table", ErrKindMismatch, rec.DiskSize(), w.config.Kind)
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.size == 0 {
		return w.count, nil
	}

	if err := codec.WriteEntry(w.writer, rec); err != nil {
		return 0, err
	}

	index := w.count
	w.count++
	return index, nil
}

// Flush writes buffered records to the file
func (w *Writer) Flush() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.writer.Flush()
}

// Sync flushes buffered records and fsyncs the file
func (w *Writer) Sync() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.sync()
}

func (w *Writer) sync() error {
	if err := w.writer.Flush(); err != nil {
		return err
	}
	return w.file.Sync()
}

// Close syncs and closes the table file
func (w *Writer) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if err := w.sync(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// Count returns the number of records in the file
func (w *Writer) Count() int64 {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.count
}

// Path returns the file path
func (w *Writer) Path() string {
	return w.config.FilePath
}
