// Package storage keeps individual table records in a pebble database, each
// under its own ksuid. Values are a one-byte table kind followed by the
// record's fixed-width encoding.
package storage

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/plotentry/pkg/codec"
	"github.com/ssargent/plotentry/pkg/table"
)

// Errors
var (
	ErrNotFound     = errors.New("record not found")
	ErrCorrupt      = errors.New("stored record is corrupt")
	ErrKindMismatch = errors.New("record does not match kind")
)

type Archive struct {
	db *pebble.DB
}

func NewArchive(path string) (*Archive, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &Archive{db: db}, nil
}

// Put stores rec as a record of kind and returns its new id
func (a *Archive) Put(kind table.Kind, rec codec.Encoder) (ksuid.KSUID, error) {
	id := ksuid.New()
	if err := a.Update(id, kind, rec); err != nil {
		return ksuid.Nil, err
	}
	return id, nil
}

// Get decodes the record stored under id
func (a *Archive) Get(id ksuid.KSUID) (table.Kind, codec.Record, error) {
	data, closer, err := a.db.Get(id.Bytes())
	if errors.Is(err, pebble.ErrNotFound) {
		return table.KindUnknown, nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return table.KindUnknown, nil, err
	}
	defer closer.Close()

	if len(data) == 0 {
		return table.KindUnknown, nil, fmt.Errorf("%w: %s has no kind tag", ErrCorrupt, id)
	}
	kind := table.Kind(data[0])
	rec := kind.New()
	if rec == nil {
		return table.KindUnknown, nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, id, table.ErrUnknownKind)
	}
	if len(data)-1 != rec.DiskSize() {
		return table.KindUnknown, nil, fmt.Errorf("%w: %s holds %d bytes for a %s record", ErrCorrupt, id, len(data)-1, kind)
	}
	if err := codec.ReadEntry(bytes.NewReader(data[1:]), rec); err != nil {
		return table.KindUnknown, nil, err
	}
	return kind, rec, nil
}

// Update replaces the record stored under id
func (a *Archive) Update(id ksuid.KSUID, kind table.Kind, rec codec.Encoder) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %s", table.ErrUnknownKind, kind)
	}
	if rec.DiskSize() != kind.DiskSize() {
		return fmt.Errorf("%w: %d byte record cannot be stored as %s", ErrKindMismatch, rec.DiskSize(), kind)
	}

	var buf bytes.Buffer
	buf.Grow(1 + rec.DiskSize())
	buf.WriteByte(byte(kind))
	if err := codec.WriteEntry(&buf, rec); err != nil {
		return err
	}
	return a.db.Set(id.Bytes(), buf.Bytes(), pebble.NoSync)
}

func (a *Archive) Delete(id ksuid.KSUID) error {
	return a.db.Delete(id.Bytes(), pebble.NoSync)
}

// Flush persists buffered writes
func (a *Archive) Flush() error {
	return a.db.Flush()
}

func (a *Archive) Close() error {
	return a.db.Close()
}
