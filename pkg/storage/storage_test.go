package storage

import (
	"testing"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/plotentry/pkg/phase1"
	"github.com/ssargent/plotentry/pkg/phase2"
	"github.com/ssargent/plotentry/pkg/table"
)

func newTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := NewArchive(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestArchive_PutGet(t *testing.T) {
	a := newTestArchive(t)

	e := phase1.Entry5{Entry: phase1.Entry{Y: 0x3F_FFFF_FFFF, Pos: 10, Off: 1023}}
	copy(e.Meta[:], "twelve bytes")

	id, err := a.Put(table.KindTable5, &e)
	require.NoError(t, err)
	assert.NotEqual(t, ksuid.Nil, id)

	kind, rec, err := a.Get(id)
	require.NoError(t, err)
	assert.Equal(t, table.KindTable5, kind)
	assert.Equal(t, &e, rec)
}

func TestArchive_Update(t *testing.T) {
	a := newTestArchive(t)

	id, err := a.Put(table.KindPhase2, &phase2.Entry{Key: 1})
	require.NoError(t, err)

	require.NoError(t, a.Update(id, table.KindPhase2, &phase2.Entry{Key: 2, Pos: 3, Off: 4}))

	_, rec, err := a.Get(id)
	require.NoError(t, err)
	assert.Equal(t, &phase2.Entry{Key: 2, Pos: 3, Off: 4}, rec)
}

func TestArchive_TerminalRecord(t *testing.T) {
	a := newTestArchive(t)

	id, err := a.Put(table.KindTable7, &phase1.Entry7{Entry: phase1.Entry{Y: 5}})
	require.NoError(t, err)

	kind, rec, err := a.Get(id)
	require.NoError(t, err)
	assert.Equal(t, table.KindTable7, kind)
	// nothing of a table 7 record is stored
	assert.Equal(t, &phase1.Entry7{}, rec)
}

func TestArchive_Errors(t *testing.T) {
	a := newTestArchive(t)

	_, _, err := a.Get(ksuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = a.Put(table.KindTable2, &phase1.Entry1{})
	assert.ErrorIs(t, err, ErrKindMismatch)

	_, err = a.Put(table.KindUnknown, &phase1.Entry1{})
	assert.ErrorIs(t, err, table.ErrUnknownKind)
}

func TestArchive_Delete(t *testing.T) {
	a := newTestArchive(t)

	id, err := a.Put(table.KindTmp, &phase1.TmpEntry{Pos: 1, Off: 2})
	require.NoError(t, err)
	require.NoError(t, a.Delete(id))

	_, _, err = a.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, a.Flush())
}
