package codec_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/ssargent/plotentry/pkg/codec"
	"github.com/ssargent/plotentry/pkg/phase1"
	"github.com/ssargent/plotentry/pkg/phase2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shortWriter accepts at most limit bytes per call without reporting an error
type shortWriter struct {
	limit int
	buf   bytes.Buffer
}

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		p = p[:w.limit]
	}
	return w.buf.Write(p)
}

func TestWriteReadEntry_RoundTrip(t *testing.T) {
	meta2 := phase1.EntryMeta2{Entry: phase1.Entry{Y: 0x2A_0000_0001, Pos: 77, Off: 513}}
	copy(meta2.Meta[:], "abcdefgh")
	meta3 := phase1.EntryMeta3{Entry: phase1.Entry{Y: 3, Pos: 4, Off: 5}}
	copy(meta3.Meta[:], "abcdefghijkl")
	meta4 := phase1.EntryMeta4{Entry: phase1.Entry{Y: 6, Pos: 7, Off: 1023}}
	copy(meta4.Meta[:], "abcdefghijklmnop")

	testCases := []struct {
		name string
		in   codec.Record
		out  codec.Record
		size int
	}{
		{"entry1", &phase1.Entry1{Y: 0x3F_0000_00FF, X: 42}, &phase1.Entry1{}, 9},
		{"entry meta2", &meta2, &phase1.EntryMeta2{}, 18},
		{"entry meta3", &meta3, &phase1.EntryMeta3{}, 22},
		{"entry meta4", &meta4, &phase1.EntryMeta4{}, 26},
		{"tmp entry1", &phase1.TmpEntry1{X: 9}, &phase1.TmpEntry1{}, 4},
		{"tmp entry", &phase1.TmpEntry{Pos: 1, Off: 2}, &phase1.TmpEntry{}, 6},
		{"phase2 entry", &phase2.Entry{Key: 1, Pos: 2, Off: 3}, &phase2.Entry{}, 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, codec.WriteEntry(&buf, tc.in))
			assert.Equal(t, tc.size, buf.Len())

			require.NoError(t, codec.ReadEntry(&buf, tc.out))
			assert.Equal(t, tc.in, tc.out)
			assert.Equal(t, 0, buf.Len())
		})
	}
}

func TestWriteEntry_Sequential(t *testing.T) {
	var buf bytes.Buffer
	for i := uint32(0); i < 100; i++ {
		e := phase2.Entry{Key: i, Pos: i * 2, Off: uint16(i % 1024)}
		require.NoError(t, codec.WriteEntry(&buf, &e))
	}
	assert.Equal(t, 100*phase2.EntrySize, buf.Len())

	for i := uint32(0); i < 100; i++ {
		var e phase2.Entry
		require.NoError(t, codec.ReadEntry(&buf, &e))
		assert.Equal(t, phase2.Entry{Key: i, Pos: i * 2, Off: uint16(i % 1024)}, e)
	}

	var e phase2.Entry
	err := codec.ReadEntry(&buf, &e)
	assert.ErrorIs(t, err, codec.ErrShortRead)
	assert.ErrorIs(t, err, io.EOF)
}

func TestWriteEntry_ShortWrite(t *testing.T) {
	w := &shortWriter{limit: 5}
	err := codec.WriteEntry(w, &phase1.Entry1{Y: 1, X: 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, codec.ErrShortWrite)
}

func TestWriteEntry_WriterError(t *testing.T) {
	boom := errors.New("disk on fire")
	err := codec.WriteEntry(errWriter{boom}, &phase2.Entry{})
	assert.ErrorIs(t, err, codec.ErrShortWrite)
	assert.ErrorIs(t, err, boom)
}

type errWriter struct{ err error }

func (w errWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestReadEntry_ShortRead(t *testing.T) {
	original := phase1.EntryMeta2{Entry: phase1.Entry{Y: 5, Pos: 6, Off: 7}}
	original.Meta[0] = 0x99

	for size := 0; size < phase1.EntryMeta2Size; size++ {
		e := original
		r := bytes.NewReader(bytes.Repeat([]byte{0xFF}, size))

		err := codec.ReadEntry(r, &e)
		require.Error(t, err, "size %d", size)
		assert.ErrorIs(t, err, codec.ErrShortRead)
		assert.Equal(t, original, e, "record must be unchanged after short read of %d bytes", size)
	}
}

func TestReadEntry_UnexpectedEOF(t *testing.T) {
	var e phase1.Entry1
	err := codec.ReadEntry(bytes.NewReader([]byte{1, 2, 3}), &e)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadEntry_ReaderError(t *testing.T) {
	boom := errors.New("bad sector")
	var e phase2.Entry
	err := codec.ReadEntry(iotest.ErrReader(boom), &e)
	assert.ErrorIs(t, err, codec.ErrShortRead)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, phase2.Entry{}, e)
}

func TestReadEntry_OneByteReader(t *testing.T) {
	var buf bytes.Buffer
	in := phase1.TmpEntry{Pos: 0xFFFFFFFF, Off: 1000}
	require.NoError(t, codec.WriteEntry(&buf, &in))

	var out phase1.TmpEntry
	require.NoError(t, codec.ReadEntry(iotest.OneByteReader(&buf), &out))
	assert.Equal(t, in, out)
}

func TestTerminalEntry_ZeroBytes(t *testing.T) {
	var buf bytes.Buffer
	e := phase1.Entry7{Entry: phase1.Entry{Y: 1, Pos: 2, Off: 3}}

	for i := 0; i < 3; i++ {
		require.NoError(t, codec.WriteEntry(&buf, &e))
		assert.Equal(t, 0, buf.Len())
	}

	for i := 0; i < 3; i++ {
		require.NoError(t, codec.ReadEntry(&buf, &e))
		assert.Equal(t, phase1.Entry{Y: 1, Pos: 2, Off: 3}, e.Entry)
	}

	// even an exhausted reader is fine
	require.NoError(t, codec.ReadEntry(bytes.NewReader(nil), &e))
}
