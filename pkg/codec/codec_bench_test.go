//go:build bench
// +build bench

package codec_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/ssargent/plotentry/pkg/codec"
	"github.com/ssargent/plotentry/pkg/phase1"
	"github.com/ssargent/plotentry/pkg/phase2"
)

func BenchmarkWriteEntry(b *testing.B) {
	benchmarks := []struct {
		name  string
		entry codec.Record
	}{
		{"entry1", &phase1.Entry1{Y: 123456789, X: 42}},
		{"entry2", &phase1.Entry2{Entry: phase1.Entry{Y: 987654321, Pos: 5, Off: 1000}}},
		{"entry4", &phase1.Entry4{Entry: phase1.Entry{Y: 987654321, Pos: 5, Off: 1000}}},
		{"tmp entry", &phase1.TmpEntry{Pos: 5, Off: 1000}},
		{"phase2", &phase2.Entry{Key: 1, Pos: 2, Off: 3}},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := codec.WriteEntry(io.Discard, bm.entry); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkReadEntry(b *testing.B) {
	src := phase1.Entry3{Entry: phase1.Entry{Y: 987654321, Pos: 5, Off: 1000}}
	var buf bytes.Buffer
	if err := codec.WriteEntry(&buf, &src); err != nil {
		b.Fatal(err)
	}
	data := buf.Bytes()
	r := bytes.NewReader(data)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Reset(data)
		var e phase1.Entry3
		if err := codec.ReadEntry(r, &e); err != nil {
			b.Fatal(err)
		}
	}
}
