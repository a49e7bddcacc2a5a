//go:build codecassert

package codec_test

import (
	"io"
	"testing"

	"github.com/ssargent/plotentry/pkg/codec"
	"github.com/ssargent/plotentry/pkg/phase1"
	"github.com/ssargent/plotentry/pkg/phase2"
	"github.com/stretchr/testify/assert"
)

func TestWriteEntry_AssertsRanges(t *testing.T) {
	assert.Panics(t, func() {
		_ = codec.WriteEntry(io.Discard, &phase1.Entry2{Entry: phase1.Entry{Off: 1024}})
	})
	assert.Panics(t, func() {
		_ = codec.WriteEntry(io.Discard, &phase1.Entry1{Y: 1 << phase1.YBits})
	})
	assert.Panics(t, func() {
		_ = codec.WriteEntry(io.Discard, &phase2.Entry{Off: 0xFFFF})
	})
	assert.NotPanics(t, func() {
		_ = codec.WriteEntry(io.Discard, &phase1.Entry2{Entry: phase1.Entry{Y: 1<<phase1.YBits - 1, Off: 1023}})
	})
}
