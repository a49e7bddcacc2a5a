package table

import (
	"testing"

	"github.com/ssargent/plotentry/pkg/phase1"
	"github.com/ssargent/plotentry/pkg/phase2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind(" T3 ")
	require.NoError(t, err)
	assert.Equal(t, KindTable3, got)

	_, err = ParseKind("t8")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKind_DiskSize(t *testing.T) {
	testCases := []struct {
		kind Kind
		size int
		meta int
	}{
		{KindTable1, 9, 4},
		{KindTable2, 18, 8},
		{KindTable3, 26, 16},
		{KindTable4, 26, 16},
		{KindTable5, 22, 12},
		{KindTable6, 18, 8},
		{KindTable7, 0, 0},
		{KindTmp1, 4, 0},
		{KindTmp, 6, 0},
		{KindPhase2, 10, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.size, tc.kind.DiskSize())
			assert.Equal(t, tc.meta, tc.kind.MetaSize())
			assert.True(t, tc.kind.Valid())
		})
	}

	assert.Equal(t, -1, KindUnknown.DiskSize())
	assert.Nil(t, Kind(200).New())
	assert.False(t, Kind(200).Valid())
	assert.Equal(t, "kind(200)", Kind(200).String())
}

func TestKind_New(t *testing.T) {
	assert.IsType(t, &phase1.Entry1{}, KindTable1.New())
	assert.IsType(t, &phase1.EntryMeta4{}, KindTable3.New())
	assert.IsType(t, &phase1.EntryMeta3{}, KindTable5.New())
	assert.IsType(t, &phase1.Entry7{}, KindTable7.New())
	assert.IsType(t, &phase2.Entry{}, KindPhase2.New())
}

func TestMeta(t *testing.T) {
	g, s := Meta(KindTable1.New())
	assert.NotNil(t, g)
	assert.Nil(t, s)

	g, s = Meta(KindTable2.New())
	assert.NotNil(t, g)
	assert.NotNil(t, s)

	g, s = Meta(KindTable7.New())
	assert.NotNil(t, g)
	require.NotNil(t, s)
	assert.NoError(t, s.SetMeta([]byte{1, 2, 3}))

	g, s = Meta(KindPhase2.New())
	assert.Nil(t, g)
	assert.Nil(t, s)
}
