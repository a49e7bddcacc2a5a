// Package table enumerates the record types of every plot table so tooling
// can pick one at runtime from a name or a stored tag.
package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ssargent/plotentry/pkg/codec"
	"github.com/ssargent/plotentry/pkg/phase1"
	"github.com/ssargent/plotentry/pkg/phase2"
)

// ErrUnknownKind is returned for names or tags that match no record type
var ErrUnknownKind = errors.New("unknown table kind")

// Kind identifies the record type stored in a table file.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindTable1
	KindTable2
	KindTable3
	KindTable4
	KindTable5
	KindTable6
	KindTable7
	KindTmp1 // x-only projection of table 1
	KindTmp  // pos/off projection of tables 2 to 7
	KindPhase2
)

var kindNames = map[Kind]string{
	KindTable1: "t1",
	KindTable2: "t2",
	KindTable3: "t3",
	KindTable4: "t4",
	KindTable5: "t5",
	KindTable6: "t6",
	KindTable7: "t7",
	KindTmp1:   "tmp1",
	KindTmp:    "tmp",
	KindPhase2: "p2",
}

// Kinds returns every known kind in tag order.
func Kinds() []Kind {
	return []Kind{
		KindTable1, KindTable2, KindTable3, KindTable4, KindTable5,
		KindTable6, KindTable7, KindTmp1, KindTmp, KindPhase2,
	}
}

// ParseKind resolves a kind by its short name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// String returns the short name of k
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k names a record type
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// New returns a zero record of kind k, or nil for an unknown kind.
func (k Kind) New() codec.Record {
	switch k {
	case KindTable1:
		return &phase1.Entry1{}
	case KindTable2:
		return &phase1.Entry2{}
	case KindTable3:
		return &phase1.Entry3{}
	case KindTable4:
		return &phase1.Entry4{}
	case KindTable5:
		return &phase1.Entry5{}
	case KindTable6:
		return &phase1.Entry6{}
	case KindTable7:
		return &phase1.Entry7{}
	case KindTmp1:
		return &phase1.TmpEntry1{}
	case KindTmp:
		return &phase1.TmpEntry{}
	case KindPhase2:
		return &phase2.Entry{}
	}
	return nil
}

// DiskSize returns the encoded size of a record of kind k, or -1 for an
// unknown kind.
func (k Kind) DiskSize() int {
	r := k.New()
	if r == nil {
		return -1
	}
	return r.DiskSize()
}

// MetaSize returns the metadata width of kind k. Kinds without a metadata
// strategy report zero.
func (k Kind) MetaSize() int {
	if g, ok := k.New().(codec.MetaGetter); ok {
		return g.MetaSize()
	}
	return 0
}

// Meta returns the metadata extraction and injection strategies of r. Either
// may be nil when the record type does not support that direction.
func Meta(r codec.Record) (codec.MetaGetter, codec.MetaSetter) {
	g, _ := r.(codec.MetaGetter)
	s, _ := r.(codec.MetaSetter)
	return g, s
}
