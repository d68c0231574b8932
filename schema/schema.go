// Package schema describes the field layout of a target record type: names,
// declared kinds, defaults, and nested layouts. The merge engine consumes the
// Descriptor interface and never inspects the target type directly.
package schema

import (
	"fmt"

	"github.com/goliatone/go-assemble/value"
)

// FieldKind classifies the declared type of a field.
type FieldKind int

const (
	KindAny FieldKind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindText
	KindSequence
	KindRecord
)

func (k FieldKind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindSequence:
		return "sequence"
	case KindRecord:
		return "record"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// Field describes one field of a record type.
type Field struct {
	Name       string
	Kind       FieldKind
	Bits       int         // numeric width in bits; zero means 64
	Elem       FieldKind   // element kind when Kind == KindSequence
	ElemBits   int         // element width when Elem is numeric; zero means 64
	Default    value.Value // fallback applied when no source defines the field
	HasDefault bool
	Optional   bool       // absent without a default resolves to nothing instead of failing
	Schema     Descriptor // nested layout when Kind == KindRecord
}

// Descriptor exposes the ordered field layout of a record type.
type Descriptor interface {
	Fields() []Field
}

// FieldList is the plain Descriptor used by derived and hand-built layouts.
type FieldList []Field

func (l FieldList) Fields() []Field { return l }

// Describer lets a record type publish its own layout instead of relying on
// reflection, the way a generated descriptor would.
type Describer interface {
	Schema() Descriptor
}
