package merge

import (
	"fmt"

	"github.com/goliatone/go-assemble/schema"
	"github.com/goliatone/go-assemble/value"
)

// MissingFieldError reports a required field that no source defines and that
// carries no default. Field is the dotted path from the document root.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("merge: missing required field %q", e.Field)
}

// TypeMismatchError reports a present value that cannot be coerced to its
// field's declared kind.
type TypeMismatchError struct {
	Field string
	Want  schema.FieldKind
	Bits  int // declared width when the field is numeric; zero means 64
	Got   value.Kind
}

func (e *TypeMismatchError) Error() string {
	if e == nil {
		return "<nil>"
	}
	want := e.Want.String()
	if e.Bits != 0 && e.Bits != 64 {
		want = fmt.Sprintf("%s%d", want, e.Bits)
	}
	return fmt.Sprintf("merge: field %q: cannot use %s value as %s", e.Field, e.Got, want)
}

// DocumentError reports a source whose top-level shape is not a mapping.
type DocumentError struct {
	Pos  int // position of the offending source in add order
	Kind value.Kind
}

func (e *DocumentError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("merge: source %d: top-level document is a %s, want a mapping", e.Pos, e.Kind)
}
