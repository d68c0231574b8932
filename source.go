package assemble

import (
	"github.com/goliatone/go-assemble/codec"
	"github.com/goliatone/go-assemble/value"
)

const (
	originBytes = "<bytes>"
	originValue = "<value>"
)

// Source records one registered configuration contribution. Position is the
// add-order priority: later sources override earlier ones. Sources are
// immutable once registered.
type Source struct {
	ID       string
	Origin   string // file path, or a marker for byte and value sources
	Format   codec.Format
	Position int

	value value.Value
}

// Value returns a detached copy of the decoded document for this source.
func (s Source) Value() value.Value {
	return s.value.Clone()
}
