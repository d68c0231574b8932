// Package hydrate materializes a resolved generic document into the caller's
// typed record.
package hydrate

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-assemble/value"
)

// Materialize decodes doc into a freshly constructed T by round-tripping
// through JSON. The document is expected to be fully resolved: shape errors
// at this stage indicate a resolver bug and are wrapped rather than
// classified.
func Materialize[T any](doc value.Value) (T, error) {
	var out T
	buffer, err := json.Marshal(doc)
	if err != nil {
		return out, fmt.Errorf("hydrate: encode resolved document: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(buffer))
	// Keep integers intact when they land in any-typed fields.
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("hydrate: decode into %T: %w", out, err)
	}
	return out, nil
}
