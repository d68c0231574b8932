package assemble

import (
	"encoding/json"
	"strings"

	"github.com/goliatone/go-assemble/codec"
	"github.com/goliatone/go-assemble/merge"
	"github.com/goliatone/go-assemble/value"
)

// Trace captures provenance for a dotted path: what every source contributes
// and the value that takes effect after layering.
type Trace struct {
	Path    string       `json:"path"`
	Sources []Provenance `json:"sources"`
	Value   value.Value  `json:"value"`
	Found   bool         `json:"found"`
}

// Provenance details one source's contribution to a traced path.
type Provenance struct {
	SourceID string       `json:"source_id"`
	Origin   string       `json:"origin"`
	Format   codec.Format `json:"format,omitempty"`
	Position int          `json:"position"`
	Value    value.Value  `json:"value"`
	Found    bool         `json:"found"`
}

// Trace reports how each registered source contributes to the dotted path and
// which value wins after folding. It never fails: paths no source defines
// report Found == false, and a fold error simply leaves the effective value
// unset.
func (b *Builder[T]) Trace(path string) Trace {
	trace := Trace{Path: path}
	for _, src := range b.sources {
		prov := Provenance{
			SourceID: src.ID,
			Origin:   src.Origin,
			Format:   src.Format,
			Position: src.Position,
		}
		if v, ok := lookupPath(src.value, path); ok {
			prov.Value = v.Clone()
			prov.Found = true
		}
		trace.Sources = append(trace.Sources, prov)
	}
	if merged, err := merge.Fold(b.documents()); err == nil {
		if v, ok := lookupPath(merged, path); ok {
			trace.Value = v
			trace.Found = true
		}
	}
	return trace
}

func lookupPath(doc value.Value, path string) (value.Value, bool) {
	current := doc
	for _, segment := range strings.Split(path, ".") {
		next, ok := current.Get(segment)
		if !ok {
			return value.Value{}, false
		}
		current = next
	}
	return current, true
}

// ToJSON serialises the trace for logging or transport helpers.
func (t Trace) ToJSON() ([]byte, error) {
	type alias Trace
	return json.Marshal(alias(t))
}

// TraceFromJSON deserialises a payload previously produced by ToJSON.
func TraceFromJSON(payload []byte) (Trace, error) {
	type alias Trace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return Trace{}, err
	}
	return Trace(trace), nil
}
