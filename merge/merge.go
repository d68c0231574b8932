// Package merge folds an ordered list of generic documents into one and
// resolves the result against a schema descriptor. Later documents override
// earlier ones: mappings merge key by key recursively, scalars and sequences
// are replaced wholesale.
package merge

import "github.com/goliatone/go-assemble/value"

// Fold merges sources in ascending priority order (first = weakest) into a
// single mapping. Keys absent from an incoming document are left untouched.
// Null documents (an empty file decodes to one) are treated as empty
// mappings; any other non-mapping top level fails with a DocumentError.
func Fold(sources []value.Value) (value.Value, error) {
	acc := value.Mapping()
	for i, src := range sources {
		if src.IsNull() {
			continue
		}
		if src.Kind() != value.KindMapping {
			return value.Value{}, &DocumentError{Pos: i, Kind: src.Kind()}
		}
		acc = deepMerge(acc, src)
	}
	return acc, nil
}

func deepMerge(dst, src value.Value) value.Value {
	out := dst.Clone()
	for _, e := range src.Entries() {
		existing, ok := out.Get(e.Key)
		if ok && existing.Kind() == value.KindMapping && e.Value.Kind() == value.KindMapping {
			out.Set(e.Key, deepMerge(existing, e.Value))
			continue
		}
		out.Set(e.Key, e.Value.Clone())
	}
	return out
}
