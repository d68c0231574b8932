// Package value defines the format-independent representation every codec
// decodes into and the merge engine operates on: a tagged tree of scalars,
// sequences, and string-keyed mappings.
package value

import "fmt"

// Kind identifies the variant held by a Value. The set is closed so merge and
// coercion branches can switch exhaustively.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Entry pairs a mapping key with its value.
type Entry struct {
	Key   string
	Value Value
}

// Value holds one node of the generic tree. The zero Value is Null.
type Value struct {
	kind    Kind
	boolean bool
	integer int64
	real    float64
	text    string
	items   []Value
	entries []Entry
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps a boolean scalar.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Int wraps a signed 64-bit integer scalar.
func Int(i int64) Value { return Value{kind: KindInt, integer: i} }

// Float wraps a 64-bit float scalar.
func Float(f float64) Value { return Value{kind: KindFloat, real: f} }

// Text wraps a string scalar.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Sequence builds an ordered list value from items.
func Sequence(items ...Value) Value {
	return Value{kind: KindSequence, items: items}
}

// Mapping builds a mapping from entries. A later entry whose key is already
// present overwrites the earlier one in place, keeping its original position.
func Mapping(entries ...Entry) Value {
	v := Value{kind: KindMapping, entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		v.Set(e.Key, e.Value)
	}
	return v
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload when v holds one.
func (v Value) AsBool() (bool, bool) { return v.boolean, v.kind == KindBool }

// AsInt returns the integer payload when v holds one.
func (v Value) AsInt() (int64, bool) { return v.integer, v.kind == KindInt }

// AsFloat returns the float payload when v holds one.
func (v Value) AsFloat() (float64, bool) { return v.real, v.kind == KindFloat }

// AsText returns the string payload when v holds one.
func (v Value) AsText() (string, bool) { return v.text, v.kind == KindText }

// Items returns the elements of a sequence value, nil otherwise. The slice is
// shared with v; use Clone before mutating element subtrees.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return v.items
}

// Entries returns the mapping entries in insertion order, nil for other
// kinds. The slice header is copied so callers cannot reorder v.
func (v Value) Entries() []Entry {
	if v.kind != KindMapping {
		return nil
	}
	out := make([]Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Len reports the element count of a sequence or mapping, zero otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return len(v.entries)
	default:
		return 0
	}
}

// Get looks up key in a mapping value.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}
	for _, e := range v.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Set inserts or overwrites key on a mapping value. A null value upgrades to
// an empty mapping first; calling Set on any other kind is a programming
// error and panics.
func (v *Value) Set(key string, val Value) {
	switch v.kind {
	case KindMapping:
	case KindNull:
		v.kind = KindMapping
	default:
		panic(fmt.Sprintf("value: Set on %s value", v.kind))
	}
	for i, e := range v.entries {
		if e.Key == key {
			v.entries[i].Value = val
			return
		}
	}
	v.entries = append(v.entries, Entry{Key: key, Value: val})
}

// Clone returns a deep copy detached from v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindSequence:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			items[i] = item.Clone()
		}
		return Value{kind: KindSequence, items: items}
	case KindMapping:
		entries := make([]Entry, len(v.entries))
		for i, e := range v.entries {
			entries[i] = Entry{Key: e.Key, Value: e.Value.Clone()}
		}
		return Value{kind: KindMapping, entries: entries}
	default:
		return v
	}
}

// Equal reports deep equality. Sequences compare element by element in order;
// mappings compare by key set and per-key value, so insertion order does not
// affect the result. Values of different kinds are never equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolean == other.boolean
	case KindInt:
		return v.integer == other.integer
	case KindFloat:
		return v.real == other.real
	case KindText:
		return v.text == other.text
	case KindSequence:
		if len(v.items) != len(other.items) {
			return false
		}
		for i, item := range v.items {
			if !item.Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.entries) != len(other.entries) {
			return false
		}
		for _, e := range v.entries {
			ov, ok := other.Get(e.Key)
			if !ok || !e.Value.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
