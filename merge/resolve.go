package merge

import (
	"fmt"
	"math"

	"github.com/goliatone/go-assemble/schema"
	"github.com/goliatone/go-assemble/value"
)

// Resolve walks the descriptor's fields against the merged document, applying
// defaults and coercing present values to their declared kinds. The first
// unresolved field aborts the walk. The returned mapping carries only
// declared fields, in descriptor order.
//
// A present null counts as absent: a stronger source can set a key to null to
// fall back to the field's default.
func Resolve(merged value.Value, desc schema.Descriptor) (value.Value, error) {
	return resolveRecord(merged, desc, "")
}

func resolveRecord(doc value.Value, desc schema.Descriptor, prefix string) (value.Value, error) {
	out := value.Mapping()
	for _, field := range desc.Fields() {
		path := joinPath(prefix, field.Name)
		raw, ok := doc.Get(field.Name)
		if ok && raw.IsNull() {
			ok = false
		}
		if !ok {
			switch {
			case field.HasDefault:
				out.Set(field.Name, field.Default.Clone())
			case field.Kind == schema.KindRecord && !field.Optional:
				// Recurse with an empty mapping so nested defaults still apply.
				nested, err := resolveRecord(value.Mapping(), field.Schema, path)
				if err != nil {
					return value.Value{}, err
				}
				out.Set(field.Name, nested)
			case field.Optional:
				// stays absent
			default:
				return value.Value{}, &MissingFieldError{Field: path}
			}
			continue
		}
		resolved, err := coerce(raw, field, path)
		if err != nil {
			return value.Value{}, err
		}
		out.Set(field.Name, resolved)
	}
	return out, nil
}

// coerce converts v to the field's declared kind. Numeric values widen and
// narrow as long as no information is lost; text never converts to numeric
// and vice versa, and bool never cross-converts.
func coerce(v value.Value, field schema.Field, path string) (value.Value, error) {
	switch field.Kind {
	case schema.KindAny:
		return v.Clone(), nil
	case schema.KindBool:
		if _, ok := v.AsBool(); ok {
			return v, nil
		}
	case schema.KindInt:
		if i, ok := v.AsInt(); ok && fitsInt(i, field.Bits) {
			return v, nil
		}
		if f, ok := v.AsFloat(); ok && integral(f) && fitsInt(int64(f), field.Bits) {
			return value.Int(int64(f)), nil
		}
	case schema.KindUint:
		if i, ok := v.AsInt(); ok && i >= 0 && fitsUint(i, field.Bits) {
			return v, nil
		}
		if f, ok := v.AsFloat(); ok && integral(f) && f >= 0 && fitsUint(int64(f), field.Bits) {
			return value.Int(int64(f)), nil
		}
	case schema.KindFloat:
		if f, ok := v.AsFloat(); ok && fitsFloat(f, field.Bits) {
			return v, nil
		}
		if i, ok := v.AsInt(); ok {
			return value.Float(float64(i)), nil
		}
	case schema.KindText:
		if _, ok := v.AsText(); ok {
			return v, nil
		}
	case schema.KindSequence:
		if v.Kind() == value.KindSequence {
			return coerceSequence(v, field, path)
		}
	case schema.KindRecord:
		if v.Kind() == value.KindMapping {
			return resolveRecord(v, field.Schema, path)
		}
	}
	return value.Value{}, &TypeMismatchError{Field: path, Want: field.Kind, Bits: field.Bits, Got: v.Kind()}
}

func coerceSequence(v value.Value, field schema.Field, path string) (value.Value, error) {
	if field.Elem == schema.KindAny {
		return v.Clone(), nil
	}
	elem := schema.Field{Kind: field.Elem, Bits: field.ElemBits}
	items := make([]value.Value, 0, v.Len())
	for i, item := range v.Items() {
		resolved, err := coerce(item, elem, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, resolved)
	}
	return value.Sequence(items...), nil
}

// integral reports whether f holds a whole number representable as an int64.
// float64(MaxInt64) rounds up to 2^63, so the upper bound must be exclusive:
// converting 2^63 would wrap to MinInt64.
func integral(f float64) bool {
	return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64
}

// fitsInt reports whether i is representable in a signed integer of the given
// width. Zero width means 64.
func fitsInt(i int64, bits int) bool {
	if bits == 0 || bits >= 64 {
		return true
	}
	limit := int64(1) << (bits - 1)
	return i >= -limit && i < limit
}

// fitsUint reports whether a non-negative i is representable in an unsigned
// integer of the given width.
func fitsUint(i int64, bits int) bool {
	if bits == 0 || bits >= 64 {
		return true
	}
	return i < int64(1)<<bits
}

// fitsFloat reports whether f survives the trip through a float of the given
// width without overflowing to infinity.
func fitsFloat(f float64, bits int) bool {
	if bits != 32 {
		return true
	}
	return math.Abs(f) <= math.MaxFloat32
}

func joinPath(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + "." + segment
}
