package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"
)

// FromAny converts decoder-native Go data (the shapes produced by the
// json/yaml/toml/cbor unmarshalers) into a Value. Map keys are sorted so the
// resulting mapping order is deterministic regardless of Go map iteration.
func FromAny(raw any) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t.Clone(), nil
	case bool:
		return Bool(t), nil
	case string:
		return Text(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return fromUint(uint64(t))
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		return fromUint(t)
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("value: number %q: %w", t.String(), err)
		}
		return Float(f), nil
	case time.Time:
		return Text(t.Format(time.RFC3339)), nil
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			v, err := FromAny(item)
			if err != nil {
				return Value{}, err
			}
			items[i] = v
		}
		return Sequence(items...), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out := Mapping()
		for _, key := range keys {
			v, err := FromAny(t[key])
			if err != nil {
				return Value{}, err
			}
			out.Set(key, v)
		}
		return out, nil
	case map[any]any:
		converted := make(map[string]any, len(t))
		for key, val := range t {
			str, ok := key.(string)
			if !ok {
				return Value{}, fmt.Errorf("value: mapping key %v (%T) is not a string", key, key)
			}
			converted[str] = val
		}
		return FromAny(converted)
	default:
		return Value{}, fmt.Errorf("value: unsupported Go type %T", raw)
	}
}

func fromUint(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("value: integer %d overflows int64", u)
	}
	return Int(int64(u)), nil
}

// ToAny converts v into encoder-native Go data. Mapping insertion order is
// not carried over: the result uses a plain map.
func (v Value) ToAny() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.boolean
	case KindInt:
		return v.integer
	case KindFloat:
		return v.real
	case KindText:
		return v.text
	case KindSequence:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.ToAny()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.entries))
		for _, e := range v.entries {
			out[e.Key] = e.Value.ToAny()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON serialises v through its native Go shape.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToAny())
}

// UnmarshalJSON parses JSON into v, keeping integers distinct from floats.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	parsed, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
