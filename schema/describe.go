package schema

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/goliatone/go-assemble/value"
)

var describerType = reflect.TypeOf((*Describer)(nil)).Elem()

// Describe derives a Descriptor for v, which must be a struct or a pointer to
// one. Types implementing Describer publish their own layout and are not
// reflected over.
func Describe(v any) (Descriptor, error) {
	if d, ok := v.(Describer); ok {
		return d.Schema(), nil
	}
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, fmt.Errorf("schema: cannot describe a nil value")
	}
	return DescribeType(t)
}

// DescribeType derives a Descriptor for a struct type, following pointers.
//
// Field names come from the `json` tag (falling back to the lower-cased Go
// name); `json:"-"` skips a field, `omitempty` and pointer types mark it
// optional. Defaults come from a `default:"..."` tag parsed against the
// field's kind. Nested structs recurse.
func DescribeType(t reflect.Type) (Descriptor, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: %s is not a struct type", t)
	}
	if t.Implements(describerType) {
		return reflect.Zero(t).Interface().(Describer).Schema(), nil
	}
	if reflect.PointerTo(t).Implements(describerType) {
		return reflect.New(t).Interface().(Describer).Schema(), nil
	}
	return describeStruct(t)
}

func describeStruct(t reflect.Type) (Descriptor, error) {
	fields := make(FieldList, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, optional, skip := fieldName(sf)
		if skip {
			continue
		}
		field, err := describeField(sf, name, optional)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func fieldName(sf reflect.StructField) (name string, optional, skip bool) {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = strings.ToLower(sf.Name)
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			optional = true
		}
	}
	return name, optional, false
}

func describeField(sf reflect.StructField, name string, optional bool) (Field, error) {
	ft := sf.Type
	for ft.Kind() == reflect.Pointer {
		ft = ft.Elem()
		optional = true
	}

	field := Field{Name: name, Optional: optional}
	switch ft.Kind() {
	case reflect.Bool:
		field.Kind = KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		field.Kind = KindInt
		field.Bits = ft.Bits()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		field.Kind = KindUint
		field.Bits = ft.Bits()
	case reflect.Float32, reflect.Float64:
		field.Kind = KindFloat
		field.Bits = ft.Bits()
	case reflect.String:
		field.Kind = KindText
	case reflect.Slice, reflect.Array:
		field.Kind = KindSequence
		field.Elem, field.ElemBits = elemKind(ft.Elem())
	case reflect.Struct:
		field.Kind = KindRecord
		nested, err := DescribeType(ft)
		if err != nil {
			return Field{}, fmt.Errorf("schema: field %s: %w", name, err)
		}
		field.Schema = nested
	case reflect.Map, reflect.Interface:
		field.Kind = KindAny
	default:
		return Field{}, fmt.Errorf("schema: field %s has unsupported type %s", name, sf.Type)
	}

	if tag, ok := sf.Tag.Lookup("default"); ok {
		def, err := parseDefault(tag, field.Kind, field.Bits)
		if err != nil {
			return Field{}, fmt.Errorf("schema: field %s: %w", name, err)
		}
		field.Default = def
		field.HasDefault = true
	}
	return field, nil
}

func elemKind(t reflect.Type) (FieldKind, int) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return KindBool, 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInt, t.Bits()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindUint, t.Bits()
	case reflect.Float32, reflect.Float64:
		return KindFloat, t.Bits()
	case reflect.String:
		return KindText, 0
	default:
		return KindAny, 0
	}
}

func parseDefault(raw string, kind FieldKind, bits int) (value.Value, error) {
	if bits == 0 {
		bits = 64
	}
	switch kind {
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return value.Value{}, fmt.Errorf("default %q is not a bool", raw)
		}
		return value.Bool(b), nil
	case KindInt:
		i, err := strconv.ParseInt(raw, 10, bits)
		if err != nil {
			return value.Value{}, fmt.Errorf("default %q is not an int%d", raw, bits)
		}
		return value.Int(i), nil
	case KindUint:
		u, err := strconv.ParseUint(raw, 10, bits)
		if err != nil || u > math.MaxInt64 {
			return value.Value{}, fmt.Errorf("default %q is not a uint%d", raw, bits)
		}
		return value.Int(int64(u)), nil
	case KindFloat:
		f, err := strconv.ParseFloat(raw, bits)
		if err != nil {
			return value.Value{}, fmt.Errorf("default %q is not a float", raw)
		}
		return value.Float(f), nil
	case KindText:
		return value.Text(raw), nil
	default:
		return value.Value{}, fmt.Errorf("default tags are not supported on %s fields", kind)
	}
}
