package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-assemble/value"
)

const (
	jsonDoc = `{
  "some_string": "Hello, world!",
  "some_bool": true,
  "some_nest": {
    "some_int": -4,
    "some_float": 3.5,
    "some_unsigned": 2147483648
  }
}`
	tomlDoc = `some_string = "Hello, world!"
some_bool = true

[some_nest]
some_int = -4
some_float = 3.5
some_unsigned = 2147483648
`
	yamlDoc = `some_string: "Hello, world!"
some_bool: true
some_nest:
  some_int: -4
  some_float: 3.5
  some_unsigned: 2147483648
`
)

func wantDoc() value.Value {
	return value.Mapping(
		value.Entry{Key: "some_string", Value: value.Text("Hello, world!")},
		value.Entry{Key: "some_bool", Value: value.Bool(true)},
		value.Entry{Key: "some_nest", Value: value.Mapping(
			value.Entry{Key: "some_int", Value: value.Int(-4)},
			value.Entry{Key: "some_float", Value: value.Float(3.5)},
			value.Entry{Key: "some_unsigned", Value: value.Int(2147483648)},
		)},
	)
}

func TestDecodeFormatEquivalence(t *testing.T) {
	want := wantDoc()

	cases := []struct {
		format Format
		doc    string
	}{
		{JSON, jsonDoc},
		{TOML, tomlDoc},
		{YAML, yamlDoc},
	}
	for _, tc := range cases {
		t.Run(string(tc.format), func(t *testing.T) {
			got, err := Decode([]byte(tc.doc), tc.format)
			if err != nil {
				t.Fatalf("decode %s: %v", tc.format, err)
			}
			if !got.Equal(want) {
				t.Fatalf("decoded %s mismatch:\nwant %v\n got %v", tc.format, want.ToAny(), got.ToAny())
			}
		})
	}
}

func TestCBORRoundTrip(t *testing.T) {
	want := wantDoc()
	data, err := Encode(want, CBOR)
	if err != nil {
		t.Fatalf("encode cbor: %v", err)
	}
	got, err := Decode(data, CBOR)
	if err != nil {
		t.Fatalf("decode cbor: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("cbor round trip mismatch:\nwant %v\n got %v", want.ToAny(), got.ToAny())
	}
}

func TestEncodeDecodeRoundTrips(t *testing.T) {
	doc := wantDoc()
	for _, format := range []Format{JSON, TOML, YAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(doc, format)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			back, err := Decode(data, format)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !back.Equal(doc) {
				t.Fatalf("round trip mismatch for %s:\n%s", format, data)
			}
		})
	}
}

func TestJSONAcceptsComments(t *testing.T) {
	doc := `{
  // inline comment
  "key": "value", /* block */
  "list": [1, 2,],
}`
	got, err := Decode([]byte(doc), JSON)
	if err != nil {
		t.Fatalf("jsonc decode: %v", err)
	}
	want := value.Mapping(
		value.Entry{Key: "key", Value: value.Text("value")},
		value.Entry{Key: "list", Value: value.Sequence(value.Int(1), value.Int(2))},
	)
	if !got.Equal(want) {
		t.Fatalf("jsonc decode = %v", got.ToAny())
	}
}

func TestJSONPreservesIntegerWidth(t *testing.T) {
	got, err := Decode([]byte(`{"big": 9007199254740993}`), JSON)
	if err != nil {
		t.Fatal(err)
	}
	v, _ := got.Get("big")
	if i, ok := v.AsInt(); !ok || i != 9007199254740993 {
		t.Fatalf("integer above 2^53 decayed: %v (%s)", v.ToAny(), v.Kind())
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		format Format
		doc    string
		detail string
	}{
		{JSON, `{"a":}`, "offset"},
		{TOML, "a = [unclosed", "line"},
		{YAML, "a: [unclosed", ""},
	}
	for _, tc := range cases {
		t.Run(string(tc.format), func(t *testing.T) {
			_, err := Decode([]byte(tc.doc), tc.format)
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("expected DecodeError, got %T: %v", err, err)
			}
			if decodeErr.Format != tc.format {
				t.Fatalf("error format = %s, want %s", decodeErr.Format, tc.format)
			}
			if tc.detail != "" && !strings.Contains(decodeErr.Detail, tc.detail) {
				t.Fatalf("detail %q does not mention %q", decodeErr.Detail, tc.detail)
			}
		})
	}
}

func TestTOMLEncodeRejectsNull(t *testing.T) {
	doc := value.Mapping(
		value.Entry{Key: "outer", Value: value.Mapping(
			value.Entry{Key: "inner", Value: value.Null()},
		)},
	)
	_, err := Encode(doc, TOML)
	var encodeErr *EncodeError
	if !errors.As(err, &encodeErr) {
		t.Fatalf("expected EncodeError, got %T: %v", err, err)
	}
	if !strings.Contains(encodeErr.Error(), "outer.inner") {
		t.Fatalf("error should name the null path: %v", encodeErr)
	}
}

func TestTOMLEncodeRejectsNonMappingTop(t *testing.T) {
	_, err := Encode(value.Sequence(value.Int(1)), TOML)
	var encodeErr *EncodeError
	if !errors.As(err, &encodeErr) {
		t.Fatalf("expected EncodeError, got %T: %v", err, err)
	}
}

func TestEmptyYAMLDecodesToNull(t *testing.T) {
	got, err := Decode(nil, YAML)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsNull() {
		t.Fatalf("empty yaml = %s, want null", got.Kind())
	}
}

func TestLookupUnknownFormat(t *testing.T) {
	if _, err := Lookup(Format("ini")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if _, err := Decode([]byte("x"), Format("ini")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Decode should surface ErrUnknownFormat, got %v", err)
	}
}

func TestRegisterAndRemove(t *testing.T) {
	tag := Format("test-upper")
	Register(tag, upperCodec{})
	t.Cleanup(func() { Register(tag, nil) })

	got, err := Decode([]byte("key"), tag)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(value.Text("KEY")) {
		t.Fatalf("custom codec result = %v", got.ToAny())
	}

	Register(tag, nil)
	if _, err := Lookup(tag); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("removed format should be unknown, got %v", err)
	}
}

func TestFormatsContainsShipped(t *testing.T) {
	have := map[Format]bool{}
	for _, format := range Formats() {
		have[format] = true
	}
	for _, format := range []Format{JSON, TOML, YAML, CBOR} {
		if !have[format] {
			t.Errorf("missing shipped format %s", format)
		}
	}
}

func TestFromPath(t *testing.T) {
	cases := map[string]Format{
		"config.json":     JSON,
		"config.jsonc":    JSON,
		"config.toml":     TOML,
		"config.yaml":     YAML,
		"config.YML":      YAML,
		"config.cbor":     CBOR,
		"dir/nested.TOML": TOML,
	}
	for path, want := range cases {
		got, err := FromPath(path)
		if err != nil {
			t.Errorf("FromPath(%q): %v", path, err)
			continue
		}
		if got != want {
			t.Errorf("FromPath(%q) = %s, want %s", path, got, want)
		}
	}
	if _, err := FromPath("config.ini"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("FromPath(.ini) should fail with ErrUnknownFormat, got %v", err)
	}
	if _, err := FromPath("noextension"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("FromPath without extension should fail, got %v", err)
	}
}

// upperCodec is a toy codec used to exercise registration.
type upperCodec struct{}

func (upperCodec) Decode(data []byte) (value.Value, error) {
	return value.Text(strings.ToUpper(string(data))), nil
}

func (upperCodec) Encode(v value.Value) ([]byte, error) {
	s, _ := v.AsText()
	return []byte(strings.ToLower(s)), nil
}
