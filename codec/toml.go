package codec

import (
	"errors"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/goliatone/go-assemble/value"
)

func init() {
	Register(TOML, tomlCodec{})
}

type tomlCodec struct{}

func (tomlCodec) Decode(data []byte) (value.Value, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return value.Value{}, &DecodeError{Format: TOML, Detail: tomlErrorDetail(err), Err: err}
	}
	v, err := value.FromAny(raw)
	if err != nil {
		return value.Value{}, &DecodeError{Format: TOML, Err: err}
	}
	return v, nil
}

func (tomlCodec) Encode(v value.Value) ([]byte, error) {
	if v.Kind() != value.KindMapping {
		return nil, &EncodeError{
			Format: TOML,
			Err:    fmt.Errorf("top-level %s cannot form a TOML document", v.Kind()),
		}
	}
	// TOML has no null literal anywhere in its grammar.
	if path, found := findNull(v, ""); found {
		return nil, &EncodeError{
			Format: TOML,
			Err:    fmt.Errorf("null value at %q has no TOML representation", path),
		}
	}
	data, err := toml.Marshal(v.ToAny())
	if err != nil {
		return nil, &EncodeError{Format: TOML, Err: err}
	}
	return data, nil
}

func tomlErrorDetail(err error) string {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return fmt.Sprintf("line %d, column %d", row, col)
	}
	return ""
}

func findNull(v value.Value, path string) (string, bool) {
	switch v.Kind() {
	case value.KindNull:
		return path, true
	case value.KindSequence:
		for i, item := range v.Items() {
			if found, ok := findNull(item, fmt.Sprintf("%s[%d]", path, i)); ok {
				return found, true
			}
		}
	case value.KindMapping:
		for _, e := range v.Entries() {
			next := e.Key
			if path != "" {
				next = path + "." + e.Key
			}
			if found, ok := findNull(e.Value, next); ok {
				return found, true
			}
		}
	}
	return "", false
}
