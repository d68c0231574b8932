package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/goliatone/go-assemble/value"
)

func init() {
	Register(JSON, jsonCodec{})
}

// jsonCodec accepts the JSONC superset on decode (comments and trailing
// commas are stripped before parsing) and emits indented canonical JSON.
// Numbers pass through json.Number so integers stay integers.
type jsonCodec struct{}

func (jsonCodec) Decode(data []byte) (value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return value.Value{}, &DecodeError{Format: JSON, Detail: jsonErrorDetail(err), Err: err}
	}
	v, err := value.FromAny(raw)
	if err != nil {
		return value.Value{}, &DecodeError{Format: JSON, Err: err}
	}
	return v, nil
}

func (jsonCodec) Encode(v value.Value) ([]byte, error) {
	data, err := json.MarshalIndent(v.ToAny(), "", "  ")
	if err != nil {
		return nil, &EncodeError{Format: JSON, Err: err}
	}
	return append(data, '\n'), nil
}

func jsonErrorDetail(err error) string {
	var syntax *json.SyntaxError
	if errors.As(err, &syntax) {
		return fmt.Sprintf("offset %d", syntax.Offset)
	}
	var typed *json.UnmarshalTypeError
	if errors.As(err, &typed) {
		return fmt.Sprintf("offset %d", typed.Offset)
	}
	return ""
}
