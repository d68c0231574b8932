package codec

import (
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-assemble/value"
)

func init() {
	Register(YAML, yamlCodec{})
}

type yamlCodec struct{}

func (yamlCodec) Decode(data []byte) (value.Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		// yaml errors already carry line information in their message.
		return value.Value{}, &DecodeError{Format: YAML, Err: err}
	}
	v, err := value.FromAny(raw)
	if err != nil {
		return value.Value{}, &DecodeError{Format: YAML, Err: err}
	}
	return v, nil
}

func (yamlCodec) Encode(v value.Value) ([]byte, error) {
	data, err := yaml.Marshal(v.ToAny())
	if err != nil {
		return nil, &EncodeError{Format: YAML, Err: err}
	}
	return data, nil
}
