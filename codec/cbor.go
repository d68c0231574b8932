package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/goliatone/go-assemble/value"
)

func init() {
	Register(CBOR, newCBORCodec())
}

// cborCodec decodes CBOR maps into string-keyed Go maps so the value bridge
// sees the same shapes the text codecs produce, and encodes with canonical
// ordering for stable output.
type cborCodec struct {
	dec cbor.DecMode
	enc cbor.EncMode
}

func newCBORCodec() cborCodec {
	dec, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
	enc, err := cbor.EncOptions{Sort: cbor.SortCanonical}.EncMode()
	if err != nil {
		panic(err)
	}
	return cborCodec{dec: dec, enc: enc}
}

func (c cborCodec) Decode(data []byte) (value.Value, error) {
	var raw any
	if err := c.dec.Unmarshal(data, &raw); err != nil {
		return value.Value{}, &DecodeError{Format: CBOR, Err: err}
	}
	v, err := value.FromAny(raw)
	if err != nil {
		return value.Value{}, &DecodeError{Format: CBOR, Err: err}
	}
	return v, nil
}

func (c cborCodec) Encode(v value.Value) ([]byte, error) {
	data, err := c.enc.Marshal(v.ToAny())
	if err != nil {
		return nil, &EncodeError{Format: CBOR, Err: err}
	}
	return data, nil
}
