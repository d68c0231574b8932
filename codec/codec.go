// Package codec maps format tags to the decode/encode pairs that translate
// raw bytes to and from the generic value tree. The tag set is open: shipped
// codecs register themselves from their own files, and callers can add or
// replace formats without touching the merge machinery.
package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-assemble/value"
)

// Format tags a serialization format.
type Format string

const (
	JSON Format = "json"
	TOML Format = "toml"
	YAML Format = "yaml"
	CBOR Format = "cbor"
)

// ErrUnknownFormat reports a tag with no registered codec, or a file path
// whose extension maps onto none.
var ErrUnknownFormat = errors.New("codec: unknown format")

// Codec translates between raw bytes and the generic value tree. Both
// directions are pure transforms with no side effects.
type Codec interface {
	Decode(data []byte) (value.Value, error)
	Encode(v value.Value) ([]byte, error)
}

var (
	mu       sync.RWMutex
	registry = map[Format]Codec{}
)

// Register associates a codec with a format tag, replacing any previous
// registration. A nil codec removes the tag.
func Register(format Format, c Codec) {
	mu.Lock()
	defer mu.Unlock()
	if c == nil {
		delete(registry, format)
		return
	}
	registry[format] = c
}

// Lookup resolves the codec registered for format.
func Lookup(format Format) (Codec, error) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return c, nil
}

// Formats returns the registered tags in lexical order.
func Formats() []Format {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Format, 0, len(registry))
	for format := range registry {
		out = append(out, format)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FromPath guesses the format from the file extension.
func FromPath(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "json", "jsonc":
		return JSON, nil
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	case "cbor":
		return CBOR, nil
	default:
		return "", fmt.Errorf("%w: no codec for path %q", ErrUnknownFormat, path)
	}
}

// Decode resolves the codec for format and decodes data with it.
func Decode(data []byte, format Format) (value.Value, error) {
	c, err := Lookup(format)
	if err != nil {
		return value.Value{}, err
	}
	return c.Decode(data)
}

// Encode resolves the codec for format and serialises v with it.
func Encode(v value.Value, format Format) ([]byte, error) {
	c, err := Lookup(format)
	if err != nil {
		return nil, err
	}
	return c.Encode(v)
}
