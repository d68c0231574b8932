package assemble

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/goliatone/go-assemble/codec"
)

func TestEncodeResolvedDocument(t *testing.T) {
	b := New[defaultedConfig]()
	if err := b.AddBytes([]byte(`{"port": 9000, "stray": "dropped"}`), codec.JSON); err != nil {
		t.Fatal(err)
	}

	data, err := b.Encode(codec.TOML)
	if err != nil {
		t.Fatal(err)
	}

	// The encoded document must round-trip to the same typed record, with
	// defaults applied and undeclared keys gone.
	back := New[defaultedConfig]()
	if err := back.AddBytes(data, codec.TOML); err != nil {
		t.Fatalf("re-decode %q: %v", data, err)
	}
	got, err := back.Build()
	if err != nil {
		t.Fatal(err)
	}
	want := defaultedConfig{Host: "localhost", Port: 9000}
	if got != want {
		t.Fatalf("encoded document = %+v, want %+v\n%s", got, want, data)
	}
}

func TestEncodeStarterDocumentFromDefaults(t *testing.T) {
	b := New[defaultedConfig]()
	data, err := b.Encode(codec.YAML)
	if err != nil {
		t.Fatal(err)
	}
	back := New[defaultedConfig]()
	if err := back.AddBytes(data, codec.YAML); err != nil {
		t.Fatal(err)
	}
	got, err := back.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got.Host != "localhost" || got.Port != 8080 {
		t.Fatalf("starter document = %+v\n%s", got, data)
	}
}

func TestEncodeFailsOnUnresolvedConfig(t *testing.T) {
	b := New[basicConfig]()
	if _, err := b.Encode(codec.JSON); err == nil {
		t.Fatal("encoding an unresolvable config should fail")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "generated.toml")

	b := New[defaultedConfig]()
	if err := b.WriteFile(path, codec.TOML, false); err != nil {
		t.Fatal(err)
	}

	reload := New[defaultedConfig]()
	if err := reload.AddFilePath(path); err != nil {
		t.Fatal(err)
	}
	got, err := reload.Build()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, defaultedConfig{Host: "localhost", Port: 8080}) {
		t.Fatalf("written config = %+v", got)
	}
}

func TestWriteFileRefusesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	b := New[defaultedConfig]()
	if err := b.WriteFile(path, codec.JSON, false); !errors.Is(err, ErrFileExists) {
		t.Fatalf("expected ErrFileExists, got %v", err)
	}

	// The untouched file must still hold its original content.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{}" {
		t.Fatalf("existing file was modified: %q", data)
	}

	if err := b.WriteFile(path, codec.JSON, true); err != nil {
		t.Fatalf("overwrite should succeed: %v", err)
	}
}
