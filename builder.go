// Package assemble populates strongly-typed configuration records from an
// ordered list of heterogeneous sources: files, raw bytes, and pre-built
// generic values. Sources added later override earlier ones; nested mappings
// deep-merge while scalars and sequences are replaced wholesale.
package assemble

import (
	"os"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-assemble/codec"
	"github.com/goliatone/go-assemble/internal/hydrate"
	"github.com/goliatone/go-assemble/merge"
	"github.com/goliatone/go-assemble/schema"
	"github.com/goliatone/go-assemble/value"
)

// Builder accumulates configuration sources in add order and assembles them
// into a T on Build. A Builder has no internal locking: it must stay confined
// to one goroutine while sources are being added.
type Builder[T any] struct {
	cfg     builderConfig
	sources []Source
	derived schema.Descriptor
}

// New constructs an empty Builder for T.
func New[T any](opts ...Option) *Builder[T] {
	return &Builder[T]{cfg: applyOptions(opts)}
}

// AddFile reads path and decodes it as format, appending the document as the
// strongest source so far. Unreadable files fail with an IOError, malformed
// content with a codec.DecodeError; either way the source list is unchanged.
func (b *Builder[T]) AddFile(path string, format codec.Format) error {
	data, err := os.ReadFile(path)
	if err != nil {
		err = &IOError{Path: path, Err: err}
		b.cfg.logger.LogBuild(BuildEvent{Op: OpAddSource, Origin: path, Format: format, Err: err})
		return err
	}
	return b.add(path, data, format)
}

// AddFilePath is AddFile with the format guessed from the file extension.
func (b *Builder[T]) AddFilePath(path string) error {
	format, err := codec.FromPath(path)
	if err != nil {
		b.cfg.logger.LogBuild(BuildEvent{Op: OpAddSource, Origin: path, Err: err})
		return err
	}
	return b.AddFile(path, format)
}

// AddBytes decodes data as format and appends it as the strongest source so
// far.
func (b *Builder[T]) AddBytes(data []byte, format codec.Format) error {
	return b.add(originBytes, data, format)
}

// AddValue appends a pre-decoded document, bypassing the codecs entirely.
// This is the hook for programmatic overrides such as environment-derived
// values.
func (b *Builder[T]) AddValue(v value.Value) {
	b.append(Source{Origin: originValue, value: v.Clone()})
}

func (b *Builder[T]) add(origin string, data []byte, format codec.Format) error {
	v, err := codec.Decode(data, format)
	if err != nil {
		b.cfg.logger.LogBuild(BuildEvent{Op: OpAddSource, Origin: origin, Format: format, Err: err})
		return err
	}
	b.append(Source{Origin: origin, Format: format, value: v})
	return nil
}

func (b *Builder[T]) append(src Source) {
	src.ID = uuid.NewString()
	src.Position = len(b.sources)
	b.sources = append(b.sources, src)
	b.cfg.logger.LogBuild(BuildEvent{
		Op:       OpAddSource,
		Origin:   src.Origin,
		Format:   src.Format,
		SourceID: src.ID,
	})
}

// Sources returns a copy of the registered sources in priority order.
func (b *Builder[T]) Sources() []Source {
	out := make([]Source, len(b.sources))
	copy(out, b.sources)
	return out
}

// Build folds every source in add order, resolves the merged document against
// T's schema, and materializes the typed record. Each call re-runs the full
// merge against the current source list: the builder stays usable afterwards,
// and sources added later affect only later calls. When T implements
// Validate() error the assembled value is validated before being returned.
func (b *Builder[T]) Build() (T, error) {
	var zero T
	start := time.Now()
	resolved, err := b.resolve()
	if err != nil {
		b.cfg.logger.LogBuild(BuildEvent{Op: OpBuild, Duration: time.Since(start), Err: err})
		return zero, err
	}
	out, err := hydrate.Materialize[T](resolved)
	if err == nil {
		err = validate(out)
	}
	b.cfg.logger.LogBuild(BuildEvent{Op: OpBuild, Duration: time.Since(start), Err: err})
	if err != nil {
		return zero, err
	}
	return out, nil
}

func (b *Builder[T]) resolve() (value.Value, error) {
	desc, err := b.descriptor()
	if err != nil {
		return value.Value{}, err
	}
	merged, err := merge.Fold(b.documents())
	if err != nil {
		return value.Value{}, err
	}
	return merge.Resolve(merged, desc)
}

func (b *Builder[T]) documents() []value.Value {
	docs := make([]value.Value, len(b.sources))
	for i, src := range b.sources {
		docs[i] = src.value
	}
	return docs
}

func (b *Builder[T]) descriptor() (schema.Descriptor, error) {
	if b.cfg.descriptor != nil {
		return b.cfg.descriptor, nil
	}
	if b.derived == nil {
		desc, err := schema.DescribeType(reflect.TypeOf((*T)(nil)).Elem())
		if err != nil {
			return nil, err
		}
		b.derived = desc
	}
	return b.derived, nil
}

func validate[T any](v T) error {
	if val, ok := any(v).(interface{ Validate() error }); ok {
		return val.Validate()
	}
	if val, ok := any(&v).(interface{ Validate() error }); ok {
		return val.Validate()
	}
	return nil
}
