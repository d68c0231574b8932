package assemble

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/goliatone/go-assemble/codec"
)

// Encode folds and resolves the current source list, then serialises the
// resolved document as format. The output carries declared fields only, with
// defaults applied, so an empty builder over a fully-defaulted schema yields
// a complete starter document.
func (b *Builder[T]) Encode(format codec.Format) ([]byte, error) {
	start := time.Now()
	resolved, err := b.resolve()
	if err != nil {
		b.cfg.logger.LogBuild(BuildEvent{Op: OpEncode, Format: format, Duration: time.Since(start), Err: err})
		return nil, err
	}
	data, err := codec.Encode(resolved, format)
	b.cfg.logger.LogBuild(BuildEvent{Op: OpEncode, Format: format, Duration: time.Since(start), Err: err})
	return data, err
}

// WriteFile encodes the assembled document and writes it to path. Unless
// overwrite is set an existing file is left untouched and ErrFileExists is
// returned.
func (b *Builder[T]) WriteFile(path string, format codec.Format, overwrite bool) error {
	data, err := b.Encode(format)
	if err != nil {
		return err
	}
	if overwrite {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return &IOError{Path: path, Err: err}
		}
		return nil
	}
	// O_EXCL makes create-if-absent atomic; a stat-then-write check would
	// race with concurrent writers.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
		return &IOError{Path: path, Err: err}
	}
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}
