package assemble

import (
	"errors"
	"fmt"
)

// ErrFileExists reports a WriteFile target that already exists when overwrite
// was not requested.
var ErrFileExists = errors.New("assemble: file already exists")

// IOError reports an unreadable or unwritable configuration file. It is fatal
// to the call that hit it only; the builder's source list is unaffected.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("assemble: %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
