package codec

import "fmt"

// DecodeError reports input that is not valid for its declared format.
type DecodeError struct {
	Format Format
	Detail string // position information when the underlying decoder reports any
	Err    error
}

func (e *DecodeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Detail != "" {
		return fmt.Sprintf("codec: decode %s (%s): %v", e.Format, e.Detail, e.Err)
	}
	return fmt.Sprintf("codec: decode %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// EncodeError reports a value shape the target format cannot represent.
type EncodeError struct {
	Format Format
	Err    error
}

func (e *EncodeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("codec: encode %s: %v", e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
