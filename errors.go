package classics

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrConflict = errors.New("mutually exclusive options")
	ErrCount    = errors.New("illegal count")
)

// ConfigError reports a malformed or conflicting option. It is raised before any
// file is opened and aborts the whole invocation.
type ConfigError struct {
	Option string
	Value  string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Option, e.Err)
	}
	return fmt.Sprintf("%s: %s -- %s", e.Option, e.Err, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

type OpenError struct {
	Path string
	Err  error
}

func openError(path string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &OpenError{
		Path: path,
		Err:  err,
	}
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("Failed to open %s: %s", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// ReadError is returned when a stream fails after it was opened. Output already
// written for the file is left as is.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("Failed to read %s: %s", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
