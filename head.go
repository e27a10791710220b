package classics

import (
	"errors"
	"fmt"
	"io"
)

// Head copies to w at most n lines or n bytes of r, depending on mode. Lines are
// written with their original terminators.
func Head(w io.Writer, r io.Reader, mode Mode, n int64) error {
	if n <= 0 {
		return &ConfigError{Option: mode.String(), Value: fmt.Sprint(n), Err: ErrCount}
	}
	rs := NewReader(r, DefaultBufferSize)
	switch mode {
	case ModeLines:
		return headLines(w, rs, n)
	case ModeBytes:
		_, err := rs.CopyN(w, n)
		return err
	default:
		return fmt.Errorf("%s: mode not supported by head", mode)
	}
}

func headLines(w io.Writer, rs *Reader, n int64) error {
	for i := int64(0); i < n; i++ {
		line, err := rs.Line()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}
