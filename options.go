package classics

import (
	"fmt"
	"io"
	"log/slog"
)

type RunnerOption func(*Runner) error

func WithStdin(r io.Reader) RunnerOption {
	return func(rs *Runner) error {
		rs.stdin = r
		return nil
	}
}

func WithStdout(w io.Writer) RunnerOption {
	return func(rs *Runner) error {
		rs.out = w
		return nil
	}
}

func WithStderr(w io.Writer) RunnerOption {
	return func(rs *Runner) error {
		rs.stderr = w
		return nil
	}
}

func WithLogger(logger *slog.Logger) RunnerOption {
	return func(rs *Runner) error {
		if logger == nil {
			return fmt.Errorf("logger: nil")
		}
		rs.logger = logger
		return nil
	}
}

func WithNumberWidth(width int) RunnerOption {
	return func(rs *Runner) error {
		if width <= 0 {
			return fmt.Errorf("number width: %d: must be positive", width)
		}
		rs.numberWidth = width
		return nil
	}
}

func WithCountWidth(width int) RunnerOption {
	return func(rs *Runner) error {
		if width <= 0 {
			return fmt.Errorf("count width: %d: must be positive", width)
		}
		rs.countWidth = width
		return nil
	}
}

func WithBufferSize(size int) RunnerOption {
	return func(rs *Runner) error {
		if size < 16 {
			return fmt.Errorf("buffer size: %d: too small", size)
		}
		rs.bufsize = size
		return nil
	}
}
