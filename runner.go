package classics

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

const DefaultCountWidth = 8

// Runner processes the files of a Config one after the other. A file that can
// not be opened or read is reported on the error stream and the runner moves on
// to the next one.
type Runner struct {
	stdin  io.Reader
	out    io.Writer
	stdout *bufio.Writer
	stderr io.Writer
	stdbuf *bufio.Reader
	logger *slog.Logger

	numberWidth int
	countWidth  int
	bufsize     int
}

func NewRunner(options ...RunnerOption) (*Runner, error) {
	r := Runner{
		stdin:       os.Stdin,
		out:         os.Stdout,
		stderr:      os.Stderr,
		logger:      slog.New(discardHandler{}),
		numberWidth: DefaultNumberWidth,
		countWidth:  DefaultCountWidth,
		bufsize:     DefaultBufferSize,
	}
	for _, o := range options {
		if err := o(&r); err != nil {
			return nil, err
		}
	}
	r.stdout = bufio.NewWriterSize(r.out, r.bufsize)
	return &r, nil
}

type batch struct {
	multi   bool
	banners int
	total   Counts
}

// Run processes every file of cfg in order. Only configuration errors, write
// errors on the output and cancellation of ctx are returned: failures tied to a
// single file are reported and do not stop the batch.
func (r *Runner) Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Mode == ModeCount && cfg.Select == 0 {
		cfg.Select = DefaultSelect
	}
	var (
		files = defaultFiles(cfg.Files)
		state = batch{multi: len(files) > 1}
	)
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			r.stdout.Flush()
			return err
		}
		err := r.runFile(file, cfg, &state)
		if err == nil {
			continue
		}
		var (
			oe *OpenError
			re *ReadError
		)
		if !errors.As(err, &oe) && !errors.As(err, &re) {
			r.stdout.Flush()
			return err
		}
		if err := r.report(file, err); err != nil {
			return err
		}
	}
	if cfg.Mode == ModeCount && state.multi {
		if err := state.total.Format(r.stdout, cfg.Select, r.countWidth, "total"); err != nil {
			return err
		}
	}
	return r.stdout.Flush()
}

func (r *Runner) runFile(file string, cfg Config, state *batch) error {
	s, err := r.Open(file)
	if err != nil {
		return err
	}
	defer s.Close()

	r.logger.Debug("processing", "file", file, "mode", cfg.Mode.String())
	if state.multi {
		if err = r.banner(file, state.banners > 0); err != nil {
			return err
		}
		state.banners++
	}
	switch {
	case cfg.Mode.numbering():
		err = Number(r.stdout, s, cfg.Mode, r.numberWidth)
	case cfg.Mode.bounded():
		err = Head(r.stdout, s, cfg.Mode, cfg.Limit)
	case cfg.Mode == ModeCount:
		var c Counts
		if c, err = Count(s, cfg.Select); err != nil {
			break
		}
		state.total = state.total.Add(c)
		err = c.Format(r.stdout, cfg.Select, r.countWidth, file)
		r.logger.Debug("counted", "file", file, "lines", c.Lines, "words", c.Words, "bytes", c.Bytes, "chars", c.Chars)
	}
	if err != nil {
		return err
	}
	return r.stdout.Flush()
}

func (r *Runner) banner(file string, sep bool) error {
	if sep {
		if err := r.stdout.WriteByte('\n'); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(r.stdout, "==> %s <==\n", file)
	return err
}

// report writes a diagnostic for file. What was written to the output for the
// file so far is flushed first so that both streams stay in order.
func (r *Runner) report(file string, err error) error {
	if err := r.stdout.Flush(); err != nil {
		return err
	}
	r.logger.Debug("skipping file", "file", file, "err", err)
	_, err = fmt.Fprintln(r.stderr, err)
	return err
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h discardHandler) WithGroup(string) slog.Handler { return h }
