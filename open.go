package classics

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/midbel/rw"
)

var ErrIsDir = errors.New("is a directory")

// Stream is an opened input. Standard input is borrowed from the runner: closing
// the stream leaves it open.
type Stream struct {
	*Reader
	name  string
	inner io.Reader
	close func() error
}

func (s *Stream) Name() string {
	return s.name
}

func (s *Stream) Unwrap() io.Reader {
	return s.inner
}

func (s *Stream) Close() error {
	if s.close == nil {
		return nil
	}
	err := s.close()
	s.close = nil
	return err
}

// Open maps a path token to a stream. The token "-" is standard input; every other
// token is opened as a file for reading.
func (r *Runner) Open(token string) (*Stream, error) {
	if token == stdinToken {
		s := Stream{
			Reader: &Reader{buf: r.input()},
			name:   token,
			inner:  r.stdin,
		}
		return &s, nil
	}
	f, err := os.Open(token)
	if err != nil {
		return nil, openError(token, err)
	}
	if i, err := f.Stat(); err != nil || i.IsDir() {
		f.Close()
		if err == nil {
			err = ErrIsDir
		}
		return nil, openError(token, err)
	}
	s := Stream{
		Reader: &Reader{buf: bufio.NewReaderSize(tagReader(f, token), r.bufsize)},
		name:   token,
		inner:  f,
		close:  f.Close,
	}
	return &s, nil
}

// input buffers standard input once so that repeating "-" continues where the
// previous stream stopped.
func (r *Runner) input() *bufio.Reader {
	if r.stdbuf == nil {
		r.stdbuf = bufio.NewReaderSize(tagReader(r.stdin, stdinToken), r.bufsize)
	}
	return r.stdbuf
}

type tagged struct {
	io.Reader
	path string
}

func tagReader(r io.Reader, path string) io.Reader {
	return &tagged{
		Reader: r,
		path:   path,
	}
}

func (t *tagged) Read(b []byte) (int, error) {
	n, err := t.Reader.Read(b)
	if err != nil && !errors.Is(err, io.EOF) {
		err = &ReadError{Path: t.path, Err: err}
	}
	return n, err
}

func unwrapFileFromReader(r io.Reader) (*os.File, bool) {
	for {
		if f, ok := r.(*os.File); ok {
			return f, true
		}
		u, ok := r.(rw.UnwrapReader)
		if !ok {
			return nil, false
		}
		if r = u.Unwrap(); r == nil {
			return nil, false
		}
	}
}
