package classics

import (
	"bufio"
	"errors"
	"io"
)

const DefaultBufferSize = 32 << 10

// Reader gives incremental access to a stream either line by line or as runs of
// raw bytes.
type Reader struct {
	buf  *bufio.Reader
	line []byte
}

// NewReader returns r itself when it is already a Reader (or a Stream), so that
// no data buffered for an earlier consumer is lost.
func NewReader(r io.Reader, size int) *Reader {
	switch r := r.(type) {
	case *Reader:
		return r
	case *Stream:
		return r.Reader
	default:
		return &Reader{buf: bufio.NewReaderSize(r, size)}
	}
}

func (r *Reader) Read(b []byte) (int, error) {
	return r.buf.Read(b)
}

func (r *Reader) Buffered() int {
	return r.buf.Buffered()
}

// Line returns the next line with its terminator. A final line without a newline
// is returned as a line; io.EOF is only reported once nothing is left. The
// returned slice is only valid until the next call.
func (r *Reader) Line() ([]byte, error) {
	r.line = r.line[:0]
	for {
		chunk, err := r.buf.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			r.line = append(r.line, chunk...)
			continue
		}
		if len(r.line) > 0 {
			r.line = append(r.line, chunk...)
			chunk = r.line
		}
		if errors.Is(err, io.EOF) && len(chunk) > 0 {
			err = nil
		}
		return chunk, err
	}
}

// CopyN copies at most n bytes to w. A stream shorter than n is not an error.
func (r *Reader) CopyN(w io.Writer, n int64) (int64, error) {
	c, err := io.CopyN(writerOnly{w}, r.buf, n)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return c, err
}

// WriteTo copies what is left of the stream to w.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	return io.Copy(writerOnly{w}, r.buf)
}

// writerOnly hides ReadFrom: a bufio.Writer keeps the error of its source as its
// own when it delegates to the ReadFrom of the writer it wraps.
type writerOnly struct {
	io.Writer
}

func trimEOL(line []byte) []byte {
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
		if n > 0 && line[n-1] == '\r' {
			n--
		}
	}
	return line[:n]
}
