package classics

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"
)

type Counts struct {
	Lines int64
	Words int64
	Bytes int64
	Chars int64
}

func (c Counts) Add(other Counts) Counts {
	c.Lines += other.Lines
	c.Words += other.Words
	c.Bytes += other.Bytes
	c.Chars += other.Chars
	return c
}

// Format writes the selected counts, each right aligned in a field of the given
// width, followed by the name of the input. Standard input is left unnamed.
func (c Counts) Format(w io.Writer, sel Select, width int, name string) error {
	var buf bytes.Buffer
	for _, f := range []struct {
		sel Select
		val int64
	}{
		{sel: CountLines, val: c.Lines},
		{sel: CountWords, val: c.Words},
		{sel: CountBytes, val: c.Bytes},
		{sel: CountChars, val: c.Chars},
	} {
		if sel.Has(f.sel) {
			fmt.Fprintf(&buf, "%*d", width, f.val)
		}
	}
	if name != "" && name != stdinToken {
		buf.WriteByte(' ')
		buf.WriteString(name)
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

// Count reads r to exhaustion and returns the counts requested by sel. Counts
// that were not selected are left to zero.
func Count(r io.Reader, sel Select) (Counts, error) {
	if sel == 0 {
		sel = DefaultSelect
	}
	if sel == CountBytes {
		if n, ok := statBytes(r); ok {
			return Counts{Bytes: n}, nil
		}
	}
	var (
		rs  = NewReader(r, DefaultBufferSize)
		res Counts
	)
	for {
		line, err := rs.Line()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, err
		}
		res.Lines++
		res.Bytes += int64(len(line))
		if sel.Has(CountWords) || sel.Has(CountChars) {
			words, chars := scanLine(line)
			res.Words += words
			res.Chars += chars
		}
	}
	return mask(res, sel), nil
}

// scanLine returns the number of runs of non space characters and the number of
// characters in line. Each invalid byte counts as one character.
func scanLine(line []byte) (int64, int64) {
	var (
		words  int64
		chars  int64
		inside bool
	)
	for len(line) > 0 {
		r, z := utf8.DecodeRune(line)
		line = line[z:]
		chars++
		if unicode.IsSpace(r) {
			inside = false
			continue
		}
		if !inside {
			words++
		}
		inside = true
	}
	return words, chars
}

func mask(c Counts, sel Select) Counts {
	if !sel.Has(CountLines) {
		c.Lines = 0
	}
	if !sel.Has(CountWords) {
		c.Words = 0
	}
	if !sel.Has(CountBytes) {
		c.Bytes = 0
	}
	if !sel.Has(CountChars) {
		c.Chars = 0
	}
	return c
}

// statBytes gives the number of bytes left in a regular file without reading it,
// and moves the file offset to its end.
func statBytes(r io.Reader) (int64, bool) {
	if b, ok := r.(interface{ Buffered() int }); ok && b.Buffered() > 0 {
		return 0, false
	}
	f, ok := unwrapFileFromReader(r)
	if !ok {
		return 0, false
	}
	i, err := f.Stat()
	if err != nil || !i.Mode().IsRegular() {
		return 0, false
	}
	off, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, false
	}
	// the stream is consumed as if it had been read: a later "-" starts at the end.
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return 0, false
	}
	if n := i.Size() - off; n > 0 {
		return n, true
	}
	return 0, true
}
