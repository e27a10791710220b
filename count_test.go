package classics_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/midbel/classics"
	"github.com/midbel/rw"
)

func TestCount(t *testing.T) {
	data := []struct {
		Name   string
		Input  string
		Select classics.Select
		Want   classics.Counts
	}{
		{
			Name:  "empty",
			Input: "",
			Want:  classics.Counts{},
		},
		{
			Name:  "default",
			Input: "one two\nthree\n",
			Want:  classics.Counts{Lines: 2, Words: 3, Bytes: 14},
		},
		{
			Name:   "all",
			Input:  "one two\nthree\n",
			Select: classics.CountLines | classics.CountWords | classics.CountChars,
			Want:   classics.Counts{Lines: 2, Words: 3, Chars: 14},
		},
		{
			Name:   "unterminated",
			Input:  "one\ntwo",
			Select: classics.CountLines,
			Want:   classics.Counts{Lines: 2},
		},
		{
			Name:  "whitespaces",
			Input: "  \t \n\n   \r\n",
			Want:  classics.Counts{Lines: 3, Bytes: 11},
		},
		{
			Name:   "utf8",
			Input:  "Þórr\nÞat var snemma\n",
			Select: classics.CountWords | classics.CountChars,
			Want:   classics.Counts{Words: 4, Chars: 20},
		},
		{
			Name:   "invalid",
			Input:  "a\xffb c\n",
			Select: classics.CountWords | classics.CountBytes,
			Want:   classics.Counts{Words: 2, Bytes: 6},
		},
		{
			Name:   "invalid-chars",
			Input:  "a\xff\xfeb\n",
			Select: classics.CountChars,
			Want:   classics.Counts{Chars: 5},
		},
		{
			Name:   "bytes-only",
			Input:  "héllo\nworld",
			Select: classics.CountBytes,
			Want:   classics.Counts{Bytes: 12},
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			got, err := classics.Count(strings.NewReader(d.Input), d.Select)
			if err != nil {
				t.Fatalf("unexpected error counting: %s", err)
			}
			if got != d.Want {
				t.Errorf("counts mismatched! want %+v, got %+v", d.Want, got)
			}
		})
	}
}

func TestCountLongLine(t *testing.T) {
	var (
		line  = strings.Repeat("word ", 20000)
		input = line + "\n" + line
	)
	got, err := classics.Count(strings.NewReader(input), classics.DefaultSelect)
	if err != nil {
		t.Fatalf("unexpected error counting: %s", err)
	}
	want := classics.Counts{Lines: 2, Words: 40000, Bytes: int64(len(input))}
	if got != want {
		t.Errorf("counts mismatched! want %+v, got %+v", want, got)
	}
}

func TestCountFiles(t *testing.T) {
	data := []struct {
		File string
		Want classics.Counts
	}{
		{
			File: "empty.txt",
			Want: classics.Counts{},
		},
		{
			File: "fox.txt",
			Want: classics.Counts{Lines: 1, Words: 9, Bytes: 48, Chars: 48},
		},
		{
			File: "spiders.txt",
			Want: classics.Counts{Lines: 3, Words: 7, Bytes: 45, Chars: 45},
		},
		{
			File: "atlamal.txt",
			Want: classics.Counts{Lines: 2, Words: 4, Bytes: 23, Chars: 20},
		},
		{
			File: "blank.txt",
			Want: classics.Counts{Lines: 6, Words: 12, Bytes: 80, Chars: 80},
		},
	}
	all := classics.CountLines | classics.CountWords | classics.CountBytes | classics.CountChars
	for _, d := range data {
		t.Run(d.File, func(t *testing.T) {
			r, err := os.Open(filepath.Join("testdata", d.File))
			if err != nil {
				t.Fatalf("fail to open file %s: %s", d.File, err)
			}
			defer r.Close()

			got, err := classics.Count(r, all)
			if err != nil {
				t.Fatalf("unexpected error counting: %s", err)
			}
			if got != d.Want {
				t.Errorf("counts mismatched! want %+v, got %+v", d.Want, got)
			}
		})
	}
}

// wrappedFile hides a file behind Unwrap and refuses to be read directly.
type wrappedFile struct {
	file *os.File
}

func (w wrappedFile) Read([]byte) (int, error) {
	return 0, errors.New("wrapped file should not be read")
}

func (w wrappedFile) Unwrap() io.Reader {
	return w.file
}

var _ rw.UnwrapReader = wrappedFile{}

func TestCountBytesFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(file, []byte("0123456789\nabcdef\n"), 0644); err != nil {
		t.Fatalf("fail to write sample: %s", err)
	}
	r, err := os.Open(file)
	if err != nil {
		t.Fatalf("fail to open sample: %s", err)
	}
	defer r.Close()

	if _, err := r.Seek(11, io.SeekStart); err != nil {
		t.Fatalf("fail to seek: %s", err)
	}
	got, err := classics.Count(wrappedFile{file: r}, classics.CountBytes)
	if err != nil {
		t.Fatalf("unexpected error counting: %s", err)
	}
	if got.Bytes != 7 {
		t.Errorf("bytes mismatched! want 7, got %d", got.Bytes)
	}
	off, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		t.Fatalf("fail to get offset: %s", err)
	}
	if off != 18 {
		t.Errorf("file should be consumed! want offset 18, got %d", off)
	}
	got, err = classics.Count(wrappedFile{file: r}, classics.CountBytes)
	if err != nil {
		t.Fatalf("unexpected error counting: %s", err)
	}
	if got.Bytes != 0 {
		t.Errorf("bytes mismatched after first count! want 0, got %d", got.Bytes)
	}
}

func TestCountsFormat(t *testing.T) {
	data := []struct {
		Name   string
		Counts classics.Counts
		Select classics.Select
		File   string
		Want   string
	}{
		{
			Name:   "default",
			Counts: classics.Counts{Lines: 2, Words: 3, Bytes: 14},
			Select: classics.DefaultSelect,
			File:   "sample.txt",
			Want:   "       2       3      14 sample.txt\n",
		},
		{
			Name:   "stdin",
			Counts: classics.Counts{Lines: 2, Words: 3, Bytes: 14},
			Select: classics.DefaultSelect,
			File:   "-",
			Want:   "       2       3      14\n",
		},
		{
			Name:   "chars",
			Counts: classics.Counts{Lines: 1, Chars: 20},
			Select: classics.CountLines | classics.CountChars,
			File:   "total",
			Want:   "       1      20 total\n",
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := d.Counts.Format(&buf, d.Select, 8, d.File); err != nil {
				t.Fatalf("unexpected error formatting: %s", err)
			}
			if got := buf.String(); got != d.Want {
				t.Errorf("output mismatched! want %q, got %q", d.Want, got)
			}
		})
	}
}

func TestCountsAdd(t *testing.T) {
	var (
		a = classics.Counts{Lines: 1, Words: 2, Bytes: 3, Chars: 4}
		b = classics.Counts{Lines: 10, Words: 20, Bytes: 30, Chars: 40}
	)
	want := classics.Counts{Lines: 11, Words: 22, Bytes: 33, Chars: 44}
	if got := a.Add(b); got != want {
		t.Errorf("sum mismatched! want %+v, got %+v", want, got)
	}
}
