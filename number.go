package classics

import (
	"errors"
	"fmt"
	"io"
)

const DefaultNumberWidth = 6

// Number copies r to w. With ModeNumberAll every line is prefixed by its number
// right aligned in a field of width columns and a tab. ModeNumberNonBlank does
// the same but passes blank lines through without numbering them.
func Number(w io.Writer, r io.Reader, mode Mode, width int) error {
	rs := NewReader(r, DefaultBufferSize)
	switch mode {
	case ModePlain:
		_, err := rs.WriteTo(w)
		return err
	case ModeNumberAll, ModeNumberNonBlank:
		return numberLines(w, rs, mode == ModeNumberNonBlank, width)
	default:
		return fmt.Errorf("%s: mode not supported by cat", mode)
	}
}

func numberLines(w io.Writer, rs *Reader, skipBlank bool, width int) error {
	var count int64
	for {
		line, err := rs.Line()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if skipBlank && len(trimEOL(line)) == 0 {
			if _, err := w.Write(line); err != nil {
				return err
			}
			continue
		}
		count++
		if _, err := fmt.Fprintf(w, "%*d\t%s", width, count, line); err != nil {
			return err
		}
	}
}
