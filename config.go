package classics

import (
	"fmt"
	"strconv"
)

const (
	DefaultLines = 10
	stdinToken   = "-"
)

// Mode selects what a tool does with each of its input streams. The set is closed:
// the runner switches over it once per file.
type Mode int8

const (
	ModePlain Mode = iota
	ModeNumberAll
	ModeNumberNonBlank
	ModeLines
	ModeBytes
	ModeCount
)

func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeNumberAll:
		return "number-all"
	case ModeNumberNonBlank:
		return "number-nonblank"
	case ModeLines:
		return "lines"
	case ModeBytes:
		return "bytes"
	case ModeCount:
		return "count"
	default:
		return "unknown"
	}
}

func (m Mode) numbering() bool {
	return m == ModePlain || m == ModeNumberAll || m == ModeNumberNonBlank
}

func (m Mode) bounded() bool {
	return m == ModeLines || m == ModeBytes
}

// Select is the set of counts computed by wc.
type Select uint8

const (
	CountLines Select = 1 << iota
	CountWords
	CountBytes
	CountChars
)

const DefaultSelect = CountLines | CountWords | CountBytes

func (s Select) Has(f Select) bool {
	return s&f == f
}

type Config struct {
	Files  []string
	Mode   Mode
	Limit  int64
	Select Select
}

func CatConfig(files []string, number, nonblank bool) (Config, error) {
	cfg := Config{
		Files: defaultFiles(files),
		Mode:  ModePlain,
	}
	switch {
	case number && nonblank:
		return cfg, &ConfigError{Option: "number, number-nonblank", Err: ErrConflict}
	case number:
		cfg.Mode = ModeNumberAll
	case nonblank:
		cfg.Mode = ModeNumberNonBlank
	}
	return cfg, nil
}

// HeadConfig builds the configuration of head. An empty lines and bytes selects
// the default line limit.
func HeadConfig(files []string, lines, bytes string) (Config, error) {
	cfg := Config{
		Files: defaultFiles(files),
		Mode:  ModeLines,
		Limit: DefaultLines,
	}
	if lines != "" && bytes != "" {
		return cfg, &ConfigError{Option: "lines, bytes", Err: ErrConflict}
	}
	var err error
	switch {
	case bytes != "":
		cfg.Mode = ModeBytes
		cfg.Limit, err = ParseLimit("bytes", bytes)
	case lines != "":
		cfg.Limit, err = ParseLimit("lines", lines)
	}
	return cfg, err
}

func WcConfig(files []string, sel Select) (Config, error) {
	cfg := Config{
		Files:  defaultFiles(files),
		Mode:   ModeCount,
		Select: sel,
	}
	if sel == 0 {
		cfg.Select = DefaultSelect
	}
	return cfg, cfg.Validate()
}

// ParseLimit parses a strictly positive count given to option.
func ParseLimit(option, value string) (int64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		return 0, &ConfigError{Option: option, Value: value, Err: ErrCount}
	}
	return n, nil
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModePlain, ModeNumberAll, ModeNumberNonBlank:
	case ModeLines, ModeBytes:
		if c.Limit <= 0 {
			return &ConfigError{
				Option: c.Mode.String(),
				Value:  strconv.FormatInt(c.Limit, 10),
				Err:    ErrCount,
			}
		}
	case ModeCount:
		if c.Select.Has(CountBytes) && c.Select.Has(CountChars) {
			return &ConfigError{Option: "bytes, chars", Err: ErrConflict}
		}
	default:
		return &ConfigError{Option: "mode", Err: fmt.Errorf("unsupported mode %d", c.Mode)}
	}
	return nil
}

func defaultFiles(files []string) []string {
	if len(files) == 0 {
		return []string{stdinToken}
	}
	return append([]string(nil), files...)
}
