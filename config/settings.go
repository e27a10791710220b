// Package config provides the settings of the classics tools loaded from
// environment variables.
//
// Settings are created via New() which handles:
// - Environment variable parsing with validation
// - Default value application
// - Per tool default arguments
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/midbel/shlex"
)

// Settings holds the configuration shared by all tools.
type Settings struct {
	NumberWidth int
	CountWidth  int
	BufferSize  int
	HeadLines   int
	Debug       bool
}

// Environment variables holding extra arguments of each tool.
var toolOpts = map[string]string{
	"cat":  "CAT_OPTS",
	"head": "HEAD_OPTS",
	"wc":   "WC_OPTS",
}

// New creates settings from environment variables.
// Returns an error if an environment variable contains an invalid value.
func New() (Settings, error) {
	numberWidth, err := getEnvPositive("CLASSICS_NUMBER_WIDTH", 6)
	if err != nil {
		return Settings{}, err
	}

	countWidth, err := getEnvPositive("CLASSICS_COUNT_WIDTH", 8)
	if err != nil {
		return Settings{}, err
	}

	bufferSize, err := getEnvPositive("CLASSICS_BUFFER_SIZE", 32<<10)
	if err != nil {
		return Settings{}, err
	}

	headLines, err := getEnvPositive("CLASSICS_HEAD_LINES", 10)
	if err != nil {
		return Settings{}, err
	}

	debug, err := getEnvBool("CLASSICS_DEBUG", false)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		NumberWidth: numberWidth,
		CountWidth:  countWidth,
		BufferSize:  bufferSize,
		HeadLines:   headLines,
		Debug:       debug,
	}, nil
}

// MustNew creates settings from environment variables.
// Panics if the environment variables are invalid.
func MustNew() Settings {
	settings, err := New()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return settings
}

// ArgsFor returns the default arguments of a tool, split with shell quoting rules.
func ArgsFor(tool string) ([]string, error) {
	key, ok := toolOpts[tool]
	if !ok {
		return nil, fmt.Errorf("unknown tool: %q", tool)
	}
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return nil, nil
	}
	args, err := shlex.Split(strings.NewReader(val))
	if err != nil {
		return nil, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return args, nil
}

func getEnvPositive(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("invalid value for %s: %q: must be positive", key, val)
	}
	return i, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return b, nil
}
