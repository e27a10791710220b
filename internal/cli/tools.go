package cli

import (
	"sort"
	"strconv"

	"github.com/midbel/classics"
	"github.com/midbel/classics/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type Tool struct {
	Usage string
	Short string
	Help  string
	Build func(*cobra.Command, config.Settings) func(*cobra.Command, []string) (classics.Config, error)
}

var tools = map[string]Tool{
	"cat": {
		Usage: "cat [-n|-b] [FILE...]",
		Short: "concatenate files to standard output",
		Help:  "With no FILE, or when FILE is -, read standard input. With more than one FILE, precede each with a header giving the file name.",
		Build: buildCat,
	},
	"head": {
		Usage: "head [-n LINES|-c BYTES] [FILE...]",
		Short: "output the first part of files",
		Help:  "Print the first 10 lines of each FILE. With more than one FILE, precede each with a header giving the file name.",
		Build: buildHead,
	},
	"wc": {
		Usage: "wc [-l] [-w] [-c|-m] [FILE...]",
		Short: "print newline, word, and byte counts for each file",
		Help:  "Without options, print the newline, word and byte counts. With more than one FILE, precede each with a header giving the file name and end with a total line.",
		Build: buildWc,
	},
}

// Tools returns the names of the supported tools.
func Tools() []string {
	names := make([]string, 0, len(tools))
	for n := range tools {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func Lookup(name string) (Tool, bool) {
	t, ok := tools[name]
	return t, ok
}

func buildCat(cmd *cobra.Command, _ config.Settings) func(*cobra.Command, []string) (classics.Config, error) {
	var (
		number   = cmd.Flags().BoolP("number", "n", false, "number all output lines")
		nonblank = cmd.Flags().BoolP("number-nonblank", "b", false, "number nonempty output lines")
	)
	return func(_ *cobra.Command, args []string) (classics.Config, error) {
		return classics.CatConfig(args, *number, *nonblank)
	}
}

func buildHead(cmd *cobra.Command, settings config.Settings) func(*cobra.Command, []string) (classics.Config, error) {
	var (
		lines = cmd.Flags().StringP("lines", "n", strconv.Itoa(settings.HeadLines), "print the first `N` lines")
		bytes = cmd.Flags().StringP("bytes", "c", "", "print the first `N` bytes")
	)
	return func(cmd *cobra.Command, args []string) (classics.Config, error) {
		var (
			fs = cmd.Flags()
			n  = *lines
		)
		if !fs.Changed("lines") && fs.Changed("bytes") {
			n = ""
		}
		return classics.HeadConfig(args, n, changedValue(fs, "bytes", *bytes))
	}
}

func buildWc(cmd *cobra.Command, _ config.Settings) func(*cobra.Command, []string) (classics.Config, error) {
	var (
		lines = cmd.Flags().BoolP("lines", "l", false, "print the newline counts")
		words = cmd.Flags().BoolP("words", "w", false, "print the word counts")
		bytes = cmd.Flags().BoolP("bytes", "c", false, "print the byte counts")
		chars = cmd.Flags().BoolP("chars", "m", false, "print the character counts")
	)
	return func(_ *cobra.Command, args []string) (classics.Config, error) {
		var sel classics.Select
		for _, f := range []struct {
			set bool
			sel classics.Select
		}{
			{set: *lines, sel: classics.CountLines},
			{set: *words, sel: classics.CountWords},
			{set: *bytes, sel: classics.CountBytes},
			{set: *chars, sel: classics.CountChars},
		} {
			if f.set {
				sel |= f.sel
			}
		}
		return classics.WcConfig(args, sel)
	}
}

func changedValue(fs *pflag.FlagSet, name, value string) string {
	if !fs.Changed(name) {
		return ""
	}
	return value
}
