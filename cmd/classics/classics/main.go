package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/classics/internal/cli"
)

// classics can be called through a link named after one of the tools, or with the
// name of the tool as its first argument.
func main() {
	name := strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
	if _, ok := cli.Lookup(name); !ok {
		name = ""
	}
	os.Exit(cli.Main(name, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
