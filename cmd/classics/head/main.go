package main

import (
	"os"

	"github.com/midbel/classics/internal/cli"
)

func main() {
	os.Exit(cli.Main("head", os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
