// Package cli wires the classics tools to cobra commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/midbel/classics"
	"github.com/midbel/classics/config"
	"github.com/spf13/cobra"
)

const (
	ExitOk  = 0
	ExitErr = 1
)

// Command builds the cobra command of the named tool.
func Command(name string, settings config.Settings) (*cobra.Command, error) {
	tool, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%s: tool not found", name)
	}
	cmd := &cobra.Command{
		Use:           tool.Usage,
		Short:         tool.Short,
		Long:          tool.Help,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	var (
		debug = cmd.Flags().Bool("debug", settings.Debug, "trace processing on standard error")
		build = tool.Build(cmd, settings)
	)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := build(cmd, args)
		if err != nil {
			return err
		}
		options := []classics.RunnerOption{
			classics.WithStdin(cmd.InOrStdin()),
			classics.WithStdout(cmd.OutOrStdout()),
			classics.WithStderr(cmd.ErrOrStderr()),
			classics.WithNumberWidth(settings.NumberWidth),
			classics.WithCountWidth(settings.CountWidth),
			classics.WithBufferSize(settings.BufferSize),
		}
		if *debug {
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
			options = append(options, classics.WithLogger(slog.New(h).With("tool", name)))
		}
		runner, err := classics.NewRunner(options...)
		if err != nil {
			return err
		}
		return runner.Run(cmd.Context(), cfg)
	}
	return cmd, nil
}

// Root builds the multi call command having one sub command per tool.
func Root(settings config.Settings) (*cobra.Command, error) {
	root := &cobra.Command{
		Use:           "classics <tool> [args...]",
		Short:         "cat, head and wc in a single binary",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	for _, name := range Tools() {
		cmd, err := Command(name, settings)
		if err != nil {
			return nil, err
		}
		root.AddCommand(cmd)
	}
	return root, nil
}

// Main runs the named tool with args and returns the exit status of the process.
// An empty name selects the multi call command.
func Main(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(stderr, "Warning: failed to load .env file: %v\n", err)
	}
	settings, err := config.New()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitErr
	}
	if name == "" && len(args) > 0 {
		if _, ok := Lookup(args[0]); ok {
			name, args = args[0], args[1:]
		}
	}
	var cmd *cobra.Command
	if name == "" {
		cmd, err = Root(settings)
	} else {
		cmd, err = Command(name, settings)
		if err == nil {
			args, err = withDefaults(name, args)
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitErr
	}
	return Execute(context.Background(), cmd, args, stdin, stdout, stderr)
}

// Execute runs cmd and returns the exit status of the process. Errors concerning a
// single input are reported by the runner and do not change the exit status.
func Execute(ctx context.Context, cmd *cobra.Command, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return ExitErr
	}
	return ExitOk
}

func withDefaults(name string, args []string) ([]string, error) {
	extra, err := config.ArgsFor(name)
	if err != nil || len(extra) == 0 {
		return args, err
	}
	return append(extra, args...), nil
}
