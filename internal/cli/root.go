// Package cli wires the command line surface with cobra.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	devtoolscmd "github.com/louisbranch/chrome-devtools-cli/internal/cmd/devtools"
	apperrors "github.com/louisbranch/chrome-devtools-cli/internal/platform/errors"
	"github.com/louisbranch/chrome-devtools-cli/internal/services/devtools/app"
	"github.com/louisbranch/chrome-devtools-cli/internal/services/devtools/domain"
	"github.com/spf13/cobra"
)

// ErrorPrefix starts the single stderr line printed for a failed run.
const ErrorPrefix = "Error running command: "

// ErrorLine renders err as the diagnostic printed for a failed run.
func ErrorLine(err error) string {
	return ErrorPrefix + apperrors.Message(err)
}

// RunFunc executes one invocation.
type RunFunc func(ctx context.Context, inv app.Invocation) error

// Options configures the root command.
type Options struct {
	Config devtoolscmd.Config
	Stdout io.Writer
	Stderr io.Writer
	// Run overrides the dispatcher. Nil uses devtoolscmd.Run.
	Run RunFunc
}

// NewRootCommand builds the command tree.
func NewRootCommand(opts Options) *cobra.Command {
	var verbose bool

	run := opts.Run
	if run == nil {
		run = func(ctx context.Context, inv app.Invocation) error {
			cfg := opts.Config
			cfg.Verbose = cfg.Verbose || verbose
			return devtoolscmd.Run(ctx, cfg, version, inv, opts.Stdout, opts.Stderr)
		}
	}

	root := &cobra.Command{
		Use:   "chrome-devtools-cli <command> [json-args] [--headless]",
		Short: "Run one Chrome DevTools MCP tool and print its result",
		Long: fmt.Sprintf(`chrome-devtools-cli starts the Chrome DevTools MCP server, runs one tool and
prints the raw result as JSON.

Tokens are positional: the tool name, its JSON arguments, then an optional
flag. %s runs before %s.

Examples:
  chrome-devtools-cli list_pages
  chrome-devtools-cli navigate_page '{"url": "https://example.com"}'
  chrome-devtools-cli take_screenshot '{"fullPage": true}' --headless
  chrome-devtools-cli help click`, domain.SnapshotTool, strings.Join(domain.SnapshotCommands(), ", ")),
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := splitArgs(args)
			switch {
			case parsed.help:
				return cmd.Help()
			case parsed.version:
				_, err := fmt.Fprintln(cmd.OutOrStdout(), GetVersion())
				return err
			case len(parsed.positional) == 0:
				devtoolscmd.Help(opts.Config, cmd.OutOrStdout(), "", false)
				return nil
			}
			verbose = parsed.verbose
			return run(cmd.Context(), invocationFromArgs(parsed.positional, parsed.headless))
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	// Parsed by splitArgs; declared so they show up in the usage text.
	root.Flags().Bool("headless", false, "Run the browser without a visible window")
	root.Flags().Bool("verbose", false, "Log companion lifecycle to stderr")
	root.Flags().Bool("version", false, "Print the version")

	root.SetHelpCommand(newHelpCommand(opts.Config))
	root.AddCommand(newVersionCommand())

	if opts.Stdout != nil {
		root.SetOut(opts.Stdout)
	}
	if opts.Stderr != nil {
		root.SetErr(opts.Stderr)
	}
	return root
}

type rootArgs struct {
	positional []string
	headless   bool
	verbose    bool
	help       bool
	version    bool
}

// splitArgs pulls the CLI's own switches out of args. Every other token,
// including unknown --flags, stays positional in its original order.
func splitArgs(args []string) rootArgs {
	var parsed rootArgs
	for _, arg := range args {
		switch arg {
		case app.HeadlessFlag:
			parsed.headless = true
		case "--verbose":
			parsed.verbose = true
		case "--help", "-h":
			parsed.help = true
		case "--version":
			parsed.version = true
		default:
			parsed.positional = append(parsed.positional, arg)
		}
	}
	return parsed
}

// invocationFromArgs maps positional tokens to an invocation. The third
// token is forwarded as the flag; a --headless switch anywhere wins.
func invocationFromArgs(args []string, headless bool) app.Invocation {
	inv := app.Invocation{Command: args[0]}
	if len(args) > 1 {
		inv.Args = args[1]
	}
	if len(args) > 2 {
		inv.Flag = args[2]
	}
	if headless {
		inv.Flag = app.HeadlessFlag
	}
	return inv
}

func newHelpCommand(cfg devtoolscmd.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "List available commands or describe one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				devtoolscmd.Help(cfg, cmd.OutOrStdout(), "", false)
				return nil
			}
			devtoolscmd.Help(cfg, cmd.OutOrStdout(), args[0], true)
			return nil
		},
	}
}

// Execute loads configuration and runs the command line in args.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := devtoolscmd.LoadConfig()
	if err != nil {
		return err
	}
	root := NewRootCommand(Options{Config: cfg, Stdout: stdout, Stderr: stderr})
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
