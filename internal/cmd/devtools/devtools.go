// Package devtools loads CLI configuration and runs one companion tool call.
package devtools

import (
	"context"
	"io"
	"log"

	platformcmd "github.com/louisbranch/chrome-devtools-cli/internal/platform/cmd"
	"github.com/louisbranch/chrome-devtools-cli/internal/platform/otel"
	"github.com/louisbranch/chrome-devtools-cli/internal/platform/timeouts"
	"github.com/louisbranch/chrome-devtools-cli/internal/services/devtools/app"
	"github.com/louisbranch/chrome-devtools-cli/internal/services/devtools/help"
)

// Config holds CLI configuration.
type Config struct {
	ServerCommand string   `env:"CHROME_DEVTOOLS_CLI_SERVER_COMMAND" envDefault:"npx"`
	ServerArgs    []string `env:"CHROME_DEVTOOLS_CLI_SERVER_ARGS"    envDefault:"-y chrome-devtools-mcp@latest" envSeparator:" "`
	Locale        string   `env:"CHROME_DEVTOOLS_CLI_LOCALE"         envDefault:"en-US"`
	Verbose       bool     `env:"CHROME_DEVTOOLS_CLI_VERBOSE"`
	Telemetry     otel.Settings
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFrom reads Config from environ.
func LoadConfigFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfigFrom(&cfg, environ); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Server returns the companion process command.
func (c Config) Server() app.ServerCommand {
	return app.ServerCommand{Command: c.ServerCommand, Args: c.ServerArgs}
}

// Run dispatches inv to a freshly spawned companion.
// Command output goes to stdout; the companion's own diagnostics to stderr.
func Run(ctx context.Context, cfg Config, version string, inv app.Invocation, stdout, stderr io.Writer) error {
	options := platformcmd.RunOptions{
		Version:   version,
		Telemetry: cfg.Telemetry,
	}
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceCLI, options, func(ctx context.Context) error {
		connector := app.MCPConnector{
			Stderr:            stderr,
			TerminateDuration: timeouts.ServerTerminate,
		}
		var opts []app.Option
		if cfg.Verbose {
			opts = append(opts, app.WithLogger(log.New(stderr, log.Prefix(), log.Flags())))
		}
		return app.NewDispatcher(connector, cfg.Server(), stdout, opts...).Run(ctx, inv)
	})
}

// Help prints the catalog, or one command's detail when name is given.
func Help(cfg Config, stdout io.Writer, name string, detail bool) {
	printer := help.NewPrinter(stdout, help.ResolveTag(cfg.Locale))
	if detail {
		printer.PrintCommandDetail(name)
		return
	}
	printer.PrintAvailableCommands()
}
