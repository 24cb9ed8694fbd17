// Package app runs one companion tool call per process invocation.
package app

import (
	"context"
	"fmt"
	"io"
	"log"

	apperrors "github.com/louisbranch/chrome-devtools-cli/internal/platform/errors"
	platformotel "github.com/louisbranch/chrome-devtools-cli/internal/platform/otel"
	"github.com/louisbranch/chrome-devtools-cli/internal/services/devtools/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SnapshotNotice is printed before the priming call.
const SnapshotNotice = "Taking snapshot before executing command..."

// Dispatcher connects to the companion, primes it when needed and runs the
// requested tool.
type Dispatcher struct {
	connector Connector
	server    ServerCommand
	stdout    io.Writer
	tracer    trace.Tracer
	logger    *log.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithTracer sets the tracer used for run and tool-call spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(d *Dispatcher) {
		if tracer != nil {
			d.tracer = tracer
		}
	}
}

// WithLogger enables lifecycle logging.
func WithLogger(logger *log.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDispatcher builds a dispatcher that launches server through connector
// and writes command output to stdout.
func NewDispatcher(connector Connector, server ServerCommand, stdout io.Writer, opts ...Option) *Dispatcher {
	if stdout == nil {
		stdout = io.Discard
	}
	d := &Dispatcher{
		connector: connector,
		server:    server,
		stdout:    stdout,
		tracer:    platformotel.Tracer(),
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run executes inv against a fresh companion session.
//
// The result of the final call is printed as indented JSON and the session is
// closed. Failures return without a shutdown; the companion exits when its
// stdin closes with the process. Any failure, including a panic raised by the
// client layer, is returned as a coded error and nothing is retried.
func (d *Dispatcher) Run(ctx context.Context, inv Invocation) (err error) {
	ctx, span := d.tracer.Start(ctx, "devtools.run", trace.WithAttributes(
		attribute.String("tool.name", inv.Command),
		attribute.Bool("companion.headless", inv.Headless()),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			span.SetAttributes(attribute.String("error.code", string(apperrors.CodeOf(err))))
		}
		span.End()
	}()
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.FromPanic(apperrors.CodeUnknown, r)
		}
	}()

	fmt.Fprintln(d.stdout, inv.Echo())

	if d.connector == nil {
		return apperrors.New(apperrors.CodeConnect, "companion connector is not configured")
	}
	server := d.server.ForInvocation(inv)
	d.logger.Printf("starting companion: %s %v", server.Command, server.Args)
	session, err := d.connector.Connect(ctx, server)
	if err != nil {
		return apperrors.WrapWithMetadata(apperrors.CodeConnect, "", map[string]string{"command": server.Command}, err)
	}

	args, err := ParseArguments(inv.Args)
	if err != nil {
		return err
	}

	if domain.RequiresSnapshot(inv.Command) {
		fmt.Fprintln(d.stdout, SnapshotNotice)
		if _, err := d.callTool(ctx, session, domain.SnapshotTool, map[string]any{}, true); err != nil {
			return err
		}
	}

	result, err := d.callTool(ctx, session, inv.Command, args, false)
	if err != nil {
		return err
	}
	if err := writeResult(d.stdout, result); err != nil {
		return apperrors.Wrap(apperrors.CodeUnknown, "write result", err)
	}

	if err := session.Close(); err != nil {
		return apperrors.Wrap(apperrors.CodeClose, "close companion", err)
	}
	d.logger.Printf("companion closed")
	return nil
}

func (d *Dispatcher) callTool(ctx context.Context, session Session, name string, args map[string]any, priming bool) (*mcp.CallToolResult, error) {
	ctx, span := d.tracer.Start(ctx, "devtools.call_tool", trace.WithAttributes(
		attribute.String("tool.name", name),
		attribute.Bool("tool.priming", priming),
	))
	defer span.End()

	d.logger.Printf("calling %s", name)
	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, apperrors.WrapWithMetadata(apperrors.CodeToolCall, "", map[string]string{"tool": name}, err)
	}
	if result != nil && result.IsError {
		span.SetAttributes(attribute.Bool("tool.is_error", true))
	}
	return result, nil
}
