package app

import (
	"context"
	"io"
	"os/exec"
	"slices"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// HeadlessFlag is the command-line token that selects headless mode.
	HeadlessFlag = "--headless"
	// HeadlessArg is appended to the companion arguments in headless mode.
	HeadlessArg = "--headless=true"

	// ClientName identifies this client during the MCP handshake.
	ClientName = "chrome-devtools-cli-headless"
	// ClientVersion is the client version sent during the MCP handshake.
	ClientVersion = "1"
)

// ServerCommand is the executable and base arguments of the companion process.
type ServerCommand struct {
	Command string
	Args    []string
}

// ForInvocation returns the command used for inv. Headless invocations get
// HeadlessArg appended; the receiver is never modified.
func (s ServerCommand) ForInvocation(inv Invocation) ServerCommand {
	args := slices.Clone(s.Args)
	if inv.Headless() {
		args = append(args, HeadlessArg)
	}
	return ServerCommand{Command: s.Command, Args: args}
}

// Session is a connected companion that accepts tool calls.
// *mcp.ClientSession satisfies it.
type Session interface {
	CallTool(ctx context.Context, params *mcp.CallToolParams) (*mcp.CallToolResult, error)
	Close() error
}

// Connector opens a session against a companion process.
type Connector interface {
	Connect(ctx context.Context, server ServerCommand) (Session, error)
}

// MCPConnector spawns the companion and speaks MCP over its stdio.
type MCPConnector struct {
	// Stderr receives the companion's diagnostic output. Nil discards it.
	Stderr io.Writer
	// TerminateDuration bounds how long Close waits for the companion to exit.
	TerminateDuration time.Duration
	// NewTransport overrides the subprocess transport. Used by tests.
	NewTransport func(ctx context.Context, server ServerCommand) mcp.Transport
}

// Connect launches server and completes the MCP initialize handshake.
func (c MCPConnector) Connect(ctx context.Context, server ServerCommand) (Session, error) {
	newTransport := c.NewTransport
	if newTransport == nil {
		newTransport = c.commandTransport
	}
	client := mcp.NewClient(&mcp.Implementation{Name: ClientName, Version: ClientVersion}, nil)
	session, err := client.Connect(ctx, newTransport(ctx, server), nil)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (c MCPConnector) commandTransport(ctx context.Context, server ServerCommand) mcp.Transport {
	return &mcp.CommandTransport{
		Command:           c.command(ctx, server),
		TerminateDuration: c.TerminateDuration,
	}
}

func (c MCPConnector) command(ctx context.Context, server ServerCommand) *exec.Cmd {
	cmd := exec.CommandContext(ctx, server.Command, server.Args...)
	cmd.Stderr = c.Stderr
	return cmd
}
