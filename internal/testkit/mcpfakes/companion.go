// Package mcpfakes provides companion-process doubles for MCP client tests.
package mcpfakes

import (
	"context"
	"slices"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolCall records one tools/call request.
type ToolCall struct {
	Name      string
	Arguments any
}

// Session is a configurable fake companion session.
type Session struct {
	Result   *mcp.CallToolResult
	Err      error
	FailOn   string // only fail calls to this tool; empty fails every call
	Panic    any
	CloseErr error

	Calls  []ToolCall
	Closed int
}

// CallTool records the call and returns the configured response.
func (s *Session) CallTool(_ context.Context, params *mcp.CallToolParams) (*mcp.CallToolResult, error) {
	s.Calls = append(s.Calls, ToolCall{Name: params.Name, Arguments: params.Arguments})
	if s.Panic != nil {
		panic(s.Panic)
	}
	if s.Err != nil && (s.FailOn == "" || s.FailOn == params.Name) {
		return nil, s.Err
	}
	if s.Result != nil {
		return s.Result, nil
	}
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: "success"}}}, nil
}

// Close counts shutdown requests.
func (s *Session) Close() error {
	s.Closed++
	return s.CloseErr
}

// Companion is an in-process MCP server that records tool calls.
// Each tool answers "<name> ok" unless it was registered as failing, in which
// case the error is reported as a tool error result.
type Companion struct {
	server *mcp.Server

	mu    sync.Mutex
	calls []ToolCall
}

// NewCompanion registers tools and failing tools on a fresh server.
func NewCompanion(tools []string, failing map[string]error) *Companion {
	c := &Companion{
		server: mcp.NewServer(&mcp.Implementation{Name: "companion-fake", Version: "v0.0.1"}, nil),
	}
	for _, name := range tools {
		mcp.AddTool(c.server, &mcp.Tool{Name: name, Description: name}, c.handler(name, nil))
	}
	for name, err := range failing {
		mcp.AddTool(c.server, &mcp.Tool{Name: name, Description: name}, c.handler(name, err))
	}
	return c
}

// ClientTransport connects a new server session and returns the client end.
// The returned stop function closes the server session.
func (c *Companion) ClientTransport(ctx context.Context) (mcp.Transport, func(), error) {
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	session, err := c.server.Connect(ctx, serverTransport, nil)
	if err != nil {
		return nil, nil, err
	}
	return clientTransport, func() { _ = session.Close() }, nil
}

// Calls returns the recorded calls in arrival order.
func (c *Companion) Calls() []ToolCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.calls)
}

func (c *Companion) handler(name string, fail error) mcp.ToolHandlerFor[map[string]any, any] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input map[string]any) (*mcp.CallToolResult, any, error) {
		c.mu.Lock()
		c.calls = append(c.calls, ToolCall{Name: name, Arguments: input})
		c.mu.Unlock()
		if fail != nil {
			return nil, nil, fail
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: name + " ok"}},
		}, nil, nil
	}
}
