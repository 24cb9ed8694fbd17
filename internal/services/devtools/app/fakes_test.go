package app

import (
	"context"
	"errors"

	"github.com/louisbranch/chrome-devtools-cli/internal/testkit/mcpfakes"
)

type fakeConnector struct {
	session    *mcpfakes.Session
	err        error
	servers    []ServerCommand
	connectCnt int
}

func (c *fakeConnector) Connect(_ context.Context, server ServerCommand) (Session, error) {
	c.connectCnt++
	c.servers = append(c.servers, server)
	if c.err != nil {
		return nil, c.err
	}
	if c.session == nil {
		return nil, errors.New("no session configured")
	}
	return c.session, nil
}
