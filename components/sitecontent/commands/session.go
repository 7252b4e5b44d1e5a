package commands

import (
	"context"
	"errors"
	"fmt"

	gocommand "github.com/goliatone/go-command"
)

// Session signals understood by SessionCommand.
const (
	SignalExit   = "exit"
	SignalLogout = "logout"
)

// SessionInput requests leaving the editor or ending the session.
type SessionInput struct {
	Signal string `json:"signal"`
}

type sessionService interface {
	ExitToSite(ctx context.Context)
	Logout(ctx context.Context)
}

// SessionCommand forwards exit and logout to the host.
type SessionCommand struct {
	service sessionService
}

// NewSessionCommand creates the command.
func NewSessionCommand(service sessionService) *SessionCommand {
	return &SessionCommand{service: service}
}

var _ gocommand.Commander[SessionInput] = (*SessionCommand)(nil)

// Execute dispatches the signal.
func (c *SessionCommand) Execute(ctx context.Context, msg SessionInput) error {
	if c.service == nil {
		return errors.New("session command requires service")
	}
	switch msg.Signal {
	case SignalExit:
		c.service.ExitToSite(ctx)
	case SignalLogout:
		c.service.Logout(ctx)
	default:
		return fmt.Errorf("session command: unknown signal %q", msg.Signal)
	}
	return nil
}
