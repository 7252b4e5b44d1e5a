package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	sitecontent "github.com/goliatone/go-sitecontent/components/sitecontent"
)

// SaveContentInput acknowledges the current content. Receipt, when set,
// receives the outcome.
type SaveContentInput struct {
	UserID  string                   `json:"user_id"`
	Receipt *sitecontent.SaveReceipt `json:"-"`
}

type saveService interface {
	Save(ctx context.Context) (sitecontent.SaveReceipt, error)
}

// SaveContentCommand wraps Service.Save.
type SaveContentCommand struct {
	service   saveService
	telemetry Telemetry
}

// NewSaveContentCommand creates the command.
func NewSaveContentCommand(service saveService, telemetry Telemetry) *SaveContentCommand {
	return &SaveContentCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SaveContentInput] = (*SaveContentCommand)(nil)

// Execute saves and records the acknowledged revision.
func (c *SaveContentCommand) Execute(ctx context.Context, msg SaveContentInput) error {
	if c.service == nil {
		return errors.New("save command requires service")
	}
	ctx = sitecontent.ContextWithActor(ctx, sitecontent.ActorContext{UserID: msg.UserID})
	receipt, err := c.service.Save(ctx)
	if err != nil {
		return err
	}
	if msg.Receipt != nil {
		*msg.Receipt = receipt
	}
	c.telemetry.Record(ctx, "sitecontent.command.save", map[string]any{
		"revision": receipt.Revision,
		"changed":  receipt.Changed,
	})
	return nil
}
