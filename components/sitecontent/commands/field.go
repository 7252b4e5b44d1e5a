package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	sitecontent "github.com/goliatone/go-sitecontent/components/sitecontent"
)

// SetFieldInput edits one scalar field of a section.
type SetFieldInput struct {
	Section sitecontent.SectionID `json:"section"`
	Key     string                `json:"key"`
	Value   string                `json:"value"`
	UserID  string                `json:"user_id"`
}

type editorService interface {
	Editor(id sitecontent.SectionID) (sitecontent.SectionEditor, error)
}

// SetFieldCommand drives a section editor from a form post.
type SetFieldCommand struct {
	service   editorService
	telemetry Telemetry
}

// NewSetFieldCommand creates the command.
func NewSetFieldCommand(service editorService, telemetry Telemetry) *SetFieldCommand {
	return &SetFieldCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SetFieldInput] = (*SetFieldCommand)(nil)

// Execute writes the field through the section editor.
func (c *SetFieldCommand) Execute(ctx context.Context, msg SetFieldInput) error {
	if c.service == nil {
		return errors.New("set field command requires service")
	}
	if msg.Key == "" {
		return errors.New("set field command requires key")
	}
	editor, err := c.service.Editor(msg.Section)
	if err != nil {
		return err
	}
	ctx = sitecontent.ContextWithActor(ctx, sitecontent.ActorContext{UserID: msg.UserID})
	if err := editor.SetField(ctx, msg.Key, msg.Value); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "sitecontent.command.field", map[string]any{
		"section": string(msg.Section),
		"key":     msg.Key,
	})
	return nil
}
