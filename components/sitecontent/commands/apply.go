package commands

import (
	"context"
	"encoding/json"
	"errors"

	gocommand "github.com/goliatone/go-command"
	sitecontent "github.com/goliatone/go-sitecontent/components/sitecontent"
)

// ApplySectionInput carries a full replacement for one section.
type ApplySectionInput struct {
	Section   sitecontent.SectionID `json:"section"`
	Payload   json.RawMessage       `json:"payload"`
	UserID    string                `json:"user_id"`
	SessionID string                `json:"session_id"`
}

type applyService interface {
	ApplySectionPayload(ctx context.Context, id sitecontent.SectionID, payload []byte) error
}

// ApplySectionCommand wraps Service.ApplySectionPayload.
type ApplySectionCommand struct {
	service   applyService
	telemetry Telemetry
}

// NewApplySectionCommand creates the command.
func NewApplySectionCommand(service applyService, telemetry Telemetry) *ApplySectionCommand {
	return &ApplySectionCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ApplySectionInput] = (*ApplySectionCommand)(nil)

// Execute decodes and applies the section payload.
func (c *ApplySectionCommand) Execute(ctx context.Context, msg ApplySectionInput) error {
	if c.service == nil {
		return errors.New("apply command requires service")
	}
	if len(msg.Payload) == 0 {
		return sitecontent.ErrInvalidPayload
	}
	ctx = sitecontent.ContextWithActor(ctx, sitecontent.ActorContext{
		UserID:    msg.UserID,
		SessionID: msg.SessionID,
	})
	if err := c.service.ApplySectionPayload(ctx, msg.Section, msg.Payload); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "sitecontent.command.apply", map[string]any{
		"section": string(msg.Section),
	})
	return nil
}
