package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	sitecontent "github.com/goliatone/go-sitecontent/components/sitecontent"
)

// ActivateSectionInput selects the editor to show.
type ActivateSectionInput struct {
	Section sitecontent.SectionID `json:"section"`
}

type activateService interface {
	Activate(ctx context.Context, id sitecontent.SectionID) error
}

// ActivateSectionCommand wraps Service.Activate.
type ActivateSectionCommand struct {
	service activateService
}

// NewActivateSectionCommand creates the command.
func NewActivateSectionCommand(service activateService) *ActivateSectionCommand {
	return &ActivateSectionCommand{service: service}
}

var _ gocommand.Commander[ActivateSectionInput] = (*ActivateSectionCommand)(nil)

// Execute switches the active section.
func (c *ActivateSectionCommand) Execute(ctx context.Context, msg ActivateSectionInput) error {
	if c.service == nil {
		return errors.New("activate command requires service")
	}
	return c.service.Activate(ctx, msg.Section)
}
