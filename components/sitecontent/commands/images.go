package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	sitecontent "github.com/goliatone/go-sitecontent/components/sitecontent"
)

type imageLibrary interface {
	Upload(ctx context.Context, files []sitecontent.UploadFile) (sitecontent.UploadReport, error)
	Remove(ctx context.Context, id string) (bool, error)
	UpdateAlt(ctx context.Context, id, alt string) error
	CopyURL(ctx context.Context, id string) (string, error)
}

// UploadImagesInput carries an upload batch. Report, when set, receives the outcome.
type UploadImagesInput struct {
	Files  []sitecontent.UploadFile
	UserID string
	Report *sitecontent.UploadReport
}

// UploadImagesCommand wraps ImageLibrary.Upload.
type UploadImagesCommand struct {
	library   imageLibrary
	telemetry Telemetry
}

// NewUploadImagesCommand creates the command.
func NewUploadImagesCommand(library imageLibrary, telemetry Telemetry) *UploadImagesCommand {
	return &UploadImagesCommand{library: library, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[UploadImagesInput] = (*UploadImagesCommand)(nil)

// Execute uploads the batch.
func (c *UploadImagesCommand) Execute(ctx context.Context, msg UploadImagesInput) error {
	if c.library == nil {
		return errors.New("upload command requires image library")
	}
	if len(msg.Files) == 0 {
		return errors.New("upload command requires files")
	}
	ctx = sitecontent.ContextWithActor(ctx, sitecontent.ActorContext{UserID: msg.UserID})
	report, err := c.library.Upload(ctx, msg.Files)
	if msg.Report != nil {
		*msg.Report = report
	}
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "sitecontent.command.upload", map[string]any{
		"added":  len(report.Added),
		"failed": len(report.Failed),
	})
	return nil
}

// RemoveImageInput identifies the image to delete. Confirmed answers the
// deletion prompt on the operator's behalf; otherwise the library's own
// Confirmer decides. Removed, when set, reports whether the image was deleted.
type RemoveImageInput struct {
	ImageID   string `json:"image_id"`
	Confirmed bool   `json:"confirmed"`
	Removed   *bool  `json:"-"`
}

// RemoveImageCommand wraps ImageLibrary.Remove.
type RemoveImageCommand struct {
	library   imageLibrary
	telemetry Telemetry
}

// NewRemoveImageCommand creates the command.
func NewRemoveImageCommand(library imageLibrary, telemetry Telemetry) *RemoveImageCommand {
	return &RemoveImageCommand{library: library, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[RemoveImageInput] = (*RemoveImageCommand)(nil)

// Execute removes the image.
func (c *RemoveImageCommand) Execute(ctx context.Context, msg RemoveImageInput) error {
	if c.library == nil {
		return errors.New("remove image command requires image library")
	}
	if msg.ImageID == "" {
		return errors.New("remove image command requires image id")
	}
	if msg.Confirmed {
		ctx = sitecontent.ContextWithConfirmer(ctx, sitecontent.ConfirmAnswer(true))
	}
	removed, err := c.library.Remove(ctx, msg.ImageID)
	if msg.Removed != nil {
		*msg.Removed = removed
	}
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "sitecontent.command.remove_image", map[string]any{
		"image_id": msg.ImageID,
		"removed":  removed,
	})
	return nil
}

// UpdateImageAltInput rewrites an image's alt text.
type UpdateImageAltInput struct {
	ImageID string `json:"image_id"`
	Alt     string `json:"alt"`
}

// UpdateImageAltCommand wraps ImageLibrary.UpdateAlt.
type UpdateImageAltCommand struct {
	library imageLibrary
}

// NewUpdateImageAltCommand creates the command.
func NewUpdateImageAltCommand(library imageLibrary) *UpdateImageAltCommand {
	return &UpdateImageAltCommand{library: library}
}

var _ gocommand.Commander[UpdateImageAltInput] = (*UpdateImageAltCommand)(nil)

// Execute updates the alt text.
func (c *UpdateImageAltCommand) Execute(ctx context.Context, msg UpdateImageAltInput) error {
	if c.library == nil {
		return errors.New("alt command requires image library")
	}
	return c.library.UpdateAlt(ctx, msg.ImageID, msg.Alt)
}

// CopyImageURLInput identifies the image whose reference is copied. URL,
// when set, receives the reference.
type CopyImageURLInput struct {
	ImageID string  `json:"image_id"`
	URL     *string `json:"-"`
}

// CopyImageURLCommand wraps ImageLibrary.CopyURL.
type CopyImageURLCommand struct {
	library imageLibrary
}

// NewCopyImageURLCommand creates the command.
func NewCopyImageURLCommand(library imageLibrary) *CopyImageURLCommand {
	return &CopyImageURLCommand{library: library}
}

var _ gocommand.Commander[CopyImageURLInput] = (*CopyImageURLCommand)(nil)

// Execute copies the image reference.
func (c *CopyImageURLCommand) Execute(ctx context.Context, msg CopyImageURLInput) error {
	if c.library == nil {
		return errors.New("copy command requires image library")
	}
	ref, err := c.library.CopyURL(ctx, msg.ImageID)
	if msg.URL != nil {
		*msg.URL = ref
	}
	return err
}
