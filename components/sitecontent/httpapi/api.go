package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-sitecontent/components/sitecontent"
	"github.com/goliatone/go-sitecontent/components/sitecontent/commands"
	"github.com/goliatone/go-sitecontent/components/sitecontent/queries"
	"github.com/goliatone/go-sitecontent/pkg/errmsg"
	"go.uber.org/zap"
)

const maxUploadMemory = 32 << 20

// Handlers exposes HTTP endpoints backed by shared commands and queries.
type Handlers struct {
	Apply       gocommand.Commander[commands.ApplySectionInput]
	SetField    gocommand.Commander[commands.SetFieldInput]
	Activate    gocommand.Commander[commands.ActivateSectionInput]
	Save        gocommand.Commander[commands.SaveContentInput]
	Session     gocommand.Commander[commands.SessionInput]
	Upload      gocommand.Commander[commands.UploadImagesInput]
	RemoveImage gocommand.Commander[commands.RemoveImageInput]
	UpdateAlt   gocommand.Commander[commands.UpdateImageAltInput]
	CopyURL     gocommand.Commander[commands.CopyImageURLInput]

	Content      gocommand.Querier[queries.ContentInput, sitecontent.SiteContent]
	Section      gocommand.Querier[queries.SectionInput, sitecontent.SectionValue]
	Navigation   gocommand.Querier[queries.NavigationInput, []sitecontent.NavEntry]
	SearchImages gocommand.Querier[queries.ImageSearchInput, []sitecontent.ImageItem]
	Lookup       gocommand.Querier[queries.ImageLookupInput, string]
	Copied       gocommand.Querier[queries.ImageCopiedInput, bool]

	Logger *zap.Logger
}

// NewHandlers wires every handler to service and library.
func NewHandlers(service *sitecontent.Service, library *sitecontent.ImageLibrary, telemetry commands.Telemetry, logger *zap.Logger) *Handlers {
	return &Handlers{
		Apply:        commands.NewApplySectionCommand(service, telemetry),
		SetField:     commands.NewSetFieldCommand(service, telemetry),
		Activate:     commands.NewActivateSectionCommand(service),
		Save:         commands.NewSaveContentCommand(service, telemetry),
		Session:      commands.NewSessionCommand(service),
		Upload:       commands.NewUploadImagesCommand(library, telemetry),
		RemoveImage:  commands.NewRemoveImageCommand(library, telemetry),
		UpdateAlt:    commands.NewUpdateImageAltCommand(library),
		CopyURL:      commands.NewCopyImageURLCommand(library),
		Content:      queries.NewContentQuery(service),
		Section:      queries.NewSectionQuery(service),
		Navigation:   queries.NewNavigationQuery(service),
		SearchImages: queries.NewImageSearchQuery(library),
		Lookup:       queries.NewImageLookupQuery(nil),
		Copied:       queries.NewImageCopiedQuery(library),
		Logger:       logger,
	}
}

// StatusFor maps core errors onto HTTP statuses.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, sitecontent.ErrUnknownSection),
		errors.Is(err, sitecontent.ErrInvalidPayload),
		errors.Is(err, sitecontent.ErrUnknownField),
		errors.Is(err, sitecontent.ErrIndexOutOfRange),
		errors.Is(err, sitecontent.ErrEmptyQuery):
		return http.StatusBadRequest
	case errors.Is(err, sitecontent.ErrImageNotFound):
		return http.StatusNotFound
	case errors.Is(err, sitecontent.ErrValidation), errors.Is(err, sitecontent.ErrUnsupportedMedia):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// ErrorBody is the JSON error envelope. Message is safe to show to editors.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewErrorBody builds the envelope for err at status.
func NewErrorBody(status int, err error) ErrorBody {
	return ErrorBody{Error: err.Error(), Message: errmsg.ForStatus(status, err.Error())}
}

func (h *Handlers) fail(w http.ResponseWriter, status int, err error) {
	if h.Logger != nil && status >= http.StatusInternalServerError {
		h.Logger.Error("sitecontent request failed", zap.Int("status", status), zap.Error(err))
	}
	writeJSON(w, status, NewErrorBody(status, err))
}

func (h *Handlers) failFor(w http.ResponseWriter, err error) {
	h.fail(w, StatusFor(err), err)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// HandleContent returns the full content.
func (h *Handlers) HandleContent(w http.ResponseWriter, r *http.Request) {
	content, err := h.Content.Query(r.Context(), queries.ContentInput{})
	if err != nil {
		h.failFor(w, err)
		return
	}
	writeJSON(w, http.StatusOK, content)
}

// HandleSection returns one section.
func (h *Handlers) HandleSection(w http.ResponseWriter, r *http.Request, section string) {
	value, err := h.Section.Query(r.Context(), queries.SectionInput{Section: sitecontent.SectionID(section)})
	if err != nil {
		h.failFor(w, err)
		return
	}
	writeJSON(w, http.StatusOK, value)
}

// HandleNavigation lists the section navigation for the ?locale= query.
func (h *Handlers) HandleNavigation(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Navigation.Query(r.Context(), queries.NavigationInput{Locale: r.URL.Query().Get("locale")})
	if err != nil {
		h.failFor(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// HandleApplySection replaces a section with the request body.
func (h *Handlers) HandleApplySection(w http.ResponseWriter, r *http.Request, section string) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	input := commands.ApplySectionInput{Section: sitecontent.SectionID(section), Payload: body}
	if err := h.Apply.Execute(r.Context(), input); err != nil {
		h.failFor(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSetField writes one scalar field.
func (h *Handlers) HandleSetField(w http.ResponseWriter, r *http.Request, section string) {
	var payload commands.SetFieldInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	payload.Section = sitecontent.SectionID(section)
	if err := h.SetField.Execute(r.Context(), payload); err != nil {
		h.failFor(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleActivate switches the active section.
func (h *Handlers) HandleActivate(w http.ResponseWriter, r *http.Request, section string) {
	if err := h.Activate.Execute(r.Context(), commands.ActivateSectionInput{Section: sitecontent.SectionID(section)}); err != nil {
		h.failFor(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSave acknowledges the current content.
func (h *Handlers) HandleSave(w http.ResponseWriter, r *http.Request) {
	var receipt sitecontent.SaveReceipt
	if err := h.Save.Execute(r.Context(), commands.SaveContentInput{Receipt: &receipt}); err != nil {
		h.failFor(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

// HandleSession forwards exit or logout.
func (h *Handlers) HandleSession(w http.ResponseWriter, r *http.Request, signal string) {
	if err := h.Session.Execute(r.Context(), commands.SessionInput{Signal: signal}); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// HandleUpload accepts a multipart batch under the "files" field.
func (h *Handlers) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	headers := r.MultipartForm.File["files"]
	files := make([]sitecontent.UploadFile, 0, len(headers))
	var opened []multipart.File
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			h.fail(w, http.StatusBadRequest, err)
			return
		}
		opened = append(opened, f)
		files = append(files, sitecontent.UploadFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Reader:      f,
		})
	}
	var report sitecontent.UploadReport
	if err := h.Upload.Execute(r.Context(), commands.UploadImagesInput{Files: files, Report: &report}); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, report)
}

// ConfirmRequested parses the ?confirm= flag. Anything but a true boolean
// declines.
func ConfirmRequested(raw string) bool {
	confirmed, err := strconv.ParseBool(raw)
	return err == nil && confirmed
}

// HandleRemoveImage deletes an image once the request carries ?confirm=true.
func (h *Handlers) HandleRemoveImage(w http.ResponseWriter, r *http.Request, imageID string) {
	var removed bool
	confirmed := ConfirmRequested(r.URL.Query().Get("confirm"))
	input := commands.RemoveImageInput{ImageID: imageID, Confirmed: confirmed, Removed: &removed}
	if err := h.RemoveImage.Execute(r.Context(), input); err != nil {
		h.failFor(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"removed": removed, "confirmed": confirmed})
}

// HandleUpdateAlt rewrites an image's alt text.
func (h *Handlers) HandleUpdateAlt(w http.ResponseWriter, r *http.Request, imageID string) {
	var payload commands.UpdateImageAltInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	payload.ImageID = imageID
	if err := h.UpdateAlt.Execute(r.Context(), payload); err != nil {
		h.failFor(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleCopyURL copies an image reference and returns it, so the browser can
// copy it when the server has no clipboard.
func (h *Handlers) HandleCopyURL(w http.ResponseWriter, r *http.Request, imageID string) {
	var ref string
	err := h.CopyURL.Execute(r.Context(), commands.CopyImageURLInput{ImageID: imageID, URL: &ref})
	if err != nil && !errors.Is(err, sitecontent.ErrClipboardUnavailable) {
		h.failFor(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"url": ref, "copied": err == nil})
}

// HandleImageCopied reports the copied flag of an image.
func (h *Handlers) HandleImageCopied(w http.ResponseWriter, r *http.Request, imageID string) {
	copied, err := h.Copied.Query(r.Context(), queries.ImageCopiedInput{ImageID: imageID})
	if err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"copied": copied})
}

// HandleSearchImages filters images by the ?q= query.
func (h *Handlers) HandleSearchImages(w http.ResponseWriter, r *http.Request) {
	items, err := h.SearchImages.Query(r.Context(), queries.ImageSearchInput{Query: r.URL.Query().Get("q")})
	if err != nil {
		h.failFor(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// HandleImageLookup resolves the ?q= keywords to an image URL.
func (h *Handlers) HandleImageLookup(w http.ResponseWriter, r *http.Request) {
	ref, err := h.Lookup.Query(r.Context(), queries.ImageLookupInput{Query: r.URL.Query().Get("q")})
	if err != nil {
		h.failFor(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": ref})
}
