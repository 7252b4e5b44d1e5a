package gorouter

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-sitecontent/components/sitecontent"
	"github.com/goliatone/go-sitecontent/components/sitecontent/commands"
	"github.com/goliatone/go-sitecontent/components/sitecontent/httpapi"
	"github.com/goliatone/go-sitecontent/components/sitecontent/queries"
)

// ActorResolver extracts the editing user from a router.Context.
type ActorResolver func(router.Context) sitecontent.ActorContext

// Config wires go-router with the content editor controller, API and hooks.
type Config[T any] struct {
	Router        router.Router[T]
	Controller    *sitecontent.Controller
	API           *httpapi.Handlers
	Broadcast     *sitecontent.BroadcastHook
	ActorResolver ActorResolver
	BasePath      string
	Routes        RouteConfig
}

// RouteConfig customizes the relative paths used for editor endpoints.
type RouteConfig struct {
	HTML      string
	Content   string
	Sections  string
	Section   string
	Fields    string
	Activate  string
	Save      string
	Exit      string
	Logout    string
	Images    string
	Image     string
	ImageAlt  string
	ImageCopy string
	Lookup    string
	WebSocket string
}

// UploadPayload is the JSON upload body. Data is base64 in transit.
type UploadPayload struct {
	Files []UploadFilePayload `json:"files"`
}

// UploadFilePayload is one file of an UploadPayload.
type UploadFilePayload struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// Register mounts editor routes (HTML, JSON, WebSocket) on a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	routes := defaultRouteConfig(cfg.Routes)
	base := cfg.BasePath
	if base == "" {
		base = "/admin/content"
	}
	resolver := cfg.ActorResolver
	if resolver == nil {
		resolver = defaultActorResolver
	}

	group := cfg.Router.Group(base)

	group.Get(routes.HTML, router.WrapHandler(func(ctx router.Context) error {
		var buf bytes.Buffer
		if err := cfg.Controller.RenderHTML(ctx.Context(), inferLocale(ctx), &buf); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	}))

	if cfg.API != nil {
		registerAPI(group, cfg.API, resolver, routes)
	}

	if cfg.Broadcast != nil {
		registerWebSocket(group, cfg.Broadcast, routes.WebSocket)
	}
	return nil
}

func registerAPI[T any](r router.Router[T], api *httpapi.Handlers, resolver ActorResolver, routes RouteConfig) {
	r.Get(routes.Content, router.WrapHandler(func(ctx router.Context) error {
		content, err := api.Content.Query(ctx.Context(), queries.ContentInput{})
		if err != nil {
			return respondMapped(ctx, err)
		}
		return ctx.JSON(http.StatusOK, content)
	}))

	r.Get(routes.Sections, router.WrapHandler(func(ctx router.Context) error {
		entries, err := api.Navigation.Query(ctx.Context(), queries.NavigationInput{Locale: inferLocale(ctx)})
		if err != nil {
			return respondMapped(ctx, err)
		}
		return ctx.JSON(http.StatusOK, entries)
	}))

	r.Get(routes.Section, router.WrapHandler(func(ctx router.Context) error {
		value, err := api.Section.Query(ctx.Context(), queries.SectionInput{Section: sectionParam(ctx)})
		if err != nil {
			return respondMapped(ctx, err)
		}
		return ctx.JSON(http.StatusOK, value)
	}))

	r.Post(routes.Section, router.WrapHandler(func(ctx router.Context) error {
		actor := resolver(ctx)
		input := commands.ApplySectionInput{
			Section:   sectionParam(ctx),
			Payload:   json.RawMessage(ctx.Body()),
			UserID:    actor.UserID,
			SessionID: actor.SessionID,
		}
		if err := api.Apply.Execute(ctx.Context(), input); err != nil {
			return respondMapped(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "applied"})
	}))

	r.Post(routes.Fields, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.SetFieldInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		payload.Section = sectionParam(ctx)
		payload.UserID = resolver(ctx).UserID
		if err := api.SetField.Execute(ctx.Context(), payload); err != nil {
			return respondMapped(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "updated"})
	}))

	r.Post(routes.Activate, router.WrapHandler(func(ctx router.Context) error {
		if err := api.Activate.Execute(ctx.Context(), commands.ActivateSectionInput{Section: sectionParam(ctx)}); err != nil {
			return respondMapped(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "active"})
	}))

	r.Post(routes.Save, router.WrapHandler(func(ctx router.Context) error {
		var receipt sitecontent.SaveReceipt
		input := commands.SaveContentInput{UserID: resolver(ctx).UserID, Receipt: &receipt}
		if err := api.Save.Execute(ctx.Context(), input); err != nil {
			return respondMapped(ctx, err)
		}
		return ctx.JSON(http.StatusOK, receipt)
	}))

	r.Post(routes.Exit, router.WrapHandler(func(ctx router.Context) error {
		if err := api.Session.Execute(ctx.Context(), commands.SessionInput{Signal: commands.SignalExit}); err != nil {
			return respondMapped(ctx, err)
		}
		return ctx.JSON(http.StatusAccepted, map[string]string{"status": "exited"})
	}))

	r.Post(routes.Logout, router.WrapHandler(func(ctx router.Context) error {
		if err := api.Session.Execute(ctx.Context(), commands.SessionInput{Signal: commands.SignalLogout}); err != nil {
			return respondMapped(ctx, err)
		}
		return ctx.JSON(http.StatusAccepted, map[string]string{"status": "logged_out"})
	}))

	r.Get(routes.Images, router.WrapHandler(func(ctx router.Context) error {
		items, err := api.SearchImages.Query(ctx.Context(), queries.ImageSearchInput{Query: ctx.Query("q")})
		if err != nil {
			return respondMapped(ctx, err)
		}
		return ctx.JSON(http.StatusOK, items)
	}))

	r.Post(routes.Images, router.WrapHandler(func(ctx router.Context) error {
		var payload UploadPayload
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		files := make([]sitecontent.UploadFile, 0, len(payload.Files))
		for _, f := range payload.Files {
			files = append(files, sitecontent.UploadFile{
				Name:        f.Name,
				ContentType: f.ContentType,
				Reader:      bytes.NewReader(f.Data),
			})
		}
		var report sitecontent.UploadReport
		input := commands.UploadImagesInput{Files: files, UserID: resolver(ctx).UserID, Report: &report}
		if err := api.Upload.Execute(ctx.Context(), input); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		return ctx.JSON(http.StatusCreated, report)
	}))

	if api.Lookup != nil {
		r.Get(routes.Lookup, router.WrapHandler(func(ctx router.Context) error {
			ref, err := api.Lookup.Query(ctx.Context(), queries.ImageLookupInput{Query: ctx.Query("q")})
			if err != nil {
				return respondMapped(ctx, err)
			}
			return ctx.JSON(http.StatusOK, map[string]string{"url": ref})
		}))
	}

	r.Delete(routes.Image, router.WrapHandler(func(ctx router.Context) error {
		id := ctx.Param("id")
		if id == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("image id is required"))
		}
		var removed bool
		confirmed := httpapi.ConfirmRequested(ctx.Query("confirm"))
		input := commands.RemoveImageInput{ImageID: id, Confirmed: confirmed, Removed: &removed}
		if err := api.RemoveImage.Execute(ctx.Context(), input); err != nil {
			return respondMapped(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]bool{"removed": removed, "confirmed": confirmed})
	}))

	r.Post(routes.ImageAlt, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.UpdateImageAltInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		payload.ImageID = ctx.Param("id")
		if err := api.UpdateAlt.Execute(ctx.Context(), payload); err != nil {
			return respondMapped(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "updated"})
	}))

	r.Post(routes.ImageCopy, router.WrapHandler(func(ctx router.Context) error {
		var ref string
		err := api.CopyURL.Execute(ctx.Context(), commands.CopyImageURLInput{ImageID: ctx.Param("id"), URL: &ref})
		if err != nil && !errors.Is(err, sitecontent.ErrClipboardUnavailable) {
			return respondMapped(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]any{"url": ref, "copied": err == nil})
	}))

	if api.Copied != nil {
		r.Get(routes.ImageCopy, router.WrapHandler(func(ctx router.Context) error {
			copied, err := api.Copied.Query(ctx.Context(), queries.ImageCopiedInput{ImageID: ctx.Param("id")})
			if err != nil {
				return respondError(ctx, http.StatusBadRequest, err)
			}
			return ctx.JSON(http.StatusOK, map[string]bool{"copied": copied})
		}))
	}
}

func registerWebSocket[T any](r router.Router[T], hook *sitecontent.BroadcastHook, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		events, cancel := hook.Subscribe()
		defer cancel()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

func sectionParam(ctx router.Context) sitecontent.SectionID {
	return sitecontent.SectionID(strings.TrimSpace(ctx.Param("section")))
}

func defaultActorResolver(ctx router.Context) sitecontent.ActorContext {
	var actor sitecontent.ActorContext
	if v, ok := ctx.Locals("user_id").(string); ok {
		actor.UserID = v
	}
	if v, ok := ctx.Locals("session_id").(string); ok {
		actor.SessionID = v
	}
	return actor
}

func inferLocale(ctx router.Context) string {
	if locale, ok := ctx.Locals("locale").(string); ok && locale != "" {
		return locale
	}
	if locale := strings.TrimSpace(ctx.Query("locale")); locale != "" {
		return strings.ToLower(locale)
	}
	return parseAcceptLanguage(ctx.Header("Accept-Language"))
}

func parseAcceptLanguage(header string) string {
	for _, token := range strings.Split(header, ",") {
		if idx := strings.Index(token, ";"); idx >= 0 {
			token = token[:idx]
		}
		if token = strings.TrimSpace(token); token != "" {
			return strings.ToLower(token)
		}
	}
	return ""
}

func respondMapped(ctx router.Context, err error) error {
	return respondError(ctx, httpapi.StatusFor(err), err)
}

func respondError(ctx router.Context, status int, err error) error {
	return ctx.JSON(status, httpapi.NewErrorBody(status, err))
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.HTML == "" {
		routes.HTML = "/"
	}
	if routes.Content == "" {
		routes.Content = "/api/content"
	}
	if routes.Sections == "" {
		routes.Sections = "/api/sections"
	}
	if routes.Section == "" {
		routes.Section = "/api/sections/:section"
	}
	if routes.Fields == "" {
		routes.Fields = "/api/sections/:section/fields"
	}
	if routes.Activate == "" {
		routes.Activate = "/api/sections/:section/activate"
	}
	if routes.Save == "" {
		routes.Save = "/api/save"
	}
	if routes.Exit == "" {
		routes.Exit = "/api/exit"
	}
	if routes.Logout == "" {
		routes.Logout = "/api/logout"
	}
	if routes.Images == "" {
		routes.Images = "/api/images"
	}
	if routes.Image == "" {
		routes.Image = "/api/images/:id"
	}
	if routes.ImageAlt == "" {
		routes.ImageAlt = "/api/images/:id/alt"
	}
	if routes.ImageCopy == "" {
		routes.ImageCopy = "/api/images/:id/copy"
	}
	if routes.Lookup == "" {
		routes.Lookup = "/api/images/lookup"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = "/ws"
	}
	return routes
}
