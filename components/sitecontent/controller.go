package sitecontent

import (
	"context"
	"errors"
	"fmt"
	"io"
)

const defaultAdminTemplate = "admin"

// ControllerOptions wires the controller's collaborators.
type ControllerOptions struct {
	Service  *Service
	Renderer Renderer
	Template string
	// Locale is used when a request does not carry one.
	Locale string
}

// Controller renders the admin shell around the active section editor.
type Controller struct {
	service  *Service
	renderer Renderer
	template string
	locale   string
}

// AdminPage is the view model handed to the admin template.
type AdminPage struct {
	SiteName string       `json:"site_name"`
	Locale   string       `json:"locale"`
	Active   SectionID    `json:"active"`
	Title    string       `json:"title"`
	Sections []NavEntry   `json:"sections"`
	Fields   []FieldValue `json:"fields"`
	Theme    string       `json:"theme"`
	Revision uint64       `json:"revision"`
	Section  SectionValue `json:"section"`
	Images   []ImageItem  `json:"images,omitempty"`
}

// FieldValue pairs a bindable field with its current value.
type FieldValue struct {
	FieldSpec
	Value string `json:"value"`
}

// NewController builds a controller. A nil renderer falls back to the
// embedded templates.
func NewController(opts ControllerOptions) *Controller {
	tpl := opts.Template
	if tpl == "" {
		tpl = defaultAdminTemplate
	}
	return &Controller{
		service:  opts.Service,
		renderer: opts.Renderer,
		template: tpl,
		locale:   opts.Locale,
	}
}

// Page assembles the admin view model for the active section.
func (c *Controller) Page(ctx context.Context, locale string) (AdminPage, error) {
	if c.service == nil {
		return AdminPage{}, errMissingService
	}
	if locale == "" {
		locale = c.locale
	}
	active := c.service.ActiveSection()
	editor, err := c.service.Editor(active)
	if err != nil {
		return AdminPage{}, err
	}
	fields := make([]FieldValue, 0, len(editor.Fields()))
	for _, spec := range editor.Fields() {
		value, err := editor.Field(spec.Key)
		if err != nil {
			return AdminPage{}, err
		}
		fields = append(fields, FieldValue{FieldSpec: spec, Value: value})
	}
	content := c.service.Content()
	page := AdminPage{
		SiteName: content.Settings.SiteName,
		Locale:   locale,
		Active:   active,
		Sections: c.service.Sections(locale),
		Fields:   fields,
		Theme:    content.Colors.CSSVariablesInline(),
		Revision: c.service.Revision(),
		Section:  editor.Current(),
	}
	if def, ok := c.service.Definition(active); ok {
		page.Title = def.LabelForLocale(locale)
	}
	if active == SectionImages {
		page.Images = content.Images.Items
	}
	return page, nil
}

// RenderHTML renders the admin page for locale into out.
func (c *Controller) RenderHTML(ctx context.Context, locale string, out io.Writer) error {
	if c.renderer == nil {
		renderer, err := NewTemplateRenderer()
		if err != nil {
			return fmt.Errorf("sitecontent: load templates: %w", err)
		}
		c.renderer = renderer
	}
	page, err := c.Page(ctx, locale)
	if err != nil {
		return err
	}
	payload := map[string]any{
		"page":     page,
		"sections": page.Sections,
		"fields":   page.Fields,
		"theme":    page.Theme,
	}
	if _, err := c.renderer.Render(c.template, payload, out); err != nil {
		return errors.Join(fmt.Errorf("sitecontent: render %s", c.template), err)
	}
	return nil
}
