package sitecontent

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	name string
	data any
	err  error
}

func (r *stubRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	r.name = name
	r.data = data
	if r.err != nil {
		return "", r.err
	}
	for _, w := range out {
		_, _ = io.WriteString(w, "rendered")
	}
	return "rendered", nil
}

func TestControllerPageForActiveSection(t *testing.T) {
	service := NewService(Options{})
	require.NoError(t, service.Activate(context.Background(), SectionColors))
	controller := NewController(ControllerOptions{Service: service, Locale: "es"})

	page, err := controller.Page(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "es", page.Locale)
	assert.Equal(t, SectionColors, page.Active)
	assert.Equal(t, "Colores", page.Title)
	assert.Equal(t, "STRATRI", page.SiteName)
	assert.Contains(t, page.Theme, "--color-accent: #c4622d;")
	require.Len(t, page.Fields, 4)
	assert.Equal(t, FieldColor, page.Fields[0].Kind)
	assert.Equal(t, "#f5f0e8", page.Fields[0].Value)
	assert.Equal(t, DefaultContent().Colors, page.Section)
	assert.Nil(t, page.Images)
}

func TestControllerPageIncludesImages(t *testing.T) {
	service := NewService(Options{})
	seedImages(t, service, ImageItem{ID: "1", URL: "u", Name: "n", Alt: "a"})
	require.NoError(t, service.Activate(context.Background(), SectionImages))

	page, err := NewController(ControllerOptions{Service: service}).Page(context.Background(), "en")
	require.NoError(t, err)
	require.Len(t, page.Images, 1)
	assert.Empty(t, page.Fields)
	assert.Equal(t, uint64(1), page.Revision)
}

func TestControllerRenderHTML(t *testing.T) {
	renderer := &stubRenderer{}
	controller := NewController(ControllerOptions{Service: NewService(Options{}), Renderer: renderer})

	var buf bytes.Buffer
	require.NoError(t, controller.RenderHTML(context.Background(), "en", &buf))
	assert.Equal(t, "rendered", buf.String())
	assert.Equal(t, "admin", renderer.name)

	data, ok := renderer.data.(map[string]any)
	require.True(t, ok)
	page := data["page"].(AdminPage)
	assert.Equal(t, SectionHero, page.Active)
	assert.Equal(t, page.Sections, data["sections"])
}

func TestControllerRenderError(t *testing.T) {
	renderer := &stubRenderer{err: errors.New("boom")}
	controller := NewController(ControllerOptions{Service: NewService(Options{}), Renderer: renderer})
	err := controller.RenderHTML(context.Background(), "", io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestControllerRequiresService(t *testing.T) {
	_, err := NewController(ControllerOptions{}).Page(context.Background(), "")
	assert.ErrorIs(t, err, errMissingService)
}
