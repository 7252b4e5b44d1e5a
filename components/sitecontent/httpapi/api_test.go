package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goliatone/go-sitecontent/components/sitecontent"
	"github.com/goliatone/go-sitecontent/components/sitecontent/commands"
	"github.com/goliatone/go-sitecontent/components/sitecontent/queries"
	"github.com/goliatone/go-sitecontent/pkg/errmsg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCommander[T any] struct {
	last  T
	calls int
	err   error
}

func (s *stubCommander[T]) Execute(ctx context.Context, msg T) error {
	s.last = msg
	s.calls++
	return s.err
}

func TestHandleApplySection(t *testing.T) {
	apply := &stubCommander[commands.ApplySectionInput]{}
	api := &Handlers{Apply: apply}
	req := httptest.NewRequest(http.MethodPut, "/sections/hero", bytes.NewReader([]byte(`{"title":"New Title"}`)))
	rec := httptest.NewRecorder()
	api.HandleApplySection(rec, req, "hero")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if apply.last.Section != sitecontent.SectionHero {
		t.Fatalf("expected section propagation, got %q", apply.last.Section)
	}
	if string(apply.last.Payload) != `{"title":"New Title"}` {
		t.Fatalf("expected raw payload, got %s", apply.last.Payload)
	}
}

func TestHandleApplySectionMapsErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: %q", sitecontent.ErrUnknownSection, "footer"), http.StatusBadRequest},
		{fmt.Errorf("%w: hero", sitecontent.ErrValidation), http.StatusUnprocessableEntity},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		api := &Handlers{Apply: &stubCommander[commands.ApplySectionInput]{err: tc.err}}
		rec := httptest.NewRecorder()
		api.HandleApplySection(rec, httptest.NewRequest(http.MethodPut, "/sections/x", bytes.NewReader([]byte(`{}`))), "x")
		require.Equal(t, tc.status, rec.Code)
		var body ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tc.err.Error(), body.Error)
		assert.Equal(t, errmsg.ForStatus(tc.status, tc.err.Error()), body.Message)
	}
}

func TestHandleSetField(t *testing.T) {
	setField := &stubCommander[commands.SetFieldInput]{}
	api := &Handlers{SetField: setField}
	buf, _ := json.Marshal(commands.SetFieldInput{Key: "title", Value: "Hello"})
	rec := httptest.NewRecorder()
	api.HandleSetField(rec, httptest.NewRequest(http.MethodPost, "/sections/hero/fields", bytes.NewReader(buf)), "hero")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, sitecontent.SectionHero, setField.last.Section)
	assert.Equal(t, "Hello", setField.last.Value)
}

func TestHandleSaveReturnsReceipt(t *testing.T) {
	service := sitecontent.NewService(sitecontent.Options{})
	api := NewHandlers(service, service.Library(sitecontent.LibraryOptions{}), nil, nil)

	rec := httptest.NewRecorder()
	api.HandleSave(rec, httptest.NewRequest(http.MethodPost, "/save", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var receipt sitecontent.SaveReceipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.False(t, receipt.Changed)
}

func TestHandleContentAndSection(t *testing.T) {
	service := sitecontent.NewService(sitecontent.Options{})
	api := NewHandlers(service, service.Library(sitecontent.LibraryOptions{}), nil, nil)

	rec := httptest.NewRecorder()
	api.HandleContent(rec, httptest.NewRequest(http.MethodGet, "/content", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var content sitecontent.SiteContent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &content))
	assert.Equal(t, "STRATRI", content.Settings.SiteName)

	rec = httptest.NewRecorder()
	api.HandleSection(rec, httptest.NewRequest(http.MethodGet, "/sections/footer", nil), "footer")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUploadAndSearch(t *testing.T) {
	service := sitecontent.NewService(sitecontent.Options{})
	api := NewHandlers(service, service.Library(sitecontent.LibraryOptions{}), nil, nil)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("files", "Logo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/images", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	api.HandleUpload(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var report sitecontent.UploadReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Added, 1)
	assert.Contains(t, report.Added[0].URL, "data:image/png;base64,")

	rec = httptest.NewRecorder()
	api.HandleSearchImages(rec, httptest.NewRequest(http.MethodGet, "/images?q=LOGO", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var items []sitecontent.ImageItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 1)
}

func TestHandleRemoveImage(t *testing.T) {
	remove := &stubCommander[commands.RemoveImageInput]{}
	api := &Handlers{RemoveImage: remove}
	rec := httptest.NewRecorder()
	api.HandleRemoveImage(rec, httptest.NewRequest(http.MethodDelete, "/images/img-1", nil), "img-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "img-1", remove.last.ImageID)
	assert.False(t, remove.last.Confirmed)

	rec = httptest.NewRecorder()
	api.HandleRemoveImage(rec, httptest.NewRequest(http.MethodDelete, "/images/img-1?confirm=true", nil), "img-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, remove.last.Confirmed)
}

func TestHandleRemoveImageRequiresConfirmation(t *testing.T) {
	service := sitecontent.NewService(sitecontent.Options{})
	library := service.Library(sitecontent.LibraryOptions{})
	t.Cleanup(library.Close)
	_, err := service.UpdateImages(context.Background(), "seed", func([]sitecontent.ImageItem) ([]sitecontent.ImageItem, error) {
		return []sitecontent.ImageItem{{ID: "a", URL: "https://img.test/a.png", Name: "a.png", Alt: "A"}}, nil
	})
	require.NoError(t, err)
	api := NewHandlers(service, library, nil, nil)

	for _, target := range []string{"/images/a", "/images/a?confirm=no", "/images/a?confirm=false"} {
		rec := httptest.NewRecorder()
		api.HandleRemoveImage(rec, httptest.NewRequest(http.MethodDelete, target, nil), "a")
		require.Equal(t, http.StatusOK, rec.Code, target)
		var body map[string]bool
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body["removed"], target)
		require.Len(t, service.Content().Images.Items, 1, target)
	}

	rec := httptest.NewRecorder()
	api.HandleRemoveImage(rec, httptest.NewRequest(http.MethodDelete, "/images/a?confirm=true", nil), "a")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body["removed"])
	assert.Empty(t, service.Content().Images.Items)
}

type failingClipboard struct{}

func (failingClipboard) WriteAll(string) error { return errors.New("no display") }

type memoryClipboard struct{ text string }

func (c *memoryClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

func TestHandleCopyURLReturnsReference(t *testing.T) {
	seed := func(service *sitecontent.Service) {
		_, err := service.UpdateImages(context.Background(), "seed", func([]sitecontent.ImageItem) ([]sitecontent.ImageItem, error) {
			return []sitecontent.ImageItem{{ID: "a", URL: "https://img.test/a.png", Name: "a.png", Alt: "A"}}, nil
		})
		require.NoError(t, err)
	}

	t.Run("headless", func(t *testing.T) {
		service := sitecontent.NewService(sitecontent.Options{})
		library := service.Library(sitecontent.LibraryOptions{Clipboard: failingClipboard{}})
		t.Cleanup(library.Close)
		seed(service)
		api := NewHandlers(service, library, nil, nil)

		rec := httptest.NewRecorder()
		api.HandleCopyURL(rec, httptest.NewRequest(http.MethodPost, "/images/a/copy", nil), "a")
		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "https://img.test/a.png", body["url"])
		assert.Equal(t, false, body["copied"])
	})

	t.Run("clipboard", func(t *testing.T) {
		clip := &memoryClipboard{}
		service := sitecontent.NewService(sitecontent.Options{})
		library := service.Library(sitecontent.LibraryOptions{Clipboard: clip})
		t.Cleanup(library.Close)
		seed(service)
		api := NewHandlers(service, library, nil, nil)

		rec := httptest.NewRecorder()
		api.HandleCopyURL(rec, httptest.NewRequest(http.MethodPost, "/images/a/copy", nil), "a")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://img.test/a.png", clip.text)

		rec = httptest.NewRecorder()
		api.HandleImageCopied(rec, httptest.NewRequest(http.MethodGet, "/images/a/copy", nil), "a")
		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]bool
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body["copied"])

		rec = httptest.NewRecorder()
		api.HandleCopyURL(rec, httptest.NewRequest(http.MethodPost, "/images/missing/copy", nil), "missing")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestConfirmRequested(t *testing.T) {
	assert.True(t, ConfirmRequested("true"))
	assert.True(t, ConfirmRequested("1"))
	assert.False(t, ConfirmRequested(""))
	assert.False(t, ConfirmRequested("yes"))
	assert.False(t, ConfirmRequested("false"))
}

func TestHandleNavigation(t *testing.T) {
	service := sitecontent.NewService(sitecontent.Options{})
	api := &Handlers{Navigation: queries.NewNavigationQuery(service)}
	rec := httptest.NewRecorder()
	api.HandleNavigation(rec, httptest.NewRequest(http.MethodGet, "/navigation?locale=es", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []sitecontent.NavEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, len(sitecontent.SectionIDs()))
	assert.Equal(t, "Portada", entries[0].Label)
	assert.True(t, entries[0].Active)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusOK, StatusFor(nil))
	assert.Equal(t, http.StatusNotFound, StatusFor(sitecontent.ErrImageNotFound))
	assert.Equal(t, http.StatusBadRequest, StatusFor(sitecontent.ErrInvalidPayload))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusFor(sitecontent.ErrUnsupportedMedia))
}

func TestHandleImageLookup(t *testing.T) {
	api := &Handlers{Lookup: queries.NewImageLookupQuery(sitecontent.PlaceholderSearch{BaseURL: "https://img.test", Width: 10, Height: 20})}
	rec := httptest.NewRecorder()
	api.HandleImageLookup(rec, httptest.NewRequest(http.MethodGet, "/images/lookup?q=blue+sky", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "https://img.test/10x20/?blue+sky", body["url"])

	rec = httptest.NewRecorder()
	api.HandleImageLookup(rec, httptest.NewRequest(http.MethodGet, "/images/lookup", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
