package sitecontent

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
)

const (
	defaultCopiedTTL        = 2 * time.Second
	defaultMaxUploadBytes   = 10 << 20
	defaultUploadConcurrent = 4
)

// clipboardWriteAll is swapped in tests.
var clipboardWriteAll = clipboard.WriteAll

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboardWriteAll(text) }

// ImageStore is the slice of the Service the library depends on.
type ImageStore interface {
	Content() SiteContent
	UpdateImages(ctx context.Context, reason string, fn func(items []ImageItem) ([]ImageItem, error)) (ImageSet, error)
}

// LibraryOptions configures an ImageLibrary.
type LibraryOptions struct {
	Clipboard Clipboard
	// Confirmer gates Remove. Without one every removal is declined; a
	// Confirmer on the context takes precedence.
	Confirmer Confirmer
	CopiedTTL time.Duration
	Clock     Clock
	Logger    *zap.Logger
	Telemetry Telemetry
	// MaxUploadBytes caps a single decoded file.
	MaxUploadBytes int64
	// Concurrency bounds simultaneous decodes.
	Concurrency int
}

// UploadFile is one file of an upload batch.
type UploadFile struct {
	Name string
	// ContentType is the declared media type; sniffed from the data when empty
	// or generic.
	ContentType string
	Reader      io.Reader
}

// UploadFailure records a file that could not be added.
type UploadFailure struct {
	Name string `json:"name"`
	Err  error  `json:"-"`
}

// UploadReport summarizes an upload batch. Added is in completion order.
type UploadReport struct {
	Added  []ImageItem     `json:"added"`
	Failed []UploadFailure `json:"failed,omitempty"`
}

// ImageLibrary manages the images section: uploads, deletion with
// confirmation, search, alt text, clipboard copy and selection.
type ImageLibrary struct {
	store ImageStore
	opts  LibraryOptions

	mu       sync.Mutex
	selected string
	copied   map[string]*time.Timer
}

// NewImageLibrary binds a library to store.
func NewImageLibrary(store ImageStore, opts LibraryOptions) *ImageLibrary {
	if opts.Clipboard == nil {
		opts.Clipboard = systemClipboard{}
	}
	if opts.CopiedTTL <= 0 {
		opts.CopiedTTL = defaultCopiedTTL
	}
	if opts.Clock == nil {
		opts.Clock = timeNow
	}
	if opts.Confirmer == nil {
		opts.Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return false, nil })
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = defaultMaxUploadBytes
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultUploadConcurrent
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	return &ImageLibrary{
		store:  store,
		opts:   opts,
		copied: make(map[string]*time.Timer),
	}
}

// Library returns an ImageLibrary bound to the Service.
func (s *Service) Library(opts LibraryOptions) *ImageLibrary {
	if opts.Logger == nil {
		opts.Logger = s.opts.Logger
	}
	if opts.Clock == nil {
		opts.Clock = s.opts.Clock
	}
	if opts.Telemetry == nil {
		opts.Telemetry = s.opts.Telemetry
	}
	return NewImageLibrary(s, opts)
}

// Items returns the current images.
func (l *ImageLibrary) Items() []ImageItem {
	return l.store.Content().Images.Items
}

// Upload decodes every file concurrently. Each decoded file is appended to
// the collection as it stands when that decode finishes. A file that fails
// is reported and does not stop the others.
func (l *ImageLibrary) Upload(ctx context.Context, files []UploadFile) (UploadReport, error) {
	var (
		mu     sync.Mutex
		report UploadReport
	)
	fail := func(name string, err error) {
		l.opts.Logger.Warn("image upload failed", zap.String("name", name), zap.Error(err))
		mu.Lock()
		report.Failed = append(report.Failed, UploadFailure{Name: name, Err: err})
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.opts.Concurrency)
	for _, file := range files {
		g.Go(func() error {
			ref, err := l.decode(gctx, file)
			if err != nil {
				fail(file.Name, err)
				return nil
			}
			item := ImageItem{
				ID:         newID(),
				URL:        ref,
				Name:       file.Name,
				Alt:        file.Name,
				UploadedAt: l.opts.Clock(),
			}
			_, err = l.store.UpdateImages(gctx, "upload", func(items []ImageItem) ([]ImageItem, error) {
				return AppendItem(items, item), nil
			})
			if !Applied(err) {
				fail(file.Name, err)
				return nil
			}
			if err != nil {
				l.opts.Logger.Warn("image stored but host not notified", zap.String("name", file.Name), zap.Error(err))
			}
			mu.Lock()
			report.Added = append(report.Added, item)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}
	l.opts.Telemetry.Record(ctx, "sitecontent.images.upload", map[string]any{
		"added":  len(report.Added),
		"failed": len(report.Failed),
	})
	return report, ctx.Err()
}

func (l *ImageLibrary) decode(ctx context.Context, file UploadFile) (string, error) {
	if file.Reader == nil {
		return "", fmt.Errorf("sitecontent: upload %q has no data", file.Name)
	}
	data, err := io.ReadAll(io.LimitReader(file.Reader, l.opts.MaxUploadBytes+1))
	if err != nil {
		return "", fmt.Errorf("sitecontent: read upload %q: %w", file.Name, err)
	}
	if int64(len(data)) > l.opts.MaxUploadBytes {
		return "", fmt.Errorf("sitecontent: upload %q exceeds %d bytes", file.Name, l.opts.MaxUploadBytes)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	mime := strings.TrimSpace(file.ContentType)
	if mime == "" || mime == "application/octet-stream" {
		mime = http.DetectContentType(data)
	}
	if idx := strings.Index(mime, ";"); idx > 0 {
		mime = strings.TrimSpace(mime[:idx])
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: %s (%s)", ErrUnsupportedMedia, file.Name, mime)
	}
	return DataURL(mime, data), nil
}

// DataURL encodes data as an inline base64 reference.
func DataURL(mime string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}

// Remove deletes the image with id after confirmation. It reports whether an
// image was removed; declining or an unknown id is not an error. A
// NotifyError comes back with removed set, since the image is gone.
// Without a Confirmer the removal is refused.
func (l *ImageLibrary) Remove(ctx context.Context, id string) (bool, error) {
	item, ok := l.store.Content().Images.Find(id)
	if !ok {
		return false, nil
	}
	confirmer := l.opts.Confirmer
	if c, ok := ConfirmerFromContext(ctx); ok {
		confirmer = c
	}
	confirmed, err := confirmer.Confirm(ctx, fmt.Sprintf("Delete image %q?", item.Name))
	if err != nil {
		return false, err
	}
	if !confirmed {
		return false, nil
	}
	removed := false
	_, err = l.store.UpdateImages(ctx, "remove", func(items []ImageItem) ([]ImageItem, error) {
		next := RemoveByID(items, id, func(i ImageItem) string { return i.ID })
		removed = len(next) != len(items)
		return next, nil
	})
	if !Applied(err) {
		return false, err
	}

	l.mu.Lock()
	if l.selected == id {
		l.selected = ""
	}
	if timer, ok := l.copied[id]; ok {
		timer.Stop()
		delete(l.copied, id)
	}
	l.mu.Unlock()

	l.opts.Telemetry.Record(ctx, "sitecontent.images.remove", map[string]any{"image_id": id})
	return removed, err
}

// Search filters images whose name or alt text contains query, ignoring
// case. An empty query returns every image.
func (l *ImageLibrary) Search(query string) []ImageItem {
	items := l.Items()
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))
	if needle == "" {
		return items
	}
	out := make([]ImageItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(fold.String(item.Name), needle) || strings.Contains(fold.String(item.Alt), needle) {
			out = append(out, item)
		}
	}
	return out
}

// UpdateAlt rewrites the alt text of one image.
func (l *ImageLibrary) UpdateAlt(ctx context.Context, id, alt string) error {
	_, err := l.store.UpdateImages(ctx, "alt", func(items []ImageItem) ([]ImageItem, error) {
		for i, item := range items {
			if item.ID == id {
				return UpdateAt(items, i, func(it *ImageItem) { it.Alt = alt })
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrImageNotFound, id)
	})
	return err
}

// CopyURL writes the image reference to the clipboard and flags it as copied
// until CopiedTTL elapses. The reference is returned even when the clipboard
// is unavailable, wrapped in ErrClipboardUnavailable, so a remote client can
// copy it itself.
func (l *ImageLibrary) CopyURL(ctx context.Context, id string) (string, error) {
	item, ok := l.store.Content().Images.Find(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrImageNotFound, id)
	}
	if err := l.opts.Clipboard.WriteAll(item.URL); err != nil {
		l.opts.Logger.Warn("clipboard unavailable", zap.String("image_id", id), zap.Error(err))
		return item.URL, fmt.Errorf("%w: image %s: %v", ErrClipboardUnavailable, id, err)
	}

	l.mu.Lock()
	if timer, ok := l.copied[id]; ok {
		timer.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(l.opts.CopiedTTL, func() {
		l.mu.Lock()
		if l.copied[id] == timer {
			delete(l.copied, id)
		}
		l.mu.Unlock()
	})
	l.copied[id] = timer
	l.mu.Unlock()

	l.opts.Telemetry.Record(ctx, "sitecontent.images.copy", map[string]any{"image_id": id})
	return item.URL, nil
}

// Copied reports whether id was copied within the last CopiedTTL.
func (l *ImageLibrary) Copied(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.copied[id]
	return ok
}

// Select marks id as the selected image.
func (l *ImageLibrary) Select(id string) error {
	if _, ok := l.store.Content().Images.Find(id); !ok {
		return fmt.Errorf("%w: %s", ErrImageNotFound, id)
	}
	l.mu.Lock()
	l.selected = id
	l.mu.Unlock()
	return nil
}

// ClearSelection returns to the no-selection state.
func (l *ImageLibrary) ClearSelection() {
	l.mu.Lock()
	l.selected = ""
	l.mu.Unlock()
}

// Selection returns the selected image id, if any.
func (l *ImageLibrary) Selection() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.selected, l.selected != ""
}

// Close stops pending copied-flag timers.
func (l *ImageLibrary) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, timer := range l.copied {
		timer.Stop()
		delete(l.copied, id)
	}
}
