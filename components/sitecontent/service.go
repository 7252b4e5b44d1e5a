package sitecontent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var timeNow = time.Now

// Options configures the Service. Every collaborator is an interface so hosts
// can swap implementations; nil fields get safe defaults.
type Options struct {
	// Initial seeds the session content. DefaultContent is used when nil.
	Initial   *SiteContent
	Host      HostHook
	Registry  SectionRegistry
	Validator SectionValidator
	Persister Persister
	Telemetry Telemetry
	Logger    *zap.Logger
	Clock     Clock
	// Strict turns unknown section ids into errors instead of logged no-ops.
	Strict bool
}

// Service is the admin dashboard: the single owner of the in-session
// SiteContent. Editors never touch the content directly, they hand complete
// section replacements to ApplySectionUpdate.
type Service struct {
	opts Options

	mu            sync.RWMutex
	content       SiteContent
	active        SectionID
	revision      uint64
	savedRevision uint64

	// notifyMu serializes host notifications; notified is the newest
	// revision handed to the host.
	notifyMu sync.Mutex
	notified uint64
}

// NotifyError reports a change that was applied but that the host refused.
type NotifyError struct {
	Section  SectionID
	Revision uint64
	Err      error
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("sitecontent: notify host of %s revision %d: %v", e.Section, e.Revision, e.Err)
}

func (e *NotifyError) Unwrap() error { return e.Err }

// Applied reports whether err still left the change in place: nil, or a
// NotifyError.
func Applied(err error) bool {
	if err == nil {
		return true
	}
	var notifyErr *NotifyError
	return errors.As(err, &notifyErr)
}

// NewService builds a Service with safe defaults.
func NewService(opts Options) *Service {
	if opts.Host == nil {
		opts.Host = noopHost{}
	}
	if opts.Registry == nil {
		opts.Registry = NewRegistry()
	}
	if opts.Validator == nil {
		opts.Validator = NewJSONSchemaValidator()
	}
	if opts.Persister == nil {
		opts.Persister = noopPersister{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = timeNow
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)

	content := DefaultContent()
	if opts.Initial != nil {
		content = opts.Initial.Clone()
	}
	return &Service{
		opts:    opts,
		content: content,
		active:  SectionHero,
	}
}

// Content returns a copy of the current content.
func (s *Service) Content() SiteContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content.Clone()
}

// Section returns a copy of one section of the current content.
func (s *Service) Section(id SectionID) (SectionValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content.Section(id)
}

// ActiveSection reports which editor is mounted.
func (s *Service) ActiveSection() SectionID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Revision increases by one for every applied section update.
func (s *Service) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Activate switches the visible editor. It never changes content.
func (s *Service) Activate(ctx context.Context, id SectionID) error {
	if !id.Valid() {
		if s.opts.Strict {
			return fmt.Errorf("%w: %q", ErrUnknownSection, id)
		}
		s.opts.Logger.Warn("ignoring unknown section", zap.String("section", string(id)))
		return nil
	}
	s.mu.Lock()
	s.active = id
	s.mu.Unlock()
	s.recordTelemetry(ctx, "sitecontent.section.activate", map[string]any{"section": string(id)})
	return nil
}

// ApplySectionUpdate replaces one section in full and notifies the host with
// the resulting content.
func (s *Service) ApplySectionUpdate(ctx context.Context, value SectionValue) error {
	if value == nil {
		return fmt.Errorf("%w: nil section value", ErrInvalidPayload)
	}
	return s.update(ctx, value.Section(), "update", func(SiteContent) (SectionValue, error) {
		return value, nil
	})
}

// ApplySectionPayload decodes a transport payload for id and applies it.
func (s *Service) ApplySectionPayload(ctx context.Context, id SectionID, payload []byte) error {
	value, err := DecodeSection(id, payload)
	if err != nil {
		return err
	}
	return s.ApplySectionUpdate(ctx, value)
}

// UpdateImages applies fn to the image collection as it is at the time of the
// call, so concurrent writers never overwrite each other's entries.
// Returning an error from fn aborts the update.
func (s *Service) UpdateImages(ctx context.Context, reason string, fn func(items []ImageItem) ([]ImageItem, error)) (ImageSet, error) {
	var result ImageSet
	err := s.update(ctx, SectionImages, reason, func(current SiteContent) (SectionValue, error) {
		items, err := fn(current.Images.clone().Items)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []ImageItem{}
		}
		result = ImageSet{Items: items}
		return result, nil
	})
	if !Applied(err) {
		return ImageSet{}, err
	}
	return result.clone(), err
}

func (s *Service) update(ctx context.Context, id SectionID, reason string, build func(current SiteContent) (SectionValue, error)) error {
	def, ok := s.opts.Registry.Definition(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}

	s.mu.Lock()
	value, err := build(s.content)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err := checkUniqueIDs(value); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.opts.Validator.Validate(def, value); err != nil {
		s.mu.Unlock()
		return err
	}
	s.content = s.content.With(value)
	s.revision++
	event := ContentEvent{
		Section:  id,
		Reason:   reason,
		Revision: s.revision,
		Content:  s.content.Clone(),
	}
	s.mu.Unlock()

	if err := s.notify(ctx, event); err != nil {
		s.opts.Logger.Error("host rejected content change",
			zap.String("section", string(id)),
			zap.Uint64("revision", event.Revision),
			zap.Error(err),
		)
		return &NotifyError{Section: id, Revision: event.Revision, Err: err}
	}
	s.recordTelemetry(ctx, "sitecontent.section."+reason, map[string]any{
		"section":  string(id),
		"revision": event.Revision,
	})
	return nil
}

// notify hands event to the host unless a newer revision already went out.
// Every event carries the full content, so a newer one supersedes it. The
// host must not apply edits from inside ContentChanged.
func (s *Service) notify(ctx context.Context, event ContentEvent) error {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	if event.Revision <= s.notified {
		s.opts.Logger.Debug("skipping superseded content change",
			zap.Uint64("revision", event.Revision),
			zap.Uint64("notified", s.notified),
		)
		return nil
	}
	s.notified = event.Revision
	return s.opts.Host.ContentChanged(ctx, event)
}

// Save acknowledges the current content. It is idempotent: repeated calls
// without intervening edits report Changed=false and never drop applied edits.
func (s *Service) Save(ctx context.Context) (SaveReceipt, error) {
	s.mu.RLock()
	snapshot := Snapshot{
		Revision: s.revision,
		SavedAt:  s.opts.Clock(),
		Content:  s.content.Clone(),
	}
	changed := s.revision != s.savedRevision
	s.mu.RUnlock()

	if changed {
		if err := s.opts.Persister.Persist(ctx, snapshot); err != nil {
			return SaveReceipt{}, fmt.Errorf("sitecontent: persist revision %d: %w", snapshot.Revision, err)
		}
		s.mu.Lock()
		if snapshot.Revision > s.savedRevision {
			s.savedRevision = snapshot.Revision
		}
		s.mu.Unlock()
	}
	s.recordTelemetry(ctx, "sitecontent.save", map[string]any{
		"revision": snapshot.Revision,
		"changed":  changed,
	})
	return SaveReceipt{
		Revision: snapshot.Revision,
		SavedAt:  snapshot.SavedAt,
		Changed:  changed,
	}, nil
}

// ExitToSite signals the host that the operator left the editor.
func (s *Service) ExitToSite(ctx context.Context) {
	s.opts.Host.ExitToSite(ctx)
	s.recordTelemetry(ctx, "sitecontent.exit", nil)
}

// Logout signals the host that the editing session ended.
func (s *Service) Logout(ctx context.Context) {
	s.opts.Host.Logout(ctx)
	s.recordTelemetry(ctx, "sitecontent.logout", nil)
}

// Sections returns the navigation rail for locale with the active entry flagged.
func (s *Service) Sections(locale string) []NavEntry {
	active := s.ActiveSection()
	defs := s.opts.Registry.Definitions()
	entries := make([]NavEntry, 0, len(defs))
	for _, def := range defs {
		entries = append(entries, NavEntry{
			ID:     def.ID,
			Label:  def.LabelForLocale(locale),
			Icon:   def.Icon,
			Route:  SectionRoute(def.ID),
			Active: def.ID == active,
		})
	}
	return entries
}

// Definition exposes the registered definition for id.
func (s *Service) Definition(id SectionID) (SectionDefinition, bool) {
	return s.opts.Registry.Definition(id)
}

func (s *Service) recordTelemetry(ctx context.Context, event string, payload map[string]any) {
	if payload == nil {
		payload = map[string]any{}
	}
	if actor := ActorFromContext(ctx); actor.UserID != "" {
		payload["user_id"] = actor.UserID
	}
	s.opts.Telemetry.Record(ctx, event, payload)
}

func (s *Service) now() time.Time {
	return s.opts.Clock()
}
