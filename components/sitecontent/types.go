package sitecontent

import (
	"context"
	"time"
)

// HostHook is how the editing core talks back to the hosting application.
// ContentChanged receives the full content after every section update;
// ExitToSite and Logout are fire-and-forget signals.
type HostHook interface {
	ContentChanged(ctx context.Context, event ContentEvent) error
	ExitToSite(ctx context.Context)
	Logout(ctx context.Context)
}

// Persister stores acknowledged content. Durable storage is the host's concern;
// the Service only hands it a snapshot on Save.
type Persister interface {
	Persist(ctx context.Context, snapshot Snapshot) error
}

// Clipboard writes plain text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Confirmer asks the operator a blocking yes/no question before destructive actions.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// ConfirmAnswer is a Confirmer that always gives the same answer, for
// transports where the operator confirmed before the request was sent.
type ConfirmAnswer bool

// Confirm implements Confirmer.
func (a ConfirmAnswer) Confirm(context.Context, string) (bool, error) {
	return bool(a), nil
}

// ImageSearch turns a free-text query into an image reference.
type ImageSearch interface {
	Search(ctx context.Context, query string) (string, error)
}

// Clock abstracts time for uploads and acknowledgements.
type Clock func() time.Time

// ContentEvent describes a change to the content aggregate.
type ContentEvent struct {
	Section  SectionID   `json:"section"`
	Reason   string      `json:"reason"`
	Revision uint64      `json:"revision"`
	Content  SiteContent `json:"content"`
}

// Snapshot is a revisioned copy of the content handed to persisters.
type Snapshot struct {
	Revision uint64      `json:"revision"`
	SavedAt  time.Time   `json:"saved_at"`
	Content  SiteContent `json:"content"`
}

// SaveReceipt acknowledges a Save call.
type SaveReceipt struct {
	Revision uint64    `json:"revision"`
	SavedAt  time.Time `json:"saved_at"`
	Changed  bool      `json:"changed"`
}

// NavEntry is one item of the admin navigation rail.
type NavEntry struct {
	ID     SectionID `json:"id"`
	Label  string    `json:"label"`
	Icon   string    `json:"icon,omitempty"`
	Route  string    `json:"route"`
	Active bool      `json:"active"`
}

// HostFuncs adapts plain functions to HostHook. Nil fields are skipped.
type HostFuncs struct {
	OnContentChange func(ctx context.Context, content SiteContent) error
	OnExitToSite    func(ctx context.Context)
	OnLogout        func(ctx context.Context)
}

// ContentChanged implements HostHook.
func (h HostFuncs) ContentChanged(ctx context.Context, event ContentEvent) error {
	if h.OnContentChange == nil {
		return nil
	}
	return h.OnContentChange(ctx, event.Content)
}

// ExitToSite implements HostHook.
func (h HostFuncs) ExitToSite(ctx context.Context) {
	if h.OnExitToSite != nil {
		h.OnExitToSite(ctx)
	}
}

// Logout implements HostHook.
func (h HostFuncs) Logout(ctx context.Context) {
	if h.OnLogout != nil {
		h.OnLogout(ctx)
	}
}

// MultiHost fans a host signal out to several hooks in order. ContentChanged
// stops at the first error.
type MultiHost []HostHook

// ContentChanged implements HostHook.
func (m MultiHost) ContentChanged(ctx context.Context, event ContentEvent) error {
	for _, h := range m {
		if h == nil {
			continue
		}
		if err := h.ContentChanged(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// ExitToSite implements HostHook.
func (m MultiHost) ExitToSite(ctx context.Context) {
	for _, h := range m {
		if h != nil {
			h.ExitToSite(ctx)
		}
	}
}

// Logout implements HostHook.
func (m MultiHost) Logout(ctx context.Context) {
	for _, h := range m {
		if h != nil {
			h.Logout(ctx)
		}
	}
}

type noopHost struct{}

func (noopHost) ContentChanged(context.Context, ContentEvent) error { return nil }
func (noopHost) ExitToSite(context.Context)                         {}
func (noopHost) Logout(context.Context)                             {}

type noopPersister struct{}

func (noopPersister) Persist(context.Context, Snapshot) error { return nil }
