// Package sitecontent is the public entry point for embedding the content
// admin in another application.
package sitecontent

import (
	core "github.com/goliatone/go-sitecontent/components/sitecontent"
)

// Service exposes the underlying components/sitecontent.Service type.
type Service = core.Service

// Options re-export for convenience.
type Options = core.Options

// SiteContent is the full editable document.
type SiteContent = core.SiteContent

// SectionID names one editable section.
type SectionID = core.SectionID

// ImageLibrary and LibraryOptions re-exports.
type (
	ImageLibrary   = core.ImageLibrary
	LibraryOptions = core.LibraryOptions
)

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return core.NewService(opts)
}

// DefaultContent returns the stock content a fresh site starts with.
func DefaultContent() SiteContent {
	return core.DefaultContent()
}
