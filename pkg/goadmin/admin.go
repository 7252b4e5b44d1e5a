package goadmin

import (
	"context"
	"errors"
	"fmt"

	sitepkg "github.com/goliatone/go-sitecontent/pkg/sitecontent"
)

// MenuBuilder ensures content admin entries exist within the admin navigation.
type MenuBuilder interface {
	EnsureMenuItem(ctx context.Context, menuCode string, item MenuItem) error
}

// MenuItem captures admin link metadata.
type MenuItem struct {
	Label    string
	Route    string
	Icon     string
	Position int
	Parent   string
}

// Config wires the content service into an admin shell.
type Config struct {
	EnableContent   bool
	MenuCode        string
	MenuBuilder     MenuBuilder
	Service         *sitepkg.Service
	DefaultMenuItem MenuItem
	// Locale selects section labels for the seeded child entries.
	Locale string
	// SectionEntries seeds one child entry per section under the default item.
	SectionEntries bool
}

// Admin exposes helpers for go-admin style applications.
type Admin struct {
	cfg Config
}

// New creates an Admin helper that can seed content menus.
func New(cfg Config) (*Admin, error) {
	if cfg.EnableContent && cfg.Service == nil {
		return nil, errors.New("goadmin: content service is required when enabled")
	}
	if cfg.MenuCode == "" {
		cfg.MenuCode = "admin.main"
	}
	if cfg.DefaultMenuItem.Label == "" {
		cfg.DefaultMenuItem.Label = "Site Content"
	}
	if cfg.DefaultMenuItem.Route == "" {
		cfg.DefaultMenuItem.Route = "admin.content"
	}
	if cfg.DefaultMenuItem.Icon == "" {
		cfg.DefaultMenuItem.Icon = "edit"
	}
	return &Admin{cfg: cfg}, nil
}

// Content exposes the configured service when enabled.
func (a *Admin) Content() *sitepkg.Service {
	if !a.cfg.EnableContent {
		return nil
	}
	return a.cfg.Service
}

// Bootstrap seeds menu entries when content support is enabled.
func (a *Admin) Bootstrap(ctx context.Context) error {
	if !a.cfg.EnableContent || a.cfg.MenuBuilder == nil {
		return nil
	}
	root := a.cfg.DefaultMenuItem
	if err := a.cfg.MenuBuilder.EnsureMenuItem(ctx, a.cfg.MenuCode, root); err != nil {
		return err
	}
	if !a.cfg.SectionEntries {
		return nil
	}
	for i, entry := range a.cfg.Service.Sections(a.cfg.Locale) {
		item := MenuItem{
			Label:    entry.Label,
			Route:    fmt.Sprintf("%s.%s", root.Route, entry.ID),
			Icon:     entry.Icon,
			Position: i,
			Parent:   root.Route,
		}
		if err := a.cfg.MenuBuilder.EnsureMenuItem(ctx, a.cfg.MenuCode, item); err != nil {
			return fmt.Errorf("goadmin: seed %s: %w", entry.ID, err)
		}
	}
	return nil
}
