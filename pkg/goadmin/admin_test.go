package goadmin_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-sitecontent/pkg/goadmin"
	sitepkg "github.com/goliatone/go-sitecontent/pkg/sitecontent"
)

type stubMenuBuilder struct {
	items []goadmin.MenuItem
}

func (s *stubMenuBuilder) EnsureMenuItem(_ context.Context, _ string, item goadmin.MenuItem) error {
	s.items = append(s.items, item)
	return nil
}

func TestAdminBootstrapSeedsMenu(t *testing.T) {
	builder := &stubMenuBuilder{}
	service := sitepkg.NewService(sitepkg.Options{})
	admin, err := goadmin.New(goadmin.Config{
		EnableContent: true,
		Service:       service,
		MenuBuilder:   builder,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := admin.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}
	if len(builder.items) != 1 {
		t.Fatalf("expected 1 call, got %d", len(builder.items))
	}
	if builder.items[0].Route != "admin.content" {
		t.Fatalf("unexpected route %q", builder.items[0].Route)
	}
	if admin.Content() == nil {
		t.Fatalf("expected content service")
	}
}

func TestAdminBootstrapSeedsSectionEntries(t *testing.T) {
	builder := &stubMenuBuilder{}
	service := sitepkg.NewService(sitepkg.Options{})
	admin, err := goadmin.New(goadmin.Config{
		EnableContent:  true,
		Service:        service,
		MenuBuilder:    builder,
		SectionEntries: true,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := admin.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}
	sections := service.Sections("")
	if len(builder.items) != len(sections)+1 {
		t.Fatalf("expected %d items, got %d", len(sections)+1, len(builder.items))
	}
	first := builder.items[1]
	if first.Parent != "admin.content" || first.Route != "admin.content.hero" {
		t.Fatalf("unexpected child entry %+v", first)
	}
}

func TestAdminDisabledSkipsBootstrap(t *testing.T) {
	builder := &stubMenuBuilder{}
	admin, err := goadmin.New(goadmin.Config{
		EnableContent: false,
		MenuBuilder:   builder,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := admin.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}
	if len(builder.items) != 0 {
		t.Fatalf("expected 0 calls, got %d", len(builder.items))
	}
	if admin.Content() != nil {
		t.Fatalf("expected nil content when disabled")
	}
}

func TestAdminRequiresServiceWhenEnabled(t *testing.T) {
	if _, err := goadmin.New(goadmin.Config{EnableContent: true}); err == nil {
		t.Fatalf("expected error without service")
	}
}
