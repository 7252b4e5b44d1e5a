package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	sitecontent "github.com/goliatone/go-sitecontent/components/sitecontent"
)

// NavigationInput selects the locale for section labels.
type NavigationInput struct {
	Locale string `json:"locale"`
}

type navService interface {
	Sections(locale string) []sitecontent.NavEntry
}

// NavigationQuery lists the admin navigation rail.
type NavigationQuery struct {
	service navService
}

// NewNavigationQuery builds the query.
func NewNavigationQuery(service navService) *NavigationQuery {
	return &NavigationQuery{service: service}
}

var _ gocommand.Querier[NavigationInput, []sitecontent.NavEntry] = (*NavigationQuery)(nil)

// Query returns the navigation entries.
func (q *NavigationQuery) Query(ctx context.Context, input NavigationInput) ([]sitecontent.NavEntry, error) {
	return q.service.Sections(input.Locale), nil
}
