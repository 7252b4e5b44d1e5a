package queries

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	sitecontent "github.com/goliatone/go-sitecontent/components/sitecontent"
)

// ContentInput requests the full content aggregate.
type ContentInput struct{}

// SectionInput requests one section.
type SectionInput struct {
	Section sitecontent.SectionID `json:"section"`
}

type contentService interface {
	Content() sitecontent.SiteContent
	Section(id sitecontent.SectionID) (sitecontent.SectionValue, error)
}

// ContentQuery returns the current content.
type ContentQuery struct {
	service contentService
}

// NewContentQuery builds the query.
func NewContentQuery(service contentService) *ContentQuery {
	return &ContentQuery{service: service}
}

var _ gocommand.Querier[ContentInput, sitecontent.SiteContent] = (*ContentQuery)(nil)

// Query returns a copy of the content.
func (q *ContentQuery) Query(ctx context.Context, _ ContentInput) (sitecontent.SiteContent, error) {
	if q.service == nil {
		return sitecontent.SiteContent{}, errors.New("content query requires service")
	}
	return q.service.Content(), nil
}

// SectionQuery returns one section of the current content.
type SectionQuery struct {
	service contentService
}

// NewSectionQuery builds the query.
func NewSectionQuery(service contentService) *SectionQuery {
	return &SectionQuery{service: service}
}

var _ gocommand.Querier[SectionInput, sitecontent.SectionValue] = (*SectionQuery)(nil)

// Query resolves the section by id.
func (q *SectionQuery) Query(ctx context.Context, input SectionInput) (sitecontent.SectionValue, error) {
	if q.service == nil {
		return nil, errors.New("section query requires service")
	}
	return q.service.Section(input.Section)
}
