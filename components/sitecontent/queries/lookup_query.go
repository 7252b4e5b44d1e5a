package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	sitecontent "github.com/goliatone/go-sitecontent/components/sitecontent"
)

// ImageLookupInput asks for an image reference matching keywords.
type ImageLookupInput struct {
	Query string `json:"query"`
}

// ImageLookupQuery resolves keywords to an image URL through an ImageSearch.
type ImageLookupQuery struct {
	search sitecontent.ImageSearch
}

// NewImageLookupQuery builds the query. A nil search uses PlaceholderSearch.
func NewImageLookupQuery(search sitecontent.ImageSearch) *ImageLookupQuery {
	if search == nil {
		search = sitecontent.PlaceholderSearch{}
	}
	return &ImageLookupQuery{search: search}
}

var _ gocommand.Querier[ImageLookupInput, string] = (*ImageLookupQuery)(nil)

// Query returns the resolved reference.
func (q *ImageLookupQuery) Query(ctx context.Context, input ImageLookupInput) (string, error) {
	return q.search.Search(ctx, input.Query)
}
