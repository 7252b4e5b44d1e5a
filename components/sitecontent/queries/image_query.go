package queries

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	sitecontent "github.com/goliatone/go-sitecontent/components/sitecontent"
)

// ImageSearchInput filters the image library.
type ImageSearchInput struct {
	Query string `json:"query"`
}

type imageSearcher interface {
	Search(query string) []sitecontent.ImageItem
}

// ImageSearchQuery filters images by name or alt text.
type ImageSearchQuery struct {
	library imageSearcher
}

// NewImageSearchQuery builds the query.
func NewImageSearchQuery(library imageSearcher) *ImageSearchQuery {
	return &ImageSearchQuery{library: library}
}

var _ gocommand.Querier[ImageSearchInput, []sitecontent.ImageItem] = (*ImageSearchQuery)(nil)

// Query runs the search.
func (q *ImageSearchQuery) Query(ctx context.Context, input ImageSearchInput) ([]sitecontent.ImageItem, error) {
	return q.library.Search(input.Query), nil
}

// ImageCopiedInput identifies the image whose copied flag is read.
type ImageCopiedInput struct {
	ImageID string `json:"image_id"`
}

type copiedFlags interface {
	Copied(id string) bool
}

// ImageCopiedQuery reports whether an image reference was copied recently.
type ImageCopiedQuery struct {
	library copiedFlags
}

// NewImageCopiedQuery builds the query.
func NewImageCopiedQuery(library copiedFlags) *ImageCopiedQuery {
	return &ImageCopiedQuery{library: library}
}

var _ gocommand.Querier[ImageCopiedInput, bool] = (*ImageCopiedQuery)(nil)

// Query reads the flag.
func (q *ImageCopiedQuery) Query(ctx context.Context, input ImageCopiedInput) (bool, error) {
	if input.ImageID == "" {
		return false, errors.New("copied query requires image id")
	}
	return q.library.Copied(input.ImageID), nil
}
