package sitecontent

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

const (
	defaultSearchBaseURL = "https://source.unsplash.com"
	defaultSearchWidth   = 1600
	defaultSearchHeight  = 900
)

// PlaceholderSearch synthesizes a keyword image URL of the form
// <base>/<w>x<h>/?<query>. No request is made.
type PlaceholderSearch struct {
	BaseURL string
	Width   int
	Height  int
}

// Search implements ImageSearch.
func (p PlaceholderSearch) Search(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	base := strings.TrimRight(p.BaseURL, "/")
	if base == "" {
		base = defaultSearchBaseURL
	}
	width, height := p.Width, p.Height
	if width <= 0 {
		width = defaultSearchWidth
	}
	if height <= 0 {
		height = defaultSearchHeight
	}
	return fmt.Sprintf("%s/%dx%d/?%s", base, width, height, url.QueryEscape(query)), nil
}
