package sitecontent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderSearch(t *testing.T) {
	search := PlaceholderSearch{BaseURL: "https://images.example/", Width: 800, Height: 600}
	ref, err := search.Search(context.Background(), "city & skyline")
	require.NoError(t, err)
	assert.Equal(t, "https://images.example/800x600/?city+%26+skyline", ref)
}

func TestPlaceholderSearchHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := PlaceholderSearch{}.Search(ctx, "sky")
	assert.ErrorIs(t, err, context.Canceled)
}
