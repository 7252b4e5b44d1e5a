package sitecontent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHex(t *testing.T) {
	cases := map[string]string{
		"#ABC":    "#aabbcc",
		"abc":     "#aabbcc",
		"#C4622D": "#c4622d",
		"c4622d":  "#c4622d",
		" #fff ":  "#ffffff",
		"#abcd":   "#abcd",
		"red":     "red",
		"":        "",
		"#":       "#",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeHex(in), "input %q", in)
	}
}

func TestTextFieldsForwardVerbatim(t *testing.T) {
	var got []string
	input := &InputField{Label: "Title", OnChange: func(v string) { got = append(got, v) }}
	input.Change("  spaced  ")
	area := &TextareaField{Label: "Body", OnChange: func(v string) { got = append(got, v) }}
	area.Change("line one\nline two")

	assert.Equal(t, []string{"  spaced  ", "line one\nline two"}, got)
	assert.Equal(t, "  spaced  ", input.Value)
}

func TestColorField(t *testing.T) {
	var got []string
	field := &ColorField{Label: "Accent", OnChange: func(v string) { got = append(got, v) }}
	field.Pick("#C4622D")
	field.Type("FFF")
	field.Type("not a color")

	assert.Equal(t, []string{"#c4622d", "#ffffff", "not a color"}, got)
	assert.Equal(t, "not a color", field.Value)
}

type stubSearch struct {
	ref string
	err error
}

func (s stubSearch) Search(context.Context, string) (string, error) { return s.ref, s.err }

func TestImageUploadField(t *testing.T) {
	var got []string
	field := NewImageUploadField("Background", "", stubSearch{ref: "https://img/found.jpg"}, func(v string) {
		got = append(got, v)
	})
	assert.Equal(t, ImageModeURL, field.Mode())
	_, ok := field.Preview()
	assert.False(t, ok)

	field.SetURL("https://img/typed.jpg")
	ref, ok := field.Preview()
	assert.True(t, ok)
	assert.Equal(t, "https://img/typed.jpg", ref)

	field.SetMode(ImageModeSearch)
	assert.Equal(t, ImageModeSearch, field.Mode())
	ref, err := field.Search(context.Background(), "mountains")
	require.NoError(t, err)
	assert.Equal(t, "https://img/found.jpg", ref)

	field.Clear()
	_, ok = field.Preview()
	assert.False(t, ok)
	assert.Equal(t, []string{"https://img/typed.jpg", "https://img/found.jpg", ""}, got)
}

func TestImageUploadFieldSearchFailureKeepsValue(t *testing.T) {
	field := NewImageUploadField("Logo", "https://img/current.png", stubSearch{err: errors.New("offline")}, nil)
	_, err := field.Search(context.Background(), "logo")
	require.Error(t, err)
	ref, _ := field.Preview()
	assert.Equal(t, "https://img/current.png", ref)
}

func TestImageUploadFieldDefaultsToPlaceholderSearch(t *testing.T) {
	field := NewImageUploadField("Hero", "", nil, nil)
	ref, err := field.Search(context.Background(), "office team")
	require.NoError(t, err)
	assert.Equal(t, "https://source.unsplash.com/1600x900/?office+team", ref)

	_, err = field.Search(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}
