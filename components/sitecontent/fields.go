package sitecontent

import (
	"context"
	"strings"
	"sync"
)

// InputField is a controlled single-line text input. Every change is
// forwarded verbatim.
type InputField struct {
	Label       string
	Placeholder string
	Value       string
	OnChange    func(value string)
}

// Change records raw and forwards it to OnChange.
func (f *InputField) Change(raw string) {
	f.Value = raw
	if f.OnChange != nil {
		f.OnChange(raw)
	}
}

// TextareaField is a controlled multi-line text input.
type TextareaField struct {
	Label    string
	Rows     int
	Value    string
	OnChange func(value string)
}

// Change records raw and forwards it to OnChange.
func (f *TextareaField) Change(raw string) {
	f.Value = raw
	if f.OnChange != nil {
		f.OnChange(raw)
	}
}

// ColorField pairs a picker with a hex text box; both emit through OnChange.
type ColorField struct {
	Label    string
	Value    string
	OnChange func(value string)
}

// Pick is the swatch input. Pickers always produce valid hex.
func (f *ColorField) Pick(hex string) {
	f.emit(NormalizeHex(hex))
}

// Type is the free-text input. Unparseable text is forwarded unchanged.
func (f *ColorField) Type(raw string) {
	f.emit(NormalizeHex(raw))
}

func (f *ColorField) emit(value string) {
	f.Value = value
	if f.OnChange != nil {
		f.OnChange(value)
	}
}

// NormalizeHex canonicalises #rgb and #rrggbb colors to lowercase #rrggbb,
// adding a missing '#'. Anything else is returned unchanged.
func NormalizeHex(raw string) string {
	value := strings.TrimSpace(raw)
	digits := strings.TrimPrefix(value, "#")
	if !isHex(digits) {
		return raw
	}
	switch len(digits) {
	case 3:
		var b strings.Builder
		b.WriteByte('#')
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		return strings.ToLower(b.String())
	case 6:
		return "#" + strings.ToLower(digits)
	}
	return raw
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// ImageMode selects how an ImageUploadField obtains its reference.
type ImageMode string

const (
	ImageModeURL    ImageMode = "url"
	ImageModeSearch ImageMode = "search"
)

// ImageUploadField edits an image reference by direct URL or by search.
type ImageUploadField struct {
	Label    string
	Searcher ImageSearch
	OnChange func(value string)

	mu    sync.Mutex
	mode  ImageMode
	value string
}

// NewImageUploadField builds a field in URL mode.
func NewImageUploadField(label, value string, searcher ImageSearch, onChange func(string)) *ImageUploadField {
	return &ImageUploadField{
		Label:    label,
		Searcher: searcher,
		OnChange: onChange,
		mode:     ImageModeURL,
		value:    value,
	}
}

// Mode returns the active input mode.
func (f *ImageUploadField) Mode() ImageMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == "" {
		return ImageModeURL
	}
	return f.mode
}

// SetMode switches between URL and search input.
func (f *ImageUploadField) SetMode(mode ImageMode) {
	f.mu.Lock()
	f.mode = mode
	f.mu.Unlock()
}

// SetURL stores ref as typed.
func (f *ImageUploadField) SetURL(ref string) {
	f.emit(ref)
}

// Search resolves query through the configured ImageSearch and stores the result.
func (f *ImageUploadField) Search(ctx context.Context, query string) (string, error) {
	searcher := f.Searcher
	if searcher == nil {
		searcher = PlaceholderSearch{}
	}
	ref, err := searcher.Search(ctx, query)
	if err != nil {
		return "", err
	}
	f.emit(ref)
	return ref, nil
}

// Clear empties the reference.
func (f *ImageUploadField) Clear() {
	f.emit("")
}

// Preview reports the current reference when one is set.
func (f *ImageUploadField) Preview() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.value != ""
}

func (f *ImageUploadField) emit(value string) {
	f.mu.Lock()
	f.value = value
	f.mu.Unlock()
	if f.OnChange != nil {
		f.OnChange(value)
	}
}
