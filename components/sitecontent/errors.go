package sitecontent

import "errors"

var (
	// ErrUnknownSection is returned for section tags outside the known set.
	ErrUnknownSection = errors.New("sitecontent: unknown section")
	// ErrInvalidPayload wraps transport payloads that cannot be decoded into a section.
	ErrInvalidPayload = errors.New("sitecontent: invalid section payload")
	// ErrValidation wraps schema violations reported by a SectionValidator.
	ErrValidation = errors.New("sitecontent: section failed validation")
	// ErrImageNotFound is returned when an image id is not in the library.
	ErrImageNotFound = errors.New("sitecontent: image not found")
	// ErrUnsupportedMedia is returned for uploads that are not images.
	ErrUnsupportedMedia = errors.New("sitecontent: unsupported media type")
	// ErrEmptyQuery is returned when an image search is requested without terms.
	ErrEmptyQuery = errors.New("sitecontent: search query is required")
	// ErrClipboardUnavailable is returned when the clipboard cannot be written.
	ErrClipboardUnavailable = errors.New("sitecontent: clipboard unavailable")
	// ErrIndexOutOfRange is returned by editors addressing a missing element.
	ErrIndexOutOfRange = errors.New("sitecontent: index out of range")
	// ErrUnknownField is returned by SetField for keys the editor does not expose.
	ErrUnknownField = errors.New("sitecontent: unknown field")

	errMissingService = errors.New("sitecontent: service not configured")
)
