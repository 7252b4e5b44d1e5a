package sitecontent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	contentVersionV1 = "1"
	// ContentVersion is the document format written by the encoders.
	ContentVersion = contentVersionV1
)

// ContentDocument is the on-disk envelope for a SiteContent snapshot.
type ContentDocument struct {
	Version  string      `json:"version" yaml:"version"`
	Revision uint64      `json:"revision,omitempty" yaml:"revision,omitempty"`
	Content  SiteContent `json:"content" yaml:"content"`
	Source   string      `json:"-" yaml:"-"`
}

// NewContentDocument wraps content in the current document version.
func NewContentDocument(content SiteContent, revision uint64) ContentDocument {
	return ContentDocument{
		Version:  ContentVersion,
		Revision: revision,
		Content:  content.Clone(),
	}
}

// EncodeYAML writes doc as YAML with two-space indentation.
func EncodeYAML(w io.Writer, doc ContentDocument) error {
	doc.applyDefaults()
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("sitecontent: encode yaml: %w", err)
	}
	return encoder.Close()
}

// DecodeYAML reads a document, rejecting unknown keys.
func DecodeYAML(r io.Reader) (*ContentDocument, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc ContentDocument
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("sitecontent: content document is empty")
		}
		return nil, fmt.Errorf("sitecontent: parse yaml: %w", err)
	}
	return doc.finish()
}

// EncodeJSON writes doc as indented JSON.
func EncodeJSON(w io.Writer, doc ContentDocument) error {
	doc.applyDefaults()
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("sitecontent: encode json: %w", err)
	}
	return nil
}

// DecodeJSON reads a document, rejecting unknown keys.
func DecodeJSON(r io.Reader) (*ContentDocument, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	var doc ContentDocument
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("sitecontent: content document is empty")
		}
		return nil, fmt.Errorf("sitecontent: parse json: %w", err)
	}
	return doc.finish()
}

// ReadContentFile loads a document, choosing the codec by extension
// (.json, otherwise YAML).
func ReadContentFile(path string) (*ContentDocument, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("sitecontent: open content %s: %w", path, err)
	}
	var doc *ContentDocument
	if isJSONPath(path) {
		doc, err = DecodeJSON(bytes.NewReader(data))
	} else {
		doc, err = DecodeYAML(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("sitecontent: decode content %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// WriteContentFile stores doc at path, choosing the codec by extension.
func WriteContentFile(path string, doc ContentDocument) error {
	var buf bytes.Buffer
	var err error
	if isJSONPath(path) {
		err = EncodeJSON(&buf, doc)
	} else {
		err = EncodeYAML(&buf, doc)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("sitecontent: write content %s: %w", path, err)
	}
	return nil
}

// Validate checks the envelope and every section against validator.
func (doc *ContentDocument) Validate(registry SectionRegistry, validator SectionValidator) error {
	if doc.Version != contentVersionV1 {
		return fmt.Errorf("sitecontent: unsupported content version %q", doc.Version)
	}
	if registry == nil || validator == nil {
		return nil
	}
	var errs []error
	for _, id := range sectionOrder {
		def, ok := registry.Definition(id)
		if !ok {
			continue
		}
		value, err := doc.Content.Section(id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := validator.Validate(def, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (doc *ContentDocument) finish() (*ContentDocument, error) {
	doc.applyDefaults()
	if doc.Version != contentVersionV1 {
		return nil, fmt.Errorf("sitecontent: unsupported content version %q", doc.Version)
	}
	return doc, nil
}

func (doc *ContentDocument) applyDefaults() {
	if doc.Version == "" {
		doc.Version = contentVersionV1
	}
}

func isJSONPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// FilePersister writes acknowledged snapshots to a content file.
type FilePersister struct {
	Path string
}

// Persist implements Persister.
func (p FilePersister) Persist(_ context.Context, snapshot Snapshot) error {
	if p.Path == "" {
		return fmt.Errorf("sitecontent: file persister requires a path")
	}
	return WriteContentFile(p.Path, NewContentDocument(snapshot.Content, snapshot.Revision))
}
