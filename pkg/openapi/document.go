package openapi

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"
)

// Document wraps the raw OpenAPI payload and its origin. Exposing this
// wrapper instead of kin-openapi structs keeps the public API decoupled
// from the parsing library.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("openapi: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source { return d.source }

// Raw returns a defensive copy of the OpenAPI payload.
func (d Document) Raw() []byte { return append([]byte(nil), d.raw...) }

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Operation models the subset of OpenAPI operation metadata the codegen
// conversion needs.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	RequestBody Schema
	Responses   map[string]Schema
	Extensions  map[string]any
}

// Schema represents request/response bodies and nested members within an
// operation.
type Schema struct {
	Ref         string
	Type        string
	Format      string
	Description string
	Required    []string
	Properties  map[string]Schema
	Items       *Schema
}

// Empty reports whether the schema carries no shape at all.
func (s Schema) Empty() bool {
	return s.Ref == "" && s.Type == "" && s.Items == nil && len(s.Properties) == 0
}

// Loader fetches raw documents from a Source.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// Parser extracts operations from a loaded document.
type Parser interface {
	Operations(ctx context.Context, doc Document) (map[string]Operation, error)
}

// LoaderOptions configures the built-in loader.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS lookups.
	FileSystem fs.FS
	// AllowHTTP enables SourceKindURL fetches.
	AllowHTTP bool
	// HTTPClient overrides the default client used for URL sources.
	HTTPClient *http.Client
	// RequestTimeout bounds URL fetches when no client is supplied.
	RequestTimeout time.Duration
}

// NewLoaderOptions returns the defaults: file sources enabled, HTTP off.
func NewLoaderOptions() LoaderOptions {
	return LoaderOptions{RequestTimeout: 30 * time.Second}
}

// ParserOptions configures the built-in parser.
type ParserOptions struct {
	// ResolveReferences validates the document and resolves $ref targets.
	ResolveReferences bool
	// AllowPartialDocuments tolerates documents without paths/operations.
	AllowPartialDocuments bool
}

// NewParserOptions returns the defaults: references resolved, partial
// documents rejected.
func NewParserOptions() ParserOptions {
	return ParserOptions{ResolveReferences: true}
}
