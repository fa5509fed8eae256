package compiler

import (
	"context"
	"errors"
	"strings"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/diag"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/emit"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/fragment"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/interpolate"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

// Option customises the compiler configuration.
type Option func(*Compiler)

// WithRegistry injects the fragment registry shared by every compilation.
// The registry must be fully populated before the first Compile call and
// is only read afterwards.
func WithRegistry(registry *fragment.Registry) Option {
	return func(c *Compiler) {
		c.registry = registry
	}
}

// WithWorkers bounds CompileBatch concurrency. Values below one fall back
// to the default.
func WithWorkers(n int) Option {
	return func(c *Compiler) {
		if n > 0 {
			c.workers = n
		}
	}
}

const defaultWorkers = 4

// Compiler orchestrates a compilation: import resolution, section
// assembly, emitter dispatch, header interpolation, and diagnostic
// aggregation. A Compiler holds no per-compilation state and is safe for
// concurrent use.
type Compiler struct {
	registry *fragment.Registry
	workers  int
}

// New constructs a Compiler applying any provided options. A missing
// registry is initialised empty so definitions without fragments compile
// with zero configuration.
func New(options ...Option) *Compiler {
	c := &Compiler{workers: defaultWorkers}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.registry == nil {
		c.registry = fragment.NewRegistry()
	}
	return c
}

// Request describes the inputs for one compilation.
type Request struct {
	Definition template.Definition
	Context    template.Context
}

// Result is a successful compilation: the emitted text, the interpolated
// output path, and any warning-severity diagnostics that did not block
// success.
type Result struct {
	TemplateID string
	Path       string
	Text       string
	Warnings   []diag.Diagnostic
}

// Compile runs the full pipeline for one definition. It does not fail
// fast: every interpolation, fragment, and emitter problem across all
// imports and sections is collected, and the returned error is a single
// *diag.CompilationError carrying the union. Output is byte-identical
// across runs for identical inputs; the engine inserts no timestamps or
// random values.
func (c *Compiler) Compile(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("compiler: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	def := req.Definition
	tctx := req.Context

	var diags []diag.Diagnostic
	if err := def.Validate(); err != nil {
		diags = append(diags, diag.FromError(err)...)
	}

	header, headerDiags := c.header(def.Meta, tctx)
	diags = append(diags, headerDiags...)

	path, pathDiags := c.outputPath(def.Meta, tctx)
	diags = append(diags, pathDiags...)

	importBlock, importDiags := c.imports(def, tctx)
	diags = append(diags, importDiags...)

	sections := assemble(def, tctx)

	resolver := c.registry.Resolver()
	var bodies []string
	for _, section := range sections {
		body, sectionDiags := c.section(section, tctx, resolver)
		diags = append(diags, sectionDiags...)
		if body != "" {
			bodies = append(bodies, body)
		}
	}

	warnings := filterSeverity(diags, diag.SeverityWarning)
	if hasErrors(diags) {
		return Result{}, &diag.CompilationError{TemplateID: def.ID, Diagnostics: diags}
	}

	var parts []string
	if header != "" {
		parts = append(parts, header)
	}
	if importBlock != "" {
		parts = append(parts, importBlock)
	}
	parts = append(parts, bodies...)

	return Result{
		TemplateID: def.ID,
		Path:       path,
		Text:       strings.Join(parts, "\n\n") + "\n",
		Warnings:   warnings,
	}, nil
}

// section emits a section body: the optional title as a doc comment
// followed by its content nodes separated by blank lines.
func (c *Compiler) section(section template.SectionDefinition, tctx template.Context, resolver *fragment.Resolution) (string, []diag.Diagnostic) {
	var diags []diag.Diagnostic

	var parts []string
	if section.Title != "" {
		title, err := interpolate.Interpolate(section.Title, tctx)
		if err != nil {
			diags = append(diags, diag.FromError(err)...)
		} else {
			parts = append(parts, "/**\n * "+title+"\n */")
		}
	}

	for _, node := range section.Contents {
		text, nodeDiags := emit.Content(node, tctx, resolver)
		diags = append(diags, nodeDiags...)
		if text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, "\n\n"), diags
}

// header renders the file doc block from interpolated metadata. Files
// without a title or description have no header.
func (c *Compiler) header(meta template.Metadata, tctx template.Context) (string, []diag.Diagnostic) {
	var diags []diag.Diagnostic

	title, err := interpolate.Interpolate(meta.Title, tctx)
	if err != nil {
		diags = append(diags, diag.FromError(err)...)
	}
	description, err := interpolate.Interpolate(meta.Description, tctx)
	if err != nil {
		diags = append(diags, diag.FromError(err)...)
	}

	if title == "" && description == "" {
		return "", diags
	}

	var b strings.Builder
	b.WriteString("/**\n")
	if title != "" {
		b.WriteString(" * " + title + "\n")
	}
	if description != "" {
		if title != "" {
			b.WriteString(" *\n")
		}
		b.WriteString(" * " + description + "\n")
	}
	b.WriteString(" */")
	return b.String(), diags
}

func (c *Compiler) outputPath(meta template.Metadata, tctx template.Context) (string, []diag.Diagnostic) {
	if meta.Path == "" {
		return "", nil
	}
	path, err := interpolate.Interpolate(meta.Path, tctx)
	if err != nil {
		return "", diag.FromError(err)
	}
	return path, nil
}

func hasErrors(diags []diag.Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == diag.SeverityError {
			return true
		}
	}
	return false
}

func filterSeverity(diags []diag.Diagnostic, severity diag.Severity) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, d := range diags {
		if d.Severity == severity {
			out = append(out, d)
		}
	}
	return out
}
