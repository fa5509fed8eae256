// Package libgen is the top-level facade over the template-compilation
// engine: definitions plus a context plus a fragment registry in, emitted
// source text or a complete diagnostic report out. The engine performs no
// I/O; callers hand the compiled text to whatever persistence layer hosts
// them.
package libgen

import (
	"context"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/compiler"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/diag"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/fragment"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/naming"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

// Definition re-exports the template definition IR.
type Definition = template.Definition

// Context carries the variable bindings for one compilation.
type Context = template.Context

// Result is one successfully compiled file.
type Result = compiler.Result

// CompilationError aggregates every diagnostic of one failed attempt.
type CompilationError = diag.CompilationError

// NewCompiler exposes the compiler constructor from the top-level module.
func NewCompiler(options ...compiler.Option) *compiler.Compiler {
	return compiler.New(options...)
}

// Compile runs a single definition through a compiler wired with the
// given registry. It is the simplest entry point for callers holding one
// definition.
func Compile(ctx context.Context, def Definition, tctx Context, registry *fragment.Registry) (Result, error) {
	c := compiler.New(compiler.WithRegistry(registry))
	return c.Compile(ctx, compiler.Request{Definition: def, Context: tctx})
}

// CompileBatch compiles a definition set against one context, returning
// results in input order and joining per-definition failures.
func CompileBatch(ctx context.Context, defs []Definition, tctx Context, registry *fragment.Registry) ([]Result, error) {
	c := compiler.New(compiler.WithRegistry(registry))
	return c.CompileBatch(ctx, defs, tctx)
}

// GenerateLibrary compiles the bundled definition set for a domain name:
// variants are derived, flags applied, and every builtin definition
// compiled with the builtin fragments. This is the code path the CLI and
// generator hosts share.
func GenerateLibrary(ctx context.Context, domain string, opts naming.Options, flags map[string]bool) ([]Result, error) {
	variants, err := naming.Derive(domain, opts)
	if err != nil {
		return nil, err
	}

	defs, err := template.Builtin()
	if err != nil {
		return nil, err
	}

	c := compiler.New(compiler.WithRegistry(fragment.Builtin()))
	return c.CompileBatch(ctx, defs, variants.Context(flags, nil))
}
