// Package testsupport provides fixture helpers shared by package tests.
package testsupport

import (
	"testing"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/naming"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

// SampleContext builds the context most tests compile against: the
// "user profile" domain under the "acme" scope with the given flags set.
func SampleContext(flags ...string) template.Context {
	variants, err := naming.Derive("user profile", naming.Options{
		Scope:       "acme",
		ProjectName: "acme-platform",
		LibraryType: "feature",
	})
	if err != nil {
		panic(err)
	}

	enabled := make(map[string]bool, len(flags))
	for _, flag := range flags {
		enabled[flag] = true
	}
	return variants.Context(enabled, nil)
}

// MustParseDefinition parses YAML definition data, failing the test on
// any error.
func MustParseDefinition(t *testing.T, data string) template.Definition {
	t.Helper()

	def, err := template.Parse([]byte(data), "fixture")
	if err != nil {
		t.Fatalf("parse definition: %v", err)
	}
	return def
}

// MustBuiltin loads the bundled definition set, failing the test on any
// error.
func MustBuiltin(t *testing.T) []template.Definition {
	t.Helper()

	defs, err := template.Builtin()
	if err != nil {
		t.Fatalf("load builtin definitions: %v", err)
	}
	return defs
}

// DefinitionByID finds one definition in a set, failing the test when it
// is absent.
func DefinitionByID(t *testing.T, defs []template.Definition, id string) template.Definition {
	t.Helper()

	for _, def := range defs {
		if def.ID == id {
			return def
		}
	}
	t.Fatalf("definition %q not found", id)
	return template.Definition{}
}
