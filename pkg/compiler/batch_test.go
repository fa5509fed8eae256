package compiler_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/compiler"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/diag"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

func rawDefinition(id, text string) template.Definition {
	return template.Definition{
		ID: id,
		Sections: []template.SectionDefinition{
			{Contents: []template.ContentDefinition{template.RawContent(text)}},
		},
	}
}

func TestCompileBatch_ResultsInInputOrder(t *testing.T) {
	var defs []template.Definition
	for i := 0; i < 12; i++ {
		defs = append(defs, rawDefinition(fmt.Sprintf("def-%02d", i), fmt.Sprintf("// body %d", i)))
	}

	results, err := compiler.New(compiler.WithWorkers(3)).CompileBatch(context.Background(), defs, template.Context{})
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if len(results) != len(defs) {
		t.Fatalf("got %d results, want %d", len(results), len(defs))
	}
	for i, result := range results {
		if want := fmt.Sprintf("def-%02d", i); result.TemplateID != want {
			t.Fatalf("result %d is %q, want %q", i, result.TemplateID, want)
		}
	}
}

func TestCompileBatch_FailureDoesNotAbortSiblings(t *testing.T) {
	defs := []template.Definition{
		rawDefinition("good-one", "// one"),
		rawDefinition("bad", "{missing}"),
		rawDefinition("good-two", "// two"),
	}

	results, err := compiler.New().CompileBatch(context.Background(), defs, template.Context{})
	if err == nil {
		t.Fatalf("expected the failing definition to surface an error")
	}
	if len(results) != 2 {
		t.Fatalf("expected both healthy siblings compiled, got %d", len(results))
	}
	if results[0].TemplateID != "good-one" || results[1].TemplateID != "good-two" {
		t.Fatalf("unexpected result order: %s, %s", results[0].TemplateID, results[1].TemplateID)
	}

	var ce *diag.CompilationError
	if !errors.As(err, &ce) {
		t.Fatalf("expected joined error to carry *diag.CompilationError, got %v", err)
	}
	if ce.TemplateID != "bad" {
		t.Fatalf("failure attributed to %q", ce.TemplateID)
	}
}

func TestCompileBatch_EmptyInput(t *testing.T) {
	results, err := compiler.New().CompileBatch(context.Background(), nil, template.Context{})
	if err != nil || results != nil {
		t.Fatalf("empty batch should be a no-op, got %v, %v", results, err)
	}
}

func TestCompileBatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	defs := []template.Definition{rawDefinition("never", "// never")}
	results, err := compiler.New().CompileBatch(ctx, defs, template.Context{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("cancelled batch should produce no results, got %d", len(results))
	}
}
