package scaffold_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/scaffold"
)

func TestNew_RequiresASource(t *testing.T) {
	if _, err := scaffold.New(); err == nil {
		t.Fatalf("expected error when no loader source is configured")
	}
}

func TestRenderString(t *testing.T) {
	engine, err := scaffold.New(scaffold.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got, err := engine.RenderString("Hello {{ name }}!", map[string]any{"name": "World"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello World!" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderTemplate_AppendsExtension(t *testing.T) {
	fsys := fstest.MapFS{
		"greeting.tpl": &fstest.MapFile{Data: []byte("Hi {{ name }}")},
	}
	engine, err := scaffold.New(scaffold.WithFS(fsys))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got, err := engine.RenderTemplate("greeting", map[string]any{"name": "there"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hi there" {
		t.Fatalf("got %q", got)
	}
}

func TestGlobalData(t *testing.T) {
	engine, err := scaffold.New(
		scaffold.WithFS(fstest.MapFS{}),
		scaffold.WithGlobalData(map[string]any{"scope": "acme"}),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got, err := engine.RenderString("@{{ scope }}/{{ pkg }}", map[string]any{"pkg": "billing"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "@acme/billing" {
		t.Fatalf("got %q", got)
	}
}

func TestDefault_RendersBundledAssets(t *testing.T) {
	engine, err := scaffold.Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}

	data := map[string]any{
		"packageName": "user-profile-feature",
		"scope":       "acme",
		"libraryType": "feature",
		"projectName": "acme-platform",
		"className":   "UserProfile",
		"description": "User profile feature library.",
		"files":       []string{"src/lib/user-profile.service.ts"},
	}

	readme, err := engine.RenderTemplate("readme.md", data)
	if err != nil {
		t.Fatalf("render readme: %v", err)
	}
	for _, needle := range []string{
		"# user-profile-feature",
		"@acme/user-profile-feature",
		"`src/lib/user-profile.service.ts`",
	} {
		if !strings.Contains(readme, needle) {
			t.Fatalf("readme missing %q:\n%s", needle, readme)
		}
	}

	project, err := engine.RenderTemplate("project.json", data)
	if err != nil {
		t.Fatalf("render project: %v", err)
	}
	for _, needle := range []string{
		`"name": "user-profile-feature"`,
		`"scope:acme"`,
		`"type:feature"`,
	} {
		if !strings.Contains(project, needle) {
			t.Fatalf("project.json missing %q:\n%s", needle, project)
		}
	}
}
