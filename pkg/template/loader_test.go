package template_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

const featureYAML = `
id: sample
meta:
  title: "{className} sample"
  path: "src/lib/{fileName}.ts"
imports:
  - source: effect
    items: [Effect, Context]
sections:
  - title: Service
    contents:
      - kind: contextTag
        contextTag:
          name: "{className}Service"
          identifier: "{scope}/{className}Service"
          layers:
            - kind: Live
              value: liveLayer
`

func TestParse(t *testing.T) {
	def, err := template.Parse([]byte(featureYAML), "sample.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if def.ID != "sample" {
		t.Fatalf("id = %q", def.ID)
	}
	if def.Meta.Path != "src/lib/{fileName}.ts" {
		t.Fatalf("path = %q", def.Meta.Path)
	}
	if len(def.Sections) != 1 || len(def.Sections[0].Contents) != 1 {
		t.Fatalf("unexpected section layout: %+v", def.Sections)
	}

	node := def.Sections[0].Contents[0]
	if node.Kind != template.ContentKindContextTag {
		t.Fatalf("kind = %q", node.Kind)
	}
	if node.ContextTag == nil || node.ContextTag.Name != "{className}Service" {
		t.Fatalf("context tag config not decoded: %+v", node.ContextTag)
	}
	if node.ContextTag.Layers[0].Kind != template.LayerLive {
		t.Fatalf("layer kind = %q", node.ContextTag.Layers[0].Kind)
	}
}

func TestParse_RejectsInvalidDefinition(t *testing.T) {
	_, err := template.Parse([]byte("id: empty\n"), "empty.yaml")
	if err == nil || !strings.Contains(err.Error(), "empty.yaml") {
		t.Fatalf("expected labelled validation error, got %v", err)
	}
}

func TestLoadFS_MultiDocumentAndOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"b.yaml": &fstest.MapFile{Data: []byte(`
id: second
sections:
  - contents:
      - kind: raw
        raw: "// second"
---
id: third
sections:
  - contents:
      - kind: raw
        raw: "// third"
`)},
		"a.yaml": &fstest.MapFile{Data: []byte(`
id: first
sections:
  - contents:
      - kind: raw
        raw: "// first"
`)},
	}

	defs, err := template.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var ids []string
	for _, def := range defs {
		ids = append(ids, def.ID)
	}
	want := []string{"first", "second", "third"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}
}

func TestLoadFS_DuplicateIDRejected(t *testing.T) {
	body := []byte(`
id: dup
sections:
  - contents:
      - kind: raw
        raw: "// x"
`)
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: body},
		"b.yaml": &fstest.MapFile{Data: body},
	}

	_, err := template.LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), `duplicate definition id "dup"`) {
		t.Fatalf("expected duplicate-id error, got %v", err)
	}
}

func TestBuiltin(t *testing.T) {
	defs, err := template.Builtin()
	if err != nil {
		t.Fatalf("builtin: %v", err)
	}

	byID := make(map[string]template.Definition, len(defs))
	for _, def := range defs {
		byID[def.ID] = def
	}

	for _, id := range []string{"feature-service", "data-access-repository", "util-constants", "util-guards"} {
		if _, ok := byID[id]; !ok {
			t.Fatalf("builtin set missing %q (have %v)", id, keys(byID))
		}
	}

	feature := byID["feature-service"]
	if len(feature.Conditionals) == 0 {
		t.Fatalf("feature definition should carry a conditional block")
	}
}

func keys(m map[string]template.Definition) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
