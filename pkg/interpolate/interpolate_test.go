package interpolate_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/interpolate"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

func TestInterpolate_ReplacesPlaceholders(t *testing.T) {
	ctx := template.Context{
		"className": "UserProfile",
		"fileName":  "user-profile",
	}

	got, err := interpolate.Interpolate("export class {className}Service {} // {fileName}.ts", ctx)
	if err != nil {
		t.Fatalf("interpolate: %v", err)
	}
	want := "export class UserProfileService {} // user-profile.ts"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInterpolate_TemplateLiteralsPassThrough(t *testing.T) {
	ctx := template.Context{"name": "User"}

	cases := []struct {
		in   string
		want string
	}{
		{"`Hello ${value}`", "`Hello ${value}`"},
		{"`${a}${b}`", "`${a}${b}`"},
		{"const msg = `got {name} and ${runtime}`", "const msg = `got User and ${runtime}`"},
	}
	for _, tc := range cases {
		got, err := interpolate.Interpolate(tc.in, ctx)
		if err != nil {
			t.Fatalf("interpolate %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("interpolate %q: got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestInterpolate_NonGrammarBracesVerbatim(t *testing.T) {
	ctx := template.Context{}

	cases := []string{
		"const x = { a: 1 }",
		"if (ok) { return }",
		"{}",
		"{not valid}",
		"{1abc}",
		"{a..b}",
		"{unterminated",
	}
	for _, in := range cases {
		got, err := interpolate.Interpolate(in, ctx)
		if err != nil {
			t.Fatalf("interpolate %q: %v", in, err)
		}
		if got != in {
			t.Fatalf("interpolate %q: got %q, want input verbatim", in, got)
		}
	}
}

func TestInterpolate_NestedPaths(t *testing.T) {
	ctx := template.Context{
		"options": map[string]any{
			"retries": 3,
			"http": map[string]any{
				"timeout": "30s",
			},
		},
	}

	got, err := interpolate.Interpolate("retries={options.retries} timeout={options.http.timeout}", ctx)
	if err != nil {
		t.Fatalf("interpolate: %v", err)
	}
	want := "retries=3 timeout=30s"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInterpolate_CollectsAllMissing(t *testing.T) {
	ctx := template.Context{"present": "yes"}

	_, err := interpolate.Interpolate("{a} {present} {b} {a}", ctx)
	if err == nil {
		t.Fatalf("expected error for missing placeholders")
	}

	var ie *interpolate.Error
	if !errors.As(err, &ie) {
		t.Fatalf("expected *interpolate.Error, got %T", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, ie.Missing); diff != "" {
		t.Fatalf("missing list mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpolate_ObjectLeafIsUnresolved(t *testing.T) {
	ctx := template.Context{
		"options": map[string]any{"retries": 3},
	}

	_, err := interpolate.Interpolate("{options}", ctx)
	var ie *interpolate.Error
	if !errors.As(err, &ie) {
		t.Fatalf("expected *interpolate.Error, got %v", err)
	}
	if diff := cmp.Diff([]string{"options"}, ie.Missing); diff != "" {
		t.Fatalf("missing list mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpolate_PrimitiveStringification(t *testing.T) {
	ctx := template.Context{
		"count":   int64(42),
		"ratio":   1.5,
		"enabled": true,
	}

	got, err := interpolate.Interpolate("{count}/{ratio}/{enabled}", ctx)
	if err != nil {
		t.Fatalf("interpolate: %v", err)
	}
	if got != "42/1.5/true" {
		t.Fatalf("got %q", got)
	}
}

func TestHasInterpolation(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"plain text", false},
		{"has {one}", true},
		{"only ${runtime}", false},
		{"braces { but: noMatch }", false},
		{"{nested.path}", true},
	}
	for _, tc := range cases {
		if got := interpolate.HasInterpolation(tc.in); got != tc.want {
			t.Fatalf("HasInterpolation(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestExtractVariables(t *testing.T) {
	got := interpolate.ExtractVariables("{a} then {b.c} then {a} and ${skip}")
	if diff := cmp.Diff([]string{"a", "b.c"}, got); diff != "" {
		t.Fatalf("variables mismatch (-want +got):\n%s", diff)
	}
}

func TestDeep_PreservesShape(t *testing.T) {
	ctx := template.Context{"name": "User", "id": "user-id"}

	input := map[string]any{
		"title": "{name} service",
		"tags":  []string{"{id}", "static"},
		"nested": map[string]any{
			"path":  "libs/{id}",
			"count": 7,
		},
		"list": []any{"{name}", 1, true},
	}

	got, err := interpolate.Deep(input, ctx)
	if err != nil {
		t.Fatalf("deep: %v", err)
	}

	want := map[string]any{
		"title": "User service",
		"tags":  []string{"user-id", "static"},
		"nested": map[string]any{
			"path":  "libs/user-id",
			"count": 7,
		},
		"list": []any{"User", 1, true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("deep result mismatch (-want +got):\n%s", diff)
	}
}

func TestDeep_MergesFailuresAcrossWalk(t *testing.T) {
	ctx := template.Context{}

	_, err := interpolate.Deep(map[string]any{
		"a":    "{first}",
		"list": []any{"{second}", "{first}"},
	}, ctx)

	var ie *interpolate.Error
	if !errors.As(err, &ie) {
		t.Fatalf("expected *interpolate.Error, got %v", err)
	}
	if len(ie.Missing) != 2 {
		t.Fatalf("expected 2 missing paths, got %v", ie.Missing)
	}
	for _, name := range []string{"first", "second"} {
		found := false
		for _, missing := range ie.Missing {
			if missing == name {
				found = true
			}
		}
		if !found {
			t.Fatalf("missing list %v lacks %q", ie.Missing, name)
		}
	}
}
