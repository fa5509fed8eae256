package naming_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/naming"
)

func TestDerive_InputForms(t *testing.T) {
	opts := naming.Options{Scope: "acme", LibraryType: "feature"}

	for _, domain := range []string{"user profile", "user-profile", "user_profile", "userProfile", "UserProfile"} {
		got, err := naming.Derive(domain, opts)
		if err != nil {
			t.Fatalf("derive %q: %v", domain, err)
		}

		want := naming.Variants{
			ClassName:    "UserProfile",
			FileName:     "user-profile",
			PropertyName: "userProfile",
			ConstantName: "USER_PROFILE",
			Scope:        "acme",
			PackageName:  "user-profile-feature",
			ProjectName:  "acme",
			LibraryType:  "feature",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("derive %q mismatch (-want +got):\n%s", domain, diff)
		}
	}
}

func TestDerive_Defaults(t *testing.T) {
	got, err := naming.Derive("billing", naming.Options{Scope: "acme"})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if got.LibraryType != "lib" || got.PackageName != "billing-lib" {
		t.Fatalf("library type default not applied: %+v", got)
	}
	if got.ProjectName != "acme" {
		t.Fatalf("project name should fall back to the scope: %+v", got)
	}
}

func TestDerive_EmptyDomainRejected(t *testing.T) {
	if _, err := naming.Derive("   ", naming.Options{}); err == nil {
		t.Fatalf("expected error for blank domain")
	}
}

func TestDerive_AcronymRuns(t *testing.T) {
	got, err := naming.Derive("HTTPServer", naming.Options{})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if got.FileName != "httpserver" {
		t.Fatalf("uppercase runs stay one word, got %q", got.FileName)
	}
}

func TestVariants_Context(t *testing.T) {
	variants, err := naming.Derive("user profile", naming.Options{Scope: "acme", LibraryType: "feature"})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}

	ctx := variants.Context(
		map[string]bool{"includeCQRS": true, "className": true},
		map[string]any{"extra": "kept", "fileName": "clobbered"},
	)

	if ctx["className"] != "UserProfile" {
		t.Fatalf("naming keys must win over flags: %v", ctx["className"])
	}
	if ctx["fileName"] != "user-profile" {
		t.Fatalf("naming keys must win over extras: %v", ctx["fileName"])
	}
	if ctx["includeCQRS"] != true {
		t.Fatalf("flags missing from context: %v", ctx)
	}
	if ctx["extra"] != "kept" {
		t.Fatalf("extras missing from context: %v", ctx)
	}
}
