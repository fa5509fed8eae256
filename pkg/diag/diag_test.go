package diag_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/diag"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/fragment"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/interpolate"
)

func TestDiagnostic_String(t *testing.T) {
	cases := []struct {
		d    diag.Diagnostic
		want string
	}{
		{diag.Errorf("boom"), "error: boom"},
		{diag.Warningf("careful"), "warning: careful"},
		{diag.Diagnostic{Severity: diag.SeverityError, Message: "bad", Line: 4}, "4: error: bad"},
		{diag.Diagnostic{Severity: diag.SeverityError, Message: "bad", Line: 4, Column: 9}, "4:9: error: bad"},
	}
	for _, tc := range cases {
		if got := tc.d.String(); got != tc.want {
			t.Fatalf("got %q, want %q", got, tc.want)
		}
	}
}

func TestFromError_ExpandsInterpolation(t *testing.T) {
	err := &interpolate.Error{Missing: []string{"className", "options.retries"}}

	got := diag.FromError(err)
	want := []diag.Diagnostic{
		diag.Errorf("unresolved placeholder {className}"),
		diag.Errorf("unresolved placeholder {options.retries}"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestFromError_FragmentFailures(t *testing.T) {
	got := diag.FromError(&fragment.NotFoundError{ID: "header"})
	if len(got) != 1 || got[0].Message != `fragment "header" is not registered` {
		t.Fatalf("got %v", got)
	}

	got = diag.FromError(&fragment.CycleError{Stack: []string{"a", "b", "a"}})
	if len(got) != 1 || got[0].Message != "cyclic fragment reference: a -> b -> a" {
		t.Fatalf("got %v", got)
	}
}

func TestFromError_Fallback(t *testing.T) {
	got := diag.FromError(errors.New("plain failure"))
	if len(got) != 1 || got[0].Message != "plain failure" {
		t.Fatalf("got %v", got)
	}
	if diag.FromError(nil) != nil {
		t.Fatalf("nil error should produce no diagnostics")
	}
}

func TestCompilationError(t *testing.T) {
	ce := &diag.CompilationError{
		TemplateID: "feature",
		Diagnostics: []diag.Diagnostic{
			diag.Errorf("first"),
			diag.Warningf("second"),
			diag.Errorf("third"),
		},
	}

	if got := ce.Error(); got != "compile feature: 2 error(s)" {
		t.Fatalf("got %q", got)
	}
	if !ce.HasErrors() {
		t.Fatalf("expected HasErrors")
	}
	if diff := cmp.Diff([]string{"error: first", "warning: second", "error: third"}, ce.Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}

	warningsOnly := &diag.CompilationError{Diagnostics: []diag.Diagnostic{diag.Warningf("meh")}}
	if warningsOnly.HasErrors() {
		t.Fatalf("warnings alone are not errors")
	}
}
