package fragment_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/fragment"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

func rawFragment(id string) fragment.Fragment {
	return fragment.Fragment{
		ID:       id,
		Contents: []template.ContentDefinition{template.RawContent("// " + id)},
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := fragment.NewRegistry()

	if err := r.Register(rawFragment("header")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if !r.Has("header") {
		t.Fatalf("expected header to be registered")
	}

	f, err := r.Get("header")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if f.ID != "header" {
		t.Fatalf("got fragment %q", f.ID)
	}
}

func TestRegistry_DuplicateIDRejected(t *testing.T) {
	r := fragment.NewRegistry()

	if err := r.Register(rawFragment("dup")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register(rawFragment("dup")); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}

func TestRegistry_ValidateRejectsEmptyFragment(t *testing.T) {
	r := fragment.NewRegistry()

	if err := r.Register(fragment.Fragment{ID: "empty"}); err == nil {
		t.Fatalf("expected fragment without contents to fail validation")
	}
	if err := r.Register(fragment.Fragment{Contents: rawFragment("x").Contents}); err == nil {
		t.Fatalf("expected fragment without id to fail validation")
	}
}

func TestRegistry_GetMissingIsNotFound(t *testing.T) {
	r := fragment.NewRegistry()

	_, err := r.Get("ghost")
	var nf *fragment.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
	if nf.ID != "ghost" {
		t.Fatalf("got id %q", nf.ID)
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	r := fragment.NewRegistry()
	for _, id := range []string{"zebra", "alpha", "mid"} {
		r.MustRegister(rawFragment(id))
	}

	if diff := cmp.Diff([]string{"alpha", "mid", "zebra"}, r.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestResolution_DetectsDirectCycle(t *testing.T) {
	r := fragment.NewRegistry()
	r.MustRegister(rawFragment("self"))

	res := r.Resolver()
	if _, err := res.Enter("self"); err != nil {
		t.Fatalf("first enter: %v", err)
	}

	_, err := res.Enter("self")
	var ce *fragment.CycleError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CycleError, got %v", err)
	}
	if diff := cmp.Diff([]string{"self", "self"}, ce.Stack); diff != "" {
		t.Fatalf("cycle stack mismatch (-want +got):\n%s", diff)
	}
}

func TestResolution_DetectsIndirectCycle(t *testing.T) {
	r := fragment.NewRegistry()
	for _, id := range []string{"a", "b", "c"} {
		r.MustRegister(rawFragment(id))
	}

	res := r.Resolver()
	for _, id := range []string{"a", "b", "c"} {
		if _, err := res.Enter(id); err != nil {
			t.Fatalf("enter %s: %v", id, err)
		}
	}

	_, err := res.Enter("a")
	var ce *fragment.CycleError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CycleError, got %v", err)
	}
	want := "fragment: cyclic reference: a -> b -> c -> a"
	if ce.Error() != want {
		t.Fatalf("got %q, want %q", ce.Error(), want)
	}
}

func TestResolution_LeaveAllowsReuseAsSibling(t *testing.T) {
	r := fragment.NewRegistry()
	r.MustRegister(rawFragment("shared"))

	res := r.Resolver()
	if _, err := res.Enter("shared"); err != nil {
		t.Fatalf("first enter: %v", err)
	}
	res.Leave()

	if _, err := res.Enter("shared"); err != nil {
		t.Fatalf("sibling reuse should succeed, got %v", err)
	}
	if res.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", res.Depth())
	}
}

func TestBuiltin_FragmentsPresent(t *testing.T) {
	r := fragment.Builtin()

	for _, id := range []string{"identifier-constant", "not-implemented"} {
		if !r.Has(id) {
			t.Fatalf("builtin registry missing %q", id)
		}
	}

	f, err := r.Get("identifier-constant")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if diff := cmp.Diff([]string{"constName", "constValue"}, f.Params); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}
