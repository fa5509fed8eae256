package fragment

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

// Fragment is a reusable, parameterizable sub-template: its content nodes
// are emitted with the call's params overlaid on the compilation context.
// Params lists the parameter names the fragment expects; callers must
// supply each one.
type Fragment struct {
	ID          string
	Description string
	Params      []string
	Contents    []template.ContentDefinition
}

// Validate checks the fragment can be registered.
func (f Fragment) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("fragment: id is required")
	}
	if len(f.Contents) == 0 {
		return fmt.Errorf("fragment: %s declares no contents", f.ID)
	}
	for _, content := range f.Contents {
		if err := content.Validate(); err != nil {
			return fmt.Errorf("fragment: %s: %w", f.ID, err)
		}
	}
	return nil
}

// Registry stores fragments by id, providing discovery and duplication
// safeguards. It must be fully populated before compilation begins and is
// safe for concurrent read-only use afterwards.
type Registry struct {
	mu        sync.RWMutex
	fragments map[string]Fragment
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		fragments: make(map[string]Fragment),
	}
}

// Register adds a fragment by its ID. Duplicate ids return an error.
func (r *Registry) Register(f Fragment) error {
	if err := f.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.fragments[f.ID]; exists {
		return fmt.Errorf("fragment: %q already registered", f.ID)
	}

	r.fragments[f.ID] = f
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(f Fragment) {
	if err := r.Register(f); err != nil {
		panic(err)
	}
}

// Get retrieves a fragment by id. Missing ids yield a *NotFoundError so
// callers can aggregate the failure alongside other diagnostics.
func (r *Registry) Get(id string) (Fragment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.fragments[id]
	if !ok {
		return Fragment{}, &NotFoundError{ID: id}
	}
	return f, nil
}

// List returns a sorted list of registered fragment ids.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.fragments))
	for id := range r.fragments {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Has reports whether a fragment is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.fragments[id]
	return ok
}

// Resolution tracks the fragment chain of one emission pass so reference
// cycles fail with a diagnostic instead of recursing until the stack
// exhausts. A Resolution belongs to a single compilation and is not safe
// for concurrent use; each compilation creates its own.
type Resolution struct {
	registry *Registry
	stack    []string
}

// Resolver starts a resolution pass against the registry.
func (r *Registry) Resolver() *Resolution {
	return &Resolution{registry: r}
}

// Enter resolves a fragment id and pushes it onto the resolution stack.
// Re-entering an id already on the stack yields a *CycleError. Callers
// must pair every successful Enter with Leave.
func (res *Resolution) Enter(id string) (Fragment, error) {
	for _, active := range res.stack {
		if active == id {
			cycle := append(append([]string(nil), res.stack...), id)
			return Fragment{}, &CycleError{Stack: cycle}
		}
	}

	f, err := res.registry.Get(id)
	if err != nil {
		return Fragment{}, err
	}

	res.stack = append(res.stack, id)
	return f, nil
}

// Leave pops the most recent fragment off the resolution stack.
func (res *Resolution) Leave() {
	if len(res.stack) > 0 {
		res.stack = res.stack[:len(res.stack)-1]
	}
}

// Depth returns the current nesting depth, useful for tests.
func (res *Resolution) Depth() int {
	return len(res.stack)
}
