package compiler

import (
	"context"
	"errors"
	"sync"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

// CompileBatch compiles a set of definitions against one context. Each
// compilation reads only its own definition and the shared read-only
// fragment registry, so the batch runs on a bounded worker pool with no
// locking around the work itself. Results come back in input order; a
// failed definition never aborts its siblings, and the returned error
// joins every per-definition failure. Cancelling the context stops
// further definitions from starting while in-flight compilations run to
// completion.
func (c *Compiler) CompileBatch(ctx context.Context, defs []template.Definition, tctx template.Context) ([]Result, error) {
	if len(defs) == 0 {
		return nil, nil
	}

	workers := c.workers
	if workers > len(defs) {
		workers = len(defs)
	}

	results := make([]Result, len(defs))
	failures := make([]error, len(defs))
	compiled := make([]bool, len(defs))

	indices := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				result, err := c.Compile(ctx, Request{Definition: defs[i], Context: tctx})
				if err != nil {
					failures[i] = err
					continue
				}
				results[i] = result
				compiled[i] = true
			}
		}()
	}

	for i := range defs {
		if ctx.Err() != nil {
			break
		}
		indices <- i
	}
	close(indices)
	wg.Wait()

	out := make([]Result, 0, len(defs))
	for i := range defs {
		if compiled[i] {
			out = append(out, results[i])
		}
	}

	errs := make([]error, 0, len(defs)+1)
	for _, err := range failures {
		if err != nil {
			errs = append(errs, err)
		}
	}
	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}

	return out, errors.Join(errs...)
}
