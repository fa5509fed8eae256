package fragment

import "strings"

// NotFoundError reports a fragment reference the registry cannot satisfy.
type NotFoundError struct {
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return "fragment: " + e.ID + " is not registered"
}

// CycleError reports a fragment that, directly or through intermediaries,
// references itself. Stack lists the resolution chain ending with the
// repeated id.
type CycleError struct {
	Stack []string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return "fragment: cyclic reference: " + strings.Join(e.Stack, " -> ")
}
