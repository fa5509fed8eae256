package ir

import "strings"

// Context is the variable-binding input for a single compilation: naming
// variants, option flags, and any nested values a definition wants to
// interpolate. The engine never mutates a context; derived views (such as
// fragment param overlays) always copy.
type Context map[string]any

// Lookup walks a dotted path segment by segment. It reports false when a
// segment is missing, traverses a nil value, or the path is empty.
func (c Context) Lookup(path string) (any, bool) {
	if len(c) == 0 {
		return nil, false
	}
	segments := strings.Split(path, ".")
	var current any = map[string]any(c)
	for _, segment := range segments {
		if segment == "" {
			return nil, false
		}
		node, ok := current.(map[string]any)
		if !ok {
			if ctx, isCtx := current.(Context); isCtx {
				node = map[string]any(ctx)
			} else {
				return nil, false
			}
		}
		value, ok := node[segment]
		if !ok || value == nil {
			return nil, false
		}
		current = value
	}
	return current, true
}

// Flag reports whether the named context value is a true boolean. Any
// missing, non-boolean, or false value reads as false, which is what
// makes conditional sections fail closed.
func (c Context) Flag(name string) bool {
	value, ok := c.Lookup(name)
	if !ok {
		return false
	}
	b, ok := value.(bool)
	return ok && b
}

// Overlay returns a copy of the context with extra bindings applied on
// top. Overlay keys shadow existing keys; the receiver is left untouched.
func (c Context) Overlay(extra map[string]any) Context {
	merged := make(Context, len(c)+len(extra))
	for k, v := range c {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
