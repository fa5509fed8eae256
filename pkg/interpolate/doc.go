// Package interpolate resolves `{variable}` and `{nested.path}`
// placeholders against a compilation context. The resolver is a single-
// pass scanner rather than a regex so `${...}` runtime template literals
// survive verbatim on every platform, and each call owns its cursor state
// so concurrent compilations never share a matcher.
package interpolate
