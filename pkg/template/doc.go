// Package template exposes the definition IR consumed by the compiler:
// the per-file Definition structure, the closed ContentDefinition union,
// the Context binding type, and loaders for definitions authored as YAML
// data. The concrete types live in internal/ir; this package re-exports
// them so external callers never import internal paths.
package template
