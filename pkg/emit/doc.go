// Package emit turns typed content configs into source text, one
// emission strategy per content kind. Every emitter is pure: the same
// config and context always produce the same text, and malformed configs
// surface as diagnostics instead of panics so the compiler can aggregate
// them across a whole definition.
package emit
