// Package openapi lets schema and rpcDefinition content be imported from
// an OpenAPI document instead of authored by hand. It exposes the
// Source/Document wrappers and the Loader/Parser contracts; the
// kin-openapi-backed implementations live under internal/openapi. The
// conversion in this package turns parsed operations into content nodes
// the compiler emits like any authored definition.
package openapi
