// Package fragment holds the lookup table from fragment id to reusable,
// parameterizable sub-template. Registration happens before compilation;
// afterwards the registry is read-only and safe to share across
// concurrent compilations. Resolution tracks the per-compilation fragment
// stack so reference cycles surface as diagnostics.
package fragment
