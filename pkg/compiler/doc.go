// Package compiler orchestrates template compilation: it resolves the
// active import set, assembles conditioned sections, dispatches content
// nodes to their emitters with fragments resolved through the shared
// registry, interpolates header metadata, and concatenates the result
// with stable whitespace rules. Failures aggregate into one
// CompilationError per attempt instead of surfacing only the first
// problem.
package compiler
