// Package diag defines the value-type diagnostics the engine reports.
// Nothing in the engine throws: emitters and resolvers return their
// failures, and the compiler folds them all into one CompilationError per
// attempt so callers see the complete list of problems in a single round
// trip.
package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/fragment"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/interpolate"
)

// Severity classifies a single diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is one reported problem. Line and Column are 1-based and
// zero when the problem is file-level.
type Diagnostic struct {
	Severity Severity
	Message  string
	Line     int
	Column   int
}

// String renders the diagnostic for logs and CLI output.
func (d Diagnostic) String() string {
	location := ""
	if d.Line > 0 {
		location = fmt.Sprintf("%d", d.Line)
		if d.Column > 0 {
			location += fmt.Sprintf(":%d", d.Column)
		}
		location += ": "
	}
	return location + string(d.Severity) + ": " + d.Message
}

// Errorf builds an error-severity diagnostic.
func Errorf(format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityError, Message: fmt.Sprintf(format, args...)}
}

// Warningf builds a warning-severity diagnostic.
func Warningf(format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}

// FromError expands a returned engine error into diagnostics. Unresolved
// interpolations contribute one diagnostic per missing placeholder;
// fragment lookup and cycle failures keep their identifying detail; any
// other error becomes a single error diagnostic.
func FromError(err error) []Diagnostic {
	if err == nil {
		return nil
	}

	var ie *interpolate.Error
	if errors.As(err, &ie) {
		out := make([]Diagnostic, 0, len(ie.Missing))
		for _, name := range ie.Missing {
			out = append(out, Errorf("unresolved placeholder {%s}", name))
		}
		return out
	}

	var nf *fragment.NotFoundError
	if errors.As(err, &nf) {
		return []Diagnostic{Errorf("fragment %q is not registered", nf.ID)}
	}

	var cycle *fragment.CycleError
	if errors.As(err, &cycle) {
		return []Diagnostic{Errorf("cyclic fragment reference: %s", strings.Join(cycle.Stack, " -> "))}
	}

	return []Diagnostic{Errorf("%v", err)}
}

// CompilationError aggregates every diagnostic produced by one compile
// attempt for one definition.
type CompilationError struct {
	TemplateID  string
	Diagnostics []Diagnostic
}

// Error implements the error interface with a short summary; callers
// needing detail iterate Diagnostics.
func (e *CompilationError) Error() string {
	count := 0
	for _, d := range e.Diagnostics {
		if d.Severity == SeverityError {
			count++
		}
	}
	return fmt.Sprintf("compile %s: %d error(s)", e.TemplateID, count)
}

// HasErrors reports whether any diagnostic carries error severity.
// Warning-only compilations still succeed.
func (e *CompilationError) HasErrors() bool {
	for _, d := range e.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Messages returns the rendered diagnostics, one line each.
func (e *CompilationError) Messages() []string {
	out := make([]string, 0, len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		out = append(out, d.String())
	}
	return out
}
