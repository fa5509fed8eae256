package interpolate

import "strings"

// Error reports every placeholder a single call failed to resolve, so one
// attempt surfaces the complete set of missing context keys instead of
// the first one found.
type Error struct {
	Missing []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Missing) == 0 {
		return "interpolate: unresolved placeholders"
	}
	return "interpolate: unresolved placeholders: " + strings.Join(e.Missing, ", ")
}

// merge folds another error's missing list into the receiver, keeping
// first-seen order and dropping duplicates.
func (e *Error) merge(other *Error) {
	if other == nil {
		return
	}
	for _, name := range other.Missing {
		if !containsString(e.Missing, name) {
			e.Missing = append(e.Missing, name)
		}
	}
}

func containsString(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}
