package interpolate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

// Interpolate replaces `{variable}` and `{nested.path}` placeholders in
// text with values from the context. `${...}` sequences are runtime
// template literals in the emitted language and pass through untouched.
// Text that merely looks brace-delimited without matching the placeholder
// grammar (object literals, JSX, and so on) is also left verbatim.
//
// Resolution fails closed: every placeholder the context cannot satisfy
// is collected and reported in a single *Error.
func Interpolate(text string, ctx template.Context) (string, error) {
	if !strings.ContainsRune(text, '{') {
		return text, nil
	}

	var out strings.Builder
	out.Grow(len(text))
	failure := &Error{}

	walkPlaceholders(text, func(literal string) {
		out.WriteString(literal)
	}, func(path string) {
		value, ok := resolve(ctx, path)
		if !ok {
			failure.merge(&Error{Missing: []string{path}})
			return
		}
		out.WriteString(value)
	})

	if len(failure.Missing) > 0 {
		return "", failure
	}
	return out.String(), nil
}

// HasInterpolation reports whether text contains at least one placeholder
// matching the grammar. It is a cheap existence check that performs no
// resolution.
func HasInterpolation(text string) bool {
	found := false
	walkPlaceholders(text, func(string) {}, func(string) { found = true })
	return found
}

// ExtractVariables returns the ordered, de-duplicated list of placeholder
// paths appearing in text. Tooling uses this to list the variables a
// template needs without running a full compile.
func ExtractVariables(text string) []string {
	var names []string
	walkPlaceholders(text, func(string) {}, func(path string) {
		if !containsString(names, path) {
			names = append(names, path)
		}
	})
	return names
}

// walkPlaceholders scans text exactly once, invoking literal for verbatim
// runs and placeholder for each `{path}` that matches the grammar. A `$`
// immediately before `{` marks a runtime template literal, checked by
// one-character lookback instead of lookbehind regex so the scanner works
// the same everywhere and carries no shared matcher state.
func walkPlaceholders(text string, literal func(string), placeholder func(string)) {
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}
		if i > 0 && text[i-1] == '$' {
			continue
		}
		path, end, ok := scanPath(text, i+1)
		if !ok {
			continue
		}
		if start < i {
			literal(text[start:i])
		}
		placeholder(path)
		start = end + 1
		i = end
	}
	if start < len(text) {
		literal(text[start:])
	}
}

// scanPath reads identifier(.identifier)* starting at from and requires a
// closing brace. It returns the dotted path and the index of the brace.
func scanPath(text string, from int) (string, int, bool) {
	i := from
	for {
		segStart := i
		if i >= len(text) || !isIdentStart(text[i]) {
			return "", 0, false
		}
		i++
		for i < len(text) && isIdentPart(text[i]) {
			i++
		}
		if segStart == i {
			return "", 0, false
		}
		if i < len(text) && text[i] == '.' {
			i++
			continue
		}
		break
	}
	if i >= len(text) || text[i] != '}' {
		return "", 0, false
	}
	return text[from:i], i, true
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// resolve walks the dotted path through the context and stringifies the
// leaf. Only primitive leaves are valid substitutions; resolving to an
// object or array is unresolved by policy.
func resolve(ctx template.Context, path string) (string, bool) {
	value, ok := ctx.Lookup(path)
	if !ok {
		return "", false
	}
	return stringify(value)
}

func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}
