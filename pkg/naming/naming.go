// Package naming derives the naming variants a compilation context
// requires from a single domain name. The split/casing rules accept
// kebab-case, snake_case, camelCase, and space-separated input so callers
// can pass whatever a human typed.
package naming

import (
	"errors"
	"strings"
	"unicode"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

// Variants holds every naming form a template definition may reference.
type Variants struct {
	ClassName    string
	FileName     string
	PropertyName string
	ConstantName string
	Scope        string
	PackageName  string
	ProjectName  string
	LibraryType  string
}

// Options carries the non-derived inputs for building variants.
type Options struct {
	// Scope is the package scope without the leading "@", e.g. "acme".
	Scope string
	// ProjectName defaults to the scope when empty.
	ProjectName string
	// LibraryType names the definition set in use, e.g. "feature".
	LibraryType string
}

// Derive computes all naming variants from a domain name such as
// "user profile", "user-profile", or "userProfile".
func Derive(domain string, opts Options) (Variants, error) {
	words := splitWords(domain)
	if len(words) == 0 {
		return Variants{}, errors.New("naming: domain name is required")
	}

	fileName := strings.Join(words, "-")
	projectName := opts.ProjectName
	if projectName == "" {
		projectName = opts.Scope
	}

	return Variants{
		ClassName:    pascalCase(words),
		FileName:     fileName,
		PropertyName: camelCase(words),
		ConstantName: constantCase(words),
		Scope:        opts.Scope,
		PackageName:  fileName + "-" + defaultString(opts.LibraryType, "lib"),
		ProjectName:  projectName,
		LibraryType:  defaultString(opts.LibraryType, "lib"),
	}, nil
}

// Context builds a compilation context from the variants, the caller's
// option flags, and any extra bindings. Flags and extras never overwrite
// the naming keys; definitions rely on those being exactly the derived
// values.
func (v Variants) Context(flags map[string]bool, extra map[string]any) template.Context {
	ctx := make(template.Context, 8+len(flags)+len(extra))
	for key, value := range extra {
		ctx[key] = value
	}
	for name, value := range flags {
		ctx[name] = value
	}
	ctx["className"] = v.ClassName
	ctx["fileName"] = v.FileName
	ctx["propertyName"] = v.PropertyName
	ctx["constantName"] = v.ConstantName
	ctx["scope"] = v.Scope
	ctx["packageName"] = v.PackageName
	ctx["projectName"] = v.ProjectName
	ctx["libraryType"] = v.LibraryType
	return ctx
}

// splitWords lowercases and splits a name on delimiters and camelCase
// boundaries.
func splitWords(name string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(strings.TrimSpace(name))
	for i, r := range runes {
		switch {
		case r == '-' || r == '_' || r == ' ' || r == '/' || r == '.':
			flush()
		case unicode.IsUpper(r):
			if i > 0 && !unicode.IsUpper(runes[i-1]) {
				flush()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return words
}

func pascalCase(words []string) string {
	var b strings.Builder
	for _, word := range words {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

func camelCase(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return words[0] + pascalCase(words[1:])
}

func constantCase(words []string) string {
	upper := make([]string, len(words))
	for i, word := range words {
		upper[i] = strings.ToUpper(word)
	}
	return strings.Join(upper, "_")
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
