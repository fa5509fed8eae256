package emit

import (
	"strings"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

const indent = "  "

// docComment renders a JSDoc block for the given text at the given
// indentation. Empty docs render nothing.
func docComment(doc, prefix string) string {
	if doc == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(prefix + "/**\n")
	for _, line := range strings.Split(doc, "\n") {
		b.WriteString(prefix + " * " + line + "\n")
	}
	b.WriteString(prefix + " */\n")
	return b.String()
}

// paramList renders `(a: string, b?: number)` parameter lists.
func (s *state) paramList(params []template.ParamDefinition) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		name := s.identifier(p.Name, "parameter name")
		typ := s.interp(p.Type)
		marker := ""
		if p.Optional {
			marker = "?"
		}
		parts = append(parts, name+marker+": "+typ)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// propertyLine renders one readonly-by-default property declaration.
func (s *state) propertyLine(f template.FieldDefinition, prefix string) string {
	var b strings.Builder
	b.WriteString(docComment(s.interp(f.Doc), prefix))
	b.WriteString(prefix)
	if f.Static {
		b.WriteString("static ")
	}
	if !f.Mutable {
		b.WriteString("readonly ")
	}
	b.WriteString(s.identifier(f.Name, "property name"))
	if f.Optional {
		b.WriteString("?")
	}
	if f.Type != "" {
		b.WriteString(": " + s.interp(f.Type))
	}
	if f.Value != "" {
		b.WriteString(" = " + s.interp(f.Value))
	}
	return b.String()
}

// indentLines prefixes every line of text, preserving blank lines.
func indentLines(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
