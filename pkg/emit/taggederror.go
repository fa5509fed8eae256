package emit

import (
	"strings"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

// taggedError emits a Data.TaggedError class. Every field is emitted
// readonly regardless of how the config declared it; error payloads are
// immutable by contract. Optional fields keep their `?` marker.
func (s *state) taggedError(cfg *template.TaggedErrorConfig) string {
	if cfg == nil {
		return s.missingConfig(template.ContentKindTaggedError)
	}

	name := s.identifier(cfg.Name, "error class name")
	tag := s.interp(cfg.Tag)
	if tag == "" {
		tag = name
	}

	var b strings.Builder
	b.WriteString(docComment(s.interp(cfg.Doc), ""))
	b.WriteString("export class " + name + " extends Data.TaggedError(\"" + tag + "\")<{")
	if len(cfg.Fields) > 0 {
		b.WriteString("\n")
		for _, field := range cfg.Fields {
			b.WriteString(docComment(s.interp(field.Doc), indent))
			fieldName := s.identifier(field.Name, "error field name")
			marker := ""
			if field.Optional {
				marker = "?"
			}
			fieldType := s.interp(field.Type)
			if fieldType == "" {
				fieldType = "string"
			}
			b.WriteString(indent + "readonly " + fieldName + marker + ": " + fieldType + "\n")
		}
	}
	b.WriteString("}> {}")

	return b.String()
}
