package emit

import (
	"strings"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

// schema emits a Schema.Struct validation definition. Optional fields
// wrap in Schema.optional; a brand name pipes the struct through
// Schema.brand so the resulting type is nominally distinct.
func (s *state) schema(cfg *template.SchemaConfig) string {
	if cfg == nil {
		return s.missingConfig(template.ContentKindSchema)
	}

	name := s.identifier(cfg.Name, "schema name")
	if len(cfg.Fields) == 0 {
		s.errorf("schema %s declares no fields", name)
	}

	var b strings.Builder
	b.WriteString(docComment(s.interp(cfg.Doc), ""))
	b.WriteString("export const " + name + " = " + s.structExpr(cfg.Fields, ""))
	if cfg.Brand != "" {
		b.WriteString(".pipe(Schema.brand(\"" + s.interp(cfg.Brand) + "\"))")
	}

	return b.String()
}

// structExpr renders Schema.Struct({...}) at the given indentation.
func (s *state) structExpr(fields []template.SchemaField, prefix string) string {
	var b strings.Builder
	b.WriteString("Schema.Struct({\n")
	for _, field := range fields {
		fieldName := s.identifier(field.Name, "schema field name")
		expr := s.schemaFieldExpr(field, prefix+indent)
		if field.Optional {
			expr = "Schema.optional(" + expr + ")"
		}
		b.WriteString(prefix + indent + fieldName + ": " + expr + ",\n")
	}
	b.WriteString(prefix + "})")
	return b.String()
}

// schemaFieldExpr renders the expression for one field, recursing through
// struct members and array items.
func (s *state) schemaFieldExpr(field template.SchemaField, prefix string) string {
	if field.Reference != "" {
		return s.interp(field.Reference)
	}

	switch field.Type {
	case template.SchemaFieldString:
		return "Schema.String"
	case template.SchemaFieldNumber:
		return "Schema.Number"
	case template.SchemaFieldBoolean:
		return "Schema.Boolean"
	case template.SchemaFieldStruct:
		if len(field.Fields) == 0 {
			s.errorf("struct field %q declares no members", field.Name)
			return "Schema.Struct({})"
		}
		return s.structExpr(field.Fields, prefix)
	case template.SchemaFieldArray:
		if field.Items == nil {
			s.errorf("array field %q declares no item schema", field.Name)
			return "Schema.Array(Schema.Unknown)"
		}
		item := *field.Items
		expr := s.schemaFieldExpr(item, prefix)
		if item.Optional {
			expr = "Schema.optional(" + expr + ")"
		}
		return "Schema.Array(" + expr + ")"
	default:
		s.errorf("schema field %q has unknown type %q", field.Name, string(field.Type))
		return "Schema.Unknown"
	}
}
