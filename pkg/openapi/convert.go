package openapi

import (
	"sort"
	"strings"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

// AccessExtension is the vendor extension naming an operation's route
// classification. Absent the extension, GET operations default to public
// and mutations to protected.
const AccessExtension = "x-access"

// Content converts parsed operations into template content nodes: one
// schema definition per named request body followed by one rpcDefinition
// per operation. Operations are ordered by id so the emitted module is
// stable across runs.
func Content(operations map[string]Operation) []template.ContentDefinition {
	ids := make([]string, 0, len(operations))
	for id := range operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []template.ContentDefinition
	for _, id := range ids {
		op := operations[id]
		schemaName := ""
		if !op.RequestBody.Empty() && len(op.RequestBody.Properties) > 0 {
			schemaName = payloadSchemaName(id)
			out = append(out, template.ContentDefinition{
				Kind: template.ContentKindSchema,
				Schema: &template.SchemaConfig{
					Name:   schemaName,
					Doc:    op.Summary,
					Fields: schemaFields(op.RequestBody),
				},
			})
		}
		out = append(out, template.ContentDefinition{
			Kind: template.ContentKindRPC,
			RPC:  rpcConfig(op, schemaName),
		})
	}
	return out
}

// Definition wraps the converted content in a complete template
// definition so an OpenAPI document can drive a whole generated file.
func Definition(id string, operations map[string]Operation) template.Definition {
	return template.Definition{
		ID: id,
		Meta: template.Metadata{
			Title:       "{className} RPC Module",
			Description: "Remote operations imported from an API document.",
			Path:        "src/lib/{fileName}.rpc.ts",
		},
		Imports: []template.ImportDefinition{
			{Source: "effect", Items: []string{"Schema"}},
			{Source: "@effect/rpc", Items: []string{"Rpc"}},
		},
		Sections: []template.SectionDefinition{
			{Title: "Remote operations", Contents: Content(operations)},
		},
	}
}

func rpcConfig(op Operation, schemaName string) *template.RPCConfig {
	cfg := &template.RPCConfig{
		Name:    identifierFrom(op.ID),
		Route:   routeFor(op),
		Doc:     op.Summary,
		Success: successFor(op),
	}
	switch {
	case schemaName != "":
		cfg.Payload = &template.PayloadShape{Reference: schemaName}
	default:
		cfg.Payload = &template.PayloadShape{Void: true}
	}
	return cfg
}

func routeFor(op Operation) template.RouteAccess {
	if raw, ok := op.Extensions[AccessExtension]; ok {
		if value, ok := raw.(string); ok {
			switch template.RouteAccess(value) {
			case template.RoutePublic, template.RouteProtected, template.RouteAdmin:
				return template.RouteAccess(value)
			}
		}
	}
	if strings.EqualFold(op.Method, "GET") {
		return template.RoutePublic
	}
	return template.RouteProtected
}

func successFor(op Operation) string {
	for _, code := range []string{"200", "201"} {
		if schema, ok := op.Responses[code]; ok && schema.Ref != "" {
			return refName(schema.Ref)
		}
	}
	return "Schema.Unknown"
}

func schemaFields(schema Schema) []template.SchemaField {
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]template.SchemaField, 0, len(names))
	for _, name := range names {
		fields = append(fields, schemaField(name, schema.Properties[name], !required[name]))
	}
	return fields
}

func schemaField(name string, schema Schema, optional bool) template.SchemaField {
	field := template.SchemaField{Name: name, Optional: optional}

	if schema.Ref != "" {
		field.Reference = refName(schema.Ref)
		return field
	}

	switch schema.Type {
	case "integer", "number":
		field.Type = template.SchemaFieldNumber
	case "boolean":
		field.Type = template.SchemaFieldBoolean
	case "array":
		field.Type = template.SchemaFieldArray
		if schema.Items != nil {
			item := schemaField("", *schema.Items, false)
			field.Items = &item
		}
	case "object":
		field.Type = template.SchemaFieldStruct
		field.Fields = schemaFields(schema)
	default:
		field.Type = template.SchemaFieldString
	}
	return field
}

// refName extracts the terminal component of a $ref pointer and appends
// the schema suffix convention, e.g. "#/components/schemas/User" becomes
// "UserSchema".
func refName(ref string) string {
	parts := strings.Split(ref, "/")
	name := parts[len(parts)-1]
	if name == "" {
		return "Schema.Unknown"
	}
	if !strings.HasSuffix(name, "Schema") {
		name += "Schema"
	}
	return name
}

// payloadSchemaName derives the request schema constant for an operation
// id, e.g. "createUser" becomes "CreateUserPayloadSchema".
func payloadSchemaName(operationID string) string {
	name := identifierFrom(operationID)
	if name == "" {
		return "PayloadSchema"
	}
	return strings.ToUpper(name[:1]) + name[1:] + "PayloadSchema"
}

// identifierFrom strips the characters an operation id may carry (path
// separators from synthesised ids, dashes) down to a legal identifier.
func identifierFrom(raw string) string {
	var b strings.Builder
	upperNext := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			if upperNext && c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			b.WriteByte(c)
			upperNext = false
		case c >= '0' && c <= '9' && b.Len() > 0:
			b.WriteByte(c)
			upperNext = false
		default:
			upperNext = b.Len() > 0
		}
	}
	return b.String()
}
