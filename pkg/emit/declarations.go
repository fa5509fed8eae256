package emit

import (
	"strings"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

// interfaceDecl emits a structural interface declaration with
// readonly-by-default properties.
func (s *state) interfaceDecl(cfg *template.InterfaceConfig) string {
	if cfg == nil {
		return s.missingConfig(template.ContentKindInterface)
	}

	name := s.identifier(cfg.Name, "interface name")

	var b strings.Builder
	b.WriteString(docComment(s.interp(cfg.Doc), ""))
	b.WriteString("export interface " + name)
	if len(cfg.Extends) > 0 {
		parents := make([]string, 0, len(cfg.Extends))
		for _, parent := range cfg.Extends {
			parents = append(parents, s.interp(parent))
		}
		b.WriteString(" extends " + strings.Join(parents, ", "))
	}
	b.WriteString(" {\n")

	for _, prop := range cfg.Properties {
		if prop.Static {
			s.errorf("interface %s cannot declare static property %q", name, prop.Name)
			continue
		}
		b.WriteString(s.propertyLine(prop, indent) + "\n")
	}
	for _, method := range cfg.Methods {
		b.WriteString(docComment(s.interp(method.Doc), indent))
		methodName := s.identifier(method.Name, "method name")
		returns := s.interp(method.Returns)
		if returns == "" {
			returns = "void"
		}
		b.WriteString(indent + methodName + s.paramList(method.Params) + ": " + returns + "\n")
	}
	b.WriteString("}")

	return b.String()
}

// classDecl emits a class declaration with optional statics, extension,
// implementation lists, and method bodies.
func (s *state) classDecl(cfg *template.ClassConfig) string {
	if cfg == nil {
		return s.missingConfig(template.ContentKindClass)
	}

	name := s.identifier(cfg.Name, "class name")

	var b strings.Builder
	b.WriteString(docComment(s.interp(cfg.Doc), ""))
	b.WriteString("export class " + name)
	if cfg.Extends != "" {
		b.WriteString(" extends " + s.interp(cfg.Extends))
	}
	if len(cfg.Implements) > 0 {
		contracts := make([]string, 0, len(cfg.Implements))
		for _, contract := range cfg.Implements {
			contracts = append(contracts, s.interp(contract))
		}
		b.WriteString(" implements " + strings.Join(contracts, ", "))
	}
	b.WriteString(" {\n")

	for _, prop := range cfg.Properties {
		b.WriteString(s.propertyLine(prop, indent) + "\n")
	}

	for i, method := range cfg.Methods {
		if len(cfg.Properties) > 0 || i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(docComment(s.interp(method.Doc), indent))
		methodName := s.identifier(method.Name, "method name")
		b.WriteString(indent)
		if method.Static {
			b.WriteString("static ")
		}
		b.WriteString(methodName + s.paramList(method.Params))
		if returns := s.interp(method.Returns); returns != "" {
			b.WriteString(": " + returns)
		}
		b.WriteString(" {\n")
		for _, line := range method.Body {
			b.WriteString(indent + indent + s.interp(line) + "\n")
		}
		b.WriteString(indent + "}\n")
	}
	b.WriteString("}")

	return b.String()
}

// constantDecl emits an exported constant binding. The value is emitted
// verbatim after interpolation, quoting included, so authors control the
// literal form.
func (s *state) constantDecl(cfg *template.ConstantConfig) string {
	if cfg == nil {
		return s.missingConfig(template.ContentKindConstant)
	}

	name := s.identifier(cfg.Name, "constant name")
	value := s.nonEmpty(cfg.Value, "constant "+name+" value")

	var b strings.Builder
	b.WriteString(docComment(s.interp(cfg.Doc), ""))
	b.WriteString("export const " + name)
	if cfg.Type != "" {
		b.WriteString(": " + s.interp(cfg.Type))
	}
	b.WriteString(" = " + value)

	return b.String()
}
