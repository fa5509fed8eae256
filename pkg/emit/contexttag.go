package emit

import (
	"strings"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/diag"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

// contextTag emits a Context.Tag service class: the tag identifier, the
// service's method signatures, and one static member per environment
// layer. Layers always come out in the canonical Live, Test, Dev, Auto
// order no matter how the config declares them; downstream convention
// checks depend on that order, so it is enforced here by construction.
func (s *state) contextTag(cfg *template.ContextTagConfig) string {
	if cfg == nil {
		return s.missingConfig(template.ContentKindContextTag)
	}

	name := s.identifier(cfg.Name, "service name")
	identifier := s.nonEmpty(cfg.Identifier, "tag identifier")

	var b strings.Builder
	b.WriteString(docComment(s.interp(cfg.Doc), ""))
	b.WriteString("export class " + name + " extends Context.Tag(\"" + identifier + "\")<\n")
	b.WriteString(indent + name + ",\n")
	b.WriteString(indent + "{\n")
	for _, method := range cfg.Methods {
		b.WriteString(docComment(s.interp(method.Doc), indent+indent))
		methodName := s.identifier(method.Name, "method name")
		returns := s.interp(method.Returns)
		if returns == "" {
			returns = "Effect.Effect<void>"
		}
		b.WriteString(indent + indent + "readonly " + methodName + ": " + s.paramList(method.Params) + " => " + returns + "\n")
	}
	b.WriteString(indent + "}\n")
	b.WriteString(">() {")

	layers := s.canonicalLayers(cfg.Layers)
	if len(layers) > 0 {
		b.WriteString("\n")
		for _, layer := range layers {
			b.WriteString(docComment(s.interp(layer.Doc), indent))
			value := s.nonEmpty(layer.Value, "layer "+string(layer.Kind))
			b.WriteString(indent + "static readonly " + string(layer.Kind) + " = " + value + "\n")
		}
	}
	b.WriteString("}")

	return b.String()
}

// canonicalLayers reorders declared layers into the fixed Live, Test,
// Dev, Auto sequence. Duplicate declarations keep the first occurrence
// and warn; kinds outside the closed set are errors.
func (s *state) canonicalLayers(declared []template.LayerDefinition) []template.LayerDefinition {
	byKind := make(map[template.LayerKind]template.LayerDefinition, len(declared))
	for _, layer := range declared {
		if !knownLayerKind(layer.Kind) {
			s.errorf("unknown layer kind %q", string(layer.Kind))
			continue
		}
		if _, exists := byKind[layer.Kind]; exists {
			s.diags = append(s.diags, diag.Warningf("layer %s declared more than once; keeping the first", string(layer.Kind)))
			continue
		}
		byKind[layer.Kind] = layer
	}

	out := make([]template.LayerDefinition, 0, len(byKind))
	for _, kind := range template.CanonicalLayerOrder {
		if layer, ok := byKind[kind]; ok {
			out = append(out, layer)
		}
	}
	return out
}

func knownLayerKind(kind template.LayerKind) bool {
	for _, known := range template.CanonicalLayerOrder {
		if kind == known {
			return true
		}
	}
	return false
}
