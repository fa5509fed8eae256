package emit

import (
	"strings"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

// rpcDefinition emits a named remote-operation definition with its route
// classification, payload shape, and success/error type references.
func (s *state) rpcDefinition(cfg *template.RPCConfig) string {
	if cfg == nil {
		return s.missingConfig(template.ContentKindRPC)
	}

	name := s.identifier(cfg.Name, "rpc name")
	route := cfg.Route
	if route == "" {
		route = template.RoutePublic
	}
	switch route {
	case template.RoutePublic, template.RouteProtected, template.RouteAdmin:
	default:
		s.errorf("rpc %s has unknown route %q", name, string(route))
	}

	var b strings.Builder
	b.WriteString(docComment(s.interp(cfg.Doc), ""))
	b.WriteString("export const " + name + " = Rpc.make(\"" + name + "\", {\n")
	b.WriteString(indent + "access: \"" + string(route) + "\",\n")
	b.WriteString(indent + "payload: " + s.payloadExpr(cfg.Payload, name) + ",\n")

	success := s.interp(cfg.Success)
	if success == "" {
		success = "Schema.Void"
	}
	b.WriteString(indent + "success: " + success + ",\n")

	if failure := s.interp(cfg.Error); failure != "" {
		b.WriteString(indent + "failure: " + failure + ",\n")
	}
	b.WriteString("})")

	return b.String()
}

// payloadExpr renders the input side: void, a reference to a named
// schema, or an inline struct. Exactly one form must be present.
func (s *state) payloadExpr(payload *template.PayloadShape, rpcName string) string {
	if payload == nil || payload.Void {
		if payload != nil && (payload.Reference != "" || len(payload.Fields) > 0) {
			s.errorf("rpc %s declares a void payload alongside a shape", rpcName)
		}
		return "Schema.Void"
	}
	if payload.Reference != "" {
		if len(payload.Fields) > 0 {
			s.errorf("rpc %s declares both a payload reference and inline fields", rpcName)
		}
		return s.interp(payload.Reference)
	}
	if len(payload.Fields) > 0 {
		return s.structExpr(payload.Fields, indent)
	}
	s.errorf("rpc %s has an empty payload shape", rpcName)
	return "Schema.Void"
}
