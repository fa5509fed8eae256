package emit

import (
	"github.com/samuelho-dev/monorepo-library-generator/pkg/diag"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/fragment"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/interpolate"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

// Content turns one content node into source text. Emission never stops
// at the first problem: the returned diagnostics carry everything wrong
// with the node, and the text is only meaningful when no diagnostic has
// error severity. Fragment references resolve through res, which tracks
// the per-compilation fragment stack.
//
// The switch below is the single touchpoint for the closed content union;
// a kind missing an arm falls into the unknown-kind diagnostic, and the
// exhaustiveness test in this package keeps the arms aligned with
// template.Kinds().
func Content(node template.ContentDefinition, ctx template.Context, res *fragment.Resolution) (string, []diag.Diagnostic) {
	s := &state{ctx: ctx, res: res}

	var text string
	switch node.Kind {
	case template.ContentKindRaw:
		text = s.raw(node.Raw)
	case template.ContentKindContextTag:
		text = s.contextTag(node.ContextTag)
	case template.ContentKindTaggedError:
		text = s.taggedError(node.TaggedError)
	case template.ContentKindSchema:
		text = s.schema(node.Schema)
	case template.ContentKindRPC:
		text = s.rpcDefinition(node.RPC)
	case template.ContentKindFragment:
		text = s.fragmentRef(node.Fragment)
	case template.ContentKindInterface:
		text = s.interfaceDecl(node.Interface)
	case template.ContentKindClass:
		text = s.classDecl(node.Class)
	case template.ContentKindConstant:
		text = s.constantDecl(node.Constant)
	default:
		s.errorf("unknown content kind %q", string(node.Kind))
	}

	return text, s.diags
}

// state accumulates diagnostics across one node's emission so every
// problem in the node is reported together.
type state struct {
	ctx   template.Context
	res   *fragment.Resolution
	diags []diag.Diagnostic
}

func (s *state) errorf(format string, args ...any) {
	s.diags = append(s.diags, diag.Errorf(format, args...))
}

// interp resolves placeholders in text, folding failures into the
// diagnostic list. On failure the original text comes back so emission
// can keep walking the rest of the config.
func (s *state) interp(text string) string {
	if text == "" {
		return ""
	}
	resolved, err := interpolate.Interpolate(text, s.ctx)
	if err != nil {
		s.diags = append(s.diags, diag.FromError(err)...)
		return text
	}
	return resolved
}

// identifier interpolates text and checks the result is a legal
// identifier in the emitted language. The role labels the diagnostic.
func (s *state) identifier(text, role string) string {
	resolved := s.interp(text)
	if !isIdentifier(resolved) {
		s.errorf("%s %q is not a valid identifier", role, resolved)
	}
	return resolved
}

func (s *state) missingConfig(kind template.ContentKind) string {
	s.errorf("content kind %q is missing its config", string(kind))
	return ""
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		alpha := c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if i == 0 && !alpha {
			return false
		}
		if !alpha && !(c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}

// nonEmpty interpolates text and reports a diagnostic when the result is
// blank, used for required free-form values such as layer expressions.
func (s *state) nonEmpty(text, role string) string {
	resolved := s.interp(text)
	if resolved == "" {
		s.errorf("%s must not be empty", role)
	}
	return resolved
}
