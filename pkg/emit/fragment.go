package emit

import (
	"strings"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/diag"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/interpolate"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

// fragmentRef resolves a fragment reference and feeds the fragment's
// content nodes back through the dispatch with the call's params overlaid
// on the context. Param values are themselves interpolated against the
// caller's context first, so a definition can forward its own variables
// into a fragment.
func (s *state) fragmentRef(ref *template.FragmentRef) string {
	if ref == nil || ref.ID == "" {
		return s.missingConfig(template.ContentKindFragment)
	}
	if s.res == nil {
		s.errorf("fragment %q referenced without a registry", ref.ID)
		return ""
	}

	frag, err := s.res.Enter(ref.ID)
	if err != nil {
		s.diags = append(s.diags, diag.FromError(err)...)
		return ""
	}
	defer s.res.Leave()

	params, err := interpolate.Deep(ref.Params, s.ctx)
	if err != nil {
		s.diags = append(s.diags, diag.FromError(err)...)
		return ""
	}
	overlay, _ := params.(map[string]any)

	for _, name := range frag.Params {
		if _, ok := overlay[name]; !ok {
			s.errorf("fragment %q requires param %q", frag.ID, name)
		}
	}

	childCtx := s.ctx.Overlay(overlay)

	parts := make([]string, 0, len(frag.Contents))
	for _, node := range frag.Contents {
		text, diags := Content(node, childCtx, s.res)
		s.diags = append(s.diags, diags...)
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}
