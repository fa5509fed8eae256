package compiler

import "github.com/samuelho-dev/monorepo-library-generator/pkg/template"

// assemble walks a definition's sections and conditional blocks and
// returns the content that survives condition evaluation, in output
// order: unconditioned (or satisfied) sections first, exactly as
// declared, then the sections of each active conditional block in block
// declaration order.
//
// A condition is a boolean lookup in the context; absent or falsy means
// the section is omitted entirely. This is the opt-in mechanism for
// flag-gated content such as CQRS or RPC sections.
func assemble(def template.Definition, tctx template.Context) []template.SectionDefinition {
	var out []template.SectionDefinition

	for _, section := range def.Sections {
		if sectionActive(section, tctx) {
			out = append(out, section)
		}
	}

	for _, block := range def.Conditionals {
		if !tctx.Flag(block.Flag) {
			continue
		}
		for _, section := range block.Sections {
			if sectionActive(section, tctx) {
				out = append(out, section)
			}
		}
	}

	return out
}

func sectionActive(section template.SectionDefinition, tctx template.Context) bool {
	if section.Condition == "" {
		return true
	}
	return tctx.Flag(section.Condition)
}
