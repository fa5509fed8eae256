package compiler

import (
	"strings"

	"github.com/samuelho-dev/monorepo-library-generator/pkg/diag"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/interpolate"
	"github.com/samuelho-dev/monorepo-library-generator/pkg/template"
)

// importGroup accumulates the merged items for one source. Items keep
// first-seen order; typeOnly tracks per item so value and type imports
// targeting the same source merge into a single statement.
type importGroup struct {
	source   string
	items    []string
	typeOnly map[string]bool
}

// imports resolves the active import set: each import's condition is
// evaluated, sources and items are interpolated, duplicates collapse by
// (source, item), and the groups are rendered in first-seen source order.
// Imports belonging to inactive conditional blocks are omitted with their
// sections.
func (c *Compiler) imports(def template.Definition, tctx template.Context) (string, []diag.Diagnostic) {
	var diags []diag.Diagnostic

	active := make([]template.ImportDefinition, 0, len(def.Imports))
	for _, imp := range def.Imports {
		if imp.Condition == "" || tctx.Flag(imp.Condition) {
			active = append(active, imp)
		}
	}
	for _, block := range def.Conditionals {
		if !tctx.Flag(block.Flag) {
			continue
		}
		for _, imp := range block.Imports {
			if imp.Condition == "" || tctx.Flag(imp.Condition) {
				active = append(active, imp)
			}
		}
	}

	var order []string
	groups := make(map[string]*importGroup)

	for _, imp := range active {
		source, err := interpolate.Interpolate(imp.Source, tctx)
		if err != nil {
			diags = append(diags, diag.FromError(err)...)
			continue
		}

		group, ok := groups[source]
		if !ok {
			group = &importGroup{source: source, typeOnly: make(map[string]bool)}
			groups[source] = group
			order = append(order, source)
		}

		for _, rawItem := range imp.Items {
			item, err := interpolate.Interpolate(rawItem, tctx)
			if err != nil {
				diags = append(diags, diag.FromError(err)...)
				continue
			}
			if existing, seen := group.typeOnly[item]; seen {
				// A value import outranks a type-only duplicate.
				if existing && !imp.TypeOnly {
					group.typeOnly[item] = false
				}
				continue
			}
			group.typeOnly[item] = imp.TypeOnly
			group.items = append(group.items, item)
		}
	}

	lines := make([]string, 0, len(order))
	for _, source := range order {
		group := groups[source]
		if len(group.items) == 0 {
			continue
		}
		lines = append(lines, renderImport(group))
	}

	return strings.Join(lines, "\n"), diags
}

func renderImport(group *importGroup) string {
	allTypes := true
	for _, item := range group.items {
		if !group.typeOnly[item] {
			allTypes = false
			break
		}
	}

	specifiers := make([]string, 0, len(group.items))
	for _, item := range group.items {
		if group.typeOnly[item] && !allTypes {
			specifiers = append(specifiers, "type "+item)
		} else {
			specifiers = append(specifiers, item)
		}
	}

	keyword := "import"
	if allTypes {
		keyword = "import type"
	}
	return keyword + " { " + strings.Join(specifiers, ", ") + " } from \"" + group.source + "\""
}
