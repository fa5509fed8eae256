package fragment

import "github.com/samuelho-dev/monorepo-library-generator/pkg/template"

// Builtin returns a registry pre-populated with the fragments the bundled
// definition set references. Callers may register additional fragments on
// top before compilation starts.
func Builtin() *Registry {
	r := NewRegistry()

	r.MustRegister(Fragment{
		ID:          "identifier-constant",
		Description: "Exported string constant from a name/value pair.",
		Params:      []string{"constName", "constValue"},
		Contents: []template.ContentDefinition{
			{
				Kind: template.ContentKindConstant,
				Constant: &template.ConstantConfig{
					Name:  "{constName}",
					Type:  "string",
					Value: "{constValue}",
				},
			},
		},
	})

	r.MustRegister(Fragment{
		ID:          "not-implemented",
		Description: "Method body placeholder that throws at runtime.",
		Params:      []string{"subject"},
		Contents: []template.ContentDefinition{
			template.RawContent("throw new Error(\"{subject} is not implemented\")"),
		},
	})

	return r
}
