package ir

import "strings"

// Definition is the immutable description of one generated source file:
// header metadata, an ordered import list, ordered sections, and optional
// conditional blocks appended when the matching context flag is set. A
// Definition is authored once as static data and compiled many times
// against different contexts.
type Definition struct {
	ID           string             `json:"id" yaml:"id"`
	Meta         Metadata           `json:"meta" yaml:"meta"`
	Imports      []ImportDefinition `json:"imports,omitempty" yaml:"imports,omitempty"`
	Sections     []SectionDefinition `json:"sections" yaml:"sections"`
	Conditionals []ConditionalBlock `json:"conditionals,omitempty" yaml:"conditionals,omitempty"`
}

// Metadata holds the interpolatable header values for a generated file.
// Path is the output location relative to the generated library root.
type Metadata struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Path        string `json:"path,omitempty" yaml:"path,omitempty"`
}

// ImportDefinition describes one import statement. Items sharing a Source
// are deduplicated and merged before emission; TypeOnly items merge into
// the same statement as inline `type` specifiers when the source also has
// value imports. Condition names a context flag gating the import.
type ImportDefinition struct {
	Source    string   `json:"source" yaml:"source"`
	Items     []string `json:"items" yaml:"items"`
	TypeOnly  bool     `json:"typeOnly,omitempty" yaml:"typeOnly,omitempty"`
	Condition string   `json:"condition,omitempty" yaml:"condition,omitempty"`
}

// SectionDefinition groups one or more content nodes under an optional
// title (emitted as a doc comment) and an optional inclusion condition.
// Sections preserve declaration order in the output.
type SectionDefinition struct {
	Title     string              `json:"title,omitempty" yaml:"title,omitempty"`
	Condition string              `json:"condition,omitempty" yaml:"condition,omitempty"`
	Contents  []ContentDefinition `json:"contents" yaml:"contents"`
}

// ConditionalBlock carries extra imports and sections that only apply when
// the named context flag is truthy. Blocks are ordered; active blocks are
// appended after the unconditioned sections in declaration order.
type ConditionalBlock struct {
	Flag     string              `json:"flag" yaml:"flag"`
	Imports  []ImportDefinition  `json:"imports,omitempty" yaml:"imports,omitempty"`
	Sections []SectionDefinition `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// Validate performs the structural sanity checks a definition must pass
// before compilation. Interpolation and emitter-level checks happen later
// with a context in hand.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return errDefinition("definition id is required")
	}
	if len(d.Sections) == 0 && len(d.Conditionals) == 0 {
		return errDefinition("definition " + d.ID + " declares no sections")
	}
	for _, imp := range d.Imports {
		if err := imp.Validate(); err != nil {
			return err
		}
	}
	for _, section := range d.Sections {
		if err := section.Validate(); err != nil {
			return err
		}
	}
	for _, block := range d.Conditionals {
		if strings.TrimSpace(block.Flag) == "" {
			return errDefinition("definition " + d.ID + " has a conditional block without a flag")
		}
		for _, imp := range block.Imports {
			if err := imp.Validate(); err != nil {
				return err
			}
		}
		for _, section := range block.Sections {
			if err := section.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Validate checks that the import names a source and at least one item.
func (i ImportDefinition) Validate() error {
	if strings.TrimSpace(i.Source) == "" {
		return errDefinition("import source is required")
	}
	if len(i.Items) == 0 {
		return errDefinition("import from " + i.Source + " declares no items")
	}
	return nil
}

// Validate checks that the section carries at least one content node and
// that each node is a well-formed union member.
func (s SectionDefinition) Validate() error {
	if len(s.Contents) == 0 {
		return errDefinition("section " + s.Title + " declares no contents")
	}
	for _, content := range s.Contents {
		if err := content.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type definitionError string

func (e definitionError) Error() string { return "ir: " + string(e) }

func errDefinition(msg string) error { return definitionError(msg) }
