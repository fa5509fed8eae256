package ir

import "fmt"

// ContentKind discriminates the closed ContentDefinition union. Adding a
// kind means adding a constant here, a config pointer on
// ContentDefinition, and an arm in the emit dispatch switch.
type ContentKind string

const (
	ContentKindRaw         ContentKind = "raw"
	ContentKindContextTag  ContentKind = "contextTag"
	ContentKindTaggedError ContentKind = "taggedError"
	ContentKindSchema      ContentKind = "schema"
	ContentKindRPC         ContentKind = "rpcDefinition"
	ContentKindFragment    ContentKind = "fragment"
	ContentKindInterface   ContentKind = "interface"
	ContentKindClass       ContentKind = "class"
	ContentKindConstant    ContentKind = "constant"
)

// Kinds lists every member of the union in a stable order. Useful for
// tooling and exhaustiveness tests.
func Kinds() []ContentKind {
	return []ContentKind{
		ContentKindRaw,
		ContentKindContextTag,
		ContentKindTaggedError,
		ContentKindSchema,
		ContentKindRPC,
		ContentKindFragment,
		ContentKindInterface,
		ContentKindClass,
		ContentKindConstant,
	}
}

// ContentDefinition is the tagged union of everything a section may emit.
// Kind selects exactly one of the config pointers; the matching pointer
// must be non-nil (Raw uses the inline string instead). The one-field-per-
// kind encoding keeps the union serialisable from YAML and JSON without
// custom unmarshalers.
type ContentDefinition struct {
	Kind ContentKind `json:"kind" yaml:"kind"`

	Raw         string             `json:"raw,omitempty" yaml:"raw,omitempty"`
	ContextTag  *ContextTagConfig  `json:"contextTag,omitempty" yaml:"contextTag,omitempty"`
	TaggedError *TaggedErrorConfig `json:"taggedError,omitempty" yaml:"taggedError,omitempty"`
	Schema      *SchemaConfig      `json:"schema,omitempty" yaml:"schema,omitempty"`
	RPC         *RPCConfig         `json:"rpcDefinition,omitempty" yaml:"rpcDefinition,omitempty"`
	Fragment    *FragmentRef       `json:"fragment,omitempty" yaml:"fragment,omitempty"`
	Interface   *InterfaceConfig   `json:"interface,omitempty" yaml:"interface,omitempty"`
	Class       *ClassConfig       `json:"class,omitempty" yaml:"class,omitempty"`
	Constant    *ConstantConfig    `json:"constant,omitempty" yaml:"constant,omitempty"`
}

// RawContent builds a raw literal node.
func RawContent(text string) ContentDefinition {
	return ContentDefinition{Kind: ContentKindRaw, Raw: text}
}

// FragmentContent builds a fragment reference node.
func FragmentContent(id string, params map[string]any) ContentDefinition {
	return ContentDefinition{
		Kind:     ContentKindFragment,
		Fragment: &FragmentRef{ID: id, Params: params},
	}
}

// Validate checks that Kind is a known union member and that the config
// matching the kind is populated.
func (c ContentDefinition) Validate() error {
	switch c.Kind {
	case ContentKindRaw:
		if c.Raw == "" {
			return errDefinition("raw content is empty")
		}
	case ContentKindContextTag:
		if c.ContextTag == nil {
			return missingConfig(c.Kind)
		}
	case ContentKindTaggedError:
		if c.TaggedError == nil {
			return missingConfig(c.Kind)
		}
	case ContentKindSchema:
		if c.Schema == nil {
			return missingConfig(c.Kind)
		}
	case ContentKindRPC:
		if c.RPC == nil {
			return missingConfig(c.Kind)
		}
	case ContentKindFragment:
		if c.Fragment == nil || c.Fragment.ID == "" {
			return missingConfig(c.Kind)
		}
	case ContentKindInterface:
		if c.Interface == nil {
			return missingConfig(c.Kind)
		}
	case ContentKindClass:
		if c.Class == nil {
			return missingConfig(c.Kind)
		}
	case ContentKindConstant:
		if c.Constant == nil {
			return missingConfig(c.Kind)
		}
	default:
		return errDefinition(fmt.Sprintf("unknown content kind %q", string(c.Kind)))
	}
	return nil
}

func missingConfig(kind ContentKind) error {
	return errDefinition(fmt.Sprintf("content kind %q is missing its config", string(kind)))
}
