package template

import "github.com/samuelho-dev/monorepo-library-generator/internal/ir"

// Definition re-exports the internal template definition IR.
type Definition = ir.Definition

// Metadata holds a definition's interpolatable header values.
type Metadata = ir.Metadata

// ImportDefinition describes one import statement.
type ImportDefinition = ir.ImportDefinition

// SectionDefinition groups content nodes under a title and condition.
type SectionDefinition = ir.SectionDefinition

// ConditionalBlock holds flag-gated extra imports and sections.
type ConditionalBlock = ir.ConditionalBlock

// ContentDefinition is the closed content union.
type ContentDefinition = ir.ContentDefinition

// ContentKind discriminates the content union.
type ContentKind = ir.ContentKind

const (
	ContentKindRaw         = ir.ContentKindRaw
	ContentKindContextTag  = ir.ContentKindContextTag
	ContentKindTaggedError = ir.ContentKindTaggedError
	ContentKindSchema      = ir.ContentKindSchema
	ContentKindRPC         = ir.ContentKindRPC
	ContentKindFragment    = ir.ContentKindFragment
	ContentKindInterface   = ir.ContentKindInterface
	ContentKindClass       = ir.ContentKindClass
	ContentKindConstant    = ir.ContentKindConstant
)

// Context carries the variable bindings for one compilation.
type Context = ir.Context

type (
	FieldDefinition   = ir.FieldDefinition
	ParamDefinition   = ir.ParamDefinition
	MethodDefinition  = ir.MethodDefinition
	LayerDefinition   = ir.LayerDefinition
	LayerKind         = ir.LayerKind
	ContextTagConfig  = ir.ContextTagConfig
	TaggedErrorConfig = ir.TaggedErrorConfig
	SchemaConfig      = ir.SchemaConfig
	SchemaField       = ir.SchemaField
	SchemaFieldType   = ir.SchemaFieldType
	RPCConfig         = ir.RPCConfig
	RouteAccess       = ir.RouteAccess
	PayloadShape      = ir.PayloadShape
	FragmentRef       = ir.FragmentRef
	InterfaceConfig   = ir.InterfaceConfig
	ClassConfig       = ir.ClassConfig
	ConstantConfig    = ir.ConstantConfig
)

const (
	LayerLive = ir.LayerLive
	LayerTest = ir.LayerTest
	LayerDev  = ir.LayerDev
	LayerAuto = ir.LayerAuto
)

const (
	SchemaFieldString  = ir.SchemaFieldString
	SchemaFieldNumber  = ir.SchemaFieldNumber
	SchemaFieldBoolean = ir.SchemaFieldBoolean
	SchemaFieldStruct  = ir.SchemaFieldStruct
	SchemaFieldArray   = ir.SchemaFieldArray
)

const (
	RoutePublic    = ir.RoutePublic
	RouteProtected = ir.RouteProtected
	RouteAdmin     = ir.RouteAdmin
)

// CanonicalLayerOrder is the fixed emission order for service-tag layers.
var CanonicalLayerOrder = ir.CanonicalLayerOrder

// RawContent builds a raw literal node.
func RawContent(text string) ContentDefinition { return ir.RawContent(text) }

// FragmentContent builds a fragment reference node.
func FragmentContent(id string, params map[string]any) ContentDefinition {
	return ir.FragmentContent(id, params)
}

// Kinds lists every content kind in a stable order.
func Kinds() []ContentKind { return ir.Kinds() }
