package ir

// LayerKind names one environment-specific implementation of a service
// tag. The emitter orders layers canonically (Live, Test, Dev, Auto)
// regardless of how a config declares them.
type LayerKind string

const (
	LayerLive LayerKind = "Live"
	LayerTest LayerKind = "Test"
	LayerDev  LayerKind = "Dev"
	LayerAuto LayerKind = "Auto"
)

// CanonicalLayerOrder is the fixed emission order for service-tag static
// layers. Downstream conventions depend on this order, so the emitter
// treats it as a correctness contract rather than a style preference.
var CanonicalLayerOrder = []LayerKind{LayerLive, LayerTest, LayerDev, LayerAuto}

// FieldDefinition describes one property on an interface, class, tagged
// error, or schema-adjacent structure. Mutable opts a field out of the
// readonly-by-default emission; tagged-error fields ignore Mutable and
// are always emitted readonly.
type FieldDefinition struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Optional bool   `json:"optional,omitempty" yaml:"optional,omitempty"`
	Mutable  bool   `json:"mutable,omitempty" yaml:"mutable,omitempty"`
	Static   bool   `json:"static,omitempty" yaml:"static,omitempty"`
	Value    string `json:"value,omitempty" yaml:"value,omitempty"`
	Doc      string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// ParamDefinition is a single method parameter.
type ParamDefinition struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Optional bool   `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// MethodDefinition describes a method signature and, for class emission,
// an optional body given as literal lines.
type MethodDefinition struct {
	Name    string            `json:"name" yaml:"name"`
	Params  []ParamDefinition `json:"params,omitempty" yaml:"params,omitempty"`
	Returns string            `json:"returns,omitempty" yaml:"returns,omitempty"`
	Static  bool              `json:"static,omitempty" yaml:"static,omitempty"`
	Doc     string            `json:"doc,omitempty" yaml:"doc,omitempty"`
	Body    []string          `json:"body,omitempty" yaml:"body,omitempty"`
}

// LayerDefinition binds an environment layer to the expression that
// constructs it, e.g. `Layer.succeed(UserService, makeLive())`.
type LayerDefinition struct {
	Kind  LayerKind `json:"kind" yaml:"kind"`
	Value string    `json:"value" yaml:"value"`
	Doc   string    `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// ContextTagConfig describes a service-interface abstraction: a tag
// identifier, the service's method signatures, and the static layers
// providing environment-specific implementations.
type ContextTagConfig struct {
	Name       string             `json:"name" yaml:"name"`
	Identifier string             `json:"identifier" yaml:"identifier"`
	Doc        string             `json:"doc,omitempty" yaml:"doc,omitempty"`
	Methods    []MethodDefinition `json:"methods,omitempty" yaml:"methods,omitempty"`
	Layers     []LayerDefinition  `json:"layers,omitempty" yaml:"layers,omitempty"`
}

// TaggedErrorConfig describes an error-type definition. Every field is
// emitted readonly; Optional fields keep their `?` marker.
type TaggedErrorConfig struct {
	Name   string            `json:"name" yaml:"name"`
	Tag    string            `json:"tag,omitempty" yaml:"tag,omitempty"`
	Doc    string            `json:"doc,omitempty" yaml:"doc,omitempty"`
	Fields []FieldDefinition `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// SchemaFieldType enumerates the primitive kinds a schema field supports.
type SchemaFieldType string

const (
	SchemaFieldString  SchemaFieldType = "string"
	SchemaFieldNumber  SchemaFieldType = "number"
	SchemaFieldBoolean SchemaFieldType = "boolean"
	SchemaFieldStruct  SchemaFieldType = "struct"
	SchemaFieldArray   SchemaFieldType = "array"
)

// SchemaField models one named member of a structural validation
// definition. Struct fields carry nested members; array fields carry an
// item schema; Reference points at another named schema instead of an
// inline shape.
type SchemaField struct {
	Name      string          `json:"name" yaml:"name"`
	Type      SchemaFieldType `json:"type,omitempty" yaml:"type,omitempty"`
	Optional  bool            `json:"optional,omitempty" yaml:"optional,omitempty"`
	Reference string          `json:"reference,omitempty" yaml:"reference,omitempty"`
	Fields    []SchemaField   `json:"fields,omitempty" yaml:"fields,omitempty"`
	Items     *SchemaField    `json:"items,omitempty" yaml:"items,omitempty"`
}

// SchemaConfig describes a structural validation definition. Brand, when
// set, marks the resulting type as nominally distinct from its shape.
type SchemaConfig struct {
	Name   string        `json:"name" yaml:"name"`
	Doc    string        `json:"doc,omitempty" yaml:"doc,omitempty"`
	Brand  string        `json:"brand,omitempty" yaml:"brand,omitempty"`
	Fields []SchemaField `json:"fields" yaml:"fields"`
}

// RouteAccess classifies who may invoke a remote operation.
type RouteAccess string

const (
	RoutePublic    RouteAccess = "public"
	RouteProtected RouteAccess = "protected"
	RouteAdmin     RouteAccess = "admin"
)

// PayloadShape is the input side of an RPC definition: exactly one of
// Void, Reference, or inline Fields.
type PayloadShape struct {
	Void      bool          `json:"void,omitempty" yaml:"void,omitempty"`
	Reference string        `json:"reference,omitempty" yaml:"reference,omitempty"`
	Fields    []SchemaField `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// RPCConfig describes a named remote-operation definition.
type RPCConfig struct {
	Name    string        `json:"name" yaml:"name"`
	Route   RouteAccess   `json:"route,omitempty" yaml:"route,omitempty"`
	Doc     string        `json:"doc,omitempty" yaml:"doc,omitempty"`
	Payload *PayloadShape `json:"payload,omitempty" yaml:"payload,omitempty"`
	Success string        `json:"success,omitempty" yaml:"success,omitempty"`
	Error   string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// FragmentRef points a content node at a registered fragment. Params are
// overlaid on the compilation context while the fragment's own content
// nodes are emitted; param keys shadow context keys.
type FragmentRef struct {
	ID     string         `json:"id" yaml:"id"`
	Params map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
}

// InterfaceConfig describes a structural interface declaration.
type InterfaceConfig struct {
	Name       string             `json:"name" yaml:"name"`
	Doc        string             `json:"doc,omitempty" yaml:"doc,omitempty"`
	Extends    []string           `json:"extends,omitempty" yaml:"extends,omitempty"`
	Properties []FieldDefinition  `json:"properties,omitempty" yaml:"properties,omitempty"`
	Methods    []MethodDefinition `json:"methods,omitempty" yaml:"methods,omitempty"`
}

// ClassConfig describes a class declaration with optional statics and
// method bodies.
type ClassConfig struct {
	Name       string             `json:"name" yaml:"name"`
	Doc        string             `json:"doc,omitempty" yaml:"doc,omitempty"`
	Extends    string             `json:"extends,omitempty" yaml:"extends,omitempty"`
	Implements []string           `json:"implements,omitempty" yaml:"implements,omitempty"`
	Properties []FieldDefinition  `json:"properties,omitempty" yaml:"properties,omitempty"`
	Methods    []MethodDefinition `json:"methods,omitempty" yaml:"methods,omitempty"`
}

// ConstantConfig describes an exported constant binding. Type is optional;
// Value is emitted verbatim after interpolation.
type ConstantConfig struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Value string `json:"value" yaml:"value"`
	Doc   string `json:"doc,omitempty" yaml:"doc,omitempty"`
}
