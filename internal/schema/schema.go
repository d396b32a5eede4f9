// Package schema implements the JDDF schema model: an immutable tagged
// representation of the eight JDDF forms, plus the loader and verifier that
// produce and check it. It is kept internal per this module's packaging
// policy — the root package re-exports the pieces callers need.
package schema

// FormKind discriminates the eight mutually exclusive schema forms.
type FormKind int

const (
	KindEmpty FormKind = iota
	KindRef
	KindType
	KindEnum
	KindElements
	KindProperties
	KindValues
	KindDiscriminator
)

// Form is a closed sum type over the eight JDDF forms. Every case here has a
// matching FormKind; a switch over Kind() that misses one is caught by the
// engine's tests, not the compiler, so keep the two in lockstep.
type Form interface {
	Kind() FormKind
	isForm()
}

// Schema is an immutable, loaded-and-syntactically-valid JDDF schema.
// Definitions is nil when absent; only the root schema is permitted to carry
// one (enforced by Verify, not by the loader).
type Schema struct {
	Definitions map[string]*Schema
	Form        Form
}

// EmptyForm accepts any instance.
type EmptyForm struct{}

func (EmptyForm) Kind() FormKind { return KindEmpty }
func (EmptyForm) isForm()        {}

// RefForm delegates validation to root.Definitions[Name].
type RefForm struct {
	Name string
}

func (RefForm) Kind() FormKind { return KindRef }
func (RefForm) isForm()        {}

// PrimitiveType enumerates the eleven primitive types recognized by the
// Type form.
type PrimitiveType int

const (
	Boolean PrimitiveType = iota
	Float32
	Float64
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	String
	Timestamp
)

var typeNames = map[string]PrimitiveType{
	"boolean":   Boolean,
	"float32":   Float32,
	"float64":   Float64,
	"int8":      Int8,
	"uint8":     Uint8,
	"int16":     Int16,
	"uint16":    Uint16,
	"int32":     Int32,
	"uint32":    Uint32,
	"string":    String,
	"timestamp": Timestamp,
}

// ParsePrimitiveType maps a JDDF type name to a PrimitiveType.
func ParsePrimitiveType(name string) (PrimitiveType, bool) {
	t, ok := typeNames[name]
	return t, ok
}

// String renders the JDDF type name back out.
func (t PrimitiveType) String() string {
	for name, v := range typeNames {
		if v == t {
			return name
		}
	}
	return "unknown"
}

// TypeForm is a primitive-type check.
type TypeForm struct {
	Type PrimitiveType
}

func (TypeForm) Kind() FormKind { return KindType }
func (TypeForm) isForm()        {}

// EnumForm requires the instance to be one of a fixed set of strings.
type EnumForm struct {
	// Values preserves the JSON array's original order (used for
	// round-tripping); Set is the same values as a lookup index.
	Values []string
	Set    map[string]struct{}
}

func (EnumForm) Kind() FormKind { return KindEnum }
func (EnumForm) isForm()        {}

// ElementsForm requires the instance to be an array whose elements all
// validate against Schema.
type ElementsForm struct {
	Schema *Schema
}

func (ElementsForm) Kind() FormKind { return KindElements }
func (ElementsForm) isForm()        {}

// PropertiesForm describes an object's shape. At least one of Required and
// Optional is non-nil (enforced by the loader).
type PropertiesForm struct {
	Required             map[string]*Schema // nil when absent
	Optional             map[string]*Schema // nil when absent
	AdditionalProperties bool
}

func (PropertiesForm) Kind() FormKind { return KindProperties }
func (PropertiesForm) isForm()        {}

// ValuesForm requires the instance to be an object whose values all
// validate against Schema.
type ValuesForm struct {
	Schema *Schema
}

func (ValuesForm) Kind() FormKind { return KindValues }
func (ValuesForm) isForm()        {}

// DiscriminatorForm dispatches to a Properties-form variant selected by a
// string tag.
type DiscriminatorForm struct {
	Tag     string
	Mapping map[string]*Schema
}

func (DiscriminatorForm) Kind() FormKind { return KindDiscriminator }
func (DiscriminatorForm) isForm()        {}
