package jddf

import (
	ischema "github.com/jddf/jddf-go/internal/schema"
)

// Schema is an immutable, loaded JDDF schema: a table of definitions (root
// only) plus exactly one of the eight forms. Obtain one with FromJSON.
type Schema = ischema.Schema

// FormKind discriminates the eight mutually exclusive JDDF forms.
type FormKind = ischema.FormKind

const (
	KindEmpty         = ischema.KindEmpty
	KindRef           = ischema.KindRef
	KindType          = ischema.KindType
	KindEnum          = ischema.KindEnum
	KindElements      = ischema.KindElements
	KindProperties    = ischema.KindProperties
	KindValues        = ischema.KindValues
	KindDiscriminator = ischema.KindDiscriminator
)

// Form is the closed sum type over the eight JDDF forms.
type Form = ischema.Form

// The eight form payloads, re-exported for callers that need to inspect a
// loaded schema (e.g. tooling built on top of this package).
type (
	EmptyForm         = ischema.EmptyForm
	RefForm           = ischema.RefForm
	TypeForm          = ischema.TypeForm
	EnumForm          = ischema.EnumForm
	ElementsForm      = ischema.ElementsForm
	PropertiesForm    = ischema.PropertiesForm
	ValuesForm        = ischema.ValuesForm
	DiscriminatorForm = ischema.DiscriminatorForm
)

// PrimitiveType is one of the eleven types recognized by the Type form.
type PrimitiveType = ischema.PrimitiveType

const (
	Boolean   = ischema.Boolean
	Float32   = ischema.Float32
	Float64   = ischema.Float64
	Int8      = ischema.Int8
	Uint8     = ischema.Uint8
	Int16     = ischema.Int16
	Uint16    = ischema.Uint16
	Int32     = ischema.Int32
	Uint32    = ischema.Uint32
	String    = ischema.String
	Timestamp = ischema.Timestamp
)

// ParsePrimitiveType maps a JDDF type name to a PrimitiveType.
func ParsePrimitiveType(name string) (PrimitiveType, bool) { return ischema.ParsePrimitiveType(name) }

// FromJSON converts a decoded JSON value (as produced by
// github.com/goccy/go-json or encoding/json: nil, bool, string, float64 or
// json.Number, []any, map[string]any) into a Schema. It rejects malformed
// input with an *InvalidSchema error; it does not check the cross-form
// invariants that Verify checks.
func FromJSON(v any) (*Schema, error) {
	s, err := ischema.FromJSON(v)
	if err != nil {
		return nil, asInvalidSchema(err)
	}
	return s, nil
}

// ToJSON re-projects a Schema back into the decoded-JSON shape FromJSON
// accepts. Reloading the result with FromJSON yields an equivalent Schema.
func ToJSON(s *Schema) any { return ischema.ToJSON(s) }

// Verify checks the semantic invariants that FromJSON does not: definitions
// may appear only on the root, every ref resolves, required/optional
// property sets are disjoint, and discriminator mapping variants are
// well-formed. Callers must call Verify before trusting a Schema to Validate.
func Verify(s *Schema) error {
	if err := ischema.Verify(s); err != nil {
		return asInvalidSchema(err)
	}
	return nil
}
