package jddf_test

import (
	"reflect"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/jddf/jddf-go"
)

func TestParsePrimitiveType(t *testing.T) {
	got, ok := jddf.ParsePrimitiveType("uint32")
	if !ok || got != jddf.Uint32 {
		t.Fatalf("got %v, %v", got, ok)
	}
	if _, ok := jddf.ParsePrimitiveType("int128"); ok {
		t.Fatalf("expected int128 to be rejected")
	}
}

// TestFromJSON_FormKinds checks that loading a schema through the
// public FromJSON surface yields the form kind a caller would expect from
// each of the eight JDDF keyword shapes.
func TestFromJSON_FormKinds(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		kind jddf.FormKind
	}{
		{"empty", `{}`, jddf.KindEmpty},
		{"ref", `{"definitions":{"a":{}},"ref":"a"}`, jddf.KindRef},
		{"type", `{"type":"string"}`, jddf.KindType},
		{"enum", `{"enum":["a","b"]}`, jddf.KindEnum},
		{"elements", `{"elements":{}}`, jddf.KindElements},
		{"properties", `{"properties":{}}`, jddf.KindProperties},
		{"values", `{"values":{}}`, jddf.KindValues},
		{"discriminator", `{"discriminator":{"tag":"t","mapping":{}}}`, jddf.KindDiscriminator},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := loadSchemaNoVerify(t, c.raw)
			if s.Form.Kind() != c.kind {
				t.Fatalf("got kind %v, want %v", s.Form.Kind(), c.kind)
			}
		})
	}
}

// TestSchema_RoundTripThroughJSON checks that loading a schema, projecting
// it back to JSON with ToJSON, marshaling that projection through
// goccy/go-json, and loading it again yields an equivalent Schema — the
// round-trip property for valid schemas.
func TestSchema_RoundTripThroughJSON(t *testing.T) {
	cases := []string{
		`{}`,
		`{"type":"uint32"}`,
		`{"enum":["a","b","c"]}`,
		`{"elements":{"type":"string"}}`,
		`{"properties":{"a":{"type":"string"}},"optionalProperties":{"b":{"type":"float64"}}}`,
		`{"values":{"type":"boolean"}}`,
		`{"definitions":{"d":{"type":"string"}},"ref":"d"}`,
		`{"discriminator":{"tag":"t","mapping":{"a":{"properties":{"x":{"type":"string"}}}}}}`,
	}
	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			original := loadSchemaNoVerify(t, raw)

			projected := jddf.ToJSON(original)
			encoded, err := json.Marshal(projected)
			if err != nil {
				t.Fatalf("marshal projection: %v", err)
			}

			var decoded any
			if err := json.Unmarshal(encoded, &decoded); err != nil {
				t.Fatalf("unmarshal projection: %v", err)
			}
			reloaded, err := jddf.FromJSON(decoded)
			if err != nil {
				t.Fatalf("FromJSON(re-projected): %v", err)
			}

			if !reflect.DeepEqual(original, reloaded) {
				t.Fatalf("round trip changed the schema:\noriginal: %+v\nreloaded: %+v", original, reloaded)
			}
		})
	}
}

func loadSchemaNoVerify(t *testing.T, raw string) *jddf.Schema {
	t.Helper()
	v := loadInstance(t, raw)
	s, err := jddf.FromJSON(v)
	if err != nil {
		t.Fatalf("FromJSON(%s): %v", raw, err)
	}
	return s
}
