package engine_test

import (
	"reflect"
	"sort"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/jddf/jddf-go/internal/engine"
	"github.com/jddf/jddf-go/internal/schema"
)

func mustSchema(t *testing.T, raw string) *schema.Schema {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("decode schema fixture: %v", err)
	}
	s, err := schema.FromJSON(v)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if err := schema.Verify(s); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	return s
}

func mustInstance(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("decode instance fixture: %v", err)
	}
	return v
}

// sortErrs makes the multiset comparisons in these tests order-independent,
// matching the spec's "treat returned errors as a set" contract.
func sortErrs(errs []engine.ValidationError) {
	sort.Slice(errs, func(i, j int) bool {
		return errs[i].InstancePointer()+"|"+errs[i].SchemaPointer() <
			errs[j].InstancePointer()+"|"+errs[j].SchemaPointer()
	})
}

func TestRun_PrimitiveTypeMiss(t *testing.T) {
	s := mustSchema(t, `{"type":"boolean"}`)
	errs, err := engine.Run(s, nil, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []engine.ValidationError{{InstancePath: nil, SchemaPath: []string{"type"}}}
	if !reflect.DeepEqual(errs, want) {
		t.Fatalf("got %+v, want %+v", errs, want)
	}
}

func TestRun_EmptyAcceptsAnything(t *testing.T) {
	s := mustSchema(t, `{}`)
	for _, raw := range []string{`null`, `1`, `"x"`, `[1,2]`, `{"a":1}`, `true`} {
		errs, err := engine.Run(s, mustInstance(t, raw), 0, 0)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", raw, err)
		}
		if len(errs) != 0 {
			t.Fatalf("expected no errors for %s, got %+v", raw, errs)
		}
	}
}

func TestRun_PropertiesWithThreeProblems(t *testing.T) {
	s := mustSchema(t, `{
		"properties": {
			"name": {"type":"string"},
			"age": {"type":"uint32"},
			"phones": {"elements": {"type":"string"}}
		}
	}`)
	instance := mustInstance(t, `{"age":"42","phones":["+44 1234567", 442345678]}`)
	errs, err := engine.Run(s, instance, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []engine.ValidationError{
		{InstancePath: nil, SchemaPath: []string{"properties", "name"}},
		{InstancePath: []string{"age"}, SchemaPath: []string{"properties", "age", "type"}},
		{InstancePath: []string{"phones", "1"}, SchemaPath: []string{"properties", "phones", "elements", "type"}},
	}
	sortErrs(errs)
	sortErrs(want)
	if !reflect.DeepEqual(errs, want) {
		t.Fatalf("got %+v, want %+v", errs, want)
	}
}

func TestRun_MaxDepthCycle(t *testing.T) {
	s := mustSchema(t, `{"definitions":{"loop":{"ref":"loop"}},"ref":"loop"}`)
	_, err := engine.Run(s, nil, 32, 0)
	if _, ok := err.(engine.MaxDepthExceeded); !ok {
		t.Fatalf("expected MaxDepthExceeded, got %v", err)
	}
}

func TestRun_MaxErrorsClamp(t *testing.T) {
	s := mustSchema(t, `{"elements":{"type":"string"}}`)
	instance := mustInstance(t, `[null,null,null,null,null]`)
	errs, err := engine.Run(s, instance, 0, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) != 3 {
		t.Fatalf("expected exactly 3 errors, got %d: %+v", len(errs), errs)
	}
}

func TestRun_DiscriminatorSuccessDoesNotFlagTag(t *testing.T) {
	s := mustSchema(t, `{"discriminator":{"tag":"t","mapping":{"a":{"properties":{"x":{"type":"string"}}}}}}`)
	instance := mustInstance(t, `{"t":"a","x":"hi"}`)
	errs, err := engine.Run(s, instance, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}

func TestRun_IntegerBounds(t *testing.T) {
	s := mustSchema(t, `{"type":"uint8"}`)

	cases := []struct {
		raw     string
		wantErr bool
	}{
		{`256`, true},
		{`255`, false},
		{`1.5`, true},
		{`1.0`, false},
	}
	for _, c := range cases {
		errs, err := engine.Run(s, mustInstance(t, c.raw), 0, 0)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", c.raw, err)
		}
		got := len(errs) != 0
		if got != c.wantErr {
			t.Fatalf("instance %s: got errored=%v, want %v (%+v)", c.raw, got, c.wantErr, errs)
		}
	}
}

func TestRun_RefEquivalence(t *testing.T) {
	inline := mustSchema(t, `{"type":"string"}`)
	viaRef := mustSchema(t, `{"definitions":{"d":{"type":"string"}},"ref":"d"}`)

	instance := mustInstance(t, `1`)
	inlineErrs, err := engine.Run(inline, instance, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	refErrs, err := engine.Run(viaRef, instance, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inlineErrs) != 1 || len(refErrs) != 1 {
		t.Fatalf("expected exactly one error each, got %+v / %+v", inlineErrs, refErrs)
	}
	if !reflect.DeepEqual(inlineErrs[0].InstancePath, refErrs[0].InstancePath) {
		t.Fatalf("instance paths diverged: %+v vs %+v", inlineErrs[0], refErrs[0])
	}
	wantRefSchemaPath := []string{"definitions", "d", "type"}
	if !reflect.DeepEqual(refErrs[0].SchemaPath, wantRefSchemaPath) {
		t.Fatalf("unexpected ref schema path: %+v", refErrs[0].SchemaPath)
	}
}

func TestRun_NoUnboundedRecursionWithoutRef(t *testing.T) {
	// A deeply nested (but acyclic) schema must terminate under maxDepth=0
	// because structural recursion is bounded by schema size, not by refs.
	inner := `{"type":"string"}`
	s := inner
	for i := 0; i < 200; i++ {
		s = `{"elements":` + s + `}`
	}
	loaded := mustSchema(t, s)
	if _, err := engine.Run(loaded, mustInstance(t, `[]`), 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
