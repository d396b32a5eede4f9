package jddf

import (
	"github.com/jddf/jddf-go/internal/engine"
)

// ValidationError locates one validation failure: InstancePath points at
// the rejected value in the instance, SchemaPath points at the rejecting
// keyword in the schema. Both are ordered root-to-leaf and marshal to the
// {instance_path, schema_path} wire shape via github.com/goccy/go-json (or
// any encoding/json-compatible encoder, since the struct tags are the same).
type ValidationError = engine.ValidationError

// Validate walks schema and instance in lockstep and returns the complete
// set of validation errors, or a MaxDepthExceeded error if a Ref chain
// would exceed cfg.MaxDepth. If cfg.MaxErrors is nonzero, the returned slice
// has at most that many elements — validation stops the instant the Nth
// error is produced.
//
// schema must have already passed Verify; Validate does not re-check the
// cross-form invariants Verify enforces.
func Validate(cfg Config, s *Schema, instance any) ([]ValidationError, error) {
	return engine.Run(s, instance, cfg.MaxDepth, cfg.MaxErrors)
}
