package jddf

import (
	"github.com/jddf/jddf-go/internal/engine"
	ischema "github.com/jddf/jddf-go/internal/schema"
)

// InvalidSchema is returned by FromJSON or Verify when the input does not
// satisfy the syntactic or semantic invariants of a JDDF schema. It carries
// a human-readable reason naming the violated rule.
type InvalidSchema = ischema.InvalidSchema

// MaxDepthExceeded is returned by Validate when a Ref traversal would
// exceed Config.MaxDepth. No partial errors are returned alongside it.
type MaxDepthExceeded = engine.MaxDepthExceeded

// asInvalidSchema narrows an internal/schema error to *InvalidSchema so
// FromJSON/Verify never leak a bare error interface value.
func asInvalidSchema(err error) error {
	if err == nil {
		return nil
	}
	if is, ok := err.(*ischema.InvalidSchema); ok {
		return is
	}
	return err
}
