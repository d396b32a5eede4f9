// Package jddf validates JSON instances against JSON Data Definition Format
// (JDDF) schemas.
//
// - Load a schema from a decoded JSON value with FromJSON.
// - Check the schema's cross-form invariants (ref targets, disjoint property
//   sets, discriminator constraints) with Verify.
// - Validate a decoded JSON instance against a verified schema with
//   Validate, under a Config that bounds recursion depth and error count.
//
// Design policy:
//   - Keep only public APIs in the root package; put detailed implementations
//     under internal/.
//   - Errors are ordinary values: *InvalidSchema and MaxDepthExceeded satisfy
//     error and are discoverable with errors.As.
//
// Typical usage:
//
//	s, err := jddf.FromJSON(rawSchema)
//	if err != nil { ... }
//	if err := jddf.Verify(s); err != nil { ... }
//	errs, err := jddf.Validate(jddf.Config{MaxDepth: 32}, s, instance)
package jddf
