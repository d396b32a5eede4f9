// Package engine walks a verified JDDF schema and a JSON instance in
// lockstep, producing the ordered set of validation errors under the
// max_depth / max_errors limits described by the JDDF specification.
package engine

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/jddf/jddf-go/internal/schema"
)

// abort is the sentinel threaded back up the recursive walk when one of the
// two limits fires. It never crosses the package boundary — Run translates
// it into either a normal error slice (max_errors) or a MaxDepthExceeded
// error (max_depth), per spec.
type abort int

const (
	abortNone abort = iota
	abortMaxDepth
	abortMaxErrors
)

// machine carries the two path stacks and accumulated errors for a single
// validation call. It is not safe for concurrent use; each call to Run gets
// its own machine.
type machine struct {
	root      *schema.Schema
	maxDepth  int
	maxErrors int

	instanceTokens []string
	frames         [][]string // stack of frames; only the top frame is read at error time.
	errors         []ValidationError
}

// Run validates instance against root under the given limits and returns
// the accumulated errors, or a MaxDepthExceeded error with no partial
// results.
func Run(root *schema.Schema, instance any, maxDepth, maxErrors int) ([]ValidationError, error) {
	m := &machine{
		root:      root,
		maxDepth:  maxDepth,
		maxErrors: maxErrors,
		frames:    [][]string{{}},
	}
	if ab := m.validate(root, instance, "", false); ab == abortMaxDepth {
		return nil, MaxDepthExceeded{}
	}
	return m.errors, nil
}

func (m *machine) pushInstanceToken(tok string) { m.instanceTokens = append(m.instanceTokens, tok) }
func (m *machine) popInstanceToken() {
	m.instanceTokens = m.instanceTokens[:len(m.instanceTokens)-1]
}

func (m *machine) pushSchemaToken(tok string) {
	top := len(m.frames) - 1
	m.frames[top] = append(m.frames[top], tok)
}

func (m *machine) popSchemaToken() {
	top := len(m.frames) - 1
	m.frames[top] = m.frames[top][:len(m.frames[top])-1]
}

func (m *machine) pushFrame(initial []string) {
	m.frames = append(m.frames, append([]string(nil), initial...))
}

func (m *machine) popFrame() { m.frames = m.frames[:len(m.frames)-1] }

func (m *machine) withInstanceToken(tok string, fn func() abort) abort {
	m.pushInstanceToken(tok)
	defer m.popInstanceToken()
	return fn()
}

func (m *machine) withSchemaToken(tok string, fn func() abort) abort {
	m.pushSchemaToken(tok)
	defer m.popSchemaToken()
	return fn()
}

func (m *machine) withFrame(initial []string, fn func() abort) abort {
	m.pushFrame(initial)
	defer m.popFrame()
	return fn()
}

// emit appends the current path pair as a new error and reports whether the
// caller must abort because max_errors was just reached.
func (m *machine) emit() abort {
	ip := append([]string(nil), m.instanceTokens...)
	sp := append([]string(nil), m.frames[len(m.frames)-1]...)
	m.errors = append(m.errors, ValidationError{InstancePath: ip, SchemaPath: sp})
	if m.maxErrors != 0 && len(m.errors) == m.maxErrors {
		return abortMaxErrors
	}
	return abortNone
}

// validate dispatches on s's form. parentTag/hasParentTag carry the
// discriminator tag key down into a Properties variant so it is not flagged
// as an additional property.
func (m *machine) validate(s *schema.Schema, instance any, parentTag string, hasParentTag bool) abort {
	switch f := s.Form.(type) {
	case schema.EmptyForm:
		return abortNone
	case schema.RefForm:
		return m.validateRef(f, instance)
	case schema.TypeForm:
		return m.validateType(f, instance)
	case schema.EnumForm:
		return m.validateEnum(f, instance)
	case schema.ElementsForm:
		return m.validateElements(f, instance)
	case schema.PropertiesForm:
		return m.validateProperties(f, instance, parentTag, hasParentTag)
	case schema.ValuesForm:
		return m.validateValues(f, instance)
	case schema.DiscriminatorForm:
		return m.validateDiscriminator(f, instance)
	default:
		return abortNone
	}
}

func (m *machine) validateRef(f schema.RefForm, instance any) abort {
	if m.maxDepth != 0 && len(m.frames) == m.maxDepth {
		return abortMaxDepth
	}
	return m.withFrame([]string{"definitions", f.Name}, func() abort {
		return m.validate(m.root.Definitions[f.Name], instance, "", false)
	})
}

func (m *machine) validateType(f schema.TypeForm, instance any) abort {
	return m.withSchemaToken("type", func() abort {
		if typeMatches(f.Type, instance) {
			return abortNone
		}
		return m.emit()
	})
}

func (m *machine) validateEnum(f schema.EnumForm, instance any) abort {
	return m.withSchemaToken("enum", func() abort {
		s, ok := instance.(string)
		if !ok {
			return m.emit()
		}
		if _, in := f.Set[s]; !in {
			return m.emit()
		}
		return abortNone
	})
}

func (m *machine) validateElements(f schema.ElementsForm, instance any) abort {
	return m.withSchemaToken("elements", func() abort {
		arr, ok := instance.([]any)
		if !ok {
			return m.emit()
		}
		for i, elem := range arr {
			e := elem
			ab := m.withInstanceToken(strconv.Itoa(i), func() abort {
				return m.validate(f.Schema, e, "", false)
			})
			if ab != abortNone {
				return ab
			}
		}
		return abortNone
	})
}

func (m *machine) validateValues(f schema.ValuesForm, instance any) abort {
	return m.withSchemaToken("values", func() abort {
		obj, ok := instance.(map[string]any)
		if !ok {
			return m.emit()
		}
		for _, key := range sortedKeys(obj) {
			k := key
			ab := m.withInstanceToken(k, func() abort {
				return m.validate(f.Schema, obj[k], "", false)
			})
			if ab != abortNone {
				return ab
			}
		}
		return abortNone
	})
}

func (m *machine) validateProperties(f schema.PropertiesForm, instance any, parentTag string, hasParentTag bool) abort {
	obj, isObj := instance.(map[string]any)
	if !isObj {
		tok := "optionalProperties"
		if f.Required != nil {
			tok = "properties"
		}
		return m.withSchemaToken(tok, func() abort { return m.emit() })
	}

	if f.Required != nil {
		if ab := m.withSchemaToken("properties", func() abort {
			for _, key := range sortedKeys(f.Required) {
				k, sub := key, f.Required[key]
				ab := m.withSchemaToken(k, func() abort {
					val, present := obj[k]
					if !present {
						return m.emit()
					}
					return m.withInstanceToken(k, func() abort {
						return m.validate(sub, val, "", false)
					})
				})
				if ab != abortNone {
					return ab
				}
			}
			return abortNone
		}); ab != abortNone {
			return ab
		}
	}

	if f.Optional != nil {
		if ab := m.withSchemaToken("optionalProperties", func() abort {
			for _, key := range sortedKeys(f.Optional) {
				k, sub := key, f.Optional[key]
				ab := m.withSchemaToken(k, func() abort {
					val, present := obj[k]
					if !present {
						return abortNone
					}
					return m.withInstanceToken(k, func() abort {
						return m.validate(sub, val, "", false)
					})
				})
				if ab != abortNone {
					return ab
				}
			}
			return abortNone
		}); ab != abortNone {
			return ab
		}
	}

	if !f.AdditionalProperties {
		for _, key := range sortedKeys(obj) {
			k := key
			if _, inReq := f.Required[k]; inReq {
				continue
			}
			if _, inOpt := f.Optional[k]; inOpt {
				continue
			}
			if hasParentTag && k == parentTag {
				continue
			}
			ab := m.withInstanceToken(k, func() abort { return m.emit() })
			if ab != abortNone {
				return ab
			}
		}
	}
	return abortNone
}

func (m *machine) validateDiscriminator(f schema.DiscriminatorForm, instance any) abort {
	return m.withSchemaToken("discriminator", func() abort {
		obj, ok := instance.(map[string]any)
		if !ok {
			return m.emit()
		}
		rawTag, present := obj[f.Tag]
		if !present {
			return m.withSchemaToken("tag", func() abort { return m.emit() })
		}
		tagStr, ok := rawTag.(string)
		if !ok {
			return m.withSchemaToken("tag", func() abort {
				return m.withInstanceToken(f.Tag, func() abort { return m.emit() })
			})
		}
		variant, ok := f.Mapping[tagStr]
		if !ok {
			return m.withSchemaToken("mapping", func() abort {
				return m.withInstanceToken(f.Tag, func() abort { return m.emit() })
			})
		}
		return m.withSchemaToken("mapping", func() abort {
			return m.withSchemaToken(tagStr, func() abort {
				return m.validate(variant, instance, f.Tag, true)
			})
		})
	})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// numberStringer matches both encoding/json.Number and the drop-in
// json.Number type from third-party codecs, without importing either.
type numberStringer interface{ String() string }

func numericOf(v any) (f float64, ok bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case numberStringer:
		parsed, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func typeMatches(t schema.PrimitiveType, instance any) bool {
	switch t {
	case schema.Boolean:
		_, ok := instance.(bool)
		return ok
	case schema.String:
		_, ok := instance.(string)
		return ok
	case schema.Timestamp:
		s, ok := instance.(string)
		if !ok {
			return false
		}
		_, err := time.Parse(time.RFC3339Nano, s)
		return err == nil
	case schema.Float32, schema.Float64:
		_, ok := numericOf(instance)
		return ok
	default:
		f, ok := numericOf(instance)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
			return false
		}
		lo, hi := intRange(t)
		return f >= lo && f <= hi
	}
}

func intRange(t schema.PrimitiveType) (float64, float64) {
	switch t {
	case schema.Int8:
		return -128, 127
	case schema.Uint8:
		return 0, 255
	case schema.Int16:
		return -32768, 32767
	case schema.Uint16:
		return 0, 65535
	case schema.Int32:
		return -2147483648, 2147483647
	case schema.Uint32:
		return 0, 4294967295
	default:
		return 0, 0
	}
}
