package schema

import (
	"github.com/jddf/jddf-go/internal/i18n"
)

// InvalidSchema is returned by FromJSON and Verify when the input does not
// satisfy the syntactic or semantic invariants of a JDDF schema.
type InvalidSchema struct {
	Reason string // machine-readable reason code, see internal/i18n's dictionaries.
}

func (e *InvalidSchema) Error() string {
	return "invalid schema: " + i18n.T(e.Reason, nil)
}

func invalid(reason string) error { return &InvalidSchema{Reason: reason} }

// the closed set of keyword keys the loader inspects when detecting a form.
const (
	kwRef                = "ref"
	kwType               = "type"
	kwEnum               = "enum"
	kwElements           = "elements"
	kwProperties         = "properties"
	kwOptionalProperties = "optionalProperties"
	kwAdditionalProps    = "additionalProperties"
	kwValues             = "values"
	kwDiscriminator      = "discriminator"
	kwDefinitions        = "definitions"
)

// FromJSON converts a decoded JSON value into a Schema, recursively.
func FromJSON(v any) (*Schema, error) {
	return fromJSON(v)
}

func fromJSON(v any) (*Schema, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, invalid("schema_not_object")
	}

	s := &Schema{}

	if rawDefs, present := obj[kwDefinitions]; present {
		defsObj, ok := rawDefs.(map[string]any)
		if !ok {
			return nil, invalid("definitions_not_object")
		}
		defs := make(map[string]*Schema, len(defsObj))
		for name, rawDef := range defsObj {
			def, err := fromJSON(rawDef)
			if err != nil {
				return nil, err
			}
			defs[name] = def
		}
		s.Definitions = defs
	}

	form, err := detectForm(obj)
	if err != nil {
		return nil, err
	}
	s.Form = form
	return s, nil
}

// detectForm builds every candidate the loader recognizes and requires
// exactly one to be non-nil.
func detectForm(obj map[string]any) (Form, error) {
	if !anyKeywordPresent(obj) {
		return EmptyForm{}, nil
	}

	var candidates []Form

	if raw, present := obj[kwRef]; present {
		name, ok := raw.(string)
		if !ok {
			return nil, invalid("invalid_ref")
		}
		candidates = append(candidates, RefForm{Name: name})
	}

	if raw, present := obj[kwType]; present {
		name, ok := raw.(string)
		if !ok {
			return nil, invalid("invalid_type_name")
		}
		t, ok := ParsePrimitiveType(name)
		if !ok {
			return nil, invalid("invalid_type_name")
		}
		candidates = append(candidates, TypeForm{Type: t})
	}

	if raw, present := obj[kwEnum]; present {
		arr, ok := raw.([]any)
		if !ok || len(arr) == 0 {
			return nil, invalid("invalid_enum")
		}
		values := make([]string, 0, len(arr))
		set := make(map[string]struct{}, len(arr))
		for _, item := range arr {
			str, ok := item.(string)
			if !ok {
				return nil, invalid("invalid_enum")
			}
			if _, dup := set[str]; dup {
				return nil, invalid("invalid_enum")
			}
			set[str] = struct{}{}
			values = append(values, str)
		}
		candidates = append(candidates, EnumForm{Values: values, Set: set})
	}

	if raw, present := obj[kwElements]; present {
		sub, err := fromJSON(raw)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, ElementsForm{Schema: sub})
	}

	_, hasReq := obj[kwProperties]
	_, hasOpt := obj[kwOptionalProperties]
	if hasReq || hasOpt {
		pf := PropertiesForm{}
		if hasReq {
			req, err := loadPropertyMap(obj[kwProperties], "invalid_properties")
			if err != nil {
				return nil, err
			}
			pf.Required = req
		}
		if hasOpt {
			opt, err := loadPropertyMap(obj[kwOptionalProperties], "invalid_optional")
			if err != nil {
				return nil, err
			}
			pf.Optional = opt
		}
		if raw, present := obj[kwAdditionalProps]; present {
			b, ok := raw.(bool)
			if !ok {
				return nil, invalid("invalid_additional")
			}
			pf.AdditionalProperties = b
		}
		candidates = append(candidates, pf)
	}

	if raw, present := obj[kwValues]; present {
		sub, err := fromJSON(raw)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, ValuesForm{Schema: sub})
	}

	if raw, present := obj[kwDiscriminator]; present {
		df, err := loadDiscriminator(raw)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, df)
	}

	if len(candidates) != 1 {
		return nil, invalid("invalid_form")
	}
	return candidates[0], nil
}

func anyKeywordPresent(obj map[string]any) bool {
	for _, k := range []string{kwRef, kwType, kwEnum, kwElements, kwProperties, kwOptionalProperties, kwAdditionalProps, kwValues, kwDiscriminator} {
		if _, ok := obj[k]; ok {
			return true
		}
	}
	return false
}

func loadPropertyMap(raw any, invalidReason string) (map[string]*Schema, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, invalid(invalidReason)
	}
	out := make(map[string]*Schema, len(obj))
	for name, rawChild := range obj {
		child, err := fromJSON(rawChild)
		if err != nil {
			return nil, err
		}
		out[name] = child
	}
	return out, nil
}

func loadDiscriminator(raw any) (Form, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, invalid("invalid_discriminator")
	}
	tag, ok := obj["tag"].(string)
	if !ok {
		return nil, invalid("invalid_discriminator")
	}
	mappingRaw, ok := obj["mapping"].(map[string]any)
	if !ok {
		return nil, invalid("invalid_discriminator")
	}
	mapping := make(map[string]*Schema, len(mappingRaw))
	for name, rawChild := range mappingRaw {
		child, err := fromJSON(rawChild)
		if err != nil {
			return nil, err
		}
		mapping[name] = child
	}
	return DiscriminatorForm{Tag: tag, Mapping: mapping}, nil
}
