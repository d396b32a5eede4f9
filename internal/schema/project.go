package schema

// ToJSON re-projects a loaded Schema back into the decoded-JSON shape
// FromJSON accepts: nested map[string]any/[]any values built from the
// closed JDDF keyword set. Reloading the result with FromJSON yields a
// Schema equivalent to s.
func ToJSON(s *Schema) any {
	obj := map[string]any{}

	if len(s.Definitions) > 0 {
		defs := make(map[string]any, len(s.Definitions))
		for name, def := range s.Definitions {
			defs[name] = ToJSON(def)
		}
		obj[kwDefinitions] = defs
	}

	switch f := s.Form.(type) {
	case EmptyForm:
		// no keywords
	case RefForm:
		obj[kwRef] = f.Name
	case TypeForm:
		obj[kwType] = f.Type.String()
	case EnumForm:
		values := make([]any, len(f.Values))
		for i, v := range f.Values {
			values[i] = v
		}
		obj[kwEnum] = values
	case ElementsForm:
		obj[kwElements] = ToJSON(f.Schema)
	case PropertiesForm:
		if f.Required != nil {
			obj[kwProperties] = projectPropertyMap(f.Required)
		}
		if f.Optional != nil {
			obj[kwOptionalProperties] = projectPropertyMap(f.Optional)
		}
		obj[kwAdditionalProps] = f.AdditionalProperties
	case ValuesForm:
		obj[kwValues] = ToJSON(f.Schema)
	case DiscriminatorForm:
		mapping := make(map[string]any, len(f.Mapping))
		for name, sub := range f.Mapping {
			mapping[name] = ToJSON(sub)
		}
		obj[kwDiscriminator] = map[string]any{
			"tag":     f.Tag,
			"mapping": mapping,
		}
	}

	return obj
}

func projectPropertyMap(m map[string]*Schema) map[string]any {
	out := make(map[string]any, len(m))
	for name, sub := range m {
		out[name] = ToJSON(sub)
	}
	return out
}
