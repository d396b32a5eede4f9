package schema

// Verify checks the semantic invariants that cross sub-schemas: definitions
// placement, ref resolution, disjoint property sets, and discriminator
// mapping shape. s is treated as the root.
func Verify(s *Schema) error {
	return verify(s, s)
}

func verify(s *Schema, root *Schema) error {
	if s.Definitions != nil && s != root {
		return invalid("non_root_definitions")
	}
	for _, def := range s.Definitions {
		if err := verify(def, root); err != nil {
			return err
		}
	}

	switch f := s.Form.(type) {
	case EmptyForm, TypeForm, EnumForm:
		// no further checks
	case RefForm:
		if root.Definitions == nil {
			return invalid("ref_target_missing")
		}
		if _, ok := root.Definitions[f.Name]; !ok {
			return invalid("ref_target_missing")
		}
	case ElementsForm:
		return verify(f.Schema, root)
	case ValuesForm:
		return verify(f.Schema, root)
	case PropertiesForm:
		return verifyProperties(f, root)
	case DiscriminatorForm:
		return verifyDiscriminator(f, root)
	}
	return nil
}

func verifyProperties(f PropertiesForm, root *Schema) error {
	for name := range f.Required {
		if _, dup := f.Optional[name]; dup {
			return invalid("properties_overlap")
		}
	}
	for _, sub := range f.Required {
		if err := verify(sub, root); err != nil {
			return err
		}
	}
	for _, sub := range f.Optional {
		if err := verify(sub, root); err != nil {
			return err
		}
	}
	return nil
}

func verifyDiscriminator(f DiscriminatorForm, root *Schema) error {
	for _, sub := range f.Mapping {
		pf, ok := sub.Form.(PropertiesForm)
		if !ok {
			return invalid("discriminator_not_props")
		}
		if _, clash := pf.Required[f.Tag]; clash {
			return invalid("discriminator_tag_clash")
		}
		if _, clash := pf.Optional[f.Tag]; clash {
			return invalid("discriminator_tag_clash")
		}
		if err := verify(sub, root); err != nil {
			return err
		}
	}
	return nil
}
