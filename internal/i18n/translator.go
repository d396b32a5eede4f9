// Package i18n retrieves localized messages for the reasons the schema
// loader and verifier reject an input, in the style of a small
// dictionary-based translator rather than formatting strings inline at
// every call site.
package i18n

// Translator resolves a reason code (and optional metadata) into a
// human-readable message.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictionaries maps a language tag to its message table. A lang with no
// entry here (including the zero value "") falls back to "en" in Message,
// so callers never need to pre-validate a language string.
var dictionaries = map[string]map[string]string{
	"en": dictEN,
	"ja": dictJA,
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	dict, ok := dictionaries[t.lang]
	if !ok {
		dict = dictionaries["en"]
	}
	if m, ok := dict[code]; ok {
		return expand(m, data)
	}
	return code
}

func expand(msg string, data map[string]string) string {
	if len(data) == 0 {
		return msg
	}
	out := msg
	for k, v := range data {
		out += " (" + k + "=" + v + ")"
	}
	return out
}

var dictEN = map[string]string{
	"schema_not_object":       "schema must be object",
	"definitions_not_object":  "definitions must be object",
	"invalid_form":            "invalid form",
	"invalid_ref":             "ref must be string",
	"invalid_type_name":       "type must be one of the eleven valid type names",
	"invalid_enum":            "enum must be a non-empty array of distinct strings",
	"invalid_elements":        "elements must be object",
	"invalid_properties":      "properties must be object",
	"invalid_optional":        "optionalProperties must be object",
	"invalid_additional":      "additionalProperties must be boolean",
	"invalid_values":          "values must be object",
	"invalid_discriminator":   "discriminator must be object with string tag and object mapping",
	"non_root_definitions":    "definitions may appear only on the root schema",
	"ref_target_missing":      "ref does not resolve against root definitions",
	"properties_overlap":      "required and optional property sets must be disjoint",
	"discriminator_not_props": "discriminator mapping values must be in properties form",
	"discriminator_tag_clash": "discriminator mapping must not declare the tag as a property",
}

var dictJA = map[string]string{
	"schema_not_object":       "スキーマはオブジェクトである必要があります",
	"definitions_not_object":  "definitionsはオブジェクトである必要があります",
	"invalid_form":            "不正なフォームです",
	"invalid_ref":             "refは文字列である必要があります",
	"invalid_type_name":       "typeは規定の11種類のいずれかである必要があります",
	"invalid_enum":            "enumは重複のない空でない文字列配列である必要があります",
	"invalid_elements":        "elementsはオブジェクトである必要があります",
	"invalid_properties":      "propertiesはオブジェクトである必要があります",
	"invalid_optional":        "optionalPropertiesはオブジェクトである必要があります",
	"invalid_additional":      "additionalPropertiesは真偽値である必要があります",
	"invalid_values":          "valuesはオブジェクトである必要があります",
	"invalid_discriminator":   "discriminatorは文字列tagとオブジェクトmappingを持つ必要があります",
	"non_root_definitions":    "definitionsはルートスキーマにのみ存在できます",
	"ref_target_missing":      "refがroot definitionsに解決できません",
	"properties_overlap":      "requiredとoptionalのキー集合は互いに素である必要があります",
	"discriminator_not_props": "discriminatorのmapping値はproperties形式である必要があります",
	"discriminator_tag_clash": "discriminatorのmappingにtagキーを含めることはできません",
}

// active is package state: whichever Translator T() should consult right
// now. The zero-value dictTranslator resolves to "en" through Message's
// dictionaries lookup, so there is no separate "en" literal to keep in
// sync with the fallback above.
var active Translator = dictTranslator{}

// SetLanguage switches the built-in Translator to lang. Any lang without a
// dictionary entry is left as-is and resolved to "en" by Message.
func SetLanguage(lang string) { active = dictTranslator{lang: lang} }

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). Passing nil restores the built-in dictionary
// Translator at its default language.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{}
	}
	active = tr
}

// T fetches a message for the given code using the active Translator.
func T(code string, data map[string]string) string { return active.Message(code, data) }
