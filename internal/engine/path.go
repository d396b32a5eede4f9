package engine

import "strings"

// pointer renders an ordered token sequence as an RFC 6901 JSON Pointer,
// escaping '~' and '/' in each token. It backs InstancePointer and
// SchemaPointer, for callers and corpora that work with paths as pointer
// strings rather than token arrays.
func pointer(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	var b strings.Builder
	for _, t := range tokens {
		b.WriteByte('/')
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(t, "~", "~0"), "/", "~1"))
	}
	return b.String()
}

// splitPointer converts a JSON Pointer string into its ordered tokens,
// dropping the leading empty element and unescaping '~1'/'~0'.
func splitPointer(p string) []string {
	if p == "" {
		return nil
	}
	parts := strings.Split(p, "/")
	if len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}
	out := make([]string, len(parts))
	for i, t := range parts {
		out[i] = strings.ReplaceAll(strings.ReplaceAll(t, "~1", "/"), "~0", "~")
	}
	return out
}

// InstancePointer renders InstancePath as a JSON Pointer string.
func (e ValidationError) InstancePointer() string { return pointer(e.InstancePath) }

// SchemaPointer renders SchemaPath as a JSON Pointer string.
func (e ValidationError) SchemaPointer() string { return pointer(e.SchemaPath) }
