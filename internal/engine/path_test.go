package engine

import (
	"reflect"
	"testing"
)

// TestPointerSplitPointerRoundTrip exercises the corpus interop conversion
// described for the Error JSON surface: a JSON Pointer string produced by
// pointer must split back into the same tokens via splitPointer, including
// tokens containing the two characters RFC 6901 escapes.
func TestPointerSplitPointerRoundTrip(t *testing.T) {
	cases := [][]string{
		nil,
		{"properties", "name"},
		{"elements", "0"},
		{"a/b", "c~d"},
	}
	for _, tokens := range cases {
		p := pointer(tokens)
		got := splitPointer(p)
		want := tokens
		if len(want) == 0 {
			want = nil
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("pointer(%v) = %q, splitPointer(%q) = %v, want %v", tokens, p, p, got, want)
		}
	}
}

// TestSplitPointer_CorpusStrings checks the literal conversion spec.md §6
// describes for the JDDF reference corpus: split on '/', drop the leading
// empty element from the leading slash, unescape '~1' and '~0'.
func TestSplitPointer_CorpusStrings(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"/", []string{""}},
		{"/foo/0", []string{"foo", "0"}},
		{"/a~1b/c~0d", []string{"a/b", "c~d"}},
	}
	for _, c := range cases {
		if got := splitPointer(c.in); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("splitPointer(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
