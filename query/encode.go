package query

import (
	"net/url"
	"strings"

	"github.com/vitalvas/paramkit/params"
)

// Encode builds a query string (without the leading '?') from a parameter
// tree. Keys are sorted at every level. Nested keys use literal brackets
// with each key segment escaped, lists repeat "name[]", nulls emit the bare
// name and empty trees or lists emit nothing.
//
// Parse unescapes a name before splitting it, so a nested key containing
// '[' or ']' does not survive a round trip: "a[x%5Dy]" reads back as the
// malformed name "a[x]y]". Such keys are only safe at the top level.
func Encode(tree params.Tree) string {
	var b strings.Builder
	for _, k := range tree.Keys() {
		encodeValue(&b, url.QueryEscape(k), tree[k])
	}
	return b.String()
}

func encodeValue(b *strings.Builder, prefix string, v params.Value) {
	switch v.Kind() {
	case params.KindNull:
		writePair(b, prefix, "", false)
	case params.KindScalar:
		writePair(b, prefix, v.String(), true)
	case params.KindList:
		for _, item := range v.List() {
			writePair(b, prefix+"[]", item, true)
		}
	case params.KindTree:
		t := v.Tree()
		for _, k := range t.Keys() {
			encodeValue(b, prefix+"["+url.QueryEscape(k)+"]", t[k])
		}
	}
}

func writePair(b *strings.Builder, name, value string, withValue bool) {
	if b.Len() > 0 {
		b.WriteByte('&')
	}
	b.WriteString(name)
	if withValue {
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}
}
