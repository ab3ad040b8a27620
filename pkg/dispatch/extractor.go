package dispatch

import (
	"encoding/json"

	"github.com/bastbu/casejson/pkg/jsontree"
)

// ExtractorFunc pulls the strongly typed discriminator value out of the
// root object view. It operates on the materialized view only and must not
// consume any underlying reader. Errors other than
// MissingDiscriminatorError and MalformedDiscriminatorError are reported by
// the converter as a malformed discriminator.
type ExtractorFunc[K comparable] func(root jsontree.Object) (K, error)

// FieldExtractor returns an extractor that reads a single named field from
// the root object and decodes it into K. With caseInsensitive set, field
// names match ignoring case, preferring an exact-case member when both
// exist.
func FieldExtractor[K comparable](name string, caseInsensitive bool) ExtractorFunc[K] {
	return func(root jsontree.Object) (K, error) {
		var zero K
		var member jsontree.Value
		var ok bool
		if caseInsensitive {
			member, ok = root.GetFold(name)
		} else {
			member, ok = root.Get(name)
		}
		if !ok {
			return zero, &MissingDiscriminatorError{Field: name}
		}
		var out K
		if err := json.Unmarshal(member.Raw(), &out); err != nil {
			return zero, &MalformedDiscriminatorError{Field: name, Err: err}
		}
		return out, nil
	}
}
