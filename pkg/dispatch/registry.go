package dispatch

import (
	"errors"
	"fmt"

	"github.com/hengadev/errsx"
)

// DecodeFunc materializes one concrete case from the original payload
// bytes. Implementations receive the suppression context so nested decodes
// of other polymorphic values can compose.
type DecodeFunc[T any] func(ctx *DecodeContext, data []byte) (T, error)

// Case pairs a discriminator value with the decoder for one concrete type.
type Case[T any, K comparable] struct {
	Value  K
	Decode DecodeFunc[T]
}

// ResolverFunc maps a discriminator value to its decoder. A false return
// means "no match"; the converter decides what that means.
type ResolverFunc[T any, K comparable] func(K) (DecodeFunc[T], bool)

// Registry is an immutable case table built once at construction time. It
// is safe for concurrent reads.
type Registry[T any, K comparable] struct {
	cases map[K]DecodeFunc[T]
}

// NewRegistry builds a registry from an ordered case list. When two entries
// share a discriminator value the later entry wins; with strict enabled a
// duplicate is a construction-time ArgumentError instead. An empty list is
// legal and yields a registry that never matches.
func NewRegistry[T any, K comparable](cases []Case[T, K], strict bool) (*Registry[T, K], error) {
	table := make(map[K]DecodeFunc[T], len(cases))
	var errs errsx.Map
	for i, c := range cases {
		if c.Decode == nil {
			errs.Set(fmt.Sprintf("cases[%d]", i), errors.New("decoder must not be nil"))
			continue
		}
		if _, dup := table[c.Value]; dup && strict {
			errs.Set(fmt.Sprintf("cases[%d]", i), fmt.Errorf("duplicate discriminator value %v", c.Value))
			continue
		}
		table[c.Value] = c.Decode
	}
	if !errs.IsEmpty() {
		return nil, &ArgumentError{Errs: errs}
	}
	return &Registry[T, K]{cases: table}, nil
}

// Resolve implements ResolverFunc over the built table.
func (r *Registry[T, K]) Resolve(value K) (DecodeFunc[T], bool) {
	fn, ok := r.cases[value]
	return fn, ok
}

// Len returns the number of distinct registered cases.
func (r *Registry[T, K]) Len() int { return len(r.cases) }
