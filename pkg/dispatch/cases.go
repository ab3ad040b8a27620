package dispatch

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// When registers the common case: decode the payload into the concrete type
// C with the underlying serializer and return it as the supertype T. The
// produced decoder never consults a dispatch converter, so decoding a
// matched case is bounded by construction.
func When[C any, T any, K comparable](value K) Case[T, K] {
	return Case[T, K]{Value: value, Decode: decodeAs[C, T]}
}

// WhenFunc registers a hand-written decoder for one discriminator value.
func WhenFunc[T any, K comparable](value K, fn DecodeFunc[T]) Case[T, K] {
	return Case[T, K]{Value: value, Decode: fn}
}

func decodeAs[C any, T any](_ *DecodeContext, data []byte) (T, error) {
	var zero T
	c := new(C)
	if err := json.Unmarshal(data, c); err != nil {
		return zero, err
	}
	// The concrete type may satisfy T by value or through a pointer
	// receiver; accept either.
	if out, ok := any(*c).(T); ok {
		return out, nil
	}
	if out, ok := any(c).(T); ok {
		return out, nil
	}
	return zero, fmt.Errorf("dispatch: %T does not satisfy the declared supertype %s", *c, reflect.TypeOf(&zero).Elem())
}
