// Package scalar round-trips single-value wrapper types as bare JSON
// scalars: a wrapped value is written as its canonical text form and read
// back through a user-supplied parse function, with no nested object.
package scalar

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hengadev/errsx"

	"github.com/bastbu/casejson/pkg/jsontree"
)

// UnexpectedTokenError reports a payload whose root token is neither the
// expected string scalar nor, where allowed, null.
type UnexpectedTokenError struct {
	Kind jsontree.Kind
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("scalar: unexpected JSON %s, expected a string", e.Kind)
}

// Codec converts between a wrapper value T and its bare string form.
// Immutable after construction and safe for concurrent use.
type Codec[T any] struct {
	parse     func(string) (T, error)
	format    func(T) string
	allowNull bool
}

// NewCodec builds a codec from a parse function (text to value) and a
// format function (value to canonical text). Both are required.
func NewCodec[T any](parse func(string) (T, error), format func(T) string, opts ...CodecOption[T]) (*Codec[T], error) {
	var errs errsx.Map
	if parse == nil {
		errs.Set("parse", errors.New("must not be nil"))
	}
	if format == nil {
		errs.Set("format", errors.New("must not be nil"))
	}
	if !errs.IsEmpty() {
		return nil, fmt.Errorf("scalar: invalid arguments: %w", errs.AsError())
	}
	c := &Codec[T]{parse: parse, format: format}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CodecOption configures a Codec at construction time.
type CodecOption[T any] func(*Codec[T])

// WithNullValue makes a JSON null decode to absence (a nil result) instead
// of failing with UnexpectedTokenError.
func WithNullValue[T any]() CodecOption[T] {
	return func(c *Codec[T]) { c.allowNull = true }
}

// Decode reads one payload whose root must be a string token, returning the
// parsed value. A null root yields (nil, nil) when null is allowed. Parse
// failures propagate unchanged.
func (c *Codec[T]) Decode(data []byte) (*T, error) {
	root, err := jsontree.Parse(data)
	if err != nil {
		return nil, err
	}
	switch root.Kind() {
	case jsontree.KindString:
		v, err := c.parse(root.Str())
		if err != nil {
			return nil, err
		}
		return &v, nil
	case jsontree.KindNull:
		if c.allowNull {
			return nil, nil
		}
		return nil, &UnexpectedTokenError{Kind: root.Kind()}
	default:
		return nil, &UnexpectedTokenError{Kind: root.Kind()}
	}
}

// Encode writes the value as a bare JSON string in its canonical text form.
// A nil value encodes as null.
func (c *Codec[T]) Encode(v *T) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return json.Marshal(c.format(*v))
}
