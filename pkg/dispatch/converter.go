// Package dispatch decodes polymorphic JSON values by inspecting a
// discriminator embedded in the payload, selecting the registered case for
// its value and delegating the member-by-member decode to the underlying
// serializer for that concrete type.
package dispatch

import (
	"encoding/json"
	"errors"

	"github.com/hengadev/errsx"

	"github.com/bastbu/casejson/pkg/jsontree"
)

// Option configures a Converter at construction time.
type Option func(*options)

type options struct {
	caseInsensitive bool
	strictCases     bool
	decodeOnly      bool
	validate        bool
}

// WithCaseInsensitive makes the named-field discriminator lookup ignore the
// case of the field name. Only meaningful with NewConverter.
func WithCaseInsensitive() Option {
	return func(o *options) { o.caseInsensitive = true }
}

// WithStrictCases turns a duplicate discriminator value in the case list
// into a construction-time error. The default keeps the documented
// last-write-wins behavior.
func WithStrictCases() Option {
	return func(o *options) { o.strictCases = true }
}

// WithDecodeOnly disables the write path; Encode reports
// EncodeUnsupportedError.
func WithDecodeOnly() Option {
	return func(o *options) { o.decodeOnly = true }
}

// WithValidation runs struct validation (validate tags) against every
// decoded case before it is returned.
func WithValidation() Option {
	return func(o *options) { o.validate = true }
}

// Converter decodes values of the supertype T from payloads carrying a
// discriminator of type K. A Converter is immutable after construction and
// safe for concurrent use; per-call state lives in the DecodeContext.
type Converter[T any, K comparable] struct {
	supertype  string
	extract    ExtractorFunc[K]
	resolve    ResolverFunc[T, K]
	decodeOnly bool
	validate   bool
}

// NewConverter builds a converter that reads the discriminator from the
// named field of the root object and resolves it against the given case
// list. The case list may be empty; every decode then fails with
// UnhandledCaseError.
func NewConverter[T any, K comparable](supertype, field string, cases []Case[T, K], opts ...Option) (*Converter[T, K], error) {
	o := buildOptions(opts)
	var errs errsx.Map
	if supertype == "" {
		errs.Set("supertype", errors.New("must not be empty"))
	}
	if field == "" {
		errs.Set("field", errors.New("must not be empty"))
	}
	registry, err := NewRegistry(cases, o.strictCases)
	if err != nil {
		errs.Set("cases", err)
	}
	if !errs.IsEmpty() {
		return nil, &ArgumentError{Errs: errs}
	}
	return &Converter[T, K]{
		supertype:  supertype,
		extract:    FieldExtractor[K](field, o.caseInsensitive),
		resolve:    registry.Resolve,
		decodeOnly: o.decodeOnly,
		validate:   o.validate,
	}, nil
}

// NewConverterFunc builds a converter from an arbitrary extractor and
// resolver, for discriminators that are computed rather than read from a
// single field.
func NewConverterFunc[T any, K comparable](supertype string, extract ExtractorFunc[K], resolve ResolverFunc[T, K], opts ...Option) (*Converter[T, K], error) {
	o := buildOptions(opts)
	var errs errsx.Map
	if supertype == "" {
		errs.Set("supertype", errors.New("must not be empty"))
	}
	if extract == nil {
		errs.Set("extract", errors.New("must not be nil"))
	}
	if resolve == nil {
		errs.Set("resolve", errors.New("must not be nil"))
	}
	if !errs.IsEmpty() {
		return nil, &ArgumentError{Errs: errs}
	}
	return &Converter[T, K]{
		supertype:  supertype,
		extract:    extract,
		resolve:    resolve,
		decodeOnly: o.decodeOnly,
		validate:   o.validate,
	}, nil
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Supertype returns the name used in diagnostics and suppression.
func (c *Converter[T, K]) Supertype() string { return c.supertype }

// Decode decodes one payload with a fresh DecodeContext.
func (c *Converter[T, K]) Decode(data []byte) (T, error) {
	return c.DecodeWithContext(NewDecodeContext(), data)
}

// DecodeWithContext decodes one payload inside an existing suppression
// context. A JSON null root yields the zero value of T without consulting
// the registry. Faults from the matched case's decoder propagate unwrapped.
func (c *Converter[T, K]) DecodeWithContext(ctx *DecodeContext, data []byte) (T, error) {
	var zero T
	if ctx == nil {
		ctx = NewDecodeContext()
	}
	if ctx.IsSuppressed(c.supertype) {
		return zero, &ReentrantDecodeError{Supertype: c.supertype}
	}
	root, err := jsontree.Parse(data)
	if err != nil {
		return zero, err
	}
	if root.Kind() == jsontree.KindNull {
		return zero, nil
	}
	if root.Kind() != jsontree.KindObject {
		return zero, &NotAnObjectError{Supertype: c.supertype, Kind: root.Kind()}
	}
	value, err := c.extract(root.Object())
	if err != nil {
		return zero, c.describeExtractionError(err)
	}
	decode, ok := c.resolve(value)
	if !ok {
		return zero, &UnhandledCaseError{Supertype: c.supertype, Value: value}
	}
	release := ctx.Suppress(c.supertype)
	defer release()
	// The matched decoder sees the original payload, not the consumed tree
	// view, so fields that were never inspected during discrimination are
	// still present.
	out, err := decode(ctx, data)
	if err != nil {
		return zero, err
	}
	if c.validate {
		if err := validateCase(out); err != nil {
			return zero, err
		}
	}
	return out, nil
}

// DecodeAny is Decode for call sites that cannot name T.
func (c *Converter[T, K]) DecodeAny(data []byte) (any, error) {
	return c.Decode(data)
}

// Encode serializes the concrete runtime value with the default encoding
// for its actual type; the converter adds no structure of its own on write.
func (c *Converter[T, K]) Encode(v T) ([]byte, error) {
	if c.decodeOnly {
		return nil, &EncodeUnsupportedError{Supertype: c.supertype}
	}
	return json.Marshal(v)
}

// describeExtractionError stamps the supertype onto known extractor faults
// and classifies anything else as a malformed discriminator.
func (c *Converter[T, K]) describeExtractionError(err error) error {
	var missing *MissingDiscriminatorError
	if errors.As(err, &missing) {
		missing.Supertype = c.supertype
		return missing
	}
	var malformed *MalformedDiscriminatorError
	if errors.As(err, &malformed) {
		malformed.Supertype = c.supertype
		return malformed
	}
	return &MalformedDiscriminatorError{Supertype: c.supertype, Err: err}
}
