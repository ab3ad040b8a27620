package dispatch

import (
	"fmt"

	"github.com/hengadev/errsx"

	"github.com/bastbu/casejson/pkg/jsontree"
)

// ArgumentError reports invalid constructor arguments. Individual argument
// failures are keyed by argument name.
type ArgumentError struct {
	Errs errsx.Map
}

// Error implements the error interface for ArgumentError.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("dispatch: invalid arguments: %v", e.Errs.AsError())
}

// Unwrap exposes the aggregated argument errors.
func (e *ArgumentError) Unwrap() error { return e.Errs.AsError() }

// NotAnObjectError reports a root payload that is not a keyed object and so
// can never match any case.
type NotAnObjectError struct {
	Supertype string
	Kind      jsontree.Kind
}

func (e *NotAnObjectError) Error() string {
	return fmt.Sprintf("dispatch: cannot decode %s: root is a JSON %s, expected an object", e.Supertype, e.Kind)
}

// MissingDiscriminatorError reports that the discriminator field is absent
// from the root object.
type MissingDiscriminatorError struct {
	Supertype string
	Field     string
}

func (e *MissingDiscriminatorError) Error() string {
	return fmt.Sprintf("dispatch: cannot decode %s: discriminator field %q is missing", e.Supertype, e.Field)
}

// MalformedDiscriminatorError reports a discriminator that is present but
// cannot be decoded into the declared discriminator type.
type MalformedDiscriminatorError struct {
	Supertype string
	Field     string
	Err       error
}

func (e *MalformedDiscriminatorError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("dispatch: cannot decode %s: discriminator extraction failed: %v", e.Supertype, e.Err)
	}
	return fmt.Sprintf("dispatch: cannot decode %s: discriminator field %q is malformed: %v", e.Supertype, e.Field, e.Err)
}

func (e *MalformedDiscriminatorError) Unwrap() error { return e.Err }

// UnhandledCaseError reports a discriminator value with no registered case.
type UnhandledCaseError struct {
	Supertype string
	Value     any
}

func (e *UnhandledCaseError) Error() string {
	return fmt.Sprintf("dispatch: cannot decode %s: no case registered for discriminator value %v", e.Supertype, e.Value)
}

// ReentrantDecodeError reports an attempt to dispatch a supertype that is
// currently suppressed, i.e. the converter was re-entered while decoding the
// body of one of its own cases.
type ReentrantDecodeError struct {
	Supertype string
}

func (e *ReentrantDecodeError) Error() string {
	return fmt.Sprintf("dispatch: re-entrant decode of %s while one of its cases is being decoded", e.Supertype)
}

// EncodeUnsupportedError reports a write attempted against a decode-only
// converter.
type EncodeUnsupportedError struct {
	Supertype string
}

func (e *EncodeUnsupportedError) Error() string {
	return fmt.Sprintf("dispatch: converter for %s is decode-only, encoding is unsupported", e.Supertype)
}
