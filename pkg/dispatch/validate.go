package dispatch

import (
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a cached validator to avoid recreation on each decode.
var (
	validatorInstance *validator.Validate
	validatorOnce     sync.Once
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInstance = validator.New()
	})
	return validatorInstance
}

// validateCase runs struct validation against the decoded case. Non-struct
// values and nil pointers are skipped: validation only applies where
// `validate` tags can exist.
func validateCase(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	return getValidator().Struct(rv.Interface())
}
