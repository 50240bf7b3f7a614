package structmodel

import (
	"fmt"
	"reflect"

	"github.com/zoobzio/fieldlens"
)

// Value wraps a Go struct value as a fieldlens.Instance.
type Value struct {
	st *StructType

	// rv is always an addressable struct value, so forced access can take
	// field addresses. Non-pointer inputs are copied into fresh storage.
	rv       reflect.Value
	settable bool
}

// ValueOf wraps v as an instance. Pass a pointer to a struct to allow
// writes; a plain struct value is copied and supports reads only.
func ValueOf(v any) (*Value, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: value must not be nil", fieldlens.ErrInvalidArgument)
	}
	rv := reflect.ValueOf(v)
	settable := false
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: value must not be a nil pointer", fieldlens.ErrInvalidArgument)
		}
		rv = rv.Elem()
		settable = true
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct type", fieldlens.ErrInvalidArgument, rv.Type())
	}
	if !settable {
		copied := reflect.New(rv.Type()).Elem()
		copied.Set(rv)
		rv = copied
	}
	return &Value{
		st:       typeOf(rv.Type()),
		rv:       rv,
		settable: settable,
	}, nil
}

// TypeOf returns the instance's struct type descriptor.
func (o *Value) TypeOf() fieldlens.Type { return o.st }

// Interface returns the current struct value.
func (o *Value) Interface() any { return o.rv.Interface() }

var _ fieldlens.Instance = (*Value)(nil)
