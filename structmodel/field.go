package structmodel

import (
	"fmt"
	"reflect"
	"sync/atomic"
	"unsafe"

	"github.com/zoobzio/fieldlens"
)

// StructField is one declared field of a struct type. It implements
// fieldlens.Field.
type StructField struct {
	owner *StructType
	sf    reflect.StructField
	name  string
	typ   reflect.Type
	index int
	final bool

	// Accessibility flag. Monotonic: transitions closed to open, never
	// back, so concurrent SetAccessible calls are a benign race.
	open atomic.Bool
}

// Name returns the field name.
func (f *StructField) Name() string { return f.name }

// DeclaringType returns the struct type that declares f.
func (f *StructField) DeclaringType() fieldlens.Type { return f.owner }

// Type returns the declared value type.
func (f *StructField) Type() reflect.Type { return f.typ }

// IsPublic reports whether the field is exported.
func (f *StructField) IsPublic() bool { return f.sf.IsExported() }

// IsStatic returns false: Go structs have no static fields.
func (f *StructField) IsStatic() bool { return false }

// IsFinal reports whether the field carries a `lens:"final"` tag.
func (f *StructField) IsFinal() bool { return f.final }

// Accessible reports whether the accessibility flag has been opened.
func (f *StructField) Accessible() bool { return f.open.Load() }

// SetAccessible opens the accessibility flag. Idempotent.
func (f *StructField) SetAccessible() { f.open.Store(true) }

// Get returns the field's current value on target.
func (f *StructField) Get(target fieldlens.Instance) (any, error) {
	_, fv, err := f.slot(target)
	if err != nil {
		return nil, err
	}
	return fv.Interface(), nil
}

// Set mutates the field on target. The target must have been created from a
// pointer for the write to reach the caller's value.
func (f *StructField) Set(target fieldlens.Instance, value any) error {
	obj, fv, err := f.slot(target)
	if err != nil {
		return err
	}
	if !obj.settable {
		return fmt.Errorf("%w: target was created from a non-pointer value; writes require ValueOf(&v)",
			fieldlens.ErrInvalidArgument)
	}
	if value == nil {
		switch f.typ.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
			reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
			fv.Set(reflect.Zero(f.typ))
			return nil
		}
		return fmt.Errorf("%w: nil is not assignable to %s", fieldlens.ErrTypeMismatch, f.typ)
	}
	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(f.typ) {
		return fmt.Errorf("%w: value of type %T is not assignable to %s",
			fieldlens.ErrTypeMismatch, value, f.typ)
	}
	fv.Set(rv)
	return nil
}

// slot navigates from target's struct value down the embedding chain to f's
// declaring type and returns a read-write view of the field's storage.
//
// Values reached through unexported fields carry reflect's read-only flag;
// re-deriving the value from its address drops the flag while aliasing the
// same storage (the target value is always addressable, see ValueOf).
func (f *StructField) slot(target fieldlens.Instance) (*Value, reflect.Value, error) {
	if target == nil {
		return nil, reflect.Value{}, fmt.Errorf("%w: field %s.%s requires a target value",
			fieldlens.ErrInvalidArgument, f.owner.Name(), f.name)
	}
	obj, ok := target.(*Value)
	if !ok || obj == nil {
		return nil, reflect.Value{}, fmt.Errorf("%w: target is not a struct-model value",
			fieldlens.ErrInvalidArgument)
	}

	rv := obj.rv
	st := obj.st
	for st != nil && st != f.owner {
		if st.super == nil {
			st = nil
			break
		}
		rv = rv.Field(st.embedIndex)
		st = st.super
	}
	if st == nil {
		return nil, reflect.Value{}, fmt.Errorf("%w: type %s does not embed %s",
			fieldlens.ErrInvalidArgument, obj.st.Name(), f.owner.Name())
	}

	fv := rv.Field(f.index)
	if !fv.CanInterface() {
		fv = reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem()
	}
	return obj, fv, nil
}

var _ fieldlens.Field = (*StructField)(nil)
